package notice

import "time"

// Notice is an announcement shown to a batch (or to everyone when
// BatchID is nil).
type Notice struct {
	ID        string
	BatchID   *string
	AuthorID  string
	Title     string
	Body      string
	Pinned    bool
	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO
	AuthorName *string
}
