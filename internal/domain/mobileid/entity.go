package mobileid

import "time"

// Card is a mobile reservist ID issued per user.
type Card struct {
	ID         string
	UserID     string
	CardNumber string
	PhotoURL   *string
	IssuedAt   time.Time
	ExpiresAt  time.Time
	IsRevoked  bool
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// DTO
	UserName      *string
	ServiceNumber *string
	Rank          *string
}
