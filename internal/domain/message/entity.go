package message

import "time"

// Message is a direct in-app message between two users.
type Message struct {
	ID          string
	SenderID    string
	RecipientID string
	Body        string
	ReadAt      *time.Time
	CreatedAt   time.Time

	// DTO
	SenderName *string
}
