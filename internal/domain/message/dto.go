package message

import (
	"time"

	"github.com/yonseiedtech/reserve-backend-go/internal/pkg/validator"
)

type SendMessageRequest struct {
	RecipientID string `json:"recipient_id"`
	Body        string `json:"body"`
}

func (r *SendMessageRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.RecipientID) {
		errs = append(errs, validator.ValidationError{
			Field:   "recipient_id",
			Message: "recipient_id is required",
		})
	}
	if validator.IsEmpty(r.Body) {
		errs = append(errs, validator.ValidationError{
			Field:   "body",
			Message: "body is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MessageResponse struct {
	ID         string  `json:"id"`
	SenderID   string  `json:"sender_id"`
	SenderName *string `json:"sender_name,omitempty"`
	Body       string  `json:"body"`
	ReadAt     *string `json:"read_at,omitempty"`
	CreatedAt  string  `json:"created_at"`
}

type InboxResponse struct {
	TotalCount int64             `json:"total_count"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	Messages   []MessageResponse `json:"messages"`
}

func ToMessageResponse(m Message) MessageResponse {
	var readAt *string
	if m.ReadAt != nil {
		s := m.ReadAt.UTC().Format(time.RFC3339)
		readAt = &s
	}
	return MessageResponse{
		ID:         m.ID,
		SenderID:   m.SenderID,
		SenderName: m.SenderName,
		Body:       m.Body,
		ReadAt:     readAt,
		CreatedAt:  m.CreatedAt.UTC().Format(time.RFC3339),
	}
}
