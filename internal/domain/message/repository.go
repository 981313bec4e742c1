package message

import "context"

type MessageRepository interface {
	Create(ctx context.Context, m Message) (Message, error)
	GetByID(ctx context.Context, id string) (Message, error)
	ListInbox(ctx context.Context, recipientID string, page, limit int) ([]Message, int64, error)
	MarkRead(ctx context.Context, id string) error
}
