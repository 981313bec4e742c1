package message

import (
	"context"

	"github.com/yonseiedtech/reserve-backend-go/internal/domain/message"
	"github.com/yonseiedtech/reserve-backend-go/internal/domain/user"
	"github.com/yonseiedtech/reserve-backend-go/internal/pkg/sse"
)

type Service interface {
	Send(ctx context.Context, senderID string, req message.SendMessageRequest) (message.MessageResponse, error)
	Inbox(ctx context.Context, recipientID string, page, limit int) (message.InboxResponse, error)
	// MarkRead stamps the message as read. Only the recipient may do so.
	MarkRead(ctx context.Context, id, readerID string) error
}

type serviceImpl struct {
	message.MessageRepository
	userRepo user.UserRepository
	hub      *sse.Hub
}

func NewService(messageRepo message.MessageRepository, userRepo user.UserRepository, hub *sse.Hub) Service {
	return &serviceImpl{
		MessageRepository: messageRepo,
		userRepo:          userRepo,
		hub:               hub,
	}
}

// Send implements Service.
func (s *serviceImpl) Send(ctx context.Context, senderID string, req message.SendMessageRequest) (message.MessageResponse, error) {
	if err := req.Validate(); err != nil {
		return message.MessageResponse{}, err
	}

	if _, err := s.userRepo.GetByID(ctx, req.RecipientID); err != nil {
		return message.MessageResponse{}, err
	}

	created, err := s.MessageRepository.Create(ctx, message.Message{
		SenderID:    senderID,
		RecipientID: req.RecipientID,
		Body:        req.Body,
	})
	if err != nil {
		return message.MessageResponse{}, err
	}

	resp := message.ToMessageResponse(created)
	s.hub.Publish(req.RecipientID, sse.Event{
		Event: "message",
		Data:  resp,
	})

	return resp, nil
}

// Inbox implements Service.
func (s *serviceImpl) Inbox(ctx context.Context, recipientID string, page, limit int) (message.InboxResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	messages, total, err := s.MessageRepository.ListInbox(ctx, recipientID, page, limit)
	if err != nil {
		return message.InboxResponse{}, err
	}

	responses := make([]message.MessageResponse, 0, len(messages))
	for _, m := range messages {
		responses = append(responses, message.ToMessageResponse(m))
	}

	return message.InboxResponse{
		TotalCount: total,
		Page:       page,
		Limit:      limit,
		Messages:   responses,
	}, nil
}

// MarkRead implements Service.
func (s *serviceImpl) MarkRead(ctx context.Context, id, readerID string) error {
	m, err := s.MessageRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if m.RecipientID != readerID {
		return message.ErrNotRecipient
	}
	return s.MessageRepository.MarkRead(ctx, id)
}
