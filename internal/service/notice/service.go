package notice

import (
	"context"
	"errors"
	"log/slog"

	"github.com/yonseiedtech/reserve-backend-go/internal/domain/batch"
	"github.com/yonseiedtech/reserve-backend-go/internal/domain/notice"
	"github.com/yonseiedtech/reserve-backend-go/internal/domain/push"
	"github.com/yonseiedtech/reserve-backend-go/internal/domain/user"
	"github.com/yonseiedtech/reserve-backend-go/internal/pkg/sse"
	pushservice "github.com/yonseiedtech/reserve-backend-go/internal/service/push"
)

type Service interface {
	CreateNotice(ctx context.Context, authorID string, req notice.CreateNoticeRequest) (notice.NoticeResponse, error)
	GetNotice(ctx context.Context, id string) (notice.NoticeResponse, error)
	ListNotices(ctx context.Context, batchID *string, page, limit int) (notice.ListNoticeResponse, error)
	UpdateNotice(ctx context.Context, req notice.UpdateNoticeRequest) (notice.NoticeResponse, error)
	DeleteNotice(ctx context.Context, id string) error
}

type serviceImpl struct {
	notice.NoticeRepository
	batchUserRepo batch.BatchUserRepository
	userRepo      user.UserRepository
	hub           *sse.Hub
	pushService   pushservice.Service
}

func NewService(
	noticeRepo notice.NoticeRepository,
	batchUserRepo batch.BatchUserRepository,
	userRepo user.UserRepository,
	hub *sse.Hub,
	pushService pushservice.Service,
) Service {
	return &serviceImpl{
		NoticeRepository: noticeRepo,
		batchUserRepo:    batchUserRepo,
		userRepo:         userRepo,
		hub:              hub,
		pushService:      pushService,
	}
}

// CreateNotice implements Service.
func (s *serviceImpl) CreateNotice(ctx context.Context, authorID string, req notice.CreateNoticeRequest) (notice.NoticeResponse, error) {
	if err := req.Validate(); err != nil {
		return notice.NoticeResponse{}, err
	}

	created, err := s.NoticeRepository.Create(ctx, notice.Notice{
		BatchID:  req.BatchID,
		AuthorID: authorID,
		Title:    req.Title,
		Body:     req.Body,
		Pinned:   req.Pinned,
	})
	if err != nil {
		return notice.NoticeResponse{}, err
	}

	// Fan-out must not delay or fail the request.
	go s.notify(context.WithoutCancel(ctx), created)

	return notice.ToNoticeResponse(created), nil
}

// notify publishes the notice to its audience over SSE and Web Push. A
// batch-scoped notice goes to approved members only; a global notice goes
// to everyone.
func (s *serviceImpl) notify(ctx context.Context, n notice.Notice) {
	event := sse.Event{
		Event: "notice",
		Data:  notice.ToNoticeResponse(n),
	}

	var userIDs []string
	if n.BatchID != nil {
		ids, err := s.batchUserRepo.ListUserIDsByBatch(ctx, *n.BatchID)
		if err != nil {
			slog.Error("failed to resolve notice audience",
				"notice_id", n.ID,
				"batch_id", *n.BatchID,
				"error", err)
			return
		}
		userIDs = ids
		s.hub.PublishToMany(userIDs, event)
	} else {
		s.hub.Broadcast(event)

		users, err := s.userRepo.List(ctx, nil)
		if err != nil {
			slog.Error("failed to resolve notice audience",
				"notice_id", n.ID,
				"error", err)
			return
		}
		for _, u := range users {
			userIDs = append(userIDs, u.ID)
		}
	}

	err := s.pushService.SendToUsers(ctx, userIDs, push.Notification{
		Title: n.Title,
		Body:  n.Body,
		URL:   "/notices/" + n.ID,
	})
	if err != nil && !errors.Is(err, push.ErrPushDisabled) {
		slog.Warn("notice push fan-out failed",
			"notice_id", n.ID,
			"error", err)
	}
}

// GetNotice implements Service.
func (s *serviceImpl) GetNotice(ctx context.Context, id string) (notice.NoticeResponse, error) {
	n, err := s.NoticeRepository.GetByID(ctx, id)
	if err != nil {
		return notice.NoticeResponse{}, err
	}
	return notice.ToNoticeResponse(n), nil
}

// ListNotices implements Service.
func (s *serviceImpl) ListNotices(ctx context.Context, batchID *string, page, limit int) (notice.ListNoticeResponse, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	notices, total, err := s.NoticeRepository.List(ctx, batchID, page, limit)
	if err != nil {
		return notice.ListNoticeResponse{}, err
	}

	responses := make([]notice.NoticeResponse, 0, len(notices))
	for _, n := range notices {
		responses = append(responses, notice.ToNoticeResponse(n))
	}

	return notice.ListNoticeResponse{
		TotalCount: total,
		Page:       page,
		Limit:      limit,
		Notices:    responses,
	}, nil
}

// UpdateNotice implements Service.
func (s *serviceImpl) UpdateNotice(ctx context.Context, req notice.UpdateNoticeRequest) (notice.NoticeResponse, error) {
	n, err := s.NoticeRepository.GetByID(ctx, req.ID)
	if err != nil {
		return notice.NoticeResponse{}, err
	}

	if req.Title != nil {
		n.Title = *req.Title
	}
	if req.Body != nil {
		n.Body = *req.Body
	}
	if req.Pinned != nil {
		n.Pinned = *req.Pinned
	}

	if err := s.NoticeRepository.Update(ctx, n); err != nil {
		return notice.NoticeResponse{}, err
	}
	return s.GetNotice(ctx, req.ID)
}

// DeleteNotice implements Service.
func (s *serviceImpl) DeleteNotice(ctx context.Context, id string) error {
	return s.NoticeRepository.Delete(ctx, id)
}
