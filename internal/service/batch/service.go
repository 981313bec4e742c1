package batch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/yonseiedtech/reserve-backend-go/internal/domain/batch"
	"github.com/yonseiedtech/reserve-backend-go/internal/domain/payment"
	"github.com/yonseiedtech/reserve-backend-go/internal/domain/transport"
	"github.com/yonseiedtech/reserve-backend-go/internal/pkg/database"
	"github.com/yonseiedtech/reserve-backend-go/internal/pkg/timeutil"
	"github.com/yonseiedtech/reserve-backend-go/internal/repository/postgresql"
)

type Service interface {
	CreateBatch(ctx context.Context, req batch.CreateBatchRequest) (batch.BatchResponse, error)
	GetBatch(ctx context.Context, id string) (batch.BatchResponse, error)
	ListBatches(ctx context.Context, activeOnly bool) ([]batch.BatchResponse, error)
	UpdateBatch(ctx context.Context, id string, req batch.UpdateBatchRequest) (batch.BatchResponse, error)
	DeleteBatch(ctx context.Context, id string) error

	AddMember(ctx context.Context, batchID, userID string) (batch.BatchUserResponse, error)
	ListMembers(ctx context.Context, batchID string) ([]batch.BatchUserResponse, error)
	SetMemberStatus(ctx context.Context, memberID string, status batch.BatchUserStatus) error
	RemoveMember(ctx context.Context, memberID string) error
}

type serviceImpl struct {
	db *database.DB
	batch.BatchRepository
	batch.BatchUserRepository
	paymentRepo payment.PaymentRepository
	geocoder    transport.Geocoder
}

func NewService(
	db *database.DB,
	batchRepo batch.BatchRepository,
	batchUserRepo batch.BatchUserRepository,
	paymentRepo payment.PaymentRepository,
	geocoder transport.Geocoder,
) Service {
	return &serviceImpl{
		db:                  db,
		BatchRepository:     batchRepo,
		BatchUserRepository: batchUserRepo,
		paymentRepo:         paymentRepo,
		geocoder:            geocoder,
	}
}

// CreateBatch implements Service. The batch and its payment and refund
// processes are created in one transaction; geocoding the unit address is
// best-effort and never blocks creation.
func (s *serviceImpl) CreateBatch(ctx context.Context, req batch.CreateBatchRequest) (batch.BatchResponse, error) {
	if err := req.Validate(); err != nil {
		return batch.BatchResponse{}, err
	}

	startDate, err := timeutil.ParseDate(req.StartDate)
	if err != nil {
		return batch.BatchResponse{}, err
	}
	endDate, err := timeutil.ParseDate(req.EndDate)
	if err != nil {
		return batch.BatchResponse{}, err
	}
	if endDate.Before(startDate) {
		return batch.BatchResponse{}, batch.ErrInvalidDateRange
	}

	newBatch := batch.Batch{
		Name:        req.Name,
		StartDate:   startDate,
		EndDate:     endDate,
		UnitAddress: req.UnitAddress,
		IsActive:    true,
	}

	if req.UnitAddress != nil && *req.UnitAddress != "" {
		lat, lng, err := s.geocoder.Geocode(ctx, *req.UnitAddress)
		if err != nil {
			slog.Warn("Failed to geocode unit address", "address", *req.UnitAddress, "error", err)
		} else {
			newBatch.UnitLatitude = &lat
			newBatch.UnitLongitude = &lng
		}
	}

	var created batch.Batch
	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := postgresql.ContextWithTx(ctx, tx)

		var err error
		created, err = s.BatchRepository.Create(txCtx, newBatch)
		if err != nil {
			return fmt.Errorf("create batch: %w", err)
		}

		if _, err := s.paymentRepo.CreatePayment(txCtx, payment.NewPaymentProcess(created.ID)); err != nil {
			return fmt.Errorf("create payment process: %w", err)
		}
		if _, err := s.paymentRepo.CreateRefund(txCtx, payment.NewRefundProcess(created.ID, time.Now().UTC())); err != nil {
			return fmt.Errorf("create refund process: %w", err)
		}

		return nil
	})
	if err != nil {
		return batch.BatchResponse{}, err
	}

	return batch.ToBatchResponse(created), nil
}

// GetBatch implements Service.
func (s *serviceImpl) GetBatch(ctx context.Context, id string) (batch.BatchResponse, error) {
	b, err := s.BatchRepository.GetByID(ctx, id)
	if err != nil {
		return batch.BatchResponse{}, err
	}
	return batch.ToBatchResponse(b), nil
}

// ListBatches implements Service.
func (s *serviceImpl) ListBatches(ctx context.Context, activeOnly bool) ([]batch.BatchResponse, error) {
	batches, err := s.BatchRepository.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}

	responses := make([]batch.BatchResponse, 0, len(batches))
	for _, b := range batches {
		responses = append(responses, batch.ToBatchResponse(b))
	}
	return responses, nil
}

// UpdateBatch implements Service. Changing the unit address re-geocodes
// it, again best-effort.
func (s *serviceImpl) UpdateBatch(ctx context.Context, id string, req batch.UpdateBatchRequest) (batch.BatchResponse, error) {
	if err := req.Validate(); err != nil {
		return batch.BatchResponse{}, err
	}

	b, err := s.BatchRepository.GetByID(ctx, id)
	if err != nil {
		return batch.BatchResponse{}, err
	}

	if req.Name != nil {
		b.Name = *req.Name
	}
	if req.StartDate != nil {
		d, err := timeutil.ParseDate(*req.StartDate)
		if err != nil {
			return batch.BatchResponse{}, err
		}
		b.StartDate = d
	}
	if req.EndDate != nil {
		d, err := timeutil.ParseDate(*req.EndDate)
		if err != nil {
			return batch.BatchResponse{}, err
		}
		b.EndDate = d
	}
	if b.EndDate.Before(b.StartDate) {
		return batch.BatchResponse{}, batch.ErrInvalidDateRange
	}
	if req.IsActive != nil {
		b.IsActive = *req.IsActive
	}
	if req.UnitAddress != nil {
		b.UnitAddress = req.UnitAddress
		b.UnitLatitude = nil
		b.UnitLongitude = nil
		if *req.UnitAddress != "" {
			lat, lng, err := s.geocoder.Geocode(ctx, *req.UnitAddress)
			if err != nil {
				slog.Warn("Failed to geocode unit address", "address", *req.UnitAddress, "error", err)
			} else {
				b.UnitLatitude = &lat
				b.UnitLongitude = &lng
			}
		}
	}

	if err := s.BatchRepository.Update(ctx, b); err != nil {
		return batch.BatchResponse{}, err
	}

	return batch.ToBatchResponse(b), nil
}

// DeleteBatch implements Service. Dependent rows (trainings, processes,
// estimates) go via ON DELETE CASCADE.
func (s *serviceImpl) DeleteBatch(ctx context.Context, id string) error {
	return s.BatchRepository.Delete(ctx, id)
}

// AddMember implements Service.
func (s *serviceImpl) AddMember(ctx context.Context, batchID, userID string) (batch.BatchUserResponse, error) {
	if _, err := s.BatchRepository.GetByID(ctx, batchID); err != nil {
		return batch.BatchUserResponse{}, err
	}

	bu, err := s.BatchUserRepository.Add(ctx, batch.BatchUser{
		BatchID: batchID,
		UserID:  userID,
		Status:  batch.BatchUserApplied,
	})
	if err != nil {
		return batch.BatchUserResponse{}, err
	}

	return batch.ToBatchUserResponse(bu), nil
}

// ListMembers implements Service.
func (s *serviceImpl) ListMembers(ctx context.Context, batchID string) ([]batch.BatchUserResponse, error) {
	members, err := s.BatchUserRepository.ListByBatch(ctx, batchID)
	if err != nil {
		return nil, err
	}

	responses := make([]batch.BatchUserResponse, 0, len(members))
	for _, bu := range members {
		responses = append(responses, batch.ToBatchUserResponse(bu))
	}
	return responses, nil
}

// SetMemberStatus implements Service.
func (s *serviceImpl) SetMemberStatus(ctx context.Context, memberID string, status batch.BatchUserStatus) error {
	return s.BatchUserRepository.UpdateStatus(ctx, memberID, status)
}

// RemoveMember implements Service.
func (s *serviceImpl) RemoveMember(ctx context.Context, memberID string) error {
	return s.BatchUserRepository.Remove(ctx, memberID)
}
