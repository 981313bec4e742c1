package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/yonseiedtech/reserve-backend-go/internal/domain/payment"
)

type Service interface {
	GetPayment(ctx context.Context, batchID string) (payment.PaymentResponse, error)
	TransitionPayment(ctx context.Context, batchID string, req payment.TransitionRequest) (payment.PaymentResponse, error)
	UpdatePaymentDetails(ctx context.Context, batchID string, req payment.UpdatePaymentRequest) (payment.PaymentResponse, error)

	GetRefund(ctx context.Context, batchID string) (payment.RefundResponse, error)
	TransitionRefund(ctx context.Context, batchID string, req payment.TransitionRequest) (payment.RefundResponse, error)
	UpdateRefundDetails(ctx context.Context, batchID string, req payment.UpdateRefundRequest) (payment.RefundResponse, error)
}

type serviceImpl struct {
	payment.PaymentRepository
	now func() time.Time
}

func NewService(repo payment.PaymentRepository) Service {
	return &serviceImpl{PaymentRepository: repo, now: time.Now}
}

// GetPayment implements Service.
func (s *serviceImpl) GetPayment(ctx context.Context, batchID string) (payment.PaymentResponse, error) {
	p, err := s.PaymentRepository.GetPaymentByBatch(ctx, batchID)
	if err != nil {
		return payment.PaymentResponse{}, err
	}
	return payment.ToPaymentResponse(p), nil
}

// TransitionPayment implements Service. Status and stage timestamps are
// persisted together so the invariant between them survives storage.
func (s *serviceImpl) TransitionPayment(ctx context.Context, batchID string, req payment.TransitionRequest) (payment.PaymentResponse, error) {
	if err := req.Validate(); err != nil {
		return payment.PaymentResponse{}, err
	}

	p, err := s.PaymentRepository.GetPaymentByBatch(ctx, batchID)
	if err != nil {
		return payment.PaymentResponse{}, err
	}

	switch req.Action {
	case payment.ActionAdvance:
		err = p.Advance(s.now().UTC())
	case payment.ActionRevert:
		err = p.Revert()
	default:
		err = payment.ErrInvalidAction
	}
	if err != nil {
		return payment.PaymentResponse{}, err
	}

	if err := s.PaymentRepository.UpdatePaymentStatus(ctx, p); err != nil {
		return payment.PaymentResponse{}, fmt.Errorf("persist payment transition: %w", err)
	}

	return payment.ToPaymentResponse(p), nil
}

// UpdatePaymentDetails implements Service.
func (s *serviceImpl) UpdatePaymentDetails(ctx context.Context, batchID string, req payment.UpdatePaymentRequest) (payment.PaymentResponse, error) {
	if err := s.PaymentRepository.UpdatePaymentDetails(ctx, batchID, req); err != nil {
		return payment.PaymentResponse{}, err
	}

	return s.GetPayment(ctx, batchID)
}

// GetRefund implements Service.
func (s *serviceImpl) GetRefund(ctx context.Context, batchID string) (payment.RefundResponse, error) {
	p, err := s.PaymentRepository.GetRefundByBatch(ctx, batchID)
	if err != nil {
		return payment.RefundResponse{}, err
	}
	return payment.ToRefundResponse(p), nil
}

// TransitionRefund implements Service.
func (s *serviceImpl) TransitionRefund(ctx context.Context, batchID string, req payment.TransitionRequest) (payment.RefundResponse, error) {
	if err := req.Validate(); err != nil {
		return payment.RefundResponse{}, err
	}

	p, err := s.PaymentRepository.GetRefundByBatch(ctx, batchID)
	if err != nil {
		return payment.RefundResponse{}, err
	}

	switch req.Action {
	case payment.ActionAdvance:
		err = p.Advance(s.now().UTC())
	case payment.ActionRevert:
		err = p.Revert()
	default:
		err = payment.ErrInvalidAction
	}
	if err != nil {
		return payment.RefundResponse{}, err
	}

	if err := s.PaymentRepository.UpdateRefundStatus(ctx, p); err != nil {
		return payment.RefundResponse{}, fmt.Errorf("persist refund transition: %w", err)
	}

	return payment.ToRefundResponse(p), nil
}

// UpdateRefundDetails implements Service.
func (s *serviceImpl) UpdateRefundDetails(ctx context.Context, batchID string, req payment.UpdateRefundRequest) (payment.RefundResponse, error) {
	if err := req.Validate(); err != nil {
		return payment.RefundResponse{}, err
	}

	if err := s.PaymentRepository.UpdateRefundDetails(ctx, batchID, req); err != nil {
		return payment.RefundResponse{}, err
	}

	return s.GetRefund(ctx, batchID)
}
