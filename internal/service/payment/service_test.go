package payment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yonseiedtech/reserve-backend-go/internal/domain/payment"
)

type memoryRepo struct {
	payments map[string]payment.PaymentProcess // by batch ID
	refunds  map[string]payment.RefundProcess
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{
		payments: make(map[string]payment.PaymentProcess),
		refunds:  make(map[string]payment.RefundProcess),
	}
}

func (m *memoryRepo) CreatePayment(ctx context.Context, p payment.PaymentProcess) (payment.PaymentProcess, error) {
	p.ID = "pay-" + p.BatchID
	m.payments[p.BatchID] = p
	return p, nil
}

func (m *memoryRepo) GetPaymentByBatch(ctx context.Context, batchID string) (payment.PaymentProcess, error) {
	p, ok := m.payments[batchID]
	if !ok {
		return payment.PaymentProcess{}, payment.ErrProcessNotFound
	}
	return p, nil
}

func (m *memoryRepo) UpdatePaymentStatus(ctx context.Context, p payment.PaymentProcess) error {
	cur, ok := m.payments[p.BatchID]
	if !ok {
		return payment.ErrProcessNotFound
	}
	cur.Status = p.Status
	cur.ConfirmedAt = p.ConfirmedAt
	cur.RequestedAt = p.RequestedAt
	cur.PaidAt = p.PaidAt
	m.payments[p.BatchID] = cur
	return nil
}

func (m *memoryRepo) UpdatePaymentDetails(ctx context.Context, batchID string, req payment.UpdatePaymentRequest) error {
	cur, ok := m.payments[batchID]
	if !ok {
		return payment.ErrProcessNotFound
	}
	if req.BankName != nil {
		cur.BankName = req.BankName
	}
	if req.AccountNumber != nil {
		cur.AccountNumber = req.AccountNumber
	}
	if req.AccountHolder != nil {
		cur.AccountHolder = req.AccountHolder
	}
	if req.Note != nil {
		cur.Note = req.Note
	}
	m.payments[batchID] = cur
	return nil
}

func (m *memoryRepo) CreateRefund(ctx context.Context, p payment.RefundProcess) (payment.RefundProcess, error) {
	p.ID = "ref-" + p.BatchID
	m.refunds[p.BatchID] = p
	return p, nil
}

func (m *memoryRepo) GetRefundByBatch(ctx context.Context, batchID string) (payment.RefundProcess, error) {
	p, ok := m.refunds[batchID]
	if !ok {
		return payment.RefundProcess{}, payment.ErrProcessNotFound
	}
	return p, nil
}

func (m *memoryRepo) UpdateRefundStatus(ctx context.Context, p payment.RefundProcess) error {
	cur, ok := m.refunds[p.BatchID]
	if !ok {
		return payment.ErrProcessNotFound
	}
	cur.Status = p.Status
	cur.RequestedAt = p.RequestedAt
	cur.ApprovedAt = p.ApprovedAt
	cur.CompletedAt = p.CompletedAt
	m.refunds[p.BatchID] = cur
	return nil
}

func (m *memoryRepo) UpdateRefundDetails(ctx context.Context, batchID string, req payment.UpdateRefundRequest) error {
	cur, ok := m.refunds[batchID]
	if !ok {
		return payment.ErrProcessNotFound
	}
	if req.Amount != nil {
		cur.Amount = req.Amount
	}
	if req.Reason != nil {
		cur.Reason = req.Reason
	}
	m.refunds[batchID] = cur
	return nil
}

func newTestService(t *testing.T) (Service, *memoryRepo) {
	t.Helper()
	repo := newMemoryRepo()
	_, err := repo.CreatePayment(context.Background(), payment.NewPaymentProcess("b1"))
	require.NoError(t, err)
	_, err = repo.CreateRefund(context.Background(), payment.NewRefundProcess("b1", time.Now().UTC()))
	require.NoError(t, err)
	return NewService(repo), repo
}

func TestTransitionPaymentFullCycle(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	advance := payment.TransitionRequest{Action: payment.ActionAdvance}

	resp, err := svc.GetPayment(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, "preparing", resp.Status)

	resp, err = svc.TransitionPayment(ctx, "b1", advance)
	require.NoError(t, err)
	assert.Equal(t, "confirmed", resp.Status)
	assert.NotNil(t, resp.ConfirmedAt)
	assert.Nil(t, resp.RequestedAt)

	resp, err = svc.TransitionPayment(ctx, "b1", advance)
	require.NoError(t, err)
	assert.Equal(t, "requested", resp.Status)

	resp, err = svc.TransitionPayment(ctx, "b1", advance)
	require.NoError(t, err)
	assert.Equal(t, "paid", resp.Status)
	assert.NotNil(t, resp.PaidAt)

	_, err = svc.TransitionPayment(ctx, "b1", advance)
	assert.ErrorIs(t, err, payment.ErrAlreadyFinalStage)
}

func TestTransitionPaymentRevertClearsStamp(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	_, err := svc.TransitionPayment(ctx, "b1", payment.TransitionRequest{Action: payment.ActionAdvance})
	require.NoError(t, err)

	resp, err := svc.TransitionPayment(ctx, "b1", payment.TransitionRequest{Action: payment.ActionRevert})
	require.NoError(t, err)
	assert.Equal(t, "preparing", resp.Status)
	assert.Nil(t, resp.ConfirmedAt)

	// Revert at the first stage fails and nothing is written.
	_, err = svc.TransitionPayment(ctx, "b1", payment.TransitionRequest{Action: payment.ActionRevert})
	assert.ErrorIs(t, err, payment.ErrAlreadyFirstStage)
	stored := repo.payments["b1"]
	assert.Equal(t, payment.PaymentPreparing, stored.Status)
}

func TestTransitionRefund(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	advance := payment.TransitionRequest{Action: payment.ActionAdvance}

	resp, err := svc.GetRefund(ctx, "b1")
	require.NoError(t, err)
	assert.Equal(t, "requested", resp.Status)
	assert.NotNil(t, resp.RequestedAt, "creation stamps the request time")

	resp, err = svc.TransitionRefund(ctx, "b1", advance)
	require.NoError(t, err)
	assert.Equal(t, "approved", resp.Status)

	resp, err = svc.TransitionRefund(ctx, "b1", advance)
	require.NoError(t, err)
	assert.Equal(t, "completed", resp.Status)

	_, err = svc.TransitionRefund(ctx, "b1", advance)
	assert.ErrorIs(t, err, payment.ErrAlreadyFinalStage)
}

func TestTransitionValidation(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.TransitionPayment(context.Background(), "b1", payment.TransitionRequest{Action: "sideways"})
	assert.Error(t, err)

	_, err = svc.TransitionPayment(context.Background(), "missing", payment.TransitionRequest{Action: payment.ActionAdvance})
	assert.ErrorIs(t, err, payment.ErrProcessNotFound)
}

func TestUpdateDetailsNeverTouchesStatus(t *testing.T) {
	svc, repo := newTestService(t)
	ctx := context.Background()

	bank := "수협은행"
	resp, err := svc.UpdatePaymentDetails(ctx, "b1", payment.UpdatePaymentRequest{BankName: &bank})
	require.NoError(t, err)
	assert.Equal(t, "preparing", resp.Status)
	assert.Equal(t, &bank, resp.BankName)
	assert.Nil(t, repo.payments["b1"].ConfirmedAt)
}
