package payment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaymentAdvanceThroughAllStages(t *testing.T) {
	now := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)
	p := NewPaymentProcess("batch-1")

	assert.Equal(t, PaymentPreparing, p.Status)
	assert.Nil(t, p.ConfirmedAt)
	assert.Nil(t, p.RequestedAt)
	assert.Nil(t, p.PaidAt)

	require.NoError(t, p.Advance(now))
	assert.Equal(t, PaymentConfirmed, p.Status)
	require.NotNil(t, p.ConfirmedAt)
	assert.Equal(t, now, *p.ConfirmedAt)
	assert.Nil(t, p.RequestedAt)
	assert.Nil(t, p.PaidAt)

	later := now.Add(time.Hour)
	require.NoError(t, p.Advance(later))
	assert.Equal(t, PaymentRequested, p.Status)
	require.NotNil(t, p.RequestedAt)
	assert.Equal(t, later, *p.RequestedAt)
	assert.Equal(t, now, *p.ConfirmedAt, "earlier stamps stay untouched")
	assert.Nil(t, p.PaidAt)

	require.NoError(t, p.Advance(later.Add(time.Hour)))
	assert.Equal(t, PaymentPaid, p.Status)
	require.NotNil(t, p.PaidAt)

	// A fourth advance must fail at the terminal stage.
	err := p.Advance(later.Add(2 * time.Hour))
	assert.ErrorIs(t, err, ErrAlreadyFinalStage)
	assert.Equal(t, PaymentPaid, p.Status)
}

func TestPaymentRevertClearsLeavingStamp(t *testing.T) {
	now := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)
	p := NewPaymentProcess("batch-1")
	require.NoError(t, p.Advance(now))
	require.NoError(t, p.Advance(now.Add(time.Hour)))

	snapshot := p

	require.NoError(t, p.Advance(now.Add(2*time.Hour)))
	require.NoError(t, p.Revert())

	// Advance+revert round-trips back to the prior state.
	assert.Equal(t, snapshot.Status, p.Status)
	assert.Equal(t, snapshot.ConfirmedAt, p.ConfirmedAt)
	assert.Equal(t, snapshot.RequestedAt, p.RequestedAt)
	assert.Nil(t, p.PaidAt)
}

func TestPaymentRevertAtFirstStage(t *testing.T) {
	p := NewPaymentProcess("batch-1")
	err := p.Revert()
	assert.ErrorIs(t, err, ErrAlreadyFirstStage)
	assert.Equal(t, PaymentPreparing, p.Status)
}

func TestRefundCreationStampsRequest(t *testing.T) {
	now := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)
	r := NewRefundProcess("batch-2", now)

	assert.Equal(t, RefundRequested, r.Status)
	require.NotNil(t, r.RequestedAt)
	assert.Equal(t, now, *r.RequestedAt)
	assert.Nil(t, r.ApprovedAt)
	assert.Nil(t, r.CompletedAt)
}

func TestRefundAdvanceAndRevert(t *testing.T) {
	now := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)
	r := NewRefundProcess("batch-2", now)

	require.NoError(t, r.Advance(now.Add(time.Hour)))
	assert.Equal(t, RefundApproved, r.Status)
	require.NotNil(t, r.ApprovedAt)

	require.NoError(t, r.Advance(now.Add(2*time.Hour)))
	assert.Equal(t, RefundCompleted, r.Status)
	require.NotNil(t, r.CompletedAt)

	assert.ErrorIs(t, r.Advance(now.Add(3*time.Hour)), ErrAlreadyFinalStage)

	require.NoError(t, r.Revert())
	assert.Equal(t, RefundApproved, r.Status)
	assert.Nil(t, r.CompletedAt)
	assert.NotNil(t, r.ApprovedAt)

	require.NoError(t, r.Revert())
	assert.Equal(t, RefundRequested, r.Status)
	assert.Nil(t, r.ApprovedAt)
	// Reverting to the request stage does not erase the original request
	// stamp; only the stamp of the stage being left is cleared.
	assert.NotNil(t, r.RequestedAt)

	assert.ErrorIs(t, r.Revert(), ErrAlreadyFirstStage)
}

func TestWorkflowIndexUnknownStage(t *testing.T) {
	assert.Equal(t, -1, PaymentStages.Index(Status("bogus")))

	_, err := PaymentStages.Next(Status("bogus"))
	assert.ErrorIs(t, err, ErrUnknownStage)
	_, err = PaymentStages.Prev(Status("bogus"))
	assert.ErrorIs(t, err, ErrUnknownStage)
}

func TestTransitionRequestValidate(t *testing.T) {
	for _, action := range []string{ActionAdvance, ActionRevert} {
		req := TransitionRequest{Action: action}
		assert.NoError(t, req.Validate())
	}

	for _, action := range []string{"", "jump", "ADVANCE"} {
		req := TransitionRequest{Action: action}
		assert.Error(t, req.Validate())
	}
}
