package payment

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/yonseiedtech/reserve-backend-go/internal/pkg/validator"
)

const (
	ActionAdvance = "advance"
	ActionRevert  = "revert"
)

// TransitionRequest asks for a single advance or revert of a process.
type TransitionRequest struct {
	Action string `json:"action"`
}

func (r *TransitionRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Action != ActionAdvance && r.Action != ActionRevert {
		errs = append(errs, validator.ValidationError{
			Field:   "action",
			Message: "action must be one of: advance, revert",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdatePaymentRequest edits non-status fields only. Status and stage
// timestamps are deliberately absent so a plain edit can never violate
// the stage/timestamp invariant.
type UpdatePaymentRequest struct {
	BankName      *string `json:"bank_name,omitempty"`
	AccountNumber *string `json:"account_number,omitempty"`
	AccountHolder *string `json:"account_holder,omitempty"`
	Note          *string `json:"note,omitempty"`
}

type UpdateRefundRequest struct {
	Amount        *decimal.Decimal `json:"amount,omitempty"`
	Reason        *string          `json:"reason,omitempty"`
	BankName      *string          `json:"bank_name,omitempty"`
	AccountNumber *string          `json:"account_number,omitempty"`
	AccountHolder *string          `json:"account_holder,omitempty"`
}

func (r *UpdateRefundRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Amount != nil && r.Amount.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PaymentResponse struct {
	ID            string  `json:"id"`
	BatchID       string  `json:"batch_id"`
	Status        string  `json:"status"`
	ConfirmedAt   *string `json:"confirmed_at,omitempty"`
	RequestedAt   *string `json:"requested_at,omitempty"`
	PaidAt        *string `json:"paid_at,omitempty"`
	BankName      *string `json:"bank_name,omitempty"`
	AccountNumber *string `json:"account_number,omitempty"`
	AccountHolder *string `json:"account_holder,omitempty"`
	Note          *string `json:"note,omitempty"`
}

type RefundResponse struct {
	ID            string           `json:"id"`
	BatchID       string           `json:"batch_id"`
	Status        string           `json:"status"`
	RequestedAt   *string          `json:"requested_at,omitempty"`
	ApprovedAt    *string          `json:"approved_at,omitempty"`
	CompletedAt   *string          `json:"completed_at,omitempty"`
	Amount        *decimal.Decimal `json:"amount,omitempty"`
	Reason        *string          `json:"reason,omitempty"`
	BankName      *string          `json:"bank_name,omitempty"`
	AccountNumber *string          `json:"account_number,omitempty"`
	AccountHolder *string          `json:"account_holder,omitempty"`
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format("2006-01-02 15:04:05")
	return &s
}

func ToPaymentResponse(p PaymentProcess) PaymentResponse {
	return PaymentResponse{
		ID:            p.ID,
		BatchID:       p.BatchID,
		Status:        string(p.Status),
		ConfirmedAt:   formatTimePtr(p.ConfirmedAt),
		RequestedAt:   formatTimePtr(p.RequestedAt),
		PaidAt:        formatTimePtr(p.PaidAt),
		BankName:      p.BankName,
		AccountNumber: p.AccountNumber,
		AccountHolder: p.AccountHolder,
		Note:          p.Note,
	}
}

func ToRefundResponse(p RefundProcess) RefundResponse {
	return RefundResponse{
		ID:            p.ID,
		BatchID:       p.BatchID,
		Status:        string(p.Status),
		RequestedAt:   formatTimePtr(p.RequestedAt),
		ApprovedAt:    formatTimePtr(p.ApprovedAt),
		CompletedAt:   formatTimePtr(p.CompletedAt),
		Amount:        p.Amount,
		Reason:        p.Reason,
		BankName:      p.BankName,
		AccountNumber: p.AccountNumber,
		AccountHolder: p.AccountHolder,
	}
}
