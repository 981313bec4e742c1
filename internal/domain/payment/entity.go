package payment

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentProcess tracks the disbursement of a batch's compensation as a
// manual bank transfer moving through PaymentStages. Timestamps for stages
// the process has not reached yet are always nil; Advance and Revert are
// the only writers.
type PaymentProcess struct {
	ID            string
	BatchID       string
	Status        Status
	ConfirmedAt   *time.Time
	RequestedAt   *time.Time
	PaidAt        *time.Time
	BankName      *string
	AccountNumber *string
	AccountHolder *string
	Note          *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewPaymentProcess returns a process at the initial stage.
func NewPaymentProcess(batchID string) PaymentProcess {
	return PaymentProcess{
		BatchID: batchID,
		Status:  PaymentStages.First(),
	}
}

// stampSlot maps a stage to the timestamp field it owns, or nil when the
// stage has none.
func (p *PaymentProcess) stampSlot(s Status) **time.Time {
	switch s {
	case PaymentConfirmed:
		return &p.ConfirmedAt
	case PaymentRequested:
		return &p.RequestedAt
	case PaymentPaid:
		return &p.PaidAt
	}
	return nil
}

// Advance moves the process to the next stage and stamps that stage's
// timestamp.
func (p *PaymentProcess) Advance(now time.Time) error {
	next, err := PaymentStages.Next(p.Status)
	if err != nil {
		return err
	}
	p.Status = next
	if slot := p.stampSlot(next); slot != nil {
		t := now
		*slot = &t
	}
	return nil
}

// Revert moves the process back one stage, clearing the timestamp of the
// stage being left.
func (p *PaymentProcess) Revert() error {
	prev, err := PaymentStages.Prev(p.Status)
	if err != nil {
		return err
	}
	if slot := p.stampSlot(p.Status); slot != nil {
		*slot = nil
	}
	p.Status = prev
	return nil
}

// RefundProcess tracks meal/transport money returned by a batch, moving
// through RefundStages. Unlike payment, creation is the request itself,
// so RequestedAt is stamped when the process is created.
type RefundProcess struct {
	ID            string
	BatchID       string
	Status        Status
	RequestedAt   *time.Time
	ApprovedAt    *time.Time
	CompletedAt   *time.Time
	Amount        *decimal.Decimal
	Reason        *string
	BankName      *string
	AccountNumber *string
	AccountHolder *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewRefundProcess returns a process at the initial stage with the
// request timestamp already stamped.
func NewRefundProcess(batchID string, now time.Time) RefundProcess {
	t := now
	return RefundProcess{
		BatchID:     batchID,
		Status:      RefundStages.First(),
		RequestedAt: &t,
	}
}

func (p *RefundProcess) stampSlot(s Status) **time.Time {
	switch s {
	case RefundRequested:
		return &p.RequestedAt
	case RefundApproved:
		return &p.ApprovedAt
	case RefundCompleted:
		return &p.CompletedAt
	}
	return nil
}

// Advance moves the process to the next stage and stamps that stage's
// timestamp.
func (p *RefundProcess) Advance(now time.Time) error {
	next, err := RefundStages.Next(p.Status)
	if err != nil {
		return err
	}
	p.Status = next
	if slot := p.stampSlot(next); slot != nil {
		t := now
		*slot = &t
	}
	return nil
}

// Revert moves the process back one stage, clearing the timestamp of the
// stage being left.
func (p *RefundProcess) Revert() error {
	prev, err := RefundStages.Prev(p.Status)
	if err != nil {
		return err
	}
	if slot := p.stampSlot(p.Status); slot != nil {
		*slot = nil
	}
	p.Status = prev
	return nil
}
