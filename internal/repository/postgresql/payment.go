package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/yonseiedtech/reserve-backend-go/internal/domain/payment"
	"github.com/yonseiedtech/reserve-backend-go/internal/pkg/database"
)

const paymentColumns = `id, batch_id, status, confirmed_at, requested_at, paid_at, bank_name, account_number, account_holder, note, created_at, updated_at`

const refundColumns = `id, batch_id, status, requested_at, approved_at, completed_at, amount, reason, bank_name, account_number, account_holder, created_at, updated_at`

type paymentRepositoryImpl struct {
	db *database.DB
}

func NewPaymentRepository(db *database.DB) payment.PaymentRepository {
	return &paymentRepositoryImpl{db: db}
}

func scanPayment(row pgx.Row) (payment.PaymentProcess, error) {
	var p payment.PaymentProcess
	err := row.Scan(
		&p.ID,
		&p.BatchID,
		&p.Status,
		&p.ConfirmedAt,
		&p.RequestedAt,
		&p.PaidAt,
		&p.BankName,
		&p.AccountNumber,
		&p.AccountHolder,
		&p.Note,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payment.PaymentProcess{}, payment.ErrProcessNotFound
		}
		return payment.PaymentProcess{}, err
	}
	return p, nil
}

func scanRefund(row pgx.Row) (payment.RefundProcess, error) {
	var p payment.RefundProcess
	err := row.Scan(
		&p.ID,
		&p.BatchID,
		&p.Status,
		&p.RequestedAt,
		&p.ApprovedAt,
		&p.CompletedAt,
		&p.Amount,
		&p.Reason,
		&p.BankName,
		&p.AccountNumber,
		&p.AccountHolder,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payment.RefundProcess{}, payment.ErrProcessNotFound
		}
		return payment.RefundProcess{}, err
	}
	return p, nil
}

// CreatePayment implements payment.PaymentRepository.
func (r *paymentRepositoryImpl) CreatePayment(ctx context.Context, p payment.PaymentProcess) (payment.PaymentProcess, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payment_processes (batch_id, status, bank_name, account_number, account_holder, note)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + paymentColumns

	return scanPayment(q.QueryRow(ctx, query,
		p.BatchID,
		p.Status,
		p.BankName,
		p.AccountNumber,
		p.AccountHolder,
		p.Note,
	))
}

// GetPaymentByBatch implements payment.PaymentRepository.
func (r *paymentRepositoryImpl) GetPaymentByBatch(ctx context.Context, batchID string) (payment.PaymentProcess, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + paymentColumns + ` FROM payment_processes WHERE batch_id = $1`
	return scanPayment(q.QueryRow(ctx, query, batchID))
}

// UpdatePaymentStatus implements payment.PaymentRepository. Status and all
// three stage timestamps are written together.
func (r *paymentRepositoryImpl) UpdatePaymentStatus(ctx context.Context, p payment.PaymentProcess) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payment_processes
		SET status = $1, confirmed_at = $2, requested_at = $3, paid_at = $4, updated_at = NOW()
		WHERE id = $5
	`

	tag, err := q.Exec(ctx, query, p.Status, p.ConfirmedAt, p.RequestedAt, p.PaidAt, p.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return payment.ErrProcessNotFound
	}

	return nil
}

// UpdatePaymentDetails implements payment.PaymentRepository.
func (r *paymentRepositoryImpl) UpdatePaymentDetails(ctx context.Context, batchID string, req payment.UpdatePaymentRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE payment_processes
		SET bank_name = COALESCE($1, bank_name),
			account_number = COALESCE($2, account_number),
			account_holder = COALESCE($3, account_holder),
			note = COALESCE($4, note),
			updated_at = NOW()
		WHERE batch_id = $5
	`

	tag, err := q.Exec(ctx, query, req.BankName, req.AccountNumber, req.AccountHolder, req.Note, batchID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return payment.ErrProcessNotFound
	}

	return nil
}

// CreateRefund implements payment.PaymentRepository.
func (r *paymentRepositoryImpl) CreateRefund(ctx context.Context, p payment.RefundProcess) (payment.RefundProcess, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO refund_processes (batch_id, status, requested_at, amount, reason, bank_name, account_number, account_holder)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + refundColumns

	return scanRefund(q.QueryRow(ctx, query,
		p.BatchID,
		p.Status,
		p.RequestedAt,
		p.Amount,
		p.Reason,
		p.BankName,
		p.AccountNumber,
		p.AccountHolder,
	))
}

// GetRefundByBatch implements payment.PaymentRepository.
func (r *paymentRepositoryImpl) GetRefundByBatch(ctx context.Context, batchID string) (payment.RefundProcess, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + refundColumns + ` FROM refund_processes WHERE batch_id = $1`
	return scanRefund(q.QueryRow(ctx, query, batchID))
}

// UpdateRefundStatus implements payment.PaymentRepository.
func (r *paymentRepositoryImpl) UpdateRefundStatus(ctx context.Context, p payment.RefundProcess) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE refund_processes
		SET status = $1, requested_at = $2, approved_at = $3, completed_at = $4, updated_at = NOW()
		WHERE id = $5
	`

	tag, err := q.Exec(ctx, query, p.Status, p.RequestedAt, p.ApprovedAt, p.CompletedAt, p.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return payment.ErrProcessNotFound
	}

	return nil
}

// UpdateRefundDetails implements payment.PaymentRepository.
func (r *paymentRepositoryImpl) UpdateRefundDetails(ctx context.Context, batchID string, req payment.UpdateRefundRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE refund_processes
		SET amount = COALESCE($1, amount),
			reason = COALESCE($2, reason),
			bank_name = COALESCE($3, bank_name),
			account_number = COALESCE($4, account_number),
			account_holder = COALESCE($5, account_holder),
			updated_at = NOW()
		WHERE batch_id = $6
	`

	tag, err := q.Exec(ctx, query, req.Amount, req.Reason, req.BankName, req.AccountNumber, req.AccountHolder, batchID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return payment.ErrProcessNotFound
	}

	return nil
}
