package payment

import "context"

type PaymentRepository interface {
	CreatePayment(ctx context.Context, p PaymentProcess) (PaymentProcess, error)
	GetPaymentByBatch(ctx context.Context, batchID string) (PaymentProcess, error)
	// UpdatePaymentStatus persists status and every stage timestamp in one
	// write so the stage/timestamp invariant survives round trips.
	UpdatePaymentStatus(ctx context.Context, p PaymentProcess) error
	// UpdatePaymentDetails writes only the non-status fields.
	UpdatePaymentDetails(ctx context.Context, batchID string, req UpdatePaymentRequest) error

	CreateRefund(ctx context.Context, p RefundProcess) (RefundProcess, error)
	GetRefundByBatch(ctx context.Context, batchID string) (RefundProcess, error)
	UpdateRefundStatus(ctx context.Context, p RefundProcess) error
	UpdateRefundDetails(ctx context.Context, batchID string, req UpdateRefundRequest) error
}
