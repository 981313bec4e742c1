package batch

import "context"

type BatchRepository interface {
	Create(ctx context.Context, b Batch) (Batch, error)
	GetByID(ctx context.Context, id string) (Batch, error)
	List(ctx context.Context, activeOnly bool) ([]Batch, error)
	Update(ctx context.Context, b Batch) error
	Delete(ctx context.Context, id string) error
	ListActiveIDs(ctx context.Context) ([]string, error)
}

type BatchUserRepository interface {
	Add(ctx context.Context, bu BatchUser) (BatchUser, error)
	GetByBatchAndUser(ctx context.Context, batchID, userID string) (BatchUser, error)
	ListByBatch(ctx context.Context, batchID string) ([]BatchUser, error)
	ListUserIDsByBatch(ctx context.Context, batchID string) ([]string, error)
	UpdateStatus(ctx context.Context, id string, status BatchUserStatus) error
	Remove(ctx context.Context, id string) error
}
