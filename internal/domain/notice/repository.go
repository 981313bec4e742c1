package notice

import "context"

type NoticeRepository interface {
	Create(ctx context.Context, n Notice) (Notice, error)
	GetByID(ctx context.Context, id string) (Notice, error)
	List(ctx context.Context, batchID *string, page, limit int) ([]Notice, int64, error)
	Update(ctx context.Context, n Notice) error
	Delete(ctx context.Context, id string) error
}
