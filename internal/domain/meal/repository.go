package meal

import (
	"context"
	"time"
)

type PlanRepository interface {
	// Upsert saves the plan keyed (batch_id, date, meal_type).
	Upsert(ctx context.Context, p Plan) (Plan, error)
	ListByBatch(ctx context.Context, batchID string, from, to *time.Time) ([]Plan, error)
	Delete(ctx context.Context, id string) error
}
