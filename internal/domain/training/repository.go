package training

import "context"

type TrainingRepository interface {
	Create(ctx context.Context, t Training) (Training, error)
	GetByID(ctx context.Context, id string) (Training, error)
	ListByBatch(ctx context.Context, batchID string) ([]Training, error)
	Update(ctx context.Context, t Training) error
	Delete(ctx context.Context, id string) error
}

type CompensationRepository interface {
	// Upsert writes the computed fields keyed by training_id in one atomic
	// statement; a manually set override_rate is never touched.
	Upsert(ctx context.Context, c Compensation) (Compensation, error)
	GetByTraining(ctx context.Context, trainingID string) (Compensation, error)
	ListByBatch(ctx context.Context, batchID string) ([]Compensation, error)
	SetOverrideRate(ctx context.Context, trainingID string, overrideRate *int64) error
	// BatchTotal sums COALESCE(override_rate, daily_rate) over the batch's
	// hour-counting trainings.
	BatchTotal(ctx context.Context, batchID string) (int64, error)
}
