package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/yonseiedtech/reserve-backend-go/internal/domain/training"
	"github.com/yonseiedtech/reserve-backend-go/internal/pkg/database"
)

const compensationColumns = `id, training_id, training_hours, is_weekend, daily_rate, override_rate, created_at, updated_at`

type compensationRepositoryImpl struct {
	db *database.DB
}

func NewCompensationRepository(db *database.DB) training.CompensationRepository {
	return &compensationRepositoryImpl{db: db}
}

func scanCompensation(row pgx.Row) (training.Compensation, error) {
	var c training.Compensation
	err := row.Scan(
		&c.ID,
		&c.TrainingID,
		&c.TrainingHours,
		&c.IsWeekend,
		&c.DailyRate,
		&c.OverrideRate,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return training.Compensation{}, training.ErrCompensationNotFound
		}
		return training.Compensation{}, err
	}
	return c, nil
}

// Upsert implements training.CompensationRepository. The update arm leaves
// override_rate alone so admin overrides survive resync.
func (r *compensationRepositoryImpl) Upsert(ctx context.Context, c training.Compensation) (training.Compensation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO compensations (training_id, training_hours, is_weekend, daily_rate)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (training_id) DO UPDATE
		SET training_hours = EXCLUDED.training_hours,
			is_weekend = EXCLUDED.is_weekend,
			daily_rate = EXCLUDED.daily_rate,
			updated_at = NOW()
		RETURNING ` + compensationColumns

	return scanCompensation(q.QueryRow(ctx, query,
		c.TrainingID,
		c.TrainingHours,
		c.IsWeekend,
		c.DailyRate,
	))
}

// GetByTraining implements training.CompensationRepository.
func (r *compensationRepositoryImpl) GetByTraining(ctx context.Context, trainingID string) (training.Compensation, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + compensationColumns + ` FROM compensations WHERE training_id = $1`
	return scanCompensation(q.QueryRow(ctx, query, trainingID))
}

// ListByBatch implements training.CompensationRepository.
func (r *compensationRepositoryImpl) ListByBatch(ctx context.Context, batchID string) ([]training.Compensation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT c.id, c.training_id, c.training_hours, c.is_weekend, c.daily_rate, c.override_rate, c.created_at, c.updated_at
		FROM compensations c
		JOIN trainings t ON t.id = c.training_id
		WHERE t.batch_id = $1
		ORDER BY t.date, t.start_time
	`

	rows, err := q.Query(ctx, query, batchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comps []training.Compensation
	for rows.Next() {
		c, err := scanCompensation(rows)
		if err != nil {
			return nil, err
		}
		comps = append(comps, c)
	}

	return comps, rows.Err()
}

// SetOverrideRate implements training.CompensationRepository. Passing nil
// clears the override so the derived rate applies again.
func (r *compensationRepositoryImpl) SetOverrideRate(ctx context.Context, trainingID string, overrideRate *int64) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE compensations SET override_rate = $1, updated_at = NOW() WHERE training_id = $2`

	tag, err := q.Exec(ctx, query, overrideRate, trainingID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return training.ErrCompensationNotFound
	}

	return nil
}

// BatchTotal implements training.CompensationRepository.
func (r *compensationRepositoryImpl) BatchTotal(ctx context.Context, batchID string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(COALESCE(c.override_rate, c.daily_rate)), 0)
		FROM compensations c
		JOIN trainings t ON t.id = c.training_id
		WHERE t.batch_id = $1 AND t.counts_toward_hours = TRUE
	`

	var total int64
	if err := q.QueryRow(ctx, query, batchID).Scan(&total); err != nil {
		return 0, err
	}

	return total, nil
}
