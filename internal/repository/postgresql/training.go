package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/yonseiedtech/reserve-backend-go/internal/domain/training"
	"github.com/yonseiedtech/reserve-backend-go/internal/pkg/database"
)

const trainingColumns = `id, batch_id, date, start_time, end_time, title, counts_toward_hours, created_at, updated_at`

type trainingRepositoryImpl struct {
	db *database.DB
}

func NewTrainingRepository(db *database.DB) training.TrainingRepository {
	return &trainingRepositoryImpl{db: db}
}

func scanTraining(row pgx.Row) (training.Training, error) {
	var t training.Training
	err := row.Scan(
		&t.ID,
		&t.BatchID,
		&t.Date,
		&t.StartTime,
		&t.EndTime,
		&t.Title,
		&t.CountsTowardHours,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return training.Training{}, training.ErrTrainingNotFound
		}
		return training.Training{}, err
	}
	return t, nil
}

// Create implements training.TrainingRepository.
func (r *trainingRepositoryImpl) Create(ctx context.Context, t training.Training) (training.Training, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO trainings (batch_id, date, start_time, end_time, title, counts_toward_hours)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + trainingColumns

	return scanTraining(q.QueryRow(ctx, query,
		t.BatchID,
		t.Date,
		t.StartTime,
		t.EndTime,
		t.Title,
		t.CountsTowardHours,
	))
}

// GetByID implements training.TrainingRepository.
func (r *trainingRepositoryImpl) GetByID(ctx context.Context, id string) (training.Training, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + trainingColumns + ` FROM trainings WHERE id = $1`
	return scanTraining(q.QueryRow(ctx, query, id))
}

// ListByBatch implements training.TrainingRepository.
func (r *trainingRepositoryImpl) ListByBatch(ctx context.Context, batchID string) ([]training.Training, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + trainingColumns + ` FROM trainings WHERE batch_id = $1 ORDER BY date, start_time`

	rows, err := q.Query(ctx, query, batchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trainings []training.Training
	for rows.Next() {
		t, err := scanTraining(rows)
		if err != nil {
			return nil, err
		}
		trainings = append(trainings, t)
	}

	return trainings, rows.Err()
}

// Update implements training.TrainingRepository.
func (r *trainingRepositoryImpl) Update(ctx context.Context, t training.Training) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE trainings
		SET date = $1, start_time = $2, end_time = $3, title = $4,
			counts_toward_hours = $5, updated_at = NOW()
		WHERE id = $6
	`

	tag, err := q.Exec(ctx, query,
		t.Date,
		t.StartTime,
		t.EndTime,
		t.Title,
		t.CountsTowardHours,
		t.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return training.ErrTrainingNotFound
	}

	return nil
}

// Delete implements training.TrainingRepository.
func (r *trainingRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM trainings WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return training.ErrTrainingNotFound
	}

	return nil
}
