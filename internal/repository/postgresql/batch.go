package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/yonseiedtech/reserve-backend-go/internal/domain/batch"
	"github.com/yonseiedtech/reserve-backend-go/internal/pkg/database"
)

const batchColumns = `id, name, start_date, end_date, unit_address, unit_latitude, unit_longitude, is_active, created_at, updated_at`

type batchRepositoryImpl struct {
	db *database.DB
}

func NewBatchRepository(db *database.DB) batch.BatchRepository {
	return &batchRepositoryImpl{db: db}
}

func scanBatch(row pgx.Row) (batch.Batch, error) {
	var b batch.Batch
	err := row.Scan(
		&b.ID,
		&b.Name,
		&b.StartDate,
		&b.EndDate,
		&b.UnitAddress,
		&b.UnitLatitude,
		&b.UnitLongitude,
		&b.IsActive,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return batch.Batch{}, batch.ErrBatchNotFound
		}
		return batch.Batch{}, err
	}
	return b, nil
}

// Create implements batch.BatchRepository.
func (r *batchRepositoryImpl) Create(ctx context.Context, b batch.Batch) (batch.Batch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO batches (name, start_date, end_date, unit_address, unit_latitude, unit_longitude, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + batchColumns

	return scanBatch(q.QueryRow(ctx, query,
		b.Name,
		b.StartDate,
		b.EndDate,
		b.UnitAddress,
		b.UnitLatitude,
		b.UnitLongitude,
		b.IsActive,
	))
}

// GetByID implements batch.BatchRepository.
func (r *batchRepositoryImpl) GetByID(ctx context.Context, id string) (batch.Batch, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + batchColumns + ` FROM batches WHERE id = $1`
	return scanBatch(q.QueryRow(ctx, query, id))
}

// List implements batch.BatchRepository.
func (r *batchRepositoryImpl) List(ctx context.Context, activeOnly bool) ([]batch.Batch, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + batchColumns + ` FROM batches`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY start_date DESC`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var batches []batch.Batch
	for rows.Next() {
		b, err := scanBatch(rows)
		if err != nil {
			return nil, err
		}
		batches = append(batches, b)
	}

	return batches, rows.Err()
}

// Update implements batch.BatchRepository.
func (r *batchRepositoryImpl) Update(ctx context.Context, b batch.Batch) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE batches
		SET name = $1, start_date = $2, end_date = $3, unit_address = $4,
			unit_latitude = $5, unit_longitude = $6, is_active = $7, updated_at = NOW()
		WHERE id = $8
	`

	tag, err := q.Exec(ctx, query,
		b.Name,
		b.StartDate,
		b.EndDate,
		b.UnitAddress,
		b.UnitLatitude,
		b.UnitLongitude,
		b.IsActive,
		b.ID,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return batch.ErrBatchNotFound
	}

	return nil
}

// Delete implements batch.BatchRepository.
func (r *batchRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM batches WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return batch.ErrBatchNotFound
	}

	return nil
}

// ListActiveIDs implements batch.BatchRepository.
func (r *batchRepositoryImpl) ListActiveIDs(ctx context.Context) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id FROM batches WHERE is_active = TRUE`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}
