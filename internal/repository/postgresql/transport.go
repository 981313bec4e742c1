package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/yonseiedtech/reserve-backend-go/internal/domain/transport"
	"github.com/yonseiedtech/reserve-backend-go/internal/pkg/database"
)

const estimateColumns = `id, batch_id, user_id, status, km, has_toll, fuel, toll, total, created_at, updated_at`

type estimateRepositoryImpl struct {
	db *database.DB
}

func NewEstimateRepository(db *database.DB) transport.EstimateRepository {
	return &estimateRepositoryImpl{db: db}
}

func scanEstimate(row pgx.Row) (transport.MemberEstimate, error) {
	var e transport.MemberEstimate
	err := row.Scan(
		&e.ID,
		&e.BatchID,
		&e.UserID,
		&e.Status,
		&e.Km,
		&e.HasToll,
		&e.Fuel,
		&e.Toll,
		&e.Total,
		&e.CreatedAt,
		&e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return transport.MemberEstimate{}, transport.ErrEstimateNotFound
		}
		return transport.MemberEstimate{}, err
	}
	return e, nil
}

// UpsertForMember implements transport.EstimateRepository. A rerun
// replaces the member's previous result entirely, including failures.
func (r *estimateRepositoryImpl) UpsertForMember(ctx context.Context, e transport.MemberEstimate) (transport.MemberEstimate, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO transport_estimates (batch_id, user_id, status, km, has_toll, fuel, toll, total)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (batch_id, user_id) DO UPDATE
		SET status = EXCLUDED.status,
			km = EXCLUDED.km,
			has_toll = EXCLUDED.has_toll,
			fuel = EXCLUDED.fuel,
			toll = EXCLUDED.toll,
			total = EXCLUDED.total,
			updated_at = NOW()
		RETURNING ` + estimateColumns

	return scanEstimate(q.QueryRow(ctx, query,
		e.BatchID,
		e.UserID,
		e.Status,
		e.Km,
		e.HasToll,
		e.Fuel,
		e.Toll,
		e.Total,
	))
}

// ListByBatch implements transport.EstimateRepository. Joins user details
// for the admin table view.
func (r *estimateRepositoryImpl) ListByBatch(ctx context.Context, batchID string) ([]transport.MemberEstimate, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.batch_id, e.user_id, e.status, e.km, e.has_toll, e.fuel, e.toll, e.total, e.created_at, e.updated_at,
			   u.name, u.address
		FROM transport_estimates e
		JOIN users u ON u.id = e.user_id
		WHERE e.batch_id = $1
		ORDER BY u.name
	`

	rows, err := q.Query(ctx, query, batchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var estimates []transport.MemberEstimate
	for rows.Next() {
		var e transport.MemberEstimate
		err := rows.Scan(
			&e.ID,
			&e.BatchID,
			&e.UserID,
			&e.Status,
			&e.Km,
			&e.HasToll,
			&e.Fuel,
			&e.Toll,
			&e.Total,
			&e.CreatedAt,
			&e.UpdatedAt,
			&e.UserName,
			&e.Address,
		)
		if err != nil {
			return nil, err
		}
		estimates = append(estimates, e)
	}

	return estimates, rows.Err()
}

// GetByBatchAndUser implements transport.EstimateRepository.
func (r *estimateRepositoryImpl) GetByBatchAndUser(ctx context.Context, batchID, userID string) (transport.MemberEstimate, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + estimateColumns + ` FROM transport_estimates WHERE batch_id = $1 AND user_id = $2`
	return scanEstimate(q.QueryRow(ctx, query, batchID, userID))
}
