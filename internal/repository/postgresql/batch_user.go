package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/yonseiedtech/reserve-backend-go/internal/domain/batch"
	"github.com/yonseiedtech/reserve-backend-go/internal/pkg/database"
)

type batchUserRepositoryImpl struct {
	db *database.DB
}

func NewBatchUserRepository(db *database.DB) batch.BatchUserRepository {
	return &batchUserRepositoryImpl{db: db}
}

// Add implements batch.BatchUserRepository.
func (r *batchUserRepositoryImpl) Add(ctx context.Context, bu batch.BatchUser) (batch.BatchUser, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO batch_users (batch_id, user_id, status)
		VALUES ($1, $2, $3)
		RETURNING id, batch_id, user_id, status, created_at, updated_at
	`

	var created batch.BatchUser
	err := q.QueryRow(ctx, query, bu.BatchID, bu.UserID, bu.Status).Scan(
		&created.ID,
		&created.BatchID,
		&created.UserID,
		&created.Status,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return batch.BatchUser{}, batch.ErrAlreadyMember
		}
		return batch.BatchUser{}, err
	}

	return created, nil
}

// GetByBatchAndUser implements batch.BatchUserRepository.
func (r *batchUserRepositoryImpl) GetByBatchAndUser(ctx context.Context, batchID, userID string) (batch.BatchUser, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, batch_id, user_id, status, created_at, updated_at
		FROM batch_users
		WHERE batch_id = $1 AND user_id = $2
	`

	var bu batch.BatchUser
	err := q.QueryRow(ctx, query, batchID, userID).Scan(
		&bu.ID,
		&bu.BatchID,
		&bu.UserID,
		&bu.Status,
		&bu.CreatedAt,
		&bu.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return batch.BatchUser{}, batch.ErrBatchUserNotFound
		}
		return batch.BatchUser{}, err
	}

	return bu, nil
}

// ListByBatch implements batch.BatchUserRepository. Joins user details for
// the roster view.
func (r *batchUserRepositoryImpl) ListByBatch(ctx context.Context, batchID string) ([]batch.BatchUser, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT bu.id, bu.batch_id, bu.user_id, bu.status, bu.created_at, bu.updated_at,
			   u.name, u.service_number, u.rank, u.address
		FROM batch_users bu
		JOIN users u ON u.id = bu.user_id
		WHERE bu.batch_id = $1
		ORDER BY u.name
	`

	rows, err := q.Query(ctx, query, batchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []batch.BatchUser
	for rows.Next() {
		var bu batch.BatchUser
		err := rows.Scan(
			&bu.ID,
			&bu.BatchID,
			&bu.UserID,
			&bu.Status,
			&bu.CreatedAt,
			&bu.UpdatedAt,
			&bu.UserName,
			&bu.ServiceNumber,
			&bu.Rank,
			&bu.Address,
		)
		if err != nil {
			return nil, err
		}
		members = append(members, bu)
	}

	return members, rows.Err()
}

// ListUserIDsByBatch implements batch.BatchUserRepository. Only approved
// members are included.
func (r *batchUserRepositoryImpl) ListUserIDsByBatch(ctx context.Context, batchID string) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT user_id FROM batch_users
		WHERE batch_id = $1 AND status = 'approved'
	`

	rows, err := q.Query(ctx, query, batchID)
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

// UpdateStatus implements batch.BatchUserRepository.
func (r *batchUserRepositoryImpl) UpdateStatus(ctx context.Context, id string, status batch.BatchUserStatus) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE batch_users SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return batch.ErrBatchUserNotFound
	}

	return nil
}

// Remove implements batch.BatchUserRepository.
func (r *batchUserRepositoryImpl) Remove(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM batch_users WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return batch.ErrBatchUserNotFound
	}

	return nil
}
