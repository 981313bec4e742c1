package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/yonseiedtech/reserve-backend-go/internal/domain/notice"
	"github.com/yonseiedtech/reserve-backend-go/internal/pkg/database"
)

type noticeRepositoryImpl struct {
	db *database.DB
}

func NewNoticeRepository(db *database.DB) notice.NoticeRepository {
	return &noticeRepositoryImpl{db: db}
}

// Create implements notice.NoticeRepository.
func (r *noticeRepositoryImpl) Create(ctx context.Context, n notice.Notice) (notice.Notice, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO notices (batch_id, author_id, title, body, pinned)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, batch_id, author_id, title, body, pinned, created_at, updated_at
	`

	var created notice.Notice
	err := q.QueryRow(ctx, query, n.BatchID, n.AuthorID, n.Title, n.Body, n.Pinned).Scan(
		&created.ID,
		&created.BatchID,
		&created.AuthorID,
		&created.Title,
		&created.Body,
		&created.Pinned,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return notice.Notice{}, err
	}

	return created, nil
}

// GetByID implements notice.NoticeRepository.
func (r *noticeRepositoryImpl) GetByID(ctx context.Context, id string) (notice.Notice, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT n.id, n.batch_id, n.author_id, n.title, n.body, n.pinned, n.created_at, n.updated_at, u.name
		FROM notices n
		JOIN users u ON u.id = n.author_id
		WHERE n.id = $1
	`

	var n notice.Notice
	err := q.QueryRow(ctx, query, id).Scan(
		&n.ID,
		&n.BatchID,
		&n.AuthorID,
		&n.Title,
		&n.Body,
		&n.Pinned,
		&n.CreatedAt,
		&n.UpdatedAt,
		&n.AuthorName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return notice.Notice{}, notice.ErrNoticeNotFound
		}
		return notice.Notice{}, err
	}

	return n, nil
}

// List implements notice.NoticeRepository. Batch-scoped listing includes
// global notices; pinned notices sort first.
func (r *noticeRepositoryImpl) List(ctx context.Context, batchID *string, page, limit int) ([]notice.Notice, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := ``
	args := []interface{}{}
	if batchID != nil {
		where = `WHERE (n.batch_id = $1 OR n.batch_id IS NULL)`
		args = append(args, *batchID)
	}

	countQuery := `SELECT COUNT(*) FROM notices n ` + where
	var total int64
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	listQuery := `
		SELECT n.id, n.batch_id, n.author_id, n.title, n.body, n.pinned, n.created_at, n.updated_at, u.name
		FROM notices n
		JOIN users u ON u.id = n.author_id
		` + where + `
		ORDER BY n.pinned DESC, n.created_at DESC
	`
	if batchID != nil {
		listQuery += ` LIMIT $2 OFFSET $3`
	} else {
		listQuery += ` LIMIT $1 OFFSET $2`
	}
	args = append(args, limit, offset)

	rows, err := q.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var notices []notice.Notice
	for rows.Next() {
		var n notice.Notice
		err := rows.Scan(
			&n.ID,
			&n.BatchID,
			&n.AuthorID,
			&n.Title,
			&n.Body,
			&n.Pinned,
			&n.CreatedAt,
			&n.UpdatedAt,
			&n.AuthorName,
		)
		if err != nil {
			return nil, 0, err
		}
		notices = append(notices, n)
	}

	return notices, total, rows.Err()
}

// Update implements notice.NoticeRepository.
func (r *noticeRepositoryImpl) Update(ctx context.Context, n notice.Notice) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE notices
		SET title = $1, body = $2, pinned = $3, batch_id = $4, updated_at = NOW()
		WHERE id = $5
	`

	tag, err := q.Exec(ctx, query, n.Title, n.Body, n.Pinned, n.BatchID, n.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return notice.ErrNoticeNotFound
	}

	return nil
}

// Delete implements notice.NoticeRepository.
func (r *noticeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM notices WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return notice.ErrNoticeNotFound
	}

	return nil
}
