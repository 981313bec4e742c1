package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/yonseiedtech/reserve-backend-go/internal/domain/message"
	"github.com/yonseiedtech/reserve-backend-go/internal/pkg/database"
)

type messageRepositoryImpl struct {
	db *database.DB
}

func NewMessageRepository(db *database.DB) message.MessageRepository {
	return &messageRepositoryImpl{db: db}
}

// Create implements message.MessageRepository.
func (r *messageRepositoryImpl) Create(ctx context.Context, m message.Message) (message.Message, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO messages (sender_id, recipient_id, body)
		VALUES ($1, $2, $3)
		RETURNING id, sender_id, recipient_id, body, read_at, created_at
	`

	var created message.Message
	err := q.QueryRow(ctx, query, m.SenderID, m.RecipientID, m.Body).Scan(
		&created.ID,
		&created.SenderID,
		&created.RecipientID,
		&created.Body,
		&created.ReadAt,
		&created.CreatedAt,
	)
	if err != nil {
		return message.Message{}, err
	}

	return created, nil
}

// GetByID implements message.MessageRepository.
func (r *messageRepositoryImpl) GetByID(ctx context.Context, id string) (message.Message, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT m.id, m.sender_id, m.recipient_id, m.body, m.read_at, m.created_at, u.name
		FROM messages m
		JOIN users u ON u.id = m.sender_id
		WHERE m.id = $1
	`

	var m message.Message
	err := q.QueryRow(ctx, query, id).Scan(
		&m.ID,
		&m.SenderID,
		&m.RecipientID,
		&m.Body,
		&m.ReadAt,
		&m.CreatedAt,
		&m.SenderName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return message.Message{}, message.ErrMessageNotFound
		}
		return message.Message{}, err
	}

	return m, nil
}

// ListInbox implements message.MessageRepository.
func (r *messageRepositoryImpl) ListInbox(ctx context.Context, recipientID string, page, limit int) ([]message.Message, int64, error) {
	q := GetQuerier(ctx, r.db)

	var total int64
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM messages WHERE recipient_id = $1`, recipientID).Scan(&total); err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	query := `
		SELECT m.id, m.sender_id, m.recipient_id, m.body, m.read_at, m.created_at, u.name
		FROM messages m
		JOIN users u ON u.id = m.sender_id
		WHERE m.recipient_id = $1
		ORDER BY m.created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := q.Query(ctx, query, recipientID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var messages []message.Message
	for rows.Next() {
		var m message.Message
		err := rows.Scan(
			&m.ID,
			&m.SenderID,
			&m.RecipientID,
			&m.Body,
			&m.ReadAt,
			&m.CreatedAt,
			&m.SenderName,
		)
		if err != nil {
			return nil, 0, err
		}
		messages = append(messages, m)
	}

	return messages, total, rows.Err()
}

// MarkRead implements message.MessageRepository. Already-read messages
// keep their original read timestamp.
func (r *messageRepositoryImpl) MarkRead(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE messages SET read_at = NOW() WHERE id = $1 AND read_at IS NULL`, id)
	if err != nil {
		return err
	}
	_ = tag

	return nil
}
