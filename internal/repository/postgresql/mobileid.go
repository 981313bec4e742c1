package postgresql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/yonseiedtech/reserve-backend-go/internal/domain/mobileid"
	"github.com/yonseiedtech/reserve-backend-go/internal/pkg/database"
)

const cardColumns = `id, user_id, card_number, photo_url, issued_at, expires_at, is_revoked, created_at, updated_at`

type mobileIDRepositoryImpl struct {
	db *database.DB
}

func NewMobileIDRepository(db *database.DB) mobileid.CardRepository {
	return &mobileIDRepositoryImpl{db: db}
}

func scanCard(row pgx.Row) (*mobileid.Card, error) {
	var c mobileid.Card
	err := row.Scan(
		&c.ID,
		&c.UserID,
		&c.CardNumber,
		&c.PhotoURL,
		&c.IssuedAt,
		&c.ExpiresAt,
		&c.IsRevoked,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, mobileid.ErrCardNotFound
		}
		return nil, err
	}
	return &c, nil
}

// CreateCard implements mobileid.CardRepository.
func (r *mobileIDRepositoryImpl) CreateCard(ctx context.Context, card *mobileid.Card) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO mobile_id_cards (user_id, card_number, photo_url, issued_at, expires_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	return q.QueryRow(ctx, query,
		card.UserID,
		card.CardNumber,
		card.PhotoURL,
		card.IssuedAt,
		card.ExpiresAt,
	).Scan(&card.ID, &card.CreatedAt, &card.UpdatedAt)
}

// GetCardByID implements mobileid.CardRepository.
func (r *mobileIDRepositoryImpl) GetCardByID(ctx context.Context, id string) (*mobileid.Card, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + cardColumns + ` FROM mobile_id_cards WHERE id = $1`
	return scanCard(q.QueryRow(ctx, query, id))
}

// GetActiveCardByUser implements mobileid.CardRepository. Joins user
// details for the card face.
func (r *mobileIDRepositoryImpl) GetActiveCardByUser(ctx context.Context, userID string) (*mobileid.Card, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT c.id, c.user_id, c.card_number, c.photo_url, c.issued_at, c.expires_at, c.is_revoked, c.created_at, c.updated_at,
			   u.name, u.service_number, u.rank
		FROM mobile_id_cards c
		JOIN users u ON u.id = c.user_id
		WHERE c.user_id = $1 AND c.is_revoked = FALSE
		ORDER BY c.issued_at DESC
		LIMIT 1
	`

	var c mobileid.Card
	err := q.QueryRow(ctx, query, userID).Scan(
		&c.ID,
		&c.UserID,
		&c.CardNumber,
		&c.PhotoURL,
		&c.IssuedAt,
		&c.ExpiresAt,
		&c.IsRevoked,
		&c.CreatedAt,
		&c.UpdatedAt,
		&c.UserName,
		&c.ServiceNumber,
		&c.Rank,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, mobileid.ErrCardNotFound
		}
		return nil, err
	}

	return &c, nil
}

// UpdateCardPhoto implements mobileid.CardRepository.
func (r *mobileIDRepositoryImpl) UpdateCardPhoto(ctx context.Context, id, photoURL string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE mobile_id_cards SET photo_url = $1, updated_at = NOW() WHERE id = $2`, photoURL, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return mobileid.ErrCardNotFound
	}

	return nil
}

// RevokeCard implements mobileid.CardRepository.
func (r *mobileIDRepositoryImpl) RevokeCard(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE mobile_id_cards SET is_revoked = TRUE, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return mobileid.ErrCardNotFound
	}

	return nil
}
