package mobileid

import "context"

type CardRepository interface {
	CreateCard(ctx context.Context, card *Card) error
	GetCardByID(ctx context.Context, id string) (*Card, error)
	GetActiveCardByUser(ctx context.Context, userID string) (*Card, error)
	UpdateCardPhoto(ctx context.Context, id, photoURL string) error
	RevokeCard(ctx context.Context, id string) error
}
