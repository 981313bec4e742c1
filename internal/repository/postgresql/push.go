package postgresql

import (
	"context"

	"github.com/yonseiedtech/reserve-backend-go/internal/domain/push"
	"github.com/yonseiedtech/reserve-backend-go/internal/pkg/database"
)

type pushSubscriptionRepositoryImpl struct {
	db *database.DB
}

func NewPushSubscriptionRepository(db *database.DB) push.SubscriptionRepository {
	return &pushSubscriptionRepositoryImpl{db: db}
}

// Upsert implements push.SubscriptionRepository. A browser that
// re-subscribes keeps one row per endpoint, reassigned to whoever is
// logged in.
func (r *pushSubscriptionRepositoryImpl) Upsert(ctx context.Context, s push.Subscription) (push.Subscription, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO push_subscriptions (user_id, endpoint, p256dh, auth)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (endpoint) DO UPDATE
		SET user_id = EXCLUDED.user_id,
			p256dh = EXCLUDED.p256dh,
			auth = EXCLUDED.auth
		RETURNING id, user_id, endpoint, p256dh, auth, created_at
	`

	var saved push.Subscription
	err := q.QueryRow(ctx, query, s.UserID, s.Endpoint, s.P256dh, s.Auth).Scan(
		&saved.ID,
		&saved.UserID,
		&saved.Endpoint,
		&saved.P256dh,
		&saved.Auth,
		&saved.CreatedAt,
	)
	if err != nil {
		return push.Subscription{}, err
	}

	return saved, nil
}

// ListByUser implements push.SubscriptionRepository.
func (r *pushSubscriptionRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]push.Subscription, error) {
	return r.ListByUsers(ctx, []string{userID})
}

// ListByUsers implements push.SubscriptionRepository.
func (r *pushSubscriptionRepositoryImpl) ListByUsers(ctx context.Context, userIDs []string) ([]push.Subscription, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}

	q := GetQuerier(ctx, r.db)

	query := `SELECT id, user_id, endpoint, p256dh, auth, created_at FROM push_subscriptions WHERE user_id = ANY($1)`

	rows, err := q.Query(ctx, query, userIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subs []push.Subscription
	for rows.Next() {
		var s push.Subscription
		if err := rows.Scan(&s.ID, &s.UserID, &s.Endpoint, &s.P256dh, &s.Auth, &s.CreatedAt); err != nil {
			return nil, err
		}
		subs = append(subs, s)
	}

	return subs, rows.Err()
}

// DeleteByEndpoint implements push.SubscriptionRepository. Used both for
// explicit unsubscribes and to prune endpoints the push service rejects.
func (r *pushSubscriptionRepositoryImpl) DeleteByEndpoint(ctx context.Context, endpoint string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `DELETE FROM push_subscriptions WHERE endpoint = $1`, endpoint)
	return err
}
