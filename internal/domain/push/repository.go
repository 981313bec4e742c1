package push

import "context"

type SubscriptionRepository interface {
	// Upsert saves the subscription keyed by endpoint, reassigning it to
	// the current user when a browser re-subscribes.
	Upsert(ctx context.Context, s Subscription) (Subscription, error)
	ListByUser(ctx context.Context, userID string) ([]Subscription, error)
	ListByUsers(ctx context.Context, userIDs []string) ([]Subscription, error)
	DeleteByEndpoint(ctx context.Context, endpoint string) error
}
