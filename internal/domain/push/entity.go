package push

import "time"

// Subscription is a browser Web Push subscription, keyed by endpoint.
type Subscription struct {
	ID        string
	UserID    string
	Endpoint  string
	P256dh    string
	Auth      string
	CreatedAt time.Time
}
