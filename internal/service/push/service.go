package push

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	webpush "github.com/SherClockHolmes/webpush-go"

	"github.com/yonseiedtech/reserve-backend-go/internal/config"
	"github.com/yonseiedtech/reserve-backend-go/internal/domain/push"
)

type Service interface {
	Subscribe(ctx context.Context, userID string, req push.SubscribeRequest) error
	Unsubscribe(ctx context.Context, endpoint string) error

	// SendToUsers delivers the notification to every subscription owned by
	// the given users. Delivery failures are logged, never propagated;
	// subscriptions rejected by the push service are removed.
	SendToUsers(ctx context.Context, userIDs []string, n push.Notification) error

	// Enabled reports whether a VAPID key pair was configured.
	Enabled() bool

	// PublicKey returns the VAPID public key clients subscribe with.
	PublicKey() string
}

type serviceImpl struct {
	push.SubscriptionRepository
	cfg config.PushConfig
}

func NewService(subscriptionRepo push.SubscriptionRepository, cfg config.PushConfig) Service {
	return &serviceImpl{
		SubscriptionRepository: subscriptionRepo,
		cfg:                    cfg,
	}
}

// Enabled implements Service.
func (s *serviceImpl) Enabled() bool {
	return s.cfg.VAPIDPublicKey != "" && s.cfg.VAPIDPrivateKey != ""
}

// PublicKey implements Service.
func (s *serviceImpl) PublicKey() string {
	return s.cfg.VAPIDPublicKey
}

// Subscribe implements Service.
func (s *serviceImpl) Subscribe(ctx context.Context, userID string, req push.SubscribeRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	_, err := s.SubscriptionRepository.Upsert(ctx, push.Subscription{
		UserID:   userID,
		Endpoint: req.Endpoint,
		P256dh:   req.Keys.P256dh,
		Auth:     req.Keys.Auth,
	})
	return err
}

// Unsubscribe implements Service.
func (s *serviceImpl) Unsubscribe(ctx context.Context, endpoint string) error {
	return s.SubscriptionRepository.DeleteByEndpoint(ctx, endpoint)
}

// SendToUsers implements Service.
func (s *serviceImpl) SendToUsers(ctx context.Context, userIDs []string, n push.Notification) error {
	if !s.Enabled() {
		return push.ErrPushDisabled
	}
	if len(userIDs) == 0 {
		return nil
	}

	subs, err := s.SubscriptionRepository.ListByUsers(ctx, userIDs)
	if err != nil {
		return err
	}
	if len(subs) == 0 {
		return nil
	}

	payload, err := json.Marshal(n)
	if err != nil {
		return err
	}

	for _, sub := range subs {
		s.send(ctx, sub, payload)
	}
	return nil
}

func (s *serviceImpl) send(ctx context.Context, sub push.Subscription, payload []byte) {
	resp, err := webpush.SendNotification(payload, &webpush.Subscription{
		Endpoint: sub.Endpoint,
		Keys: webpush.Keys{
			P256dh: sub.P256dh,
			Auth:   sub.Auth,
		},
	}, &webpush.Options{
		Subscriber:      s.cfg.Subject,
		VAPIDPublicKey:  s.cfg.VAPIDPublicKey,
		VAPIDPrivateKey: s.cfg.VAPIDPrivateKey,
		TTL:             3600,
	})
	if err != nil {
		slog.Warn("push delivery failed",
			"endpoint", sub.Endpoint,
			"error", err)
		return
	}
	defer resp.Body.Close()

	// 404/410 mean the browser dropped the subscription.
	if resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone {
		if err := s.SubscriptionRepository.DeleteByEndpoint(ctx, sub.Endpoint); err != nil {
			slog.Warn("failed to remove stale push subscription",
				"endpoint", sub.Endpoint,
				"error", err)
		}
		return
	}
	if resp.StatusCode >= 400 {
		slog.Warn("push service rejected notification",
			"endpoint", sub.Endpoint,
			"status", resp.StatusCode)
	}
}
