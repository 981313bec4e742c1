package push

import "errors"

var (
	ErrSubscriptionNotFound = errors.New("push subscription not found")
	ErrPushDisabled         = errors.New("push delivery is not configured")
)
