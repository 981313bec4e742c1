package push

import (
	"github.com/yonseiedtech/reserve-backend-go/internal/pkg/validator"
)

type SubscribeRequest struct {
	Endpoint string `json:"endpoint"`
	Keys     struct {
		P256dh string `json:"p256dh"`
		Auth   string `json:"auth"`
	} `json:"keys"`
}

func (r *SubscribeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Endpoint) {
		errs = append(errs, validator.ValidationError{
			Field:   "endpoint",
			Message: "endpoint is required",
		})
	}
	if validator.IsEmpty(r.Keys.P256dh) {
		errs = append(errs, validator.ValidationError{
			Field:   "keys.p256dh",
			Message: "p256dh key is required",
		})
	}
	if validator.IsEmpty(r.Keys.Auth) {
		errs = append(errs, validator.ValidationError{
			Field:   "keys.auth",
			Message: "auth key is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Notification is the payload delivered to subscribers.
type Notification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	URL   string `json:"url,omitempty"`
}
