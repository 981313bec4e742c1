package transport

import "errors"

var (
	ErrEstimateNotFound = errors.New("transport estimate not found")
	ErrNoUnitLocation   = errors.New("batch has no unit address to route to")
)
