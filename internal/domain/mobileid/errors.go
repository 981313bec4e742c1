package mobileid

import "errors"

var (
	ErrCardNotFound    = errors.New("mobile id card not found")
	ErrCardRevoked     = errors.New("mobile id card has been revoked")
	ErrCardExpired     = errors.New("mobile id card has expired")
	ErrPhotoTooLarge   = errors.New("photo exceeds the maximum allowed size")
	ErrInvalidPhoto    = errors.New("photo is not a valid image")
	ErrCardAlreadyUsed = errors.New("user already has an active mobile id card")
)
