package payment

import "errors"

var (
	ErrAlreadyFinalStage = errors.New("process is already at the final stage")
	ErrAlreadyFirstStage = errors.New("process is already at the first stage")
	ErrUnknownStage      = errors.New("unknown process stage")
	ErrProcessNotFound   = errors.New("process not found")
	ErrInvalidAction     = errors.New("action must be advance or revert")
)
