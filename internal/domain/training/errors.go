package training

import "errors"

var (
	ErrTrainingNotFound     = errors.New("training not found")
	ErrCompensationNotFound = errors.New("compensation record not found")
)
