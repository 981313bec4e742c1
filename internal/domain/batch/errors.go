package batch

import "errors"

var (
	ErrBatchNotFound     = errors.New("batch not found")
	ErrBatchUserNotFound = errors.New("batch membership not found")
	ErrAlreadyMember     = errors.New("user already belongs to this batch")
	ErrInvalidDateRange  = errors.New("batch end date is before its start date")
)
