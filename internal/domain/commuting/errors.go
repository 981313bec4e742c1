package commuting

import "errors"

var (
	ErrOutsideAllowedRadius = errors.New("you are outside the allowed check-in radius")
	ErrAlreadyCheckedIn     = errors.New("you have already checked in today")
	ErrNotCheckedIn         = errors.New("you have not checked in yet")
	ErrAlreadyCheckedOut    = errors.New("you have already checked out today")
	ErrRecordNotFound       = errors.New("commuting record not found")
	ErrZoneNotFound         = errors.New("gps zone not found")
)
