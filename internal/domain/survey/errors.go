package survey

import "errors"

var (
	ErrSurveyNotFound = errors.New("survey not found")
	ErrSurveyClosed   = errors.New("survey is closed")
	ErrInvalidChoice  = errors.New("choice is out of range")
)
