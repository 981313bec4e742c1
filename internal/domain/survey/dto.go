package survey

import (
	"time"

	"github.com/yonseiedtech/reserve-backend-go/internal/pkg/validator"
)

type CreateSurveyRequest struct {
	Title    string   `json:"title"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
	OpensAt  string   `json:"opens_at"`  // RFC3339
	ClosesAt string   `json:"closes_at"` // RFC3339
}

func (r *CreateSurveyRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}
	if validator.IsEmpty(r.Question) {
		errs = append(errs, validator.ValidationError{
			Field:   "question",
			Message: "question is required",
		})
	}
	if len(r.Options) < 2 {
		errs = append(errs, validator.ValidationError{
			Field:   "options",
			Message: "at least two options are required",
		})
	}

	opens, err1 := time.Parse(time.RFC3339, r.OpensAt)
	if err1 != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "opens_at",
			Message: "opens_at must be an RFC3339 timestamp",
		})
	}
	closes, err2 := time.Parse(time.RFC3339, r.ClosesAt)
	if err2 != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "closes_at",
			Message: "closes_at must be an RFC3339 timestamp",
		})
	}
	if err1 == nil && err2 == nil && !closes.After(opens) {
		errs = append(errs, validator.ValidationError{
			Field:   "closes_at",
			Message: "closes_at must be after opens_at",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AnswerRequest struct {
	SurveyID string `json:"-"`
	Choice   int    `json:"choice"`
}

type SurveyResponse struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
	OpensAt  string   `json:"opens_at"`
	ClosesAt string   `json:"closes_at"`
	IsClosed bool     `json:"is_closed"`
}

type TallyResponse struct {
	SurveyID string          `json:"survey_id"`
	Counts   map[int]int64   `json:"counts"`
	Total    int64           `json:"total"`
}

func ToSurveyResponse(s Survey) SurveyResponse {
	return SurveyResponse{
		ID:       s.ID,
		Title:    s.Title,
		Question: s.Question,
		Options:  s.Options,
		OpensAt:  s.OpensAt.UTC().Format(time.RFC3339),
		ClosesAt: s.ClosesAt.UTC().Format(time.RFC3339),
		IsClosed: s.IsClosed,
	}
}
