package training

import (
	"github.com/yonseiedtech/reserve-backend-go/internal/pkg/validator"
)

type CreateTrainingRequest struct {
	BatchID           string  `json:"batch_id"`
	Date              string  `json:"date"` // YYYY-MM-DD
	StartTime         *string `json:"start_time,omitempty"`
	EndTime           *string `json:"end_time,omitempty"`
	Title             *string `json:"title,omitempty"`
	CountsTowardHours *bool   `json:"counts_toward_hours,omitempty"` // defaults to true
}

func (r *CreateTrainingRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.BatchID) {
		errs = append(errs, validator.ValidationError{
			Field:   "batch_id",
			Message: "batch_id is required",
		})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}
	if r.StartTime != nil && !validator.IsValidClock(*r.StartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be in HH:MM format",
		})
	}
	if r.EndTime != nil && !validator.IsValidClock(*r.EndTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be in HH:MM format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateTrainingRequest struct {
	ID                string  `json:"-"`
	Date              *string `json:"date,omitempty"`
	StartTime         *string `json:"start_time,omitempty"`
	EndTime           *string `json:"end_time,omitempty"`
	Title             *string `json:"title,omitempty"`
	CountsTowardHours *bool   `json:"counts_toward_hours,omitempty"`
}

func (r *UpdateTrainingRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Date != nil {
		if _, ok := validator.IsValidDate(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}
	if r.StartTime != nil && *r.StartTime != "" && !validator.IsValidClock(*r.StartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be in HH:MM format",
		})
	}
	if r.EndTime != nil && *r.EndTime != "" && !validator.IsValidClock(*r.EndTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be in HH:MM format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SetOverrideRateRequest sets or clears the manual daily-rate override.
type SetOverrideRateRequest struct {
	TrainingID   string `json:"-"`
	OverrideRate *int64 `json:"override_rate"` // null clears the override
}

func (r *SetOverrideRateRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.OverrideRate != nil && *r.OverrideRate < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "override_rate",
			Message: "override_rate must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TrainingResponse struct {
	ID                string  `json:"id"`
	BatchID           string  `json:"batch_id"`
	Date              string  `json:"date"`
	StartTime         *string `json:"start_time,omitempty"`
	EndTime           *string `json:"end_time,omitempty"`
	Title             *string `json:"title,omitempty"`
	CountsTowardHours bool    `json:"counts_toward_hours"`

	Compensation *CompensationResponse `json:"compensation,omitempty"`
}

type CompensationResponse struct {
	TrainingID    string  `json:"training_id"`
	TrainingHours float64 `json:"training_hours"`
	IsWeekend     bool    `json:"is_weekend"`
	DailyRate     int64   `json:"daily_rate"`
	OverrideRate  *int64  `json:"override_rate,omitempty"`
	// EffectiveRate is what batch totals actually use.
	EffectiveRate int64 `json:"effective_rate"`
}

type BatchTotalResponse struct {
	BatchID string `json:"batch_id"`
	Total   int64  `json:"total"`
}

func ToTrainingResponse(t Training) TrainingResponse {
	return TrainingResponse{
		ID:                t.ID,
		BatchID:           t.BatchID,
		Date:              t.Date.Format("2006-01-02"),
		StartTime:         t.StartTime,
		EndTime:           t.EndTime,
		Title:             t.Title,
		CountsTowardHours: t.CountsTowardHours,
	}
}

func ToCompensationResponse(c Compensation) CompensationResponse {
	effective := c.DailyRate
	if c.OverrideRate != nil {
		effective = *c.OverrideRate
	}
	return CompensationResponse{
		TrainingID:    c.TrainingID,
		TrainingHours: c.TrainingHours,
		IsWeekend:     c.IsWeekend,
		DailyRate:     c.DailyRate,
		OverrideRate:  c.OverrideRate,
		EffectiveRate: effective,
	}
}
