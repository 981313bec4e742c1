package transport

import (
	"github.com/yonseiedtech/reserve-backend-go/internal/pkg/validator"
)

// EstimateRequest asks for a one-off estimate from a known distance.
type EstimateRequest struct {
	Km      float64 `json:"km"`
	HasToll bool    `json:"has_toll"`
}

func (r *EstimateRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Km < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "km",
			Message: "km must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EstimateResponse struct {
	Total int64 `json:"total"`
	Fuel  int64 `json:"fuel"`
	Toll  int64 `json:"toll"`
}

type MemberEstimateResponse struct {
	UserID   string   `json:"user_id"`
	UserName *string  `json:"user_name,omitempty"`
	Status   string   `json:"status"`
	Km       *float64 `json:"km,omitempty"`
	HasToll  *bool    `json:"has_toll,omitempty"`
	Fuel     *int64   `json:"fuel,omitempty"`
	Toll     *int64   `json:"toll,omitempty"`
	Total    *int64   `json:"total,omitempty"`
}

type BulkEstimateResponse struct {
	BatchID string                   `json:"batch_id"`
	Results []MemberEstimateResponse `json:"results"`
}

func ToMemberEstimateResponse(e MemberEstimate) MemberEstimateResponse {
	return MemberEstimateResponse{
		UserID:   e.UserID,
		UserName: e.UserName,
		Status:   string(e.Status),
		Km:       e.Km,
		HasToll:  e.HasToll,
		Fuel:     e.Fuel,
		Toll:     e.Toll,
		Total:    e.Total,
	}
}
