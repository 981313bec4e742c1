package batch

import (
	"github.com/yonseiedtech/reserve-backend-go/internal/pkg/validator"
)

type CreateBatchRequest struct {
	Name        string  `json:"name"`
	StartDate   string  `json:"start_date"` // YYYY-MM-DD
	EndDate     string  `json:"end_date"`   // YYYY-MM-DD
	UnitAddress *string `json:"unit_address,omitempty"`
}

func (r *CreateBatchRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	start, startOK := validator.IsValidDate(r.StartDate)
	if !startOK {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date must be in YYYY-MM-DD format",
		})
	}
	end, endOK := validator.IsValidDate(r.EndDate)
	if !endOK {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must be in YYYY-MM-DD format",
		})
	}
	if startOK && endOK && end.Before(start) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date must not be before start_date",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateBatchRequest struct {
	Name        *string `json:"name,omitempty"`
	StartDate   *string `json:"start_date,omitempty"`
	EndDate     *string `json:"end_date,omitempty"`
	UnitAddress *string `json:"unit_address,omitempty"`
	IsActive    *bool   `json:"is_active,omitempty"`
}

func (r *UpdateBatchRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}
	if r.StartDate != nil {
		if _, ok := validator.IsValidDate(*r.StartDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}
	if r.EndDate != nil {
		if _, ok := validator.IsValidDate(*r.EndDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type BatchResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	StartDate     string   `json:"start_date"`
	EndDate       string   `json:"end_date"`
	UnitAddress   *string  `json:"unit_address,omitempty"`
	UnitLatitude  *float64 `json:"unit_latitude,omitempty"`
	UnitLongitude *float64 `json:"unit_longitude,omitempty"`
	IsActive      bool     `json:"is_active"`
	MemberCount   *int     `json:"member_count,omitempty"`
}

type BatchUserResponse struct {
	ID            string  `json:"id"`
	BatchID       string  `json:"batch_id"`
	UserID        string  `json:"user_id"`
	Status        string  `json:"status"`
	UserName      *string `json:"user_name,omitempty"`
	ServiceNumber *string `json:"service_number,omitempty"`
	Rank          *string `json:"rank,omitempty"`
}

func ToBatchResponse(b Batch) BatchResponse {
	return BatchResponse{
		ID:            b.ID,
		Name:          b.Name,
		StartDate:     b.StartDate.Format("2006-01-02"),
		EndDate:       b.EndDate.Format("2006-01-02"),
		UnitAddress:   b.UnitAddress,
		UnitLatitude:  b.UnitLatitude,
		UnitLongitude: b.UnitLongitude,
		IsActive:      b.IsActive,
	}
}

func ToBatchUserResponse(bu BatchUser) BatchUserResponse {
	return BatchUserResponse{
		ID:            bu.ID,
		BatchID:       bu.BatchID,
		UserID:        bu.UserID,
		Status:        string(bu.Status),
		UserName:      bu.UserName,
		ServiceNumber: bu.ServiceNumber,
		Rank:          bu.Rank,
	}
}
