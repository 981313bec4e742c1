package meal

import (
	"github.com/yonseiedtech/reserve-backend-go/internal/pkg/validator"
)

type SavePlanRequest struct {
	BatchID   string `json:"batch_id"`
	Date      string `json:"date"` // YYYY-MM-DD
	MealType  string `json:"meal_type"`
	Menu      string `json:"menu"`
	Headcount int    `json:"headcount"`
}

func (r *SavePlanRequest) Validate() error {
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
	if !MealType(r.MealType).IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "meal_type",
			Message: "meal_type must be one of: breakfast, lunch, dinner",
		})
	}
	if r.Headcount < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "headcount",
			Message: "headcount must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PlanResponse struct {
	ID        string `json:"id"`
	BatchID   string `json:"batch_id"`
	Date      string `json:"date"`
	MealType  string `json:"meal_type"`
	Menu      string `json:"menu"`
	Headcount int    `json:"headcount"`
}

func ToPlanResponse(p Plan) PlanResponse {
	return PlanResponse{
		ID:        p.ID,
		BatchID:   p.BatchID,
		Date:      p.Date.Format("2006-01-02"),
		MealType:  string(p.MealType),
		Menu:      p.Menu,
		Headcount: p.Headcount,
	}
}
