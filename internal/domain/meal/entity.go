package meal

import "time"

type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
)

func (m MealType) IsValid() bool {
	switch m {
	case MealBreakfast, MealLunch, MealDinner:
		return true
	}
	return false
}

// Plan is one meal for one batch day, keyed (batch_id, date, meal_type).
type Plan struct {
	ID        string
	BatchID   string
	Date      time.Time
	MealType  MealType
	Menu      string
	Headcount int
	CreatedAt time.Time
	UpdatedAt time.Time
}
