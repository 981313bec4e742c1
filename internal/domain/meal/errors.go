package meal

import "errors"

var ErrPlanNotFound = errors.New("meal plan not found")
