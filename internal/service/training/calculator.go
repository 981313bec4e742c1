package training

import (
	"math"

	"github.com/yonseiedtech/reserve-backend-go/internal/pkg/timeutil"
)

// Compensation constants. Rates are KRW per full 8-hour training day.
const (
	weekdayBaseRate = 100000
	weekendBaseRate = 150000
	fullDayHours    = 8.0

	lunchStart = 11.5 // 11:30
	lunchEnd   = 12.5 // 12:30
)

// TrainingHours computes the creditable hours between two clock times,
// excluding whatever part of the session overlaps the lunch window
// [11:30, 12:30). A session that ends at or before it starts yields 0.
// The result is rounded to two decimals, half away from zero.
func TrainingHours(startClock, endClock string) (float64, error) {
	start, err := timeutil.ParseClock(startClock)
	if err != nil {
		return 0, err
	}
	end, err := timeutil.ParseClock(endClock)
	if err != nil {
		return 0, err
	}

	if end <= start {
		return 0, nil
	}

	hours := end - start

	// Overlap with the lunch window does not count.
	overlapStart := math.Max(start, lunchStart)
	overlapEnd := math.Min(end, lunchEnd)
	if overlapEnd > overlapStart {
		hours -= overlapEnd - overlapStart
	}

	return roundTo(hours, 2), nil
}

// DailyRate derives the day's pay from creditable hours, prorating the
// base rate against a full 8-hour day and rounding to the nearest 100
// won. Zero hours pay nothing.
func DailyRate(hours float64, isWeekend bool) int64 {
	if hours <= 0 {
		return 0
	}

	base := float64(weekdayBaseRate)
	if isWeekend {
		base = float64(weekendBaseRate)
	}

	raw := hours / fullDayHours * base
	return int64(math.Round(raw/100) * 100)
}

// roundTo rounds half away from zero to the given number of decimals.
func roundTo(v float64, decimals int) float64 {
	pow := math.Pow(10, float64(decimals))
	return math.Round(v*pow) / pow
}
