package training

import "time"

// Training is a single scheduled session within a batch. StartTime and
// EndTime are 24-hour "HH:MM" strings; either may be absent for sessions
// whose hours are not yet fixed.
type Training struct {
	ID                string
	BatchID           string
	Date              time.Time
	StartTime         *string
	EndTime           *string
	Title             *string
	CountsTowardHours bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Compensation is the derived pay record keyed 1:1 to a training.
// OverrideRate, when set by an admin, wins over DailyRate in every total;
// resync never clears it.
type Compensation struct {
	ID            string
	TrainingID    string
	TrainingHours float64
	IsWeekend     bool
	DailyRate     int64
	OverrideRate  *int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
