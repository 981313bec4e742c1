package batch

import "time"

// Batch is a cohort of reservists called up together for a training cycle.
type Batch struct {
	ID           string
	Name         string
	StartDate    time.Time
	EndDate      time.Time
	UnitAddress  *string
	UnitLatitude *float64
	UnitLongitude *float64
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// BatchUserStatus is a reservist's standing for the whole batch.
type BatchUserStatus string

const (
	BatchUserApplied  BatchUserStatus = "applied"
	BatchUserApproved BatchUserStatus = "approved"
	BatchUserRejected BatchUserStatus = "rejected"
)

// BatchUser links a user to a batch.
type BatchUser struct {
	ID        string
	BatchID   string
	UserID    string
	Status    BatchUserStatus
	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO
	UserName      *string
	ServiceNumber *string
	Rank          *string
	Address       *string
}
