package transport

import "time"

// ItemStatus tags the outcome of one member's estimate within a bulk run.
// Failures are data, not errors: one member's failure never aborts the
// batch.
type ItemStatus string

const (
	StatusOK        ItemStatus = "OK"
	StatusNoAddress ItemStatus = "NO_ADDRESS"
	StatusGeoFail   ItemStatus = "GEO_FAIL"
	StatusRouteFail ItemStatus = "ROUTE_FAIL"
	StatusError     ItemStatus = "ERROR"
)

// Estimate is the reimbursement breakdown for one commute distance.
type Estimate struct {
	Total int64
	Fuel  int64
	Toll  int64
}

// MemberEstimate is the persisted per-member result of a bulk estimation
// run, keyed (batch_id, user_id).
type MemberEstimate struct {
	ID        string
	BatchID   string
	UserID    string
	Status    ItemStatus
	Km        *float64
	HasToll   *bool
	Fuel      *int64
	Toll      *int64
	Total     *int64
	CreatedAt time.Time
	UpdatedAt time.Time

	// DTO
	UserName *string
	Address  *string
}
