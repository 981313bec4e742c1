package commuting

import "time"

// Zone is a circular check-in area around a training site.
type Zone struct {
	ID           string
	Name         string
	Latitude     float64
	Longitude    float64
	RadiusMeters float64
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Record is one user's commuting entry for one day; uniqueness on
// (user_id, date) is enforced by the store and every write is an upsert
// keyed on it.
type Record struct {
	ID                string
	UserID            string
	Date              time.Time
	CheckIn           *time.Time
	CheckInLatitude   *float64
	CheckInLongitude  *float64
	CheckInZoneID     *string
	CheckOut          *time.Time
	CheckOutLatitude  *float64
	CheckOutLongitude *float64
	IsManual          bool
	CreatedAt         time.Time
	UpdatedAt         time.Time

	// DTO
	UserName *string
}
