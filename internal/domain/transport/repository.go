package transport

import "context"

type EstimateRepository interface {
	// UpsertForMember overwrites the member's previous run, keyed
	// (batch_id, user_id).
	UpsertForMember(ctx context.Context, e MemberEstimate) (MemberEstimate, error)
	ListByBatch(ctx context.Context, batchID string) ([]MemberEstimate, error)
	GetByBatchAndUser(ctx context.Context, batchID, userID string) (MemberEstimate, error)
}

// Geocoder resolves a street address to coordinates. Implemented by the
// Kakao Local client; faked in tests.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (lat, lng float64, err error)
}

// Router resolves a driving route between two coordinates to a distance
// in kilometers and whether the route uses a tolled road.
type Router interface {
	DrivingDistance(ctx context.Context, fromLat, fromLng, toLat, toLng float64) (km float64, hasToll bool, err error)
}
