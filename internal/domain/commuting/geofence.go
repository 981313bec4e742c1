package commuting

import (
	"github.com/yonseiedtech/reserve-backend-go/internal/pkg/utils"
)

// Point is a WGS84 coordinate pair.
type Point struct {
	Latitude  float64
	Longitude float64
}

// Contains reports whether p lies within the zone, boundary inclusive.
// Inactive zones never match.
func (z Zone) Contains(p Point) bool {
	if !z.IsActive {
		return false
	}
	d := utils.HaversineDistance(p.Latitude, p.Longitude, z.Latitude, z.Longitude)
	return d <= z.RadiusMeters
}

// MatchZone returns the first active zone containing p, or nil. Linear in
// the number of zones and side-effect-free; overlapping zones are not
// deduplicated, the first hit wins.
func MatchZone(p Point, zones []Zone) *Zone {
	for i := range zones {
		if zones[i].Contains(p) {
			return &zones[i]
		}
	}
	return nil
}

// WithinAny reports whether p lies within any active zone.
func WithinAny(p Point, zones []Zone) bool {
	return MatchZone(p, zones) != nil
}
