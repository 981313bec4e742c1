package commuting

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yonseiedtech/reserve-backend-go/internal/pkg/utils"
)

func TestZoneContainsCenter(t *testing.T) {
	// A point exactly at the center matches even with a zero radius.
	z := Zone{Latitude: 37.5665, Longitude: 126.9780, RadiusMeters: 0, IsActive: true}
	p := Point{Latitude: 37.5665, Longitude: 126.9780}
	assert.True(t, z.Contains(p))
}

func TestZoneBoundaryInclusive(t *testing.T) {
	center := Point{Latitude: 37.5665, Longitude: 126.9780}
	// ~0.0009 degrees of latitude is about 100m.
	edge := Point{Latitude: 37.5665 + 0.0009, Longitude: 126.9780}
	dist := utils.HaversineDistance(center.Latitude, center.Longitude, edge.Latitude, edge.Longitude)

	onBoundary := Zone{Latitude: center.Latitude, Longitude: center.Longitude, RadiusMeters: dist, IsActive: true}
	assert.True(t, onBoundary.Contains(edge), "distance == radius is within")

	justInside := Zone{Latitude: center.Latitude, Longitude: center.Longitude, RadiusMeters: dist - 1, IsActive: true}
	assert.False(t, justInside.Contains(edge), "distance == radius+1m is not within")
}

func TestInactiveZoneNeverMatches(t *testing.T) {
	z := Zone{Latitude: 37.5665, Longitude: 126.9780, RadiusMeters: 1e7, IsActive: false}
	p := Point{Latitude: 37.5665, Longitude: 126.9780}
	assert.False(t, z.Contains(p))
	assert.False(t, WithinAny(p, []Zone{z}))
}

func TestWithinAny(t *testing.T) {
	p := Point{Latitude: 37.5665, Longitude: 126.9780}
	far := Zone{ID: "a", Latitude: 35.1796, Longitude: 129.0756, RadiusMeters: 100, IsActive: true}
	near := Zone{ID: "b", Latitude: 37.5665, Longitude: 126.9780, RadiusMeters: 50, IsActive: true}

	assert.False(t, WithinAny(p, []Zone{far}))
	assert.True(t, WithinAny(p, []Zone{far, near}))
	assert.False(t, WithinAny(p, nil))

	matched := MatchZone(p, []Zone{far, near})
	if assert.NotNil(t, matched) {
		assert.Equal(t, "b", matched.ID)
	}
}
