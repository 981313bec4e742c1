package transport

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateShortTrip(t *testing.T) {
	for _, km := range []float64{0, 1, 15, 29.9, 30} {
		est := Estimate(km, false)
		assert.Equal(t, int64(4000), est.Total, "km=%v", km)
		assert.Zero(t, est.Fuel, "km=%v", km)
		assert.Zero(t, est.Toll, "km=%v", km)
	}

	// A tolled route makes no difference under the threshold.
	est := Estimate(25, true)
	assert.Equal(t, int64(4000), est.Total)
	assert.Zero(t, est.Toll)
}

func TestEstimateLongTripNoToll(t *testing.T) {
	est := Estimate(40, false)

	wantFuel := 40 * 1486.0 / 13.3
	assert.Equal(t, int64(math.Round(wantFuel)), est.Fuel)
	assert.Zero(t, est.Toll)
	assert.Equal(t, int64(math.Floor(wantFuel/10)*10), est.Total)
	assert.Greater(t, est.Total, int64(4000))
}

func TestEstimateNeverBelowFlatFare(t *testing.T) {
	// Just past the 30 km threshold the raw fuel cost dips under the flat
	// fare; the total is clamped so a longer trip never pays less than a
	// short one.
	est := Estimate(31, false)
	assert.Equal(t, int64(4000), est.Total)
	assert.Equal(t, int64(math.Round(31*1486.0/13.3)), est.Fuel)

	prev := Estimate(30, false).Total
	for _, km := range []float64{30.1, 31, 33, 36, 40, 60} {
		est := Estimate(km, false)
		assert.GreaterOrEqual(t, est.Total, prev, "km=%v", km)
		prev = est.Total
	}
}

func TestEstimateLongTripWithToll(t *testing.T) {
	est := Estimate(50, true)

	wantFuel := 50 * 1486.0 / 13.3
	wantToll := 900.0 + 44.3*50
	assert.Equal(t, int64(math.Round(wantFuel)), est.Fuel)
	assert.Equal(t, int64(math.Round(wantToll)), est.Toll)
	assert.Equal(t, int64(math.Floor((wantFuel+wantToll)/10)*10), est.Total)
}

func TestEstimateTotalTruncatesToTens(t *testing.T) {
	for _, km := range []float64{31, 42.7, 50, 88.3, 120} {
		for _, hasToll := range []bool{false, true} {
			est := Estimate(km, hasToll)
			assert.Zero(t, est.Total%10, "km=%v hasToll=%v", km, hasToll)
		}
	}
}

func TestEstimateTollMonotonic(t *testing.T) {
	// At the same distance, a tolled route never costs less.
	for _, km := range []float64{31, 45, 80} {
		withToll := Estimate(km, true)
		without := Estimate(km, false)
		assert.GreaterOrEqual(t, withToll.Total, without.Total, "km=%v", km)
	}
}
