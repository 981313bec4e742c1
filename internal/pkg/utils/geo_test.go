package utils

import (
	"math"
	"testing"
)

func TestHaversineDistance(t *testing.T) {
	// Same point
	if d := HaversineDistance(37.5665, 126.9780, 37.5665, 126.9780); d != 0 {
		t.Errorf("distance between identical points = %v, want 0", d)
	}

	// Seoul City Hall to Gwanghwamun is roughly 660m.
	d := HaversineDistance(37.5665, 126.9780, 37.5724, 126.9768)
	if d < 600 || d > 720 {
		t.Errorf("Seoul City Hall -> Gwanghwamun = %.0fm, want ~660m", d)
	}

	// One degree of latitude is about 111.2km.
	d = HaversineDistance(37.0, 127.0, 38.0, 127.0)
	if math.Abs(d-111200) > 1000 {
		t.Errorf("one degree latitude = %.0fm, want ~111200m", d)
	}

	// Symmetry
	a := HaversineDistance(37.5, 127.0, 35.1, 129.0)
	b := HaversineDistance(35.1, 129.0, 37.5, 127.0)
	if math.Abs(a-b) > 1e-6 {
		t.Errorf("distance not symmetric: %v != %v", a, b)
	}
}
