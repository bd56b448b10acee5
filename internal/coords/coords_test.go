package coords

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thurmanmarka/zodiacal/internal/angle"
)

func TestToEquatorial_Cardinal(t *testing.T) {
	tests := []struct {
		lon    float64
		wantRA float64
		wantDe float64
	}{
		{0, 0, 0},
		{90, 90, Obliquity},
		{180, 180, 0},
		{270, 270, -Obliquity},
	}

	for _, tt := range tests {
		eq := ToEquatorial(tt.lon, 0)
		assert.InDelta(t, tt.wantRA, eq.RA, 1e-9, "RA for lon=%v", tt.lon)
		assert.InDelta(t, tt.wantDe, eq.Dec, 1e-9, "Dec for lon=%v", tt.lon)
	}
}

func TestToEquatorial_RoundTrip(t *testing.T) {
	cases := []Ecliptic{
		{Lon: 0, Lat: 0},
		{Lon: 90, Lat: 0},
		{Lon: 180, Lat: 0},
		{Lon: 270, Lat: 0},
		{Lon: 359, Lat: 0},
		{Lon: 10, Lat: 0},
		{Lon: 200, Lat: 0},
		{Lon: 45, Lat: 5},
		{Lon: 300, Lat: -5},
		{Lon: 60, Lat: 3},
		{Lon: 250, Lat: 2},
		{Lon: 75, Lat: 1.5},
		{Lon: 330, Lat: 4},
		// inside the 5° window around the equinox points
		{Lon: 2, Lat: 5},
		{Lon: 358, Lat: -4},
		{Lon: 182, Lat: 3},
		{Lon: 178, Lat: -3},
		// unnormalized input
		{Lon: -10, Lat: 0},
		{Lon: 370, Lat: 2},
	}

	for _, c := range cases {
		eq := ToEquatorial(c.Lon, c.Lat)
		assert.GreaterOrEqual(t, eq.RA, 0.0)
		assert.Less(t, eq.RA, 360.0)

		back := ToEcliptic(eq.RA, eq.Dec)
		if d := math.Abs(angle.ClosestDistance(c.Lon, back.Lon)); d > 1e-6 {
			t.Errorf("lon %v,%v: round trip longitude off by %g (got %v)", c.Lon, c.Lat, d, back.Lon)
		}
		if d := math.Abs(c.Lat - back.Lat); d > 1e-6 {
			t.Errorf("lon %v,%v: round trip latitude off by %g (got %v)", c.Lon, c.Lat, d, back.Lat)
		}
	}
}

func TestToEquatorial_UnnormalizedLongitude(t *testing.T) {
	cases := []struct {
		name      string
		lon, same float64
		lat       float64
	}{
		{name: "negative", lon: -10, same: 350},
		{name: "one turn over", lon: 370, same: 10},
		{name: "past the cut", lon: 460, same: 100, lat: 1},
		{name: "two turns under", lon: -700, same: 20, lat: -2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ToEquatorial(tc.lon, tc.lat)
			want := ToEquatorial(tc.same, tc.lat)
			assert.InDelta(t, want.RA, got.RA, 1e-9)
			assert.InDelta(t, want.Dec, got.Dec, 1e-9)
		})
	}
}

func TestToEquatorial_BranchCorrectionNearEquinox(t *testing.T) {
	// At λ=2°, β=+5° the point sits south of the equator's RA=0 seam on the
	// 360°-side; the 5° window check has to flip the acos branch.
	eq := ToEquatorial(2, 5)
	assert.Greater(t, eq.RA, 359.0)
}

func TestToEquatorial_HeuristicCutMirrorsBetween100And175(t *testing.T) {
	// The fixed 100° cut is inherited behaviour: λ=150° lands on the
	// mirrored branch (360° - 152.09°) instead of 152.09°.
	eq := ToEquatorial(150, 0)
	assert.InDelta(t, 207.9104, eq.RA, 1e-3)
}
