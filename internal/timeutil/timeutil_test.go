package timeutil

import (
	"math"
	"testing"
	"time"
)

func TestJulianDay(t *testing.T) {
	tests := []struct {
		name string
		t    time.Time
		want float64
	}{
		{"J2000", time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC), 2451545.0},
		{"Sputnik", time.Date(1957, 10, 4, 19, 26, 24, 0, time.UTC), 2436116.31},
		{"Unix epoch", time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC), 2440587.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := JulianDay(tt.t); math.Abs(got-tt.want) > 1e-6 {
				t.Errorf("JulianDay(%v) = %.6f, want %.6f", tt.t, got, tt.want)
			}
		})
	}
}

func TestTimeFromJulianDay_RoundTrip(t *testing.T) {
	in := time.Date(2025, time.November, 30, 17, 21, 30, 0, time.UTC)
	out := TimeFromJulianDay(JulianDay(in))

	if d := out.Sub(in); d > time.Millisecond || d < -time.Millisecond {
		t.Errorf("round trip drifted by %v (got %v)", d, out)
	}
}

func TestGreenwichSiderealDegrees_J2000(t *testing.T) {
	if got := GreenwichSiderealDegrees(J2000); math.Abs(got-280.46061837) > 1e-9 {
		t.Errorf("GMST at J2000 = %v", got)
	}
}
