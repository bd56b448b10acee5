// Package sun holds a low-precision analytic model of the Sun's apparent
// geocentric position.
package sun

import (
	"math"

	"github.com/thurmanmarka/zodiacal/internal/angle"
	"github.com/thurmanmarka/zodiacal/internal/timeutil"
)

// Position is the Sun's geocentric ecliptic position.
type Position struct {
	Lon      float64 // ecliptic longitude, degrees [0, 360)
	Lat      float64 // ecliptic latitude, degrees (always 0 in this model)
	Distance float64 // AU
}

// EclipticApprox returns the Sun's approximate geocentric ecliptic position
// at Julian day jd (UT).
//
// This is a standard low/medium-precision solar position model, good to
// arcminute-level accuracy for many applications.
//
// Based on a simplified NOAA / Meeus-style algorithm:
//
//	g  = mean anomaly of the Sun
//	q  = mean longitude of the Sun
//	L  = ecliptic longitude of the Sun
//	R  = Earth–Sun distance
func EclipticApprox(jd float64) Position {
	d := timeutil.DaysSinceJ2000(jd)

	// Mean anomaly of the Sun (deg)
	g := angle.Deg2Rad(angle.Normalize360(357.529 + 0.98560028*d))

	// Mean longitude of the Sun (deg)
	q := angle.Normalize360(280.459 + 0.98564736*d)

	// Ecliptic longitude with equation of center
	L := q + 1.915*math.Sin(g) + 0.020*math.Sin(2*g)

	R := 1.00014 - 0.01671*math.Cos(g) - 0.00014*math.Cos(2*g)

	return Position{
		Lon:      angle.Normalize360(L),
		Lat:      0,
		Distance: R,
	}
}
