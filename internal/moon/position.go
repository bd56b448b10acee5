// Package moon holds a medium-precision analytic model of the Moon's
// geocentric position and of its mean orbital node.
package moon

import (
	"math"

	"github.com/thurmanmarka/zodiacal/internal/angle"
	"github.com/thurmanmarka/zodiacal/internal/timeutil"
)

// kmPerAU converts the lunar distance series (km) to AU.
const kmPerAU = 149597870.7

// Position is the Moon's geocentric ecliptic position.
type Position struct {
	Lon      float64 // ecliptic longitude, degrees [0, 360)
	Lat      float64 // ecliptic latitude, degrees
	Distance float64 // AU
}

// EclipticApprox returns an approximate geocentric ecliptic position for the
// Moon at Julian day jd (UT).
//
// This is a medium-precision model using a small set of dominant periodic terms
// in ecliptic longitude and latitude. It's significantly better than the
// ultra-simple model, but still not full ephemeris-grade.
//
// Roughly based on truncated Meeus-style series:
//
//	L'  = mean longitude of the Moon
//	M   = mean anomaly of the Sun
//	Mm  = mean anomaly of the Moon
//	D   = mean elongation of the Moon from the Sun
//	F   = argument of latitude of the Moon
func EclipticApprox(jd float64) Position {
	d := timeutil.DaysSinceJ2000(jd)

	// All linear coefficients here are in deg/day.
	Lprime := angle.Normalize360(218.3164477 + 13.17639648*d) // mean longitude of the Moon
	M := angle.Normalize360(357.5291092 + 0.98560028*d)       // mean anomaly of the Sun
	Mm := angle.Normalize360(134.9633964 + 13.06499295*d)     // mean anomaly of the Moon
	D := angle.Normalize360(297.8501921 + 12.19074912*d)      // mean elongation from the Sun
	F := angle.Normalize360(93.2720950 + 13.22935024*d)       // argument of latitude

	Mr := angle.Deg2Rad(M)
	Mmr := angle.Deg2Rad(Mm)
	Dr := angle.Deg2Rad(D)
	Fr := angle.Deg2Rad(F)

	// λ ≈ L' + 6.289 sin(Mm) + 1.274 sin(2D − Mm)
	//      + 0.658 sin(2D) + 0.214 sin(2Mm) − 0.186 sin(M)
	//      − 0.114 sin(2F)
	lon := Lprime +
		6.289*math.Sin(Mmr) +
		1.274*math.Sin(2*Dr-Mmr) +
		0.658*math.Sin(2*Dr) +
		0.214*math.Sin(2*Mmr) -
		0.186*math.Sin(Mr) -
		0.114*math.Sin(2*Fr)

	// β ≈ 5.128 sin(F) + 0.280 sin(Mm + F)
	//      + 0.277 sin(Mm − F) + 0.173 sin(2D − F)
	lat := 5.128*math.Sin(Fr) +
		0.280*math.Sin(Mmr+Fr) +
		0.277*math.Sin(Mmr-Fr) +
		0.173*math.Sin(2*Dr-Fr)

	// Earth–Moon distance in km.
	delta := 385000.56 -
		20905.0*math.Cos(Mmr) -
		3699.0*math.Cos(2*Dr-Mmr) -
		2956.0*math.Cos(2*Dr) -
		570.0*math.Cos(2*Mmr) -
		246.0*math.Cos(2*Dr+Mmr)

	return Position{
		Lon:      angle.Normalize360(lon),
		Lat:      lat,
		Distance: delta / kmPerAU,
	}
}

// MeanNode returns the longitude (degrees) of the Moon's mean ascending node
// at jd, from Meeus ch. 47. The node regresses about 19.35° per year.
func MeanNode(jd float64) float64 {
	T := timeutil.JulianCenturies(jd)
	omega := 125.0445479 -
		1934.1362891*T +
		0.0020754*T*T +
		T*T*T/467441.0 -
		T*T*T*T/60616000.0
	return angle.Normalize360(omega)
}
