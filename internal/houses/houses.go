// Package houses computes the chart angles from sidereal time and the cusps
// of the house systems that need nothing more than those angles.
package houses

import (
	"math"

	"github.com/thurmanmarka/zodiacal/internal/angle"
	"github.com/thurmanmarka/zodiacal/internal/coords"
)

// Angles are the ecliptic longitudes of the Ascendant and Midheaven, plus the
// sidereal angle (right ascension of the MC) they were derived from.
type Angles struct {
	Asc  float64
	MC   float64
	ARMC float64
}

// AnglesFor returns the Ascendant and Midheaven for local sidereal angle armc
// (degrees) at geographic latitude lat.
func AnglesFor(armc, lat float64) Angles {
	theta := angle.Deg2Rad(armc)
	eps := angle.Deg2Rad(coords.Obliquity)
	phi := angle.Deg2Rad(lat)

	mc := math.Atan2(math.Sin(theta), math.Cos(theta)*math.Cos(eps))
	asc := math.Atan2(
		math.Cos(theta),
		-(math.Sin(theta)*math.Cos(eps) + math.Tan(phi)*math.Sin(eps)),
	)

	return Angles{
		Asc:  angle.Normalize360(angle.Rad2Deg(asc)),
		MC:   angle.Normalize360(angle.Rad2Deg(mc)),
		ARMC: angle.Normalize360(armc),
	}
}

// Equal returns twelve cusps 30° apart starting at the Ascendant.
func Equal(asc float64) []float64 {
	cusps := make([]float64, 12)
	for i := range cusps {
		cusps[i] = angle.Normalize360(asc + 30*float64(i))
	}
	return cusps
}

// WholeSign returns the starts of the twelve signs, the first house being the
// whole sign holding the Ascendant.
func WholeSign(asc float64) []float64 {
	return Equal(math.Floor(angle.Normalize360(asc)/30) * 30)
}

// Porphyry trisects each quadrant between the four angles.
func Porphyry(asc, mc float64) []float64 {
	ic := angle.Normalize360(mc + 180)
	desc := angle.Normalize360(asc + 180)

	cusps := make([]float64, 12)
	cusps[0] = angle.Normalize360(asc)
	cusps[3] = ic
	cusps[6] = desc
	cusps[9] = angle.Normalize360(mc)

	q1 := angle.Normalize360(ic - asc) / 3
	q2 := angle.Normalize360(desc - ic) / 3
	cusps[1] = angle.Normalize360(asc + q1)
	cusps[2] = angle.Normalize360(asc + 2*q1)
	cusps[4] = angle.Normalize360(ic + q2)
	cusps[5] = angle.Normalize360(ic + 2*q2)

	for i := 7; i < 12; i++ {
		if i == 9 {
			continue
		}
		cusps[i] = angle.Normalize360(cusps[i-6] + 180)
	}
	return cusps
}
