// Package horizon computes diurnal/nocturnal arcs and above-horizon tests from
// equatorial coordinates.
package horizon

import (
	"math"

	"github.com/thurmanmarka/zodiacal/internal/angle"
)

// Tolerance is the one-arc-second slack (degrees) added to half the diurnal
// arc when deciding whether a point is above the horizon. It is the day/night
// decision boundary of the Fortuna Part and must stay exactly this value.
const Tolerance = 0.0003

// ArcPair holds the diurnal and nocturnal semi-circles' full lengths in
// degrees. Diurnal + Nocturnal == 360.
type ArcPair struct {
	Diurnal   float64
	Nocturnal float64
}

// AscensionalDifference returns asin(tan δ · tan φ) in degrees. ok is false
// when the tangent product leaves [-1, 1] (circumpolar points at high
// latitudes), in which case the arc is undefined.
func AscensionalDifference(dec, lat float64) (ad float64, ok bool) {
	x := angle.TanD(dec) * angle.TanD(lat)
	if math.IsNaN(x) || x < -1 || x > 1 {
		return math.NaN(), false
	}
	return angle.Rad2Deg(math.Asin(x)), true
}

// Arcs returns the diurnal and nocturnal arcs for a point of declination dec
// seen from latitude lat.
func Arcs(dec, lat float64) (ArcPair, bool) {
	ad, ok := AscensionalDifference(dec, lat)
	if !ok {
		return ArcPair{}, false
	}
	diurnal := 180.0 + 2*ad
	return ArcPair{
		Diurnal:   diurnal,
		Nocturnal: 360.0 - diurnal,
	}, true
}

// IsAboveHorizon reports whether the point (ra, dec) is above the horizon for
// an observer at latitude lat whose midheaven has right ascension mcRA. The
// second return is false when the arc is undefined.
func IsAboveHorizon(ra, dec, mcRA, lat float64) (above bool, ok bool) {
	arcs, ok := Arcs(dec, lat)
	if !ok {
		return false, false
	}
	dist := math.Abs(angle.ClosestDistance(mcRA, ra))
	return dist <= arcs.Diurnal/2+Tolerance, true
}
