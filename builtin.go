package zodiacal

import (
	"context"
	"math"

	"github.com/thurmanmarka/zodiacal/internal/angle"
	"github.com/thurmanmarka/zodiacal/internal/houses"
	"github.com/thurmanmarka/zodiacal/internal/moon"
	"github.com/thurmanmarka/zodiacal/internal/sun"
	"github.com/thurmanmarka/zodiacal/internal/timeutil"
)

// Builtin status codes.
const (
	StatusOK          = 0
	StatusUnsupported = -1
	StatusBadInput    = -2
)

// speedStep is the half-width (days) of the central difference used for
// daily motion.
const speedStep = 0.5

// Builtin is a low-precision Ephemeris and HouseCalculator built on analytic
// Sun and Moon series. It supports Sun, Moon, MeanNode and TrueNode (the true
// node is approximated by the mean node) and the Equal, Whole Sign and
// Porphyry house systems.
//
// Accuracy is about an arcminute for the Sun and a few tenths of a degree for
// the Moon, which is enough to exercise the engine but not for publication
// grade charts.
type Builtin struct{}

// NewBuiltin returns the built-in collaborator pair.
func NewBuiltin() *Builtin { return &Builtin{} }

type eclipticFunc func(jd float64) (lon, lat, dist float64)

func sunAt(jd float64) (float64, float64, float64) {
	p := sun.EclipticApprox(jd)
	return p.Lon, p.Lat, p.Distance
}

func moonAt(jd float64) (float64, float64, float64) {
	p := moon.EclipticApprox(jd)
	return p.Lon, p.Lat, p.Distance
}

func nodeAt(jd float64) (float64, float64, float64) {
	return moon.MeanNode(jd), 0, 0
}

func eclipticOrigin(float64) (float64, float64, float64) {
	return 0, 0, 0
}

// Calc implements Ephemeris.
func (b *Builtin) Calc(_ context.Context, jd float64, body Body, flags Flags) (StateVector, int, string) {
	if !angle.Finite(jd) {
		return StateVector{}, StatusBadInput, "julian day is not finite"
	}

	var f eclipticFunc
	switch body {
	case Sun:
		f = sunAt
	case Moon:
		f = moonAt
	case MeanNode, TrueNode:
		f = nodeAt
	case FortunaPart:
		// the engine derives the longitude; the point stays on the ecliptic
		f = eclipticOrigin
	default:
		return StateVector{}, StatusUnsupported, "builtin ephemeris does not support " + body.String()
	}

	if flags.Has(FlagHeliocentric) || flags.Has(FlagEquatorial) || flags.Has(FlagXYZ) {
		return StateVector{}, StatusUnsupported, "builtin ephemeris only computes geocentric ecliptic polar coordinates"
	}

	return stateFrom(f, jd), StatusOK, ""
}

// stateFrom samples f around jd to obtain daily motion.
func stateFrom(f eclipticFunc, jd float64) StateVector {
	lon, lat, dist := f(jd)
	lon0, lat0, dist0 := f(jd - speedStep)
	lon1, lat1, dist1 := f(jd + speedStep)

	return StateVector{
		Longitude:      lon,
		Latitude:       lat,
		Distance:       dist,
		SpeedLongitude: angle.ClosestDistance(lon0, lon1) / (2 * speedStep),
		SpeedLatitude:  (lat1 - lat0) / (2 * speedStep),
		SpeedDistance:  (dist1 - dist0) / (2 * speedStep),
	}
}

// Houses implements HouseCalculator.
func (b *Builtin) Houses(_ context.Context, jd, lat, lon float64, sys HouseSystem) (HouseData, int) {
	if !angle.Finite(jd, lat, lon) || math.Abs(lat) >= 90 {
		return HouseData{}, StatusBadInput
	}

	armc := angle.Normalize360(timeutil.GreenwichSiderealDegrees(jd) + lon)
	a := houses.AnglesFor(armc, lat)

	var cusps []float64
	switch sys {
	case Equal:
		cusps = houses.Equal(a.Asc)
	case WholeSign:
		cusps = houses.WholeSign(a.Asc)
	case Porphyry:
		cusps = houses.Porphyry(a.Asc, a.MC)
	default:
		return HouseData{}, StatusUnsupported
	}

	return HouseData{
		Cusps: cusps,
		Angles: AngleSet{
			Asc:  a.Asc,
			MC:   a.MC,
			ARMC: a.ARMC,
		},
	}, StatusOK
}
