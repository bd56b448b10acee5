package zodiacal

import (
	"fmt"
	"math"

	"github.com/thurmanmarka/zodiacal/internal/angle"
)

// Aspect is an angular relationship between two chart points.
type Aspect int

const (
	Conjunction Aspect = iota
	Opposition
	Trine
	Square
	Sextile
	Inconjunction
	Sesquisquare
	Semisquare
	Semisextile
)

// Aspects lists every aspect in declaration order.
var Aspects = []Aspect{
	Conjunction, Opposition, Trine, Square, Sextile,
	Inconjunction, Sesquisquare, Semisquare, Semisextile,
}

type aspectMeta struct {
	angle, orb float64
	major      bool
	en, fr     string
}

var aspectTable = [...]aspectMeta{
	Conjunction:   {0, 10, true, "Conjunction", "Conjonction"},
	Opposition:    {180, 8, true, "Opposition", "Opposition"},
	Trine:         {120, 7, true, "Trine", "Trigone"},
	Square:        {90, 6, true, "Square", "Quadrature"},
	Sextile:       {60, 5, true, "Sextile", "Sextile"},
	Inconjunction: {150, 2, false, "Inconjunction", "Quinconce"},
	Sesquisquare:  {135, 1, false, "Sesquisquare", "Sesqui-carré"},
	Semisquare:    {45, 1, false, "Semisquare", "Demi-carré"},
	Semisextile:   {30, 1, false, "Semisextile", "Demi-sextile"},
}

func (a Aspect) meta() (aspectMeta, bool) {
	if a < 0 || int(a) >= len(aspectTable) {
		return aspectMeta{}, false
	}
	return aspectTable[a], true
}

// Angle is the exact separation of the aspect in degrees.
func (a Aspect) Angle() float64 {
	m, _ := a.meta()
	return m.angle
}

// Orb is the allowed deviation from Angle in degrees.
func (a Aspect) Orb() float64 {
	m, _ := a.meta()
	return m.orb
}

// Major reports whether a is one of the five Ptolemaic aspects.
func (a Aspect) Major() bool {
	m, _ := a.meta()
	return m.major
}

func (a Aspect) String() string { return a.Name(English) }

// MarshalText lets Aspect serialize by English name.
func (a Aspect) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// Name returns the aspect name in lang.
func (a Aspect) Name(lang Language) string {
	m, ok := a.meta()
	if !ok {
		return fmt.Sprintf("Aspect(%d)", int(a))
	}
	if lang == French {
		return m.fr
	}
	return m.en
}

// AspectMatch is an aspect found between two longitudes.
type AspectMatch struct {
	Aspect     Aspect
	Separation float64 // shortest arc between the points, [0, 180]
	Deviation  float64 // |Separation - Aspect.Angle()|
}

// FindAspect returns the aspect formed by two ecliptic longitudes, choosing
// the tightest one when orbs overlap. ok is false when no aspect is within
// orb.
func FindAspect(lonA, lonB float64) (AspectMatch, bool) {
	sep := math.Abs(angle.ClosestDistance(lonA, lonB))

	var (
		best  AspectMatch
		found bool
	)
	for _, a := range Aspects {
		dev := math.Abs(sep - a.Angle())
		if dev > a.Orb() {
			continue
		}
		if !found || dev < best.Deviation {
			best = AspectMatch{Aspect: a, Separation: sep, Deviation: dev}
			found = true
		}
	}
	return best, found
}
