package zodiacal

import (
	"fmt"
	"math"

	"github.com/thurmanmarka/zodiacal/internal/angle"
)

// Rounding selects how SplitDegrees treats the part below the last unit.
type Rounding int

const (
	// Truncate drops everything below one arc-second and reports it in
	// SplitDegree.Fraction.
	Truncate Rounding = iota
	// RoundSecond rounds to the nearest arc-second.
	RoundSecond
	// RoundMinute rounds to the nearest arc-minute (Second is always 0).
	RoundMinute
)

func (r Rounding) String() string {
	switch r {
	case Truncate:
		return "truncate"
	case RoundSecond:
		return "second"
	case RoundMinute:
		return "minute"
	default:
		return fmt.Sprintf("Rounding(%d)", int(r))
	}
}

// ParseRounding maps "truncate", "second" or "minute" to a Rounding.
func ParseRounding(s string) (Rounding, error) {
	for _, r := range []Rounding{Truncate, RoundSecond, RoundMinute} {
		if r.String() == s {
			return r, nil
		}
	}
	return 0, fmt.Errorf("unknown rounding %q (want truncate, second or minute)", s)
}

const (
	secondsPerSign = 30 * 3600
)

// SplitDegree is an ecliptic longitude decomposed into sign, degree, minute
// and second.
type SplitDegree struct {
	Sign      Sign    `json:"sign"`
	Degree    int     `json:"degree"`   // 0..29
	Minute    int     `json:"minute"`   // 0..59
	Second    int     `json:"second"`   // 0..59
	Fraction  float64 `json:"fraction"` // sub-second remainder in [0, 1) when truncating, else 0
	Formatted string  `json:"formatted"`
}

// String renders the split as e.g. "20°00'00 Capricorn".
func (s SplitDegree) String() string {
	return s.Formatted + " " + s.Sign.String()
}

// Longitude reassembles the split into a longitude in [0, 360).
func (s SplitDegree) Longitude() float64 {
	return float64(s.Sign)*30 + float64(s.Degree) + float64(s.Minute)/60 +
		(float64(s.Second)+s.Fraction)/3600
}

// SplitDegrees decomposes an ecliptic longitude (any finite value, not
// necessarily normalized) into sign, degree, minute and second. Rounding that
// overflows a unit carries upward, through the sign if needed: 359°59'59.6"
// with RoundSecond becomes Aries 0°00'00".
func SplitDegrees(lon float64, mode Rounding) (SplitDegree, error) {
	if !angle.Finite(lon) {
		return SplitDegree{}, fmt.Errorf("split %v: %w", lon, ErrInvalidInput)
	}

	q := math.Floor(lon / 30)
	rem := lon - q*30 // [0, 30] before rounding spill
	sign := int(math.Mod(q, 12))
	if sign < 0 {
		sign += 12
	}
	if rem < 0 || rem > 30 {
		// |lon| too large for q*30 to be exact.
		n := angle.Normalize360(lon)
		sign = int(n / 30)
		rem = n - float64(sign)*30
	}

	total := rem * 3600
	var (
		secs float64
		frac float64
	)
	switch mode {
	case RoundSecond:
		secs = math.Round(total)
	case RoundMinute:
		secs = math.Round(total/60) * 60
	default:
		secs = math.Floor(total)
		frac = total - secs
	}

	if secs >= secondsPerSign {
		secs -= secondsPerSign
		sign = (sign + 1) % 12
	}
	if secs < 0 {
		secs, frac = 0, 0
	}

	n := int(secs)
	deg := n / 3600
	min := (n % 3600) / 60
	sec := n % 60

	return SplitDegree{
		Sign:      Signs[sign],
		Degree:    deg,
		Minute:    min,
		Second:    sec,
		Fraction:  frac,
		Formatted: fmt.Sprintf("%d°%02d'%02d", deg, min, sec),
	}, nil
}
