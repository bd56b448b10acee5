package zodiacal

import "math"

// StationaryThreshold is the longitudinal speed (degrees/day) below which a
// body is considered stationary.
const StationaryThreshold = 0.0003

// MotionState describes a body's apparent motion along the ecliptic.
type MotionState int

const (
	Stationary MotionState = iota
	Direct
	Retrograde
)

func (m MotionState) String() string {
	switch m {
	case Stationary:
		return "Stationary"
	case Direct:
		return "Direct"
	case Retrograde:
		return "Retrograde"
	default:
		return "Unknown"
	}
}

// MarshalText lets MotionState serialize by name.
func (m MotionState) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// ClassifyMotion returns Stationary when |speed| < StationaryThreshold,
// otherwise Direct for positive speed and Retrograde for negative.
func ClassifyMotion(speed float64) MotionState {
	switch {
	case math.Abs(speed) < StationaryThreshold:
		return Stationary
	case speed > 0:
		return Direct
	default:
		return Retrograde
	}
}
