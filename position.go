package zodiacal

import (
	"fmt"

	"github.com/thurmanmarka/zodiacal/internal/angle"
)

// DerivedPosition is a body's position in astrological terms. It is built
// once per query and never modified.
type DerivedPosition struct {
	Body           Body        `json:"body"`
	Name           string      `json:"name"`
	Type           ObjectType  `json:"-"`
	Longitude      float64     `json:"longitude"`
	Latitude       float64     `json:"latitude"`
	SpeedLongitude float64     `json:"speed_longitude"`
	Motion         MotionState `json:"motion"`
	Split          SplitDegree `json:"split"`
}

// NewDerivedPosition assembles a DerivedPosition from a longitude, latitude
// and longitudinal speed.
func NewDerivedPosition(body Body, lon, lat, speed float64, mode Rounding) (DerivedPosition, error) {
	if !angle.Finite(lat, speed) {
		return DerivedPosition{}, fmt.Errorf("%s: %w", body, ErrInvalidInput)
	}
	split, err := SplitDegrees(lon, mode)
	if err != nil {
		return DerivedPosition{}, fmt.Errorf("%s: %w", body, err)
	}
	return DerivedPosition{
		Body:           body,
		Name:           body.Name(English),
		Type:           body.Type(),
		Longitude:      lon,
		Latitude:       lat,
		SpeedLongitude: speed,
		Motion:         ClassifyMotion(speed),
		Split:          split,
	}, nil
}

// PositionFromState assembles a DerivedPosition from a raw state vector.
func PositionFromState(body Body, sv StateVector, mode Rounding) (DerivedPosition, error) {
	return NewDerivedPosition(body, sv.Longitude, sv.Latitude, sv.SpeedLongitude, mode)
}

// SouthNodeFromTrueNode derives the South Node from a True Node state vector
// by moving the longitude 180° (normalized to [0, 360)).
//
// Every other component, speeds included, is copied unchanged from the True
// Node, so the South Node's motion state is the North Node's. That is an
// approximation; nodal speeds are symmetric only on average.
func SouthNodeFromTrueNode(sv StateVector) StateVector {
	out := sv
	out.Longitude = angle.Normalize360(sv.Longitude + 180)
	return out
}
