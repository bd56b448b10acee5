// Package zodiacal turns raw ephemeris state vectors into astrologically
// meaningful positions: zodiac sign and degree split, direct/retrograde
// motion, house cusps, the South Node and the Fortuna Part.
//
// The ephemeris and house-cusp computations themselves are collaborators
// behind the Ephemeris and HouseCalculator interfaces. A low-precision
// built-in pair (NewBuiltin) covers the Sun, Moon and lunar nodes with
// Equal, Whole Sign and Porphyry houses.
//
// Every transform in this package is a pure function of its inputs; the
// Engine holds no mutable state and is safe for concurrent use as long as
// its collaborators are.
package zodiacal

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput is returned when a numeric input is NaN or infinite.
	ErrInvalidInput = errors.New("invalid input: non-finite value")

	// ErrArcUndefined is returned when the diurnal arc does not exist for a
	// declination/latitude pair (circumpolar point near the poles).
	ErrArcUndefined = errors.New("diurnal arc undefined at this latitude")

	// ErrUpstreamFailure is wrapped by every *UpstreamError.
	ErrUpstreamFailure = errors.New("upstream collaborator failure")

	// ErrUnsupportedBody is returned for bodies a collaborator cannot compute.
	ErrUnsupportedBody = errors.New("unsupported body")

	// ErrUnsupportedHouseSystem is returned for house systems a collaborator
	// cannot compute.
	ErrUnsupportedHouseSystem = errors.New("unsupported house system")
)

// UpstreamError carries the status code and message reported by an
// ephemeris or house collaborator, verbatim.
type UpstreamError struct {
	Op      string // "calc" or "houses"
	Body    Body   // only meaningful for Op == "calc"
	Status  int
	Message string
}

func (e *UpstreamError) Error() string {
	if e.Op == "calc" {
		return fmt.Sprintf("%s %s: status %d: %s", e.Op, e.Body, e.Status, e.Message)
	}
	return fmt.Sprintf("%s: status %d: %s", e.Op, e.Status, e.Message)
}

func (e *UpstreamError) Unwrap() error { return ErrUpstreamFailure }
