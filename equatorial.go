package zodiacal

import (
	"fmt"

	"github.com/thurmanmarka/zodiacal/internal/angle"
	"github.com/thurmanmarka/zodiacal/internal/coords"
	"github.com/thurmanmarka/zodiacal/internal/horizon"
)

// Obliquity is the fixed obliquity of the ecliptic (degrees) used by every
// coordinate conversion in this package.
const Obliquity = coords.Obliquity

// HorizonTolerance is the slack (degrees) in the above-horizon test.
const HorizonTolerance = horizon.Tolerance

// Equatorial holds right ascension and declination in degrees.
type Equatorial struct {
	RA  float64 `json:"ra"`
	Dec float64 `json:"dec"`
}

// Ecliptic holds ecliptic longitude and latitude in degrees.
type Ecliptic struct {
	Lon float64 `json:"lon"`
	Lat float64 `json:"lat"`
}

// ArcPair holds the diurnal and nocturnal arcs of a point, in degrees.
type ArcPair struct {
	Diurnal   float64 `json:"diurnal"`
	Nocturnal float64 `json:"nocturnal"`
}

// EquatorialFromEcliptic converts ecliptic coordinates to equatorial with the
// fixed obliquity. The right ascension half-plane comes from a fixed 100°
// cut (see internal/coords); it is correct near the equinox points and for
// longitudes outside (100°, 175°).
func EquatorialFromEcliptic(lon, lat float64) (Equatorial, error) {
	if !angle.Finite(lon, lat) {
		return Equatorial{}, fmt.Errorf("equatorial from (%v, %v): %w", lon, lat, ErrInvalidInput)
	}
	eq := coords.ToEquatorial(lon, lat)
	return Equatorial{RA: eq.RA, Dec: eq.Dec}, nil
}

// EclipticFromEquatorial is the exact inverse of the equatorial conversion.
func EclipticFromEquatorial(ra, dec float64) (Ecliptic, error) {
	if !angle.Finite(ra, dec) {
		return Ecliptic{}, fmt.Errorf("ecliptic from (%v, %v): %w", ra, dec, ErrInvalidInput)
	}
	ec := coords.ToEcliptic(ra, dec)
	return Ecliptic{Lon: ec.Lon, Lat: ec.Lat}, nil
}

// DiurnalArcs returns the diurnal and nocturnal arcs for a point of
// declination dec seen from geographic latitude lat.
func DiurnalArcs(dec, lat float64) (ArcPair, error) {
	if !angle.Finite(dec, lat) {
		return ArcPair{}, fmt.Errorf("arcs for dec %v lat %v: %w", dec, lat, ErrInvalidInput)
	}
	arcs, ok := horizon.Arcs(dec, lat)
	if !ok {
		return ArcPair{}, fmt.Errorf("arcs for dec %.4f lat %.4f: %w", dec, lat, ErrArcUndefined)
	}
	return ArcPair{Diurnal: arcs.Diurnal, Nocturnal: arcs.Nocturnal}, nil
}

// IsAboveHorizon reports whether the point (ra, dec) is above the horizon of
// an observer at latitude lat whose midheaven has right ascension mcRA: its
// distance from the meridian must not exceed half the diurnal arc plus
// HorizonTolerance.
func IsAboveHorizon(ra, dec, mcRA, lat float64) (bool, error) {
	if !angle.Finite(ra, dec, mcRA, lat) {
		return false, fmt.Errorf("horizon test: %w", ErrInvalidInput)
	}
	above, ok := horizon.IsAboveHorizon(ra, dec, mcRA, lat)
	if !ok {
		return false, fmt.Errorf("horizon test dec %.4f lat %.4f: %w", dec, lat, ErrArcUndefined)
	}
	return above, nil
}

// Normalize360 reduces any angle to [0, 360).
func Normalize360(a float64) float64 { return angle.Normalize360(a) }

// ClosestDistance returns the shortest signed distance from a to b in
// (-180, 180]. Exactly opposite points give +180 in both directions.
func ClosestDistance(a, b float64) float64 { return angle.ClosestDistance(a, b) }
