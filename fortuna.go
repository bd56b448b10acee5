package zodiacal

import (
	"fmt"

	"github.com/thurmanmarka/zodiacal/internal/angle"
	"github.com/thurmanmarka/zodiacal/internal/coords"
	"github.com/thurmanmarka/zodiacal/internal/horizon"
)

// MidheavenSource selects which longitude the Fortuna Part's day/night test
// uses as the midheaven.
type MidheavenSource int

const (
	// MidheavenLegacy reuses the first cusp (the Ascendant) as the
	// midheaven, as the classic Fortuna routine does. It is the default.
	MidheavenLegacy MidheavenSource = iota
	// MidheavenTrue uses the MC angle reported by the house calculator.
	MidheavenTrue
)

func (m MidheavenSource) String() string {
	if m == MidheavenTrue {
		return "true"
	}
	return "legacy"
}

// ParseMidheavenSource maps "legacy" or "true" to a MidheavenSource.
func ParseMidheavenSource(s string) (MidheavenSource, error) {
	switch s {
	case "legacy", "":
		return MidheavenLegacy, nil
	case "true":
		return MidheavenTrue, nil
	}
	return 0, fmt.Errorf("unknown midheaven source %q (want legacy or true)", s)
}

// HorizonLatitude selects the latitude the Fortuna Part's day/night test
// feeds to the horizon arcs.
type HorizonLatitude int

const (
	// HorizonLegacy uses the midheaven's declination in place of the
	// observer's latitude. It is the default and never leaves the arc
	// undefined.
	HorizonLegacy HorizonLatitude = iota
	// HorizonGeographic uses the observer's geographic latitude.
	HorizonGeographic
)

func (h HorizonLatitude) String() string {
	if h == HorizonGeographic {
		return "geographic"
	}
	return "legacy"
}

// ParseHorizonLatitude maps "legacy" or "geographic" to a HorizonLatitude.
func ParseHorizonLatitude(s string) (HorizonLatitude, error) {
	switch s {
	case "legacy", "":
		return HorizonLegacy, nil
	case "geographic":
		return HorizonGeographic, nil
	}
	return 0, fmt.Errorf("unknown horizon latitude %q (want legacy or geographic)", s)
}

// FortunaInput is everything the Fortuna Part needs once the collaborators
// have been queried.
type FortunaInput struct {
	Sun       StateVector
	Moon      StateVector
	Houses    HouseData
	Latitude  float64 // observer's geographic latitude, degrees; read under HorizonGeographic
	Midheaven MidheavenSource
	Horizon   HorizonLatitude
}

// FortunaResult is the Fortuna Part together with the intermediate values
// that decided it.
type FortunaResult struct {
	Longitude  float64    `json:"longitude"`
	Diurnal    bool       `json:"diurnal"`
	Ascendant  float64    `json:"ascendant"`
	Midheaven  float64    `json:"midheaven"` // longitude fed to the horizon test
	SunEq      Equatorial `json:"sun_equatorial"`
	MCEq       Equatorial `json:"mc_equatorial"`
	SunArcs    ArcPair    `json:"sun_arcs"`
	HorizonLat float64    `json:"horizon_latitude"` // latitude the arcs were computed for
}

// ComputeFortuna computes the Fortuna Part: Asc + Moon - Sun for a day chart
// (Sun above the horizon), Asc + Sun - Moon for a night chart, normalized to
// [0, 360). The horizon test runs at the latitude in.Horizon selects.
func ComputeFortuna(in FortunaInput) (FortunaResult, error) {
	if len(in.Houses.Cusps) == 0 {
		return FortunaResult{}, fmt.Errorf("fortuna: no house cusps: %w", ErrInvalidInput)
	}
	asc := in.Houses.Cusps[0]

	mc := asc
	if in.Midheaven == MidheavenTrue {
		mc = in.Houses.Angles.MC
	}

	if !angle.Finite(in.Sun.Longitude, in.Sun.Latitude, in.Moon.Longitude, asc, mc, in.Latitude) {
		return FortunaResult{}, fmt.Errorf("fortuna: %w", ErrInvalidInput)
	}

	sunEq := coords.ToEquatorial(in.Sun.Longitude, in.Sun.Latitude)
	mcEq := coords.ToEquatorial(mc, 0)

	lat := mcEq.Dec
	if in.Horizon == HorizonGeographic {
		lat = in.Latitude
	}

	arcs, ok := horizon.Arcs(sunEq.Dec, lat)
	if !ok {
		return FortunaResult{}, fmt.Errorf("fortuna: sun dec %.4f lat %.4f: %w", sunEq.Dec, lat, ErrArcUndefined)
	}
	diurnal, _ := horizon.IsAboveHorizon(sunEq.RA, sunEq.Dec, mcEq.RA, lat)

	var lon float64
	if diurnal {
		lon = asc + in.Moon.Longitude - in.Sun.Longitude
	} else {
		lon = asc + in.Sun.Longitude - in.Moon.Longitude
	}

	return FortunaResult{
		Longitude:  angle.Normalize360(lon),
		Diurnal:    diurnal,
		Ascendant:  asc,
		Midheaven:  mc,
		SunEq:      Equatorial{RA: sunEq.RA, Dec: sunEq.Dec},
		MCEq:       Equatorial{RA: mcEq.RA, Dec: mcEq.Dec},
		SunArcs:    ArcPair{Diurnal: arcs.Diurnal, Nocturnal: arcs.Nocturnal},
		HorizonLat: lat,
	}, nil
}
