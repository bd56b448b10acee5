package zodiacal

import (
	"fmt"
	"strings"
)

// HouseSystem is the single-letter code understood by house calculators.
type HouseSystem byte

const (
	Campanus      HouseSystem = 'C'
	Equal         HouseSystem = 'E'
	Koch          HouseSystem = 'K'
	Placidus      HouseSystem = 'P'
	Porphyry      HouseSystem = 'O'
	Regiomontanus HouseSystem = 'R'
	WholeSign     HouseSystem = 'W'
)

var houseSystemNames = map[HouseSystem]string{
	Campanus:      "Campanus",
	Equal:         "Equal",
	Koch:          "Koch",
	Placidus:      "Placidus",
	Porphyry:      "Porphyry",
	Regiomontanus: "Regiomontanus",
	WholeSign:     "WholeSign",
}

// MarshalText lets HouseSystem serialize by name.
func (h HouseSystem) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

func (h HouseSystem) String() string {
	if n, ok := houseSystemNames[h]; ok {
		return n
	}
	return fmt.Sprintf("HouseSystem(%q)", rune(h))
}

// ParseHouseSystem accepts either a name ("placidus", "whole-sign") or the
// one-letter code ("P").
func ParseHouseSystem(s string) (HouseSystem, error) {
	if len(s) == 1 {
		h := HouseSystem(strings.ToUpper(s)[0])
		if _, ok := houseSystemNames[h]; ok {
			return h, nil
		}
	}
	norm := strings.NewReplacer("-", "", "_", "", " ", "").Replace(s)
	for h, n := range houseSystemNames {
		if strings.EqualFold(n, norm) {
			return h, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedHouseSystem, s)
}

// Angle tags a house cusp that coincides with one of the four chart angles.
type Angle int

const (
	AngleNothing Angle = iota
	AngleAsc
	AngleFc
	AngleDesc
	AngleMc
)

func (a Angle) String() string {
	switch a {
	case AngleAsc:
		return "Asc"
	case AngleFc:
		return "Fc"
	case AngleDesc:
		return "Desc"
	case AngleMc:
		return "Mc"
	default:
		return ""
	}
}

// MarshalText lets Angle serialize by name.
func (a Angle) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// AngleSet holds the chart angles reported by a house calculator, in degrees
// of ecliptic longitude (ARMC is right ascension).
type AngleSet struct {
	Asc    float64 `json:"asc"`
	MC     float64 `json:"mc"`
	ARMC   float64 `json:"armc"`
	Vertex float64 `json:"vertex"`
}

// HouseData is the output of a house query. Cusps is zero-indexed:
// Cusps[0] is the first house cusp, which is the Ascendant for quadrant
// systems.
type HouseData struct {
	Cusps  []float64 `json:"cusps"`
	Angles AngleSet  `json:"angles"`
}

// Observer is the geographic position and options used for a query.
type Observer struct {
	Latitude    float64     `json:"latitude"`  // degrees, north positive
	Longitude   float64     `json:"longitude"` // degrees, east positive
	HouseSystem HouseSystem `json:"house_system"`
	Flags       Flags       `json:"flags"`
}

// House is one assembled house cusp.
type House struct {
	Number    int         `json:"number"` // 1..12
	Longitude float64     `json:"longitude"`
	Split     SplitDegree `json:"split"`
	Angle     Angle       `json:"angle,omitempty"`
}

// houseAngle returns the angle carried by the cusp of house n.
func houseAngle(n int) Angle {
	switch n {
	case 1:
		return AngleAsc
	case 4:
		return AngleFc
	case 7:
		return AngleDesc
	case 10:
		return AngleMc
	default:
		return AngleNothing
	}
}
