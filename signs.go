package zodiacal

import "fmt"

// Sign is one of the twelve 30° zodiac segments, zero-indexed from Aries.
type Sign int

const (
	Aries Sign = iota
	Taurus
	Gemini
	Cancer
	Leo
	Virgo
	Libra
	Scorpio
	Sagittarius
	Capricorn
	Aquarius
	Pisces
)

// Signs is the fixed cyclic sequence starting at 0° ecliptic longitude.
var Signs = [12]Sign{
	Aries, Taurus, Gemini, Cancer, Leo, Virgo,
	Libra, Scorpio, Sagittarius, Capricorn, Aquarius, Pisces,
}

var signNames = [12][2]string{
	{"Aries", "Belier"},
	{"Taurus", "Taureau"},
	{"Gemini", "Gemaux"},
	{"Cancer", "Cancer"},
	{"Leo", "Lion"},
	{"Virgo", "Vierge"},
	{"Libra", "Balance"},
	{"Scorpio", "Scorpion"},
	{"Sagittarius", "Sagittaire"},
	{"Capricorn", "Capricorne"},
	{"Aquarius", "Verseau"},
	{"Pisces", "Poissons"},
}

func (s Sign) valid() bool { return s >= Aries && s <= Pisces }

func (s Sign) String() string {
	return s.Name(English)
}

// MarshalText lets Sign serialize by English name.
func (s Sign) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Name returns the sign name in lang.
func (s Sign) Name(lang Language) string {
	if !s.valid() {
		return fmt.Sprintf("Sign(%d)", int(s))
	}
	if lang == French {
		return signNames[s][1]
	}
	return signNames[s][0]
}

// StartLongitude is the ecliptic longitude where the sign begins.
func (s Sign) StartLongitude() float64 {
	return float64(s) * 30
}

// Element returns the triplicity of s.
func (s Sign) Element() Element {
	return Element(int(s) % 4)
}

// Element is the classical triplicity of a sign.
type Element int

const (
	Fire Element = iota
	EarthElement
	Air
	Water
)

func (e Element) String() string {
	switch e {
	case Fire:
		return "Fire"
	case EarthElement:
		return "Earth"
	case Air:
		return "Air"
	case Water:
		return "Water"
	default:
		return fmt.Sprintf("Element(%d)", int(e))
	}
}

// Color returns the display color of the element (0xRRGGBB).
func (e Element) Color() int {
	switch e {
	case Fire:
		return 0xFF0000 // Red
	case EarthElement:
		return 0xFFC200 // Orange/Yellow
	case Air:
		return 0x00C42A // Green
	default:
		return 0x0B34FF // Blue
	}
}
