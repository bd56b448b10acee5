package zodiacal

import (
	"fmt"
	"strings"
)

// Body identifies a celestial body or computed point. Values follow the Swiss
// Ephemeris numbering so they can be passed straight to an ephemeris backend;
// SouthNode and FortunaPart are synthesized by this package.
type Body int

const (
	EclNut Body = -1

	Sun      Body = 0
	Moon     Body = 1
	Mercury  Body = 2
	Venus    Body = 3
	Mars     Body = 4
	Jupiter  Body = 5
	Saturn   Body = 6
	Uranus   Body = 7
	Neptune  Body = 8
	Pluto    Body = 9
	MeanNode Body = 10
	TrueNode Body = 11
	MeanApog Body = 12
	OscuApog Body = 13
	Earth    Body = 14
	Chiron   Body = 15
	Pholus   Body = 16
	Ceres    Body = 17
	Pallas   Body = 18
	Juno     Body = 19
	Vesta    Body = 20
	IntpApog Body = 21
	IntpPerg Body = 22
	NPlanets Body = 23

	SouthNode   Body = 24
	FortunaPart Body = 25

	// Hamburger or Uranian "planets"
	Cupido   Body = 40
	Hades    Body = 41
	Zeus     Body = 42
	Kronos   Body = 43
	Apollon  Body = 44
	Admetos  Body = 45
	Vulkanus Body = 46
	Poseidon Body = 47

	// other fictitious bodies
	Isis             Body = 48
	Nibiru           Body = 49
	Harrington       Body = 50
	NeptuneLeverrier Body = 51
	NeptuneAdams     Body = 52
	PlutoLowell      Body = 53
	PlutoPickering   Body = 54
)

// AsteroidOffset is added to a minor planet's catalogue number to form its
// Body value.
const AsteroidOffset = 10000

const (
	AsteroidAstera      Body = AsteroidOffset + 5
	AsteroidHebe        Body = AsteroidOffset + 6
	AsteroidIris        Body = AsteroidOffset + 7
	AsteroidFlora       Body = AsteroidOffset + 8
	AsteroidMetis       Body = AsteroidOffset + 9
	AsteroidHygiea      Body = AsteroidOffset + 10
	AsteroidUrania      Body = AsteroidOffset + 30
	AsteroidIsis        Body = AsteroidOffset + 42
	AsteroidHilda       Body = AsteroidOffset + 153
	AsteroidPhilosophia Body = AsteroidOffset + 227
	AsteroidSophia      Body = AsteroidOffset + 251
	AsteroidAletheia    Body = AsteroidOffset + 259
	AsteroidSapientia   Body = AsteroidOffset + 275
	AsteroidThule       Body = AsteroidOffset + 279
	AsteroidUrsula      Body = AsteroidOffset + 375
	AsteroidEros        Body = AsteroidOffset + 433
	AsteroidCupido      Body = AsteroidOffset + 763
	AsteroidHidalgo     Body = AsteroidOffset + 944
	AsteroidLilith      Body = AsteroidOffset + 1181
	AsteroidAmor        Body = AsteroidOffset + 1221
	AsteroidKama        Body = AsteroidOffset + 1387
	AsteroidAphrodite   Body = AsteroidOffset + 1388
	AsteroidApollo      Body = AsteroidOffset + 1862
	AsteroidDamocles    Body = AsteroidOffset + 3553
	AsteroidCruithne    Body = AsteroidOffset + 3753
	AsteroidPoseidon    Body = AsteroidOffset + 4341
	AsteroidVulcano     Body = AsteroidOffset + 4464
	AsteroidZeus        Body = AsteroidOffset + 5731
	AsteroidNessus      Body = AsteroidOffset + 7066
)

// ObjectType is the broad class a Body belongs to.
type ObjectType int

const (
	ObjectUnknown ObjectType = iota
	ObjectPlanetOrStar
	ObjectEarth
	ObjectFiction
	ObjectAsteroid
)

func (o ObjectType) String() string {
	switch o {
	case ObjectPlanetOrStar:
		return "PlanetOrStar"
	case ObjectEarth:
		return "Earth"
	case ObjectFiction:
		return "Fiction"
	case ObjectAsteroid:
		return "Asteroid"
	default:
		return "Unknown"
	}
}

// Display colors (0xRRGGBB).
const (
	ColorSun     = 0xFFA300 // Orange
	ColorMoon    = 0xB5B510 // Yellow
	ColorMercury = 0x6900FF // Indigo
	ColorVenus   = 0xFF009E // Pink
	ColorMars    = 0xFF1212 // Red small light
	ColorJupiter = 0x12A5FF // Blue light
	ColorSaturn  = 0xCC0000 // Red CC
	ColorUranus  = 0xA89402 // Brown
	ColorNeptune = 0x00B526 // Green small light
	ColorPluto   = 0xBF3A3A // Red special
	ColorOther   = 0x6B6B6B // Gray
)

// Language selects the translation returned by Name methods.
type Language int

const (
	English Language = iota
	French
)

type bodyMeta struct {
	ident  string
	kind   ObjectType
	color  int
	french string // empty means same as ident
}

var bodyTable = map[Body]bodyMeta{
	EclNut:   {ident: "EclNut", kind: ObjectUnknown, color: ColorOther},
	Sun:      {ident: "Sun", kind: ObjectPlanetOrStar, color: ColorSun, french: "Soleil"},
	Moon:     {ident: "Moon", kind: ObjectPlanetOrStar, color: ColorMoon, french: "Lune"},
	Mercury:  {ident: "Mercury", kind: ObjectPlanetOrStar, color: ColorMercury, french: "Mercure"},
	Venus:    {ident: "Venus", kind: ObjectPlanetOrStar, color: ColorVenus, french: "Venus"},
	Mars:     {ident: "Mars", kind: ObjectPlanetOrStar, color: ColorMars, french: "Mars"},
	Jupiter:  {ident: "Jupiter", kind: ObjectPlanetOrStar, color: ColorJupiter, french: "Jupiter"},
	Saturn:   {ident: "Saturn", kind: ObjectPlanetOrStar, color: ColorSaturn, french: "Saturne"},
	Uranus:   {ident: "Uranus", kind: ObjectPlanetOrStar, color: ColorUranus, french: "Uranus"},
	Neptune:  {ident: "Neptune", kind: ObjectPlanetOrStar, color: ColorNeptune, french: "Neptune"},
	Pluto:    {ident: "Pluto", kind: ObjectPlanetOrStar, color: ColorPluto, french: "Pluton"},
	MeanNode: {ident: "MeanNode", kind: ObjectPlanetOrStar, color: ColorOther},
	TrueNode: {ident: "TrueNode", kind: ObjectPlanetOrStar, color: ColorOther, french: "Noeud nord"},
	MeanApog: {ident: "MeanApog", kind: ObjectPlanetOrStar, color: ColorOther},
	OscuApog: {ident: "OscuApog", kind: ObjectPlanetOrStar, color: ColorOther},
	Earth:    {ident: "Earth", kind: ObjectEarth, color: ColorOther},
	Chiron:   {ident: "Chiron", kind: ObjectFiction, color: ColorOther, french: "Chiron"},
	Pholus:   {ident: "Pholus", kind: ObjectFiction, color: ColorOther},
	Ceres:    {ident: "Ceres", kind: ObjectFiction, color: ColorOther, french: "Ceres"},
	Pallas:   {ident: "Pallas", kind: ObjectFiction, color: ColorOther},
	Juno:     {ident: "Juno", kind: ObjectFiction, color: ColorOther},
	Vesta:    {ident: "Vesta", kind: ObjectFiction, color: ColorOther},
	IntpApog: {ident: "IntpApog", kind: ObjectFiction, color: ColorOther},
	IntpPerg: {ident: "IntpPerg", kind: ObjectFiction, color: ColorOther},
	NPlanets: {ident: "NPlanets", kind: ObjectFiction, color: ColorOther},

	SouthNode:   {ident: "SouthNode", kind: ObjectFiction, color: ColorOther, french: "Noeud sud"},
	FortunaPart: {ident: "FortunaPart", kind: ObjectFiction, color: ColorOther, french: "Part de fortune"},

	Cupido:   {ident: "Cupido", kind: ObjectFiction, color: ColorOther},
	Hades:    {ident: "Hades", kind: ObjectFiction, color: ColorOther},
	Zeus:     {ident: "Zeus", kind: ObjectFiction, color: ColorOther},
	Kronos:   {ident: "Kronos", kind: ObjectFiction, color: ColorOther},
	Apollon:  {ident: "Apollon", kind: ObjectFiction, color: ColorOther},
	Admetos:  {ident: "Admetos", kind: ObjectFiction, color: ColorOther},
	Vulkanus: {ident: "Vulkanus", kind: ObjectFiction, color: ColorOther},
	Poseidon: {ident: "Poseidon", kind: ObjectFiction, color: ColorOther},

	Isis:             {ident: "Isis", kind: ObjectFiction, color: ColorOther},
	Nibiru:           {ident: "Nibiru", kind: ObjectFiction, color: ColorOther},
	Harrington:       {ident: "Harrington", kind: ObjectFiction, color: ColorOther},
	NeptuneLeverrier: {ident: "NeptuneLeverrier", kind: ObjectFiction, color: ColorOther},
	NeptuneAdams:     {ident: "NeptuneAdams", kind: ObjectFiction, color: ColorOther},
	PlutoLowell:      {ident: "PlutoLowell", kind: ObjectFiction, color: ColorOther},
	PlutoPickering:   {ident: "PlutoPickering", kind: ObjectFiction, color: ColorOther},

	AsteroidAstera:      {ident: "AsteroidAstera", kind: ObjectAsteroid, color: ColorOther},
	AsteroidHebe:        {ident: "AsteroidHebe", kind: ObjectAsteroid, color: ColorOther},
	AsteroidIris:        {ident: "AsteroidIris", kind: ObjectAsteroid, color: ColorOther},
	AsteroidFlora:       {ident: "AsteroidFlora", kind: ObjectAsteroid, color: ColorOther},
	AsteroidMetis:       {ident: "AsteroidMetis", kind: ObjectAsteroid, color: ColorOther},
	AsteroidHygiea:      {ident: "AsteroidHygiea", kind: ObjectAsteroid, color: ColorOther},
	AsteroidUrania:      {ident: "AsteroidUrania", kind: ObjectAsteroid, color: ColorOther},
	AsteroidIsis:        {ident: "AsteroidIsis", kind: ObjectAsteroid, color: ColorOther},
	AsteroidHilda:       {ident: "AsteroidHilda", kind: ObjectAsteroid, color: ColorOther},
	AsteroidPhilosophia: {ident: "AsteroidPhilosophia", kind: ObjectAsteroid, color: ColorOther},
	AsteroidSophia:      {ident: "AsteroidSophia", kind: ObjectAsteroid, color: ColorOther},
	AsteroidAletheia:    {ident: "AsteroidAletheia", kind: ObjectAsteroid, color: ColorOther},
	AsteroidSapientia:   {ident: "AsteroidSapientia", kind: ObjectAsteroid, color: ColorOther},
	AsteroidThule:       {ident: "AsteroidThule", kind: ObjectAsteroid, color: ColorOther},
	AsteroidUrsula:      {ident: "AsteroidUrsula", kind: ObjectAsteroid, color: ColorOther},
	AsteroidEros:        {ident: "AsteroidEros", kind: ObjectAsteroid, color: ColorOther},
	AsteroidCupido:      {ident: "AsteroidCupido", kind: ObjectAsteroid, color: ColorOther},
	AsteroidHidalgo:     {ident: "AsteroidHidalgo", kind: ObjectAsteroid, color: ColorOther},
	AsteroidLilith:      {ident: "AsteroidLilith", kind: ObjectAsteroid, color: ColorOther},
	AsteroidAmor:        {ident: "AsteroidAmor", kind: ObjectAsteroid, color: ColorOther},
	AsteroidKama:        {ident: "AsteroidKama", kind: ObjectAsteroid, color: ColorOther},
	AsteroidAphrodite:   {ident: "AsteroidAphrodite", kind: ObjectAsteroid, color: ColorOther},
	AsteroidApollo:      {ident: "AsteroidApollo", kind: ObjectAsteroid, color: ColorOther},
	AsteroidDamocles:    {ident: "AsteroidDamocles", kind: ObjectAsteroid, color: ColorOther},
	AsteroidCruithne:    {ident: "AsteroidCruithne", kind: ObjectAsteroid, color: ColorOther},
	AsteroidPoseidon:    {ident: "AsteroidPoseidon", kind: ObjectAsteroid, color: ColorOther},
	AsteroidVulcano:     {ident: "AsteroidVulcano", kind: ObjectAsteroid, color: ColorOther},
	AsteroidZeus:        {ident: "AsteroidZeus", kind: ObjectAsteroid, color: ColorOther},
	AsteroidNessus:      {ident: "AsteroidNessus", kind: ObjectAsteroid, color: ColorOther},
}

// Known reports whether b is one of the bodies listed in this package.
func (b Body) Known() bool {
	_, ok := bodyTable[b]
	return ok
}

func (b Body) String() string {
	if m, ok := bodyTable[b]; ok {
		return m.ident
	}
	return fmt.Sprintf("Body(%d)", int(b))
}

// MarshalText lets Body serialize by identifier.
func (b Body) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

// Type returns the object class of b.
func (b Body) Type() ObjectType {
	return bodyTable[b].kind
}

// Color returns the display color of b (0xRRGGBB).
func (b Body) Color() int {
	if m, ok := bodyTable[b]; ok {
		return m.color
	}
	return ColorOther
}

// Name returns the display name of b in lang.
func (b Body) Name(lang Language) string {
	switch lang {
	case French:
		if m := bodyTable[b]; m.french != "" {
			return m.french
		}
	default:
		switch b {
		case TrueNode:
			return "North node"
		case SouthNode:
			return "South node"
		case FortunaPart:
			return "Fortuna part"
		}
	}
	return b.String()
}

// ParseBody resolves a body by identifier, case-insensitively ("moon",
// "TrueNode", "fortunapart").
func ParseBody(s string) (Body, error) {
	for b, m := range bodyTable {
		if strings.EqualFold(m.ident, s) {
			return b, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedBody, s)
}
