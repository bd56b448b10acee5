package zodiacal

import "context"

// StateVector is the raw output of an ephemeris query: ecliptic position plus
// daily motion.
type StateVector struct {
	Longitude      float64 // degrees
	Latitude       float64 // degrees
	Distance       float64 // AU
	SpeedLongitude float64 // degrees/day
	SpeedLatitude  float64 // degrees/day
	SpeedDistance  float64 // AU/day
}

// Flags is the option bit set passed through to the ephemeris.
type Flags int

const (
	FlagJPLEph                 Flags = 1
	FlagSwissEph               Flags = 2
	FlagMoshier                Flags = 4
	FlagHeliocentric           Flags = 8
	FlagTruePosition           Flags = 16
	FlagJ2000Equinox           Flags = 32
	FlagNoNutation             Flags = 64
	FlagSpeed3                 Flags = 128
	FlagSpeed                  Flags = 256
	FlagNoGravitationalDeflect Flags = 512
	FlagNoAnnualAberration     Flags = 1024
	FlagAstrometric            Flags = FlagNoAnnualAberration | FlagNoGravitationalDeflect
	FlagEquatorial             Flags = 2 * 1024
	FlagXYZ                    Flags = 4 * 1024
	FlagRadians                Flags = 8 * 1024
	FlagBarycentric            Flags = 16 * 1024
	FlagTopocentric            Flags = 32 * 1024
	FlagSidereal               Flags = 64 * 1024
	FlagICRS                   Flags = 128 * 1024
	FlagDPsiDeps1980           Flags = 256 * 1024
	FlagJPLHorApprox           Flags = 512 * 1024
)

// Has reports whether every bit of f2 is set in f.
func (f Flags) Has(f2 Flags) bool { return f&f2 == f2 }

// Ephemeris computes a body's state vector at a Julian day (UT). A non-zero
// status or non-empty message signals failure.
type Ephemeris interface {
	Calc(ctx context.Context, jd float64, body Body, flags Flags) (sv StateVector, status int, msg string)
}

// HouseCalculator computes house cusps and angles for an observer. A non-zero
// status signals failure.
type HouseCalculator interface {
	Houses(ctx context.Context, jd, lat, lon float64, sys HouseSystem) (hd HouseData, status int)
}

// EphemerisFunc adapts a function to Ephemeris.
type EphemerisFunc func(ctx context.Context, jd float64, body Body, flags Flags) (StateVector, int, string)

func (f EphemerisFunc) Calc(ctx context.Context, jd float64, body Body, flags Flags) (StateVector, int, string) {
	return f(ctx, jd, body, flags)
}

// HouseFunc adapts a function to HouseCalculator.
type HouseFunc func(ctx context.Context, jd, lat, lon float64, sys HouseSystem) (HouseData, int)

func (f HouseFunc) Houses(ctx context.Context, jd, lat, lon float64, sys HouseSystem) (HouseData, int) {
	return f(ctx, jd, lat, lon, sys)
}

// queryBody runs one ephemeris query and converts a reported failure into an
// *UpstreamError.
func queryBody(ctx context.Context, eph Ephemeris, jd float64, body Body, flags Flags) (StateVector, error) {
	sv, status, msg := eph.Calc(ctx, jd, body, flags)
	if status != 0 || msg != "" {
		return StateVector{}, &UpstreamError{Op: "calc", Body: body, Status: status, Message: msg}
	}
	return sv, nil
}

// queryHouses runs one house query and converts a reported failure into an
// *UpstreamError.
func queryHouses(ctx context.Context, hc HouseCalculator, jd float64, obs Observer) (HouseData, error) {
	hd, status := hc.Houses(ctx, jd, obs.Latitude, obs.Longitude, obs.HouseSystem)
	if status != 0 {
		return HouseData{}, &UpstreamError{
			Op:      "houses",
			Status:  status,
			Message: "house system " + obs.HouseSystem.String(),
		}
	}
	if len(hd.Cusps) == 0 {
		return HouseData{}, &UpstreamError{Op: "houses", Status: -1, Message: "no cusps returned"}
	}
	return hd, nil
}
