package timeutil

import (
	"math"
	"time"
)

// J2000 is the Julian day of the J2000.0 epoch: 2000-01-01 12:00:00 UTC.
const J2000 = 2451545.0

// j2000 is the same epoch as a time.Time.
var j2000 = time.Date(2000, time.January, 1, 12, 0, 0, 0, time.UTC)

// DaysSinceJ2000 returns the number of (UT) days between jd and J2000.0.
//
// This is an approximation suitable for low/medium-precision astronomy; no
// ΔT correction is applied.
func DaysSinceJ2000(jd float64) float64 {
	return jd - J2000
}

// JulianDay converts t to a Julian day number (UT).
func JulianDay(t time.Time) float64 {
	u := t.UTC()
	year, month, day := u.Date()
	hour := float64(u.Hour()) +
		float64(u.Minute())/60.0 +
		float64(u.Second())/3600.0 +
		float64(u.Nanosecond())/(3600.0*1e9)

	y := year
	m := int(month)

	if m <= 2 {
		y -= 1
		m += 12
	}

	A := y / 100
	B := 2 - A + A/4

	jd := math.Floor(365.25*float64(y+4716)) +
		math.Floor(30.6001*float64(m+1)) +
		float64(day) + float64(B) - 1524.5 +
		hour/24.0

	return jd
}

// TimeFromJulianDay converts a Julian day (UT) back to a UTC time, rounded to
// the nearest millisecond.
func TimeFromJulianDay(jd float64) time.Time {
	ms := math.Round((jd - J2000) * 86400 * 1000)
	return j2000.Add(time.Duration(ms) * time.Millisecond)
}

// JulianCenturies returns centuries since J2000.0.
func JulianCenturies(jd float64) float64 {
	return (jd - J2000) / 36525.0
}

// GreenwichSiderealDegrees returns the mean sidereal angle at Greenwich in
// degrees, [0, 360).
func GreenwichSiderealDegrees(jd float64) float64 {
	d := DaysSinceJ2000(jd)
	gmst := math.Mod(280.46061837+360.98564736629*d, 360.0)
	if gmst < 0 {
		gmst += 360.0
	}
	return gmst
}
