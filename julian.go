package zodiacal

import (
	"time"

	"github.com/thurmanmarka/zodiacal/internal/timeutil"
)

// JulianDay converts t to a Julian day number (UT), the time argument every
// query in this package takes.
func JulianDay(t time.Time) float64 {
	return timeutil.JulianDay(t)
}

// TimeFromJulianDay converts a Julian day number (UT) back to a UTC time,
// rounded to the millisecond.
func TimeFromJulianDay(jd float64) time.Time {
	return timeutil.TimeFromJulianDay(jd)
}
