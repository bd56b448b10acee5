// Package angle holds the degree helpers every other transform builds on.
package angle

import "math"

// -----------------------------
// Degree/radian helpers and trig with degree inputs.
// -----------------------------

func Deg2Rad(d float64) float64 {
	return d * math.Pi / 180.0
}

func Rad2Deg(r float64) float64 {
	return r * 180.0 / math.Pi
}

func SinD(deg float64) float64 {
	return math.Sin(Deg2Rad(deg))
}

func CosD(deg float64) float64 {
	return math.Cos(Deg2Rad(deg))
}

func TanD(deg float64) float64 {
	return math.Tan(Deg2Rad(deg))
}

// Normalize360 reduces d into [0, 360).
func Normalize360(d float64) float64 {
	d = math.Mod(d, 360.0)
	if d < 0 {
		d += 360.0
	}
	// -1e-17 + 360 rounds back up to 360.
	if d >= 360.0 {
		d -= 360.0
	}
	return d
}

// ClosestDistance returns the shortest signed distance travelling from a to b,
// in (-180, 180]. Positive means b lies counter-clockwise (ahead in longitude)
// of a.
//
// When a and b are exactly opposite both ClosestDistance(a, b) and
// ClosestDistance(b, a) return +180; everywhere else the function is
// antisymmetric.
func ClosestDistance(a, b float64) float64 {
	d := Normalize360(b - a)
	if d > 180.0 {
		d -= 360.0
	}
	return d
}

// Clamp1 clamps x into [-1, 1] so acos/asin never see floating point spill.
func Clamp1(x float64) float64 {
	if x > 1 {
		return 1
	} else if x < -1 {
		return -1
	}
	return x
}

// Finite reports whether every value is neither NaN nor ±Inf.
func Finite(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
