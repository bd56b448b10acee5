// Package solver finds where a scalar function of time crosses a target
// value, by bracketing on a fixed grid and then bisecting.
package solver

import "math"

// Func is a scalar function of the Julian day. Returning NaN marks a sample
// as unusable; no crossing is ever bracketed by a NaN.
type Func func(jd float64) float64

// Direction selects which crossings count.
type Direction int

const (
	// Either accepts a sign change in any direction.
	Either Direction = iota
	// Rising means f is increasing through the target.
	Rising
	// Falling means f is decreasing through the target.
	Falling
)

// Result holds the output of a crossing search.
type Result struct {
	JD float64 // approximate Julian day of the crossing
	OK bool    // true if a crossing was found
}

// FindCrossing searches [start, end] for the first point where f crosses
// target in the given direction. The interval is sampled at steps evenly
// spaced points and the first bracket found is bisected until it is narrower
// than tol days.
func FindCrossing(f Func, start, end, target float64, dir Direction, steps int, tol float64) Result {
	if !(start < end) {
		return Result{OK: false}
	}
	if steps < 2 {
		steps = 2
	}

	interval := (end - start) / float64(steps-1)

	var (
		prevJD = start
		prevV  = f(prevJD) - target
	)

	for i := 1; i < steps; i++ {
		jd := start + float64(i)*interval
		v := f(jd) - target

		if hasCrossing(prevV, v, dir) {
			return bisect(f, prevJD, jd, prevV, target, dir, tol)
		}

		prevJD, prevV = jd, v
	}

	return Result{OK: false}
}

func hasCrossing(v1, v2 float64, dir Direction) bool {
	if math.IsNaN(v1) || math.IsNaN(v2) {
		return false
	}
	switch dir {
	case Rising:
		return v1 < 0 && v2 >= 0
	case Falling:
		return v1 > 0 && v2 <= 0
	default:
		return (v1 < 0 && v2 >= 0) || (v1 > 0 && v2 <= 0)
	}
}

func bisect(f Func, a, b, va, target float64, dir Direction, tol float64) Result {
	if tol <= 0 {
		tol = 1e-6
	}

	for b-a > tol {
		mid := a + (b-a)/2
		vm := f(mid) - target

		if hasCrossing(va, vm, dir) {
			b = mid
		} else {
			a, va = mid, vm
		}
	}

	return Result{
		JD: a + (b-a)/2,
		OK: true,
	}
}
