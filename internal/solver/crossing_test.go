package solver

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindCrossing_Linear(t *testing.T) {
	f := func(jd float64) float64 { return 2 * (jd - 10.3) }

	r := FindCrossing(f, 0, 20, 0, Rising, 21, 1e-9)
	require.True(t, r.OK)
	assert.InDelta(t, 10.3, r.JD, 1e-8)

	r = FindCrossing(f, 0, 20, 0, Falling, 21, 1e-9)
	assert.False(t, r.OK)

	r = FindCrossing(f, 0, 20, 5, Either, 21, 1e-9)
	require.True(t, r.OK)
	assert.InDelta(t, 12.8, r.JD, 1e-8)
}

func TestFindCrossing_FirstOfMany(t *testing.T) {
	f := func(jd float64) float64 { return math.Sin(jd) }

	r := FindCrossing(f, 1, 20, 0, Falling, 200, 1e-9)
	require.True(t, r.OK)
	assert.InDelta(t, math.Pi, r.JD, 1e-8)

	r = FindCrossing(f, 1, 20, 0, Rising, 200, 1e-9)
	require.True(t, r.OK)
	assert.InDelta(t, 2*math.Pi, r.JD, 1e-8)
}

func TestFindCrossing_NaNNeverBrackets(t *testing.T) {
	f := func(jd float64) float64 {
		if jd > 4 && jd < 6 {
			return math.NaN()
		}
		return jd - 5
	}
	r := FindCrossing(f, 0, 10, 0, Either, 11, 1e-9)
	assert.False(t, r.OK)
}

func TestFindCrossing_BadInterval(t *testing.T) {
	f := func(jd float64) float64 { return jd }
	assert.False(t, FindCrossing(f, 5, 5, 0, Either, 10, 1e-6).OK)
	assert.False(t, FindCrossing(f, 5, 1, 0, Either, 10, 1e-6).OK)
}
