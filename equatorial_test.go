package zodiacal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize360(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{360, 0},
		{-10, 350},
		{725, 5},
		{-720, 0},
	}
	for _, tt := range tests {
		got := Normalize360(tt.in)
		assert.InDelta(t, tt.want, got, 1e-9, "in=%v", tt.in)
		assert.InDelta(t, got, Normalize360(got), 1e-12)
	}
}

func TestClosestDistance(t *testing.T) {
	assert.InDelta(t, 20, ClosestDistance(350, 10), 1e-9)
	assert.InDelta(t, -20, ClosestDistance(10, 350), 1e-9)
	assert.InDelta(t, 180, ClosestDistance(0, 180), 1e-9)
	assert.InDelta(t, 180, ClosestDistance(180, 0), 1e-9)
}

func TestEquatorialFromEcliptic(t *testing.T) {
	eq, err := EquatorialFromEcliptic(90, 0)
	require.NoError(t, err)
	assert.InDelta(t, 90, eq.RA, 1e-9)
	assert.InDelta(t, Obliquity, eq.Dec, 1e-9)

	ec, err := EclipticFromEquatorial(eq.RA, eq.Dec)
	require.NoError(t, err)
	assert.InDelta(t, 90, ec.Lon, 1e-9)
	assert.InDelta(t, 0, ec.Lat, 1e-9)

	_, err = EquatorialFromEcliptic(math.NaN(), 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDiurnalArcs(t *testing.T) {
	arcs, err := DiurnalArcs(0, 51.5)
	require.NoError(t, err)
	assert.InDelta(t, 180, arcs.Diurnal, 1e-9)
	assert.InDelta(t, 360, arcs.Diurnal+arcs.Nocturnal, 1e-9)

	arcs, err = DiurnalArcs(Obliquity, 45)
	require.NoError(t, err)
	assert.Greater(t, arcs.Diurnal, 180.0)

	_, err = DiurnalArcs(Obliquity, 80)
	assert.ErrorIs(t, err, ErrArcUndefined)
}

func TestIsAboveHorizon(t *testing.T) {
	above, err := IsAboveHorizon(10, 0, 10, 40)
	require.NoError(t, err)
	assert.True(t, above)

	above, err = IsAboveHorizon(190, 0, 10, 40)
	require.NoError(t, err)
	assert.False(t, above)

	_, err = IsAboveHorizon(10, Obliquity, 10, 85)
	assert.ErrorIs(t, err, ErrArcUndefined)

	_, err = IsAboveHorizon(math.Inf(1), 0, 10, 40)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
