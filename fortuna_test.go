package zodiacal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fortunaInput(mode MidheavenSource, lat float64) FortunaInput {
	return FortunaInput{
		Sun:  StateVector{Longitude: 10},
		Moon: StateVector{Longitude: 100},
		Houses: HouseData{
			Cusps:  []float64{200, 230, 260, 290, 320, 350, 20, 50, 80, 110, 140, 170},
			Angles: AngleSet{Asc: 200, MC: 10},
		},
		Latitude:  lat,
		Midheaven: mode,
	}
}

func TestComputeFortuna_DayChart(t *testing.T) {
	res, err := ComputeFortuna(fortunaInput(MidheavenTrue, 45))
	require.NoError(t, err)

	assert.True(t, res.Diurnal)
	assert.InDelta(t, 290, res.Longitude, 1e-9)
	assert.Equal(t, 10.0, res.Midheaven)
	assert.InDelta(t, res.SunEq.RA, res.MCEq.RA, 1e-12)

	split, err := SplitDegrees(res.Longitude, Truncate)
	require.NoError(t, err)
	assert.Equal(t, "20°00'00 Capricorn", split.String())
}

func TestComputeFortuna_LegacyMidheaven(t *testing.T) {
	// The first cusp stands in for the MC; Asc at 200° puts the meridian far
	// from a Sun at 10°, so the chart is nocturnal.
	res, err := ComputeFortuna(fortunaInput(MidheavenLegacy, 0))
	require.NoError(t, err)

	assert.False(t, res.Diurnal)
	assert.Equal(t, 200.0, res.Midheaven)
	assert.InDelta(t, 110, res.Longitude, 1e-9)
	// arcs are taken at the MC's declination, not the equator
	assert.InDelta(t, -7.8194, res.HorizonLat, 1e-3)
	assert.InDelta(t, 178.9104, res.SunArcs.Diurnal, 1e-3)
}

func TestComputeFortuna_HorizonLatitude(t *testing.T) {
	// Sun at 0° Cancer, MC (first cusp) at 16° Pisces, observer at 45°N.
	// The Sun sits about 102.9° of RA from the MC: outside the legacy half
	// arc (87.6°) but inside the geographic one (115.7°).
	cases := []struct {
		name       string
		horizon    HorizonLatitude
		diurnal    bool
		longitude  float64
		horizonLat float64
		halfArc    float64
	}{
		{name: "legacy uses mc declination", horizon: HorizonLegacy, diurnal: false, longitude: 236, horizonLat: -5.5223, halfArc: 87.5975},
		{name: "geographic uses observer latitude", horizon: HorizonGeographic, diurnal: true, longitude: 96, horizonLat: 45, halfArc: 115.6942},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := fortunaInput(MidheavenLegacy, 45)
			in.Sun.Longitude = 90
			in.Moon.Longitude = 200
			in.Houses.Cusps[0] = 346
			in.Horizon = tc.horizon

			res, err := ComputeFortuna(in)
			require.NoError(t, err)

			assert.Equal(t, tc.diurnal, res.Diurnal)
			assert.InDelta(t, tc.longitude, res.Longitude, 1e-9)
			assert.InDelta(t, tc.horizonLat, res.HorizonLat, 1e-3)
			assert.InDelta(t, tc.halfArc, res.SunArcs.Diurnal/2, 1e-3)
			assert.InDelta(t, 347.1151, res.MCEq.RA, 1e-3)
		})
	}
}

func TestComputeFortuna_Wraps(t *testing.T) {
	in := fortunaInput(MidheavenTrue, 0)
	in.Houses.Cusps[0] = 350
	in.Moon.Longitude = 300

	res, err := ComputeFortuna(in)
	require.NoError(t, err)
	require.True(t, res.Diurnal)
	// 350 + 300 - 10
	assert.InDelta(t, 280, res.Longitude, 1e-9)
	assert.GreaterOrEqual(t, res.Longitude, 0.0)
	assert.Less(t, res.Longitude, 360.0)
}

func TestComputeFortuna_ArcUndefined(t *testing.T) {
	in := fortunaInput(MidheavenTrue, 80)
	in.Sun.Longitude = 90 // declination = obliquity, circumpolar at 80°N
	in.Horizon = HorizonGeographic

	_, err := ComputeFortuna(in)
	assert.ErrorIs(t, err, ErrArcUndefined)

	// the MC's declination never exceeds the obliquity
	in.Horizon = HorizonLegacy
	_, err = ComputeFortuna(in)
	assert.NoError(t, err)
}

func TestComputeFortuna_BadInput(t *testing.T) {
	in := fortunaInput(MidheavenTrue, 0)
	in.Houses.Cusps = nil
	_, err := ComputeFortuna(in)
	assert.ErrorIs(t, err, ErrInvalidInput)

	in = fortunaInput(MidheavenTrue, 0)
	in.Moon.Longitude = math.NaN()
	_, err = ComputeFortuna(in)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestParseMidheavenSource(t *testing.T) {
	m, err := ParseMidheavenSource("")
	require.NoError(t, err)
	assert.Equal(t, MidheavenLegacy, m)

	m, err = ParseMidheavenSource("true")
	require.NoError(t, err)
	assert.Equal(t, MidheavenTrue, m)

	_, err = ParseMidheavenSource("mc")
	assert.Error(t, err)
}

func TestParseHorizonLatitude(t *testing.T) {
	cases := []struct {
		in      string
		want    HorizonLatitude
		wantErr bool
	}{
		{in: "", want: HorizonLegacy},
		{in: "legacy", want: HorizonLegacy},
		{in: "geographic", want: HorizonGeographic},
		{in: "observer", wantErr: true},
	}

	for _, tc := range cases {
		got, err := ParseHorizonLatitude(tc.in)
		if tc.wantErr {
			assert.Error(t, err, tc.in)
			continue
		}
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got)
		assert.Equal(t, tc.want.String(), got.String())
	}
	assert.Equal(t, "geographic", HorizonGeographic.String())
}
