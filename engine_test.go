package zodiacal

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/thurmanmarka/zodiacal/internal/logging"
)

const testJD = 2460754.5

type fakeEphemeris struct {
	states map[Body]StateVector
	fail   map[Body]int
	calls  []Body
}

func (f *fakeEphemeris) Calc(_ context.Context, _ float64, body Body, _ Flags) (StateVector, int, string) {
	f.calls = append(f.calls, body)
	if status, ok := f.fail[body]; ok {
		return StateVector{}, status, "ephemeris file not found"
	}
	sv, ok := f.states[body]
	if !ok {
		return StateVector{}, -1, "no such body"
	}
	return sv, 0, ""
}

type fakeHouses struct {
	data   HouseData
	status int
}

func (f *fakeHouses) Houses(context.Context, float64, float64, float64, HouseSystem) (HouseData, int) {
	return f.data, f.status
}

func newFakes() (*fakeEphemeris, *fakeHouses) {
	eph := &fakeEphemeris{
		states: map[Body]StateVector{
			Sun:         {Longitude: 10, SpeedLongitude: 0.9856},
			Moon:        {Longitude: 100, Latitude: 2.5, SpeedLongitude: 13.1},
			TrueNode:    {Longitude: 50, SpeedLongitude: -0.053},
			Mercury:     {Longitude: 20, SpeedLongitude: -0.4},
			FortunaPart: {Longitude: 3, Latitude: 0.75, SpeedLongitude: 1.2},
		},
		fail: map[Body]int{},
	}
	hc := &fakeHouses{data: HouseData{
		Cusps:  []float64{200, 230, 260, 290, 320, 350, 20, 50, 80, 110, 140, 170},
		Angles: AngleSet{Asc: 200, MC: 10},
	}}
	return eph, hc
}

var testObserver = Observer{Latitude: 0, Longitude: 0, HouseSystem: Porphyry, Flags: FlagSpeed}

func TestEngine_PositionDirect(t *testing.T) {
	eph, hc := newFakes()
	e := NewEngine(eph, hc)

	pos, err := e.Position(context.Background(), testJD, Mercury, testObserver)
	require.NoError(t, err)
	assert.Equal(t, Mercury, pos.Body)
	assert.Equal(t, Retrograde, pos.Motion)
	assert.Equal(t, "20°00'00", pos.Split.Formatted)
	assert.Equal(t, []Body{Mercury}, eph.calls)
}

func TestEngine_PositionSouthNode(t *testing.T) {
	eph, hc := newFakes()
	e := NewEngine(eph, hc)

	pos, err := e.Position(context.Background(), testJD, SouthNode, testObserver)
	require.NoError(t, err)

	assert.Equal(t, SouthNode, pos.Body)
	assert.InDelta(t, 230, pos.Longitude, 1e-9)
	assert.Equal(t, Scorpio, pos.Split.Sign)
	assert.Equal(t, -0.053, pos.SpeedLongitude)
	assert.Equal(t, Retrograde, pos.Motion)
	assert.Equal(t, []Body{TrueNode}, eph.calls)
}

func TestEngine_Fortuna(t *testing.T) {
	t.Run("true midheaven", func(t *testing.T) {
		eph, hc := newFakes()
		e := NewEngine(eph, hc, WithMidheaven(MidheavenTrue))

		pos, res, err := e.Fortuna(context.Background(), testJD, testObserver)
		require.NoError(t, err)
		assert.True(t, res.Diurnal)
		assert.Equal(t, FortunaPart, pos.Body)
		assert.InDelta(t, 290, pos.Longitude, 1e-9)
		assert.Equal(t, "20°00'00 Capricorn", pos.Split.String())
		// latitude and speed come from the FortunaPart vector itself
		assert.Equal(t, 0.75, pos.Latitude)
		assert.Equal(t, 1.2, pos.SpeedLongitude)
		assert.Equal(t, Direct, pos.Motion)
	})

	t.Run("legacy midheaven", func(t *testing.T) {
		eph, hc := newFakes()
		e := NewEngine(eph, hc)

		pos, err := e.Position(context.Background(), testJD, FortunaPart, testObserver)
		require.NoError(t, err)
		assert.InDelta(t, 110, pos.Longitude, 1e-9)
		assert.Equal(t, Cancer, pos.Split.Sign)
		assert.Equal(t, 0.75, pos.Latitude)
		assert.Equal(t, []Body{FortunaPart, Sun, Moon}, eph.calls)
	})

	t.Run("zero motion", func(t *testing.T) {
		eph, hc := newFakes()
		e := NewEngine(eph, hc, WithZeroFortunaMotion())

		pos, _, err := e.Fortuna(context.Background(), testJD, testObserver)
		require.NoError(t, err)
		assert.InDelta(t, 110, pos.Longitude, 1e-9)
		assert.Zero(t, pos.Latitude)
		assert.Zero(t, pos.SpeedLongitude)
		assert.Equal(t, Stationary, pos.Motion)
		assert.Equal(t, []Body{Sun, Moon}, eph.calls)
	})

	t.Run("fortuna query failure", func(t *testing.T) {
		eph, hc := newFakes()
		eph.fail[FortunaPart] = -2
		e := NewEngine(eph, hc)

		_, _, err := e.Fortuna(context.Background(), testJD, testObserver)
		var ue *UpstreamError
		require.True(t, errors.As(err, &ue))
		assert.Equal(t, FortunaPart, ue.Body)
		assert.Equal(t, -2, ue.Status)
		assert.Equal(t, []Body{FortunaPart}, eph.calls)
	})
}

func TestEngine_FortunaHorizonLatitude(t *testing.T) {
	cases := []struct {
		name      string
		opts      []Option
		diurnal   bool
		longitude float64
	}{
		{name: "default mc declination", diurnal: false, longitude: 236},
		{name: "geographic", opts: []Option{WithHorizonLatitude(HorizonGeographic)}, diurnal: true, longitude: 96},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			eph, hc := newFakes()
			eph.states[Sun] = StateVector{Longitude: 90, SpeedLongitude: 0.95}
			eph.states[Moon] = StateVector{Longitude: 200, SpeedLongitude: 12.8}
			hc.data.Cusps[0] = 346
			obs := testObserver
			obs.Latitude = 45

			e := NewEngine(eph, hc, tc.opts...)
			pos, res, err := e.Fortuna(context.Background(), testJD, obs)
			require.NoError(t, err)
			assert.Equal(t, tc.diurnal, res.Diurnal)
			assert.InDelta(t, tc.longitude, pos.Longitude, 1e-9)
		})
	}
}

func TestEngine_UpstreamFailure(t *testing.T) {
	eph, hc := newFakes()
	eph.fail[Moon] = -1

	var buf bytes.Buffer
	e := NewEngine(eph, hc, WithLogger(logging.New(logging.Config{Level: "debug", Format: "json", Output: &buf})))

	_, _, err := e.Fortuna(context.Background(), testJD, testObserver)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUpstreamFailure))

	var ue *UpstreamError
	require.True(t, errors.As(err, &ue))
	assert.Equal(t, "calc", ue.Op)
	assert.Equal(t, Moon, ue.Body)
	assert.Equal(t, -1, ue.Status)
	assert.Equal(t, "ephemeris file not found", ue.Message)

	assert.Contains(t, buf.String(), "collaborator reported failure")
	assert.Contains(t, buf.String(), `"body":"Moon"`)
}

func TestEngine_HouseFailure(t *testing.T) {
	eph, hc := newFakes()
	hc.status = -1
	e := NewEngine(eph, hc)

	_, _, err := e.Houses(context.Background(), testJD, testObserver)
	assert.ErrorIs(t, err, ErrUpstreamFailure)

	_, err = e.Position(context.Background(), testJD, FortunaPart, testObserver)
	var ue *UpstreamError
	require.True(t, errors.As(err, &ue))
	assert.Equal(t, "houses", ue.Op)
}

func TestEngine_EmptyCusps(t *testing.T) {
	eph, hc := newFakes()
	hc.data.Cusps = nil
	e := NewEngine(eph, hc)

	_, err := e.Position(context.Background(), testJD, FortunaPart, testObserver)
	assert.ErrorIs(t, err, ErrUpstreamFailure)
}

func TestEngine_Houses(t *testing.T) {
	eph, hc := newFakes()
	e := NewEngine(eph, hc)

	hs, hd, err := e.Houses(context.Background(), testJD, testObserver)
	require.NoError(t, err)
	require.Len(t, hs, 12)
	assert.Equal(t, 10.0, hd.Angles.MC)

	assert.Equal(t, 1, hs[0].Number)
	assert.Equal(t, AngleAsc, hs[0].Angle)
	assert.Equal(t, AngleFc, hs[3].Angle)
	assert.Equal(t, AngleDesc, hs[6].Angle)
	assert.Equal(t, AngleMc, hs[9].Angle)
	assert.Equal(t, AngleNothing, hs[1].Angle)
	assert.Equal(t, Libra, hs[0].Split.Sign)
	assert.Equal(t, "20°00'00", hs[0].Split.Formatted)
}

func TestEngine_Chart(t *testing.T) {
	eph, hc := newFakes()
	eph.states[TrueNode] = StateVector{Longitude: 70, SpeedLongitude: -0.053}
	e := NewEngine(eph, hc, WithRounding(RoundMinute))

	c, err := e.Chart(context.Background(), testJD, testObserver, []Body{Sun, Moon, SouthNode})
	require.NoError(t, err)
	require.Len(t, c.Positions, 3)
	require.Len(t, c.Houses, 12)

	// Sun 10, Moon 100, South Node 250
	require.Len(t, c.Aspects, 3)
	assert.Equal(t, ChartAspect{A: Sun, B: Moon, Aspect: Square, Separation: 90, Deviation: 0}, c.Aspects[0])
	assert.Equal(t, Trine, c.Aspects[1].Aspect)
	assert.Equal(t, SouthNode, c.Aspects[1].B)
	assert.Equal(t, Moon, c.Aspects[2].A)
	assert.Equal(t, Inconjunction, c.Aspects[2].Aspect)
	assert.InDelta(t, 150, c.Aspects[2].Separation, 1e-9)
}

func TestEngine_ChartStopsOnError(t *testing.T) {
	eph, hc := newFakes()
	e := NewEngine(eph, hc)

	_, err := e.Chart(context.Background(), testJD, testObserver, []Body{Sun, Pluto})
	assert.ErrorIs(t, err, ErrUpstreamFailure)
}

func TestEngine_Spans(t *testing.T) {
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	eph, hc := newFakes()
	eph.fail[Sun] = -2
	e := NewEngine(eph, hc, WithTracer(tp.Tracer("test")))

	_, err := e.Position(context.Background(), testJD, Moon, testObserver)
	require.NoError(t, err)
	_, _, err = e.Fortuna(context.Background(), testJD, testObserver)
	require.Error(t, err)

	spans := sr.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, "zodiacal.Position", spans[0].Name())
	assert.Equal(t, codes.Unset, spans[0].Status().Code)
	assert.Equal(t, "zodiacal.Fortuna", spans[1].Name())
	assert.Equal(t, codes.Error, spans[1].Status().Code)
}
