package zodiacal

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_EngineQueries(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewMetrics(reg)
	require.NoError(t, err)

	eph, hc := newFakes()
	eph.fail[Mars] = -1
	e := NewEngine(eph, hc, WithMetrics(m), WithMidheaven(MidheavenTrue))

	_, _, err = e.Fortuna(context.Background(), testJD, testObserver)
	require.NoError(t, err)
	_, err = e.Position(context.Background(), testJD, Mars, testObserver)
	require.Error(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.EphemerisQueries.WithLabelValues("Sun", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.EphemerisQueries.WithLabelValues("Moon", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.EphemerisQueries.WithLabelValues("FortunaPart", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.EphemerisQueries.WithLabelValues("Mars", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HouseQueries.WithLabelValues("Porphyry", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.FortunaSect.WithLabelValues("diurnal")))
	assert.Equal(t, 2, testutil.CollectAndCount(m.QueryDurations))
}

func TestMetrics_RegisterTwice(t *testing.T) {
	reg := prometheus.NewRegistry()
	m1, err := NewMetrics(reg)
	require.NoError(t, err)
	m2, err := NewMetrics(reg)
	require.NoError(t, err)

	assert.Same(t, m1.EphemerisQueries, m2.EphemerisQueries)
	assert.Same(t, m1.FortunaSect, m2.FortunaSect)
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	m.ObserveFortuna(true)

	eph, hc := newFakes()
	assert.Equal(t, Ephemeris(eph), m.InstrumentEphemeris(eph))
	assert.Equal(t, HouseCalculator(hc), m.InstrumentHouses(hc))
}
