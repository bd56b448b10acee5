package zodiacal

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics bundles the Prometheus collectors recorded around collaborator
// queries and Fortuna Part decisions.
type Metrics struct {
	EphemerisQueries *prometheus.CounterVec
	HouseQueries     *prometheus.CounterVec
	QueryDurations   *prometheus.HistogramVec
	FortunaSect      *prometheus.CounterVec
}

// NewMetrics registers the collectors against reg, defaulting to the global
// registry when nil. Registering twice returns the existing collectors.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	eph, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "zodiacal_ephemeris_queries_total",
		Help: "Ephemeris queries, labeled by body and outcome (ok or error).",
	}, []string{"body", "outcome"}), "zodiacal_ephemeris_queries_total")
	if err != nil {
		return nil, err
	}

	hq, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "zodiacal_house_queries_total",
		Help: "House cusp queries, labeled by house system and outcome (ok or error).",
	}, []string{"system", "outcome"}), "zodiacal_house_queries_total")
	if err != nil {
		return nil, err
	}

	dur, err := registerHistogramVec(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "zodiacal_query_duration_seconds",
		Help:    "Collaborator query latency in seconds, labeled by kind (calc or houses).",
		Buckets: []float64{0.00001, 0.0001, 0.001, 0.01, 0.1, 1},
	}, []string{"kind"}), "zodiacal_query_duration_seconds")
	if err != nil {
		return nil, err
	}

	sect, err := registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "zodiacal_fortuna_total",
		Help: "Fortuna Part computations, labeled by sect (diurnal or nocturnal).",
	}, []string{"sect"}), "zodiacal_fortuna_total")
	if err != nil {
		return nil, err
	}

	return &Metrics{
		EphemerisQueries: eph,
		HouseQueries:     hq,
		QueryDurations:   dur,
		FortunaSect:      sect,
	}, nil
}

func outcome(failed bool) string {
	if failed {
		return "error"
	}
	return "ok"
}

// ObserveFortuna counts one Fortuna Part decision.
func (m *Metrics) ObserveFortuna(diurnal bool) {
	if m == nil || m.FortunaSect == nil {
		return
	}
	sect := "nocturnal"
	if diurnal {
		sect = "diurnal"
	}
	m.FortunaSect.WithLabelValues(sect).Inc()
}

// InstrumentEphemeris wraps eph so that every query is counted and timed.
func (m *Metrics) InstrumentEphemeris(eph Ephemeris) Ephemeris {
	if m == nil {
		return eph
	}
	return EphemerisFunc(func(ctx context.Context, jd float64, body Body, flags Flags) (StateVector, int, string) {
		start := time.Now()
		sv, status, msg := eph.Calc(ctx, jd, body, flags)
		m.QueryDurations.WithLabelValues("calc").Observe(time.Since(start).Seconds())
		m.EphemerisQueries.WithLabelValues(body.String(), outcome(status != 0 || msg != "")).Inc()
		return sv, status, msg
	})
}

// InstrumentHouses wraps hc so that every query is counted and timed.
func (m *Metrics) InstrumentHouses(hc HouseCalculator) HouseCalculator {
	if m == nil {
		return hc
	}
	return HouseFunc(func(ctx context.Context, jd, lat, lon float64, sys HouseSystem) (HouseData, int) {
		start := time.Now()
		hd, status := hc.Houses(ctx, jd, lat, lon, sys)
		m.QueryDurations.WithLabelValues("houses").Observe(time.Since(start).Seconds())
		m.HouseQueries.WithLabelValues(sys.String(), outcome(status != 0)).Inc()
		return hd, status
	})
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec, name string) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}

func registerHistogramVec(reg prometheus.Registerer, vec *prometheus.HistogramVec, name string) (*prometheus.HistogramVec, error) {
	if err := reg.Register(vec); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			if existing, ok := are.ExistingCollector.(*prometheus.HistogramVec); ok {
				return existing, nil
			}
			return nil, fmt.Errorf("collector %s already registered with incompatible type", name)
		}
		return nil, err
	}
	return vec, nil
}
