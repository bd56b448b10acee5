package zodiacal

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/thurmanmarka/zodiacal/internal/logging"
	"github.com/thurmanmarka/zodiacal/internal/tracing"
)

// Engine queries the ephemeris and house collaborators and assembles derived
// positions. It keeps no state between calls.
type Engine struct {
	eph         Ephemeris
	hc          HouseCalculator
	rounding    Rounding
	midheaven   MidheavenSource
	horizon     HorizonLatitude
	zeroFortuna bool
	log         logging.Logger
	tracer      trace.Tracer
	metrics     *Metrics
}

// Option configures an Engine.
type Option func(*Engine)

// WithRounding sets the rounding used for every split degree.
func WithRounding(r Rounding) Option {
	return func(e *Engine) { e.rounding = r }
}

// WithMidheaven selects the midheaven used by the Fortuna Part's day/night
// test. The default is MidheavenLegacy.
func WithMidheaven(m MidheavenSource) Option {
	return func(e *Engine) { e.midheaven = m }
}

// WithHorizonLatitude selects the latitude the Fortuna Part's day/night test
// runs at. The default is HorizonLegacy.
func WithHorizonLatitude(h HorizonLatitude) Option {
	return func(e *Engine) { e.horizon = h }
}

// WithZeroFortunaMotion skips the ephemeris query for the Fortuna Part itself
// and reports its latitude and speed as zero.
func WithZeroFortunaMotion() Option {
	return func(e *Engine) { e.zeroFortuna = true }
}

// WithLogger sets the engine logger.
func WithLogger(l logging.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithTracer overrides the OpenTelemetry tracer.
func WithTracer(t trace.Tracer) Option {
	return func(e *Engine) {
		if t != nil {
			e.tracer = t
		}
	}
}

// WithMetrics instruments both collaborators and records Fortuna decisions.
func WithMetrics(m *Metrics) Option {
	return func(e *Engine) { e.metrics = m }
}

// NewEngine builds an Engine over the given collaborators.
func NewEngine(eph Ephemeris, hc HouseCalculator, opts ...Option) *Engine {
	e := &Engine{
		eph:    eph,
		hc:     hc,
		log:    logging.Noop(),
		tracer: tracing.Tracer(),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.metrics != nil {
		e.eph = e.metrics.InstrumentEphemeris(e.eph)
		e.hc = e.metrics.InstrumentHouses(e.hc)
	}
	return e
}

func (e *Engine) startSpan(ctx context.Context, name string, jd float64, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	attrs = append(attrs, attribute.Float64("zodiacal.jd", jd))
	return e.tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

func (e *Engine) upstreamFailed(ctx context.Context, err error) {
	var ue *UpstreamError
	if errors.As(err, &ue) {
		e.log.Warn(ctx, "collaborator reported failure",
			logging.String("op", ue.Op),
			logging.String("body", ue.Body.String()),
			logging.Int("status", ue.Status),
			logging.String("message", ue.Message),
		)
	}
}

// Position computes the derived position of body at Julian day jd. The South
// Node is derived from a True Node query and the Fortuna Part from
// FortunaPart, Sun, Moon and house queries; every other body is queried
// directly.
func (e *Engine) Position(ctx context.Context, jd float64, body Body, obs Observer) (pos DerivedPosition, err error) {
	ctx, span := e.startSpan(ctx, "zodiacal.Position", jd, attribute.String("zodiacal.body", body.String()))
	defer func() { endSpan(span, err) }()

	switch body {
	case FortunaPart:
		pos, _, err = e.fortuna(ctx, jd, obs)
		return pos, err
	case SouthNode:
		sv, err := queryBody(ctx, e.eph, jd, TrueNode, obs.Flags)
		if err != nil {
			e.upstreamFailed(ctx, err)
			return DerivedPosition{}, err
		}
		return PositionFromState(SouthNode, SouthNodeFromTrueNode(sv), e.rounding)
	default:
		sv, err := queryBody(ctx, e.eph, jd, body, obs.Flags)
		if err != nil {
			e.upstreamFailed(ctx, err)
			return DerivedPosition{}, err
		}
		return PositionFromState(body, sv, e.rounding)
	}
}

// Fortuna computes the Fortuna Part at jd for obs. The longitude is derived
// from the Sun, Moon and first cusp; latitude and speed are copied from the
// ephemeris' own FortunaPart vector unless WithZeroFortunaMotion is set.
func (e *Engine) Fortuna(ctx context.Context, jd float64, obs Observer) (pos DerivedPosition, res FortunaResult, err error) {
	ctx, span := e.startSpan(ctx, "zodiacal.Fortuna", jd)
	defer func() { endSpan(span, err) }()
	return e.fortuna(ctx, jd, obs)
}

func (e *Engine) fortuna(ctx context.Context, jd float64, obs Observer) (DerivedPosition, FortunaResult, error) {
	var raw StateVector
	if !e.zeroFortuna {
		sv, err := queryBody(ctx, e.eph, jd, FortunaPart, obs.Flags)
		if err != nil {
			e.upstreamFailed(ctx, err)
			return DerivedPosition{}, FortunaResult{}, err
		}
		raw = sv
	}

	sunSV, err := queryBody(ctx, e.eph, jd, Sun, obs.Flags)
	if err != nil {
		e.upstreamFailed(ctx, err)
		return DerivedPosition{}, FortunaResult{}, err
	}
	moonSV, err := queryBody(ctx, e.eph, jd, Moon, obs.Flags)
	if err != nil {
		e.upstreamFailed(ctx, err)
		return DerivedPosition{}, FortunaResult{}, err
	}
	hd, err := queryHouses(ctx, e.hc, jd, obs)
	if err != nil {
		e.upstreamFailed(ctx, err)
		return DerivedPosition{}, FortunaResult{}, err
	}

	res, err := ComputeFortuna(FortunaInput{
		Sun:       sunSV,
		Moon:      moonSV,
		Houses:    hd,
		Latitude:  obs.Latitude,
		Midheaven: e.midheaven,
		Horizon:   e.horizon,
	})
	if err != nil {
		return DerivedPosition{}, FortunaResult{}, err
	}

	e.metrics.ObserveFortuna(res.Diurnal)
	e.log.Debug(ctx, "fortuna part computed",
		logging.Float("longitude", res.Longitude),
		logging.Bool("diurnal", res.Diurnal),
		logging.String("midheaven_source", e.midheaven.String()),
		logging.String("horizon_latitude", e.horizon.String()),
		logging.Float("sun_ra", res.SunEq.RA),
		logging.Float("mc_ra", res.MCEq.RA),
	)

	pos, err := NewDerivedPosition(FortunaPart, res.Longitude, raw.Latitude, raw.SpeedLongitude, e.rounding)
	if err != nil {
		return DerivedPosition{}, FortunaResult{}, err
	}
	return pos, res, nil
}

// Houses computes the twelve house cusps for obs at jd, tagging the four
// angular cusps.
func (e *Engine) Houses(ctx context.Context, jd float64, obs Observer) (hs []House, hd HouseData, err error) {
	ctx, span := e.startSpan(ctx, "zodiacal.Houses", jd, attribute.String("zodiacal.house_system", obs.HouseSystem.String()))
	defer func() { endSpan(span, err) }()

	hd, err = queryHouses(ctx, e.hc, jd, obs)
	if err != nil {
		e.upstreamFailed(ctx, err)
		return nil, HouseData{}, err
	}

	n := len(hd.Cusps)
	if n > 12 {
		n = 12
	}
	hs = make([]House, 0, n)
	for i := 0; i < n; i++ {
		split, err := SplitDegrees(hd.Cusps[i], e.rounding)
		if err != nil {
			return nil, HouseData{}, fmt.Errorf("house %d: %w", i+1, err)
		}
		hs = append(hs, House{
			Number:    i + 1,
			Longitude: hd.Cusps[i],
			Split:     split,
			Angle:     houseAngle(i + 1),
		})
	}
	return hs, hd, nil
}

// ChartAspect is an aspect found between two chart positions.
type ChartAspect struct {
	A          Body    `json:"a"`
	B          Body    `json:"b"`
	Aspect     Aspect  `json:"aspect"`
	Separation float64 `json:"separation"`
	Deviation  float64 `json:"deviation"`
}

// Chart is a set of derived positions and houses for one moment and place.
type Chart struct {
	JulianDay float64           `json:"jd"`
	Observer  Observer          `json:"observer"`
	Positions []DerivedPosition `json:"positions"`
	Houses    []House           `json:"houses"`
	Aspects   []ChartAspect     `json:"aspects,omitempty"`
}

// Chart computes every body in bodies plus the houses for obs, and lists
// the aspects formed between each pair of positions. The first failure
// aborts the chart.
func (e *Engine) Chart(ctx context.Context, jd float64, obs Observer, bodies []Body) (c Chart, err error) {
	ctx, span := e.startSpan(ctx, "zodiacal.Chart", jd, attribute.Int("zodiacal.bodies", len(bodies)))
	defer func() { endSpan(span, err) }()

	c = Chart{JulianDay: jd, Observer: obs}
	for _, b := range bodies {
		pos, err := e.Position(ctx, jd, b, obs)
		if err != nil {
			return Chart{}, err
		}
		c.Positions = append(c.Positions, pos)
	}

	c.Houses, _, err = e.Houses(ctx, jd, obs)
	if err != nil {
		return Chart{}, err
	}

	for i := 0; i < len(c.Positions); i++ {
		for j := i + 1; j < len(c.Positions); j++ {
			m, ok := FindAspect(c.Positions[i].Longitude, c.Positions[j].Longitude)
			if !ok {
				continue
			}
			c.Aspects = append(c.Aspects, ChartAspect{
				A:          c.Positions[i].Body,
				B:          c.Positions[j].Body,
				Aspect:     m.Aspect,
				Separation: m.Separation,
				Deviation:  m.Deviation,
			})
		}
	}
	return c, nil
}
