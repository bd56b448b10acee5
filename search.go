package zodiacal

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/thurmanmarka/zodiacal/internal/angle"
	"github.com/thurmanmarka/zodiacal/internal/logging"
	"github.com/thurmanmarka/zodiacal/internal/solver"
)

// ErrNoEvent is returned when a search window contains no matching event.
var ErrNoEvent = errors.New("no event in search window")

const (
	// searchStep is the sampling interval (days) used to bracket events.
	// The Moon covers about 3° per step, well inside one sign.
	searchStep = 0.25
	// searchTolerance is the bisection width (days), about a second.
	searchTolerance = 1e-5
)

// Ingress is a body crossing from one sign into the next (or, retrograde,
// back into the previous one).
type Ingress struct {
	Body       Body      `json:"body"`
	JD         float64   `json:"jd"`
	Time       time.Time `json:"time"`
	From       Sign      `json:"from"`
	To         Sign      `json:"to"`
	Retrograde bool      `json:"retrograde"`
}

// Station is a body's longitudinal speed passing through zero.
type Station struct {
	Body      Body        `json:"body"`
	JD        float64     `json:"jd"`
	Time      time.Time   `json:"time"`
	Longitude float64     `json:"longitude"`
	Turning   MotionState `json:"turning"` // motion after the station
}

// state returns the raw state of body at jd, deriving the South Node and
// Fortuna Part the same way Position does.
func (e *Engine) state(ctx context.Context, jd float64, body Body, obs Observer) (StateVector, error) {
	switch body {
	case FortunaPart:
		pos, _, err := e.fortuna(ctx, jd, obs)
		if err != nil {
			return StateVector{}, err
		}
		return StateVector{Longitude: pos.Longitude}, nil
	case SouthNode:
		sv, err := queryBody(ctx, e.eph, jd, TrueNode, obs.Flags)
		if err != nil {
			return StateVector{}, err
		}
		return SouthNodeFromTrueNode(sv), nil
	default:
		return queryBody(ctx, e.eph, jd, body, obs.Flags)
	}
}

// sampler wraps state queries for the solver, remembering the first error.
type sampler struct {
	e    *Engine
	ctx  context.Context
	body Body
	obs  Observer
	err  error
}

func (s *sampler) sample(jd float64) (StateVector, bool) {
	if s.err != nil {
		return StateVector{}, false
	}
	if err := s.ctx.Err(); err != nil {
		s.err = err
		return StateVector{}, false
	}
	sv, err := s.e.state(s.ctx, jd, s.body, s.obs)
	if err != nil {
		s.err = err
		return StateVector{}, false
	}
	return sv, true
}

func searchWindow(jd, within float64) error {
	if !angle.Finite(jd, within) || within <= 0 {
		return fmt.Errorf("search from %v within %v days: %w", jd, within, ErrInvalidInput)
	}
	return nil
}

// NextIngress finds the first sign change of body in (jd, jd+within].
func (e *Engine) NextIngress(ctx context.Context, jd float64, body Body, obs Observer, within float64) (in Ingress, err error) {
	ctx, span := e.startSpan(ctx, "zodiacal.NextIngress", jd, attribute.String("zodiacal.body", body.String()))
	defer func() { endSpan(span, err) }()

	if err := searchWindow(jd, within); err != nil {
		return Ingress{}, err
	}

	s := &sampler{e: e, ctx: ctx, body: body, obs: obs}
	prev, ok := s.sample(jd)
	if !ok {
		e.upstreamFailed(ctx, s.err)
		return Ingress{}, s.err
	}
	prevSign := signOf(prev.Longitude)

	end := jd + within
	for t0 := jd; t0 < end; t0 += searchStep {
		t1 := math.Min(t0+searchStep, end)
		cur, ok := s.sample(t1)
		if !ok {
			e.upstreamFailed(ctx, s.err)
			return Ingress{}, s.err
		}
		curSign := signOf(cur.Longitude)
		if curSign == prevSign {
			prev = cur
			continue
		}

		retro := angle.ClosestDistance(prev.Longitude, cur.Longitude) < 0
		boundary := curSign.StartLongitude()
		dir := solver.Rising
		if retro {
			boundary = prevSign.StartLongitude()
			dir = solver.Falling
		}

		f := func(t float64) float64 {
			sv, ok := s.sample(t)
			if !ok {
				return math.NaN()
			}
			return angle.ClosestDistance(boundary, sv.Longitude)
		}
		r := solver.FindCrossing(f, t0, t1, 0, dir, 2, searchTolerance)
		if s.err != nil {
			e.upstreamFailed(ctx, s.err)
			return Ingress{}, s.err
		}
		if !r.OK {
			// Crossed more than one boundary in a step; report the sign
			// change at the sample.
			r = solver.Result{JD: t1, OK: true}
		}

		in = Ingress{
			Body:       body,
			JD:         r.JD,
			Time:       TimeFromJulianDay(r.JD),
			From:       prevSign,
			To:         curSign,
			Retrograde: retro,
		}
		e.log.Debug(ctx, "ingress found",
			logging.String("body", body.String()),
			logging.String("to", curSign.String()),
			logging.Float("jd", r.JD),
		)
		return in, nil
	}

	return Ingress{}, fmt.Errorf("%s ingress within %v days: %w", body, within, ErrNoEvent)
}

// NextStation finds the first time in (jd, jd+within] at which body's
// longitudinal speed changes sign.
func (e *Engine) NextStation(ctx context.Context, jd float64, body Body, obs Observer, within float64) (st Station, err error) {
	ctx, span := e.startSpan(ctx, "zodiacal.NextStation", jd, attribute.String("zodiacal.body", body.String()))
	defer func() { endSpan(span, err) }()

	if err := searchWindow(jd, within); err != nil {
		return Station{}, err
	}

	s := &sampler{e: e, ctx: ctx, body: body, obs: obs}
	start, ok := s.sample(jd)
	if !ok {
		e.upstreamFailed(ctx, s.err)
		return Station{}, s.err
	}

	f := func(t float64) float64 {
		sv, ok := s.sample(t)
		if !ok {
			return math.NaN()
		}
		return sv.SpeedLongitude
	}

	steps := int(math.Ceil(within/searchStep)) + 1
	r := solver.FindCrossing(f, jd, jd+within, 0, solver.Either, steps, searchTolerance)
	if s.err != nil {
		e.upstreamFailed(ctx, s.err)
		return Station{}, s.err
	}
	if !r.OK {
		return Station{}, fmt.Errorf("%s station within %v days: %w", body, within, ErrNoEvent)
	}

	at, ok := s.sample(r.JD)
	if !ok {
		e.upstreamFailed(ctx, s.err)
		return Station{}, s.err
	}

	// The first crossing in the window ends the motion seen at jd.
	turning := Retrograde
	if start.SpeedLongitude < 0 {
		turning = Direct
	}
	return Station{
		Body:      body,
		JD:        r.JD,
		Time:      TimeFromJulianDay(r.JD),
		Longitude: at.Longitude,
		Turning:   turning,
	}, nil
}

func signOf(lon float64) Sign {
	return Signs[int(angle.Normalize360(lon)/30)%12]
}
