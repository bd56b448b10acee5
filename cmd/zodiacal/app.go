package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/thurmanmarka/zodiacal"
	"github.com/thurmanmarka/zodiacal/internal/logging"
	"github.com/thurmanmarka/zodiacal/internal/tracing"
)

type options struct {
	configPath  string
	lat, lon    float64
	timeStr     string
	jd          float64
	houseSystem string
	rounding    string
	midheaven   string
	horizonLat  string
	jsonOut     bool
	logLevel    string
	trace       bool
	metrics     bool
}

type app struct {
	cfg      *zodiacal.Config
	obs      zodiacal.Observer
	jd       float64
	engine   *zodiacal.Engine
	log      logging.Logger
	out      io.Writer
	jsonOut  bool
	registry *prometheus.Registry
	shutdown func(context.Context) error
}

// loadConfig reads the config file, if any, and applies explicitly set flags
// on top of it.
func loadConfig(cmd *cobra.Command, opts *options) (*zodiacal.Config, error) {
	cfg := zodiacal.DefaultConfig()
	if opts.configPath != "" {
		var err error
		cfg, err = zodiacal.LoadConfig(opts.configPath)
		if err != nil {
			return nil, err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("lat") {
		cfg.Observer.Latitude = opts.lat
	}
	if flags.Changed("lon") {
		cfg.Observer.Longitude = opts.lon
	}
	if flags.Changed("house-system") {
		cfg.Observer.HouseSystem = opts.houseSystem
	}
	if flags.Changed("rounding") {
		cfg.Output.Rounding = opts.rounding
	}
	if flags.Changed("midheaven") {
		cfg.Output.Midheaven = opts.midheaven
	}
	if flags.Changed("horizon-latitude") {
		cfg.Output.HorizonLatitude = opts.horizonLat
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = opts.logLevel
	}
	if flags.Changed("trace") {
		cfg.Tracing.Enabled = opts.trace
	}
	if flags.Changed("metrics") {
		cfg.Metrics.Enabled = opts.metrics
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func newApp(ctx context.Context, cmd *cobra.Command, opts *options) (*app, error) {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return nil, err
	}

	log := logging.New(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})

	shutdown, err := tracing.Init(ctx, tracing.Config{
		Enabled:     cfg.Tracing.Enabled,
		ServiceName: cfg.Tracing.ServiceName,
	}, log)
	if err != nil {
		return nil, err
	}

	obs, err := cfg.ToObserver()
	if err != nil {
		return nil, err
	}
	engineOpts, err := cfg.EngineOptions()
	if err != nil {
		return nil, err
	}
	engineOpts = append(engineOpts, zodiacal.WithLogger(log), zodiacal.WithTracer(tracing.Tracer()))

	a := &app{
		cfg:      cfg,
		obs:      obs,
		log:      log,
		out:      cmd.OutOrStdout(),
		jsonOut:  opts.jsonOut,
		shutdown: shutdown,
	}

	if cfg.Metrics.Enabled {
		a.registry = prometheus.NewRegistry()
		m, err := zodiacal.NewMetrics(a.registry)
		if err != nil {
			return nil, err
		}
		engineOpts = append(engineOpts, zodiacal.WithMetrics(m))
	}

	a.jd, err = resolveJD(cmd, opts)
	if err != nil {
		return nil, err
	}

	builtin := zodiacal.NewBuiltin()
	a.engine = zodiacal.NewEngine(builtin, builtin, engineOpts...)

	log.Debug(ctx, "engine ready",
		logging.Float("jd", a.jd),
		logging.Float("lat", obs.Latitude),
		logging.Float("lon", obs.Longitude),
		logging.String("house_system", obs.HouseSystem.String()),
	)
	return a, nil
}

func resolveJD(cmd *cobra.Command, opts *options) (float64, error) {
	if cmd.Flags().Changed("jd") {
		return opts.jd, nil
	}
	if opts.timeStr == "" {
		return zodiacal.JulianDay(time.Now().UTC()), nil
	}
	t, err := time.Parse(time.RFC3339, opts.timeStr)
	if err != nil {
		return 0, fmt.Errorf("invalid --time %q: %w", opts.timeStr, err)
	}
	return zodiacal.JulianDay(t), nil
}

func (a *app) close(ctx context.Context) {
	if a.registry != nil {
		if err := writeMetrics(os.Stderr, a.registry); err != nil {
			a.log.Warn(ctx, "failed to write metrics", logging.Err(err))
		}
	}
	tracing.ShutdownWithTimeout(ctx, a.shutdown, a.log)
}

func writeMetrics(w io.Writer, g prometheus.Gatherer) error {
	mfs, err := g.Gather()
	if err != nil {
		return err
	}
	for _, mf := range mfs {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}
	return nil
}
