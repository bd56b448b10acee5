// Command zodiacal prints derived astrological positions computed with the
// built-in low-precision ephemeris.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const (
	Version = "0.1.0"
	appName = "zodiacal"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Derived astrological positions",
		Long: `zodiacal turns ephemeris state vectors into zodiac positions, motion
states, house cusps, the South Node and the Fortuna Part.

Positions come from a built-in analytic series for the Sun, Moon and lunar
nodes; houses support Equal, Whole Sign and Porphyry.`,
		SilenceUsage: true,
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.configPath, "config", "c", "", "Config file path (YAML)")
	pf.Float64Var(&opts.lat, "lat", 0, "Latitude in degrees (north positive)")
	pf.Float64Var(&opts.lon, "lon", 0, "Longitude in degrees (east positive, west negative)")
	pf.StringVar(&opts.timeStr, "time", "", "Time in RFC3339 (defaults to now)")
	pf.Float64Var(&opts.jd, "jd", 0, "Julian day (UT); overrides --time")
	pf.StringVar(&opts.houseSystem, "house-system", "", "House system: equal, whole-sign or porphyry")
	pf.StringVar(&opts.rounding, "rounding", "", "Degree split rounding: truncate, second or minute")
	pf.StringVar(&opts.midheaven, "midheaven", "", "Fortuna midheaven source: legacy or true")
	pf.StringVar(&opts.horizonLat, "horizon-latitude", "", "Fortuna horizon latitude: legacy (MC declination) or geographic")
	pf.BoolVar(&opts.jsonOut, "json", false, "Output as JSON")
	pf.StringVar(&opts.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	pf.BoolVar(&opts.trace, "trace", false, "Print OpenTelemetry spans to stderr")
	pf.BoolVar(&opts.metrics, "metrics", false, "Print Prometheus metrics to stderr on exit")

	cmd.AddCommand(
		positionCmd(opts),
		fortunaCmd(opts),
		housesCmd(opts),
		chartCmd(opts),
		splitCmd(opts),
		equatorialCmd(opts),
		ingressCmd(opts),
		stationCmd(opts),
		profileCmd(opts),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, Version)
			},
		},
	)

	return cmd
}

// withApp builds the application for one command run and tears it down
// afterwards.
func withApp(cmd *cobra.Command, opts *options, fn func(ctx context.Context, a *app) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	a, err := newApp(ctx, cmd, opts)
	if err != nil {
		return err
	}
	defer a.close(ctx)

	return fn(ctx, a)
}
