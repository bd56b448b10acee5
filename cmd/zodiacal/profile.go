package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/thurmanmarka/zodiacal"
	"github.com/thurmanmarka/zodiacal/internal/logging"
)

type stats struct {
	count int
	sum   float64
	min   float64
	max   float64
}

func (s *stats) add(v float64) {
	if math.IsNaN(v) {
		return
	}
	if s.count == 0 {
		s.min, s.max = v, v
	} else {
		if v < s.min {
			s.min = v
		}
		if v > s.max {
			s.max = v
		}
	}
	s.sum += v
	s.count++
}

func (s *stats) mean() float64 {
	if s.count == 0 {
		return math.NaN()
	}
	return s.sum / float64(s.count)
}

type bodyStats struct {
	abs    stats
	signed stats
}

// profileRow is one line of a reference ephemeris CSV:
//
//	time,body,longitude
//	2025-01-01,Sun,280.7412
//	2025-01-01T12:00:00Z,Moon,318.2251
//
// time is RFC3339 or YYYY-MM-DD (UTC midnight); longitude is in degrees.
type profileRow struct {
	line int
	when time.Time
	body zodiacal.Body
	lon  float64
}

func parseProfileTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

func readProfileRows(ctx context.Context, r io.Reader, log logging.Logger) ([]profileRow, int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, 0, fmt.Errorf("empty CSV file")
	}

	start := 0
	if len(records[0]) >= 1 && strings.EqualFold(strings.TrimSpace(records[0][0]), "time") {
		start = 1
	}

	var (
		rows    []profileRow
		skipped int
	)
	for i := start; i < len(records); i++ {
		rec := records[i]
		if len(rec) < 3 {
			log.Warn(ctx, "skipping row", logging.Int("line", i+1), logging.String("reason", "expected time,body,longitude"))
			skipped++
			continue
		}
		when, err := parseProfileTime(strings.TrimSpace(rec[0]))
		if err != nil {
			log.Warn(ctx, "skipping row", logging.Int("line", i+1), logging.Err(err))
			skipped++
			continue
		}
		body, err := zodiacal.ParseBody(strings.TrimSpace(rec[1]))
		if err != nil {
			log.Warn(ctx, "skipping row", logging.Int("line", i+1), logging.Err(err))
			skipped++
			continue
		}
		lon, err := strconv.ParseFloat(strings.TrimSpace(rec[2]), 64)
		if err != nil {
			log.Warn(ctx, "skipping row", logging.Int("line", i+1), logging.Err(err))
			skipped++
			continue
		}
		rows = append(rows, profileRow{line: i + 1, when: when, body: body, lon: lon})
	}
	return rows, skipped, nil
}

func profileCmd(opts *options) *cobra.Command {
	var (
		refCSV string
		outCSV string
	)

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Compare built-in positions against a reference ephemeris CSV",
		Long: `profile reads a CSV of reference longitudes (time,body,longitude), computes
each row with the built-in ephemeris and reports the error in arcminutes per
body.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if refCSV == "" {
				return fmt.Errorf("missing --refcsv (path to reference CSV)")
			}
			return withApp(cmd, opts, func(ctx context.Context, a *app) error {
				f, err := os.Open(refCSV)
				if err != nil {
					return fmt.Errorf("failed to open refcsv %q: %w", refCSV, err)
				}
				defer f.Close()

				rows, skipped, err := readProfileRows(ctx, f, a.log)
				if err != nil {
					return err
				}

				var w *csv.Writer
				if outCSV != "" {
					out, err := os.Create(outCSV)
					if err != nil {
						return fmt.Errorf("failed to create outcsv %q: %w", outCSV, err)
					}
					defer out.Close()
					w = csv.NewWriter(out)
					defer w.Flush()
					if err := w.Write([]string{"time", "body", "reference", "computed", "error_arcmin"}); err != nil {
						return fmt.Errorf("failed to write outcsv header: %w", err)
					}
				}

				perBody := map[zodiacal.Body]*bodyStats{}
				for _, row := range rows {
					pos, err := a.engine.Position(ctx, zodiacal.JulianDay(row.when), row.body, a.obs)
					if err != nil {
						a.log.Warn(ctx, "skipping row", logging.Int("line", row.line), logging.Err(err))
						skipped++
						continue
					}

					errMin := zodiacal.ClosestDistance(row.lon, pos.Longitude) * 60
					bs := perBody[row.body]
					if bs == nil {
						bs = &bodyStats{}
						perBody[row.body] = bs
					}
					bs.abs.add(math.Abs(errMin))
					bs.signed.add(errMin)

					if w != nil {
						rec := []string{
							row.when.Format(time.RFC3339),
							row.body.String(),
							strconv.FormatFloat(row.lon, 'f', 6, 64),
							strconv.FormatFloat(pos.Longitude, 'f', 6, 64),
							strconv.FormatFloat(errMin, 'f', 3, 64),
						}
						if err := w.Write(rec); err != nil {
							return fmt.Errorf("line %d: failed to write outcsv: %w", row.line, err)
						}
					}
				}

				printProfile(a.out, len(rows), skipped, perBody)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&refCSV, "refcsv", "", "Path to reference CSV (time,body,longitude)")
	cmd.Flags().StringVar(&outCSV, "outcsv", "", "Optional path to write per-row errors")
	return cmd
}

func printProfile(w io.Writer, total, skipped int, perBody map[zodiacal.Body]*bodyStats) {
	fmt.Fprintln(w, "=== zodiacal profiler summary ===")
	fmt.Fprintf(w, "Rows:   %d (read), %d skipped\n", total, skipped)

	if len(perBody) == 0 {
		fmt.Fprintln(w, "No valid rows to compute stats.")
		return
	}

	bodies := make([]zodiacal.Body, 0, len(perBody))
	for b := range perBody {
		bodies = append(bodies, b)
	}
	sort.Slice(bodies, func(i, j int) bool { return bodies[i] < bodies[j] })

	for _, b := range bodies {
		bs := perBody[b]
		fmt.Fprintf(w, "\n%s longitude error (arcminutes):\n", b.Name(zodiacal.English))
		fmt.Fprintf(w, "  count: %d\n", bs.abs.count)
		fmt.Fprintf(w, "  min:   %.3f\n", bs.abs.min)
		fmt.Fprintf(w, "  max:   %.3f\n", bs.abs.max)
		fmt.Fprintf(w, "  avg:   %.3f\n", bs.abs.mean())
		fmt.Fprintf(w, "  bias:  %.3f (ours - ref)\n", bs.signed.mean())
	}
}
