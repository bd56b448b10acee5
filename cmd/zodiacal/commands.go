package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/thurmanmarka/zodiacal"
)

var defaultBodies = []zodiacal.Body{
	zodiacal.Sun,
	zodiacal.Moon,
	zodiacal.TrueNode,
	zodiacal.SouthNode,
	zodiacal.FortunaPart,
}

func parseBodies(args []string) ([]zodiacal.Body, error) {
	if len(args) == 0 {
		return defaultBodies, nil
	}
	bodies := make([]zodiacal.Body, 0, len(args))
	for _, s := range args {
		b, err := zodiacal.ParseBody(s)
		if err != nil {
			return nil, err
		}
		bodies = append(bodies, b)
	}
	return bodies, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func positionCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "position [body...]",
		Short: "Print derived positions (default: Sun, Moon, nodes, Fortuna)",
		RunE: func(cmd *cobra.Command, args []string) error {
			bodies, err := parseBodies(args)
			if err != nil {
				return err
			}
			return withApp(cmd, opts, func(ctx context.Context, a *app) error {
				positions := make([]zodiacal.DerivedPosition, 0, len(bodies))
				for _, b := range bodies {
					pos, err := a.engine.Position(ctx, a.jd, b, a.obs)
					if err != nil {
						return err
					}
					positions = append(positions, pos)
				}
				if a.jsonOut {
					return printJSON(a.out, positions)
				}
				printPositions(a.out, positions)
				return nil
			})
		},
	}
}

func printPositions(w io.Writer, positions []zodiacal.DerivedPosition) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "BODY\tLONGITUDE\tPOSITION\tSPEED\tMOTION")
	for _, p := range positions {
		fmt.Fprintf(tw, "%s\t%.4f\t%s\t%.4f\t%s\n", p.Name, p.Longitude, p.Split, p.SpeedLongitude, p.Motion)
	}
	tw.Flush()
}

func fortunaCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "fortuna",
		Short: "Compute the Fortuna Part and show the day/night decision",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, func(ctx context.Context, a *app) error {
				pos, res, err := a.engine.Fortuna(ctx, a.jd, a.obs)
				if err != nil {
					return err
				}
				if a.jsonOut {
					return printJSON(a.out, struct {
						Position zodiacal.DerivedPosition `json:"position"`
						Detail   zodiacal.FortunaResult   `json:"detail"`
					}{pos, res})
				}

				sect := "nocturnal"
				if res.Diurnal {
					sect = "diurnal"
				}
				fmt.Fprintf(a.out, "Fortuna part : %s (%.4f°)\n", pos.Split, pos.Longitude)
				fmt.Fprintf(a.out, "Chart        : %s (midheaven %s, horizon %s)\n", sect, a.cfg.Output.Midheaven, a.cfg.Output.HorizonLatitude)
				fmt.Fprintf(a.out, "Horizon lat  : %.4f°\n", res.HorizonLat)
				fmt.Fprintf(a.out, "Ascendant    : %.4f°\n", res.Ascendant)
				fmt.Fprintf(a.out, "Sun RA/Dec   : %.4f° / %.4f°\n", res.SunEq.RA, res.SunEq.Dec)
				fmt.Fprintf(a.out, "MC RA        : %.4f°\n", res.MCEq.RA)
				fmt.Fprintf(a.out, "Sun arcs     : %.4f° day, %.4f° night\n", res.SunArcs.Diurnal, res.SunArcs.Nocturnal)
				return nil
			})
		},
	}
}

func housesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "houses",
		Short: "Print house cusps",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, opts, func(ctx context.Context, a *app) error {
				hs, hd, err := a.engine.Houses(ctx, a.jd, a.obs)
				if err != nil {
					return err
				}
				if a.jsonOut {
					return printJSON(a.out, struct {
						System zodiacal.HouseSystem `json:"system"`
						Houses []zodiacal.House     `json:"houses"`
						Angles zodiacal.AngleSet    `json:"angles"`
					}{a.obs.HouseSystem, hs, hd.Angles})
				}
				printHouses(a.out, hs)
				return nil
			})
		},
	}
}

func printHouses(w io.Writer, hs []zodiacal.House) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "HOUSE\tLONGITUDE\tPOSITION\tANGLE")
	for _, h := range hs {
		fmt.Fprintf(tw, "%d\t%.4f\t%s\t%s\n", h.Number, h.Longitude, h.Split, h.Angle)
	}
	tw.Flush()
}

func chartCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "chart [body...]",
		Short: "Print positions, houses and aspects together",
		RunE: func(cmd *cobra.Command, args []string) error {
			bodies, err := parseBodies(args)
			if err != nil {
				return err
			}
			return withApp(cmd, opts, func(ctx context.Context, a *app) error {
				c, err := a.engine.Chart(ctx, a.jd, a.obs, bodies)
				if err != nil {
					return err
				}
				if a.jsonOut {
					return printJSON(a.out, c)
				}
				printPositions(a.out, c.Positions)
				fmt.Fprintln(a.out)
				printHouses(a.out, c.Houses)
				if len(c.Aspects) > 0 {
					fmt.Fprintln(a.out)
					for _, as := range c.Aspects {
						fmt.Fprintf(a.out, "%s %s %s (orb %.2f°)\n", as.A.Name(zodiacal.English), as.Aspect, as.B.Name(zodiacal.English), as.Deviation)
					}
				}
				return nil
			})
		},
	}
}

func splitCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "split <longitude>",
		Short: "Split an ecliptic longitude into sign, degree, minute and second",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lon, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid longitude %q: %w", args[0], err)
			}
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			mode, err := zodiacal.ParseRounding(cfg.Output.Rounding)
			if err != nil {
				return err
			}
			s, err := zodiacal.SplitDegrees(lon, mode)
			if err != nil {
				return err
			}
			if opts.jsonOut {
				return printJSON(cmd.OutOrStdout(), s)
			}
			fmt.Fprintln(cmd.OutOrStdout(), s)
			return nil
		},
	}
}

func equatorialCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "equatorial <longitude> [latitude]",
		Short: "Convert ecliptic coordinates to right ascension and declination",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			vals := make([]float64, 2)
			for i, s := range args {
				v, err := strconv.ParseFloat(s, 64)
				if err != nil {
					return fmt.Errorf("invalid coordinate %q: %w", s, err)
				}
				vals[i] = v
			}
			eq, err := zodiacal.EquatorialFromEcliptic(vals[0], vals[1])
			if err != nil {
				return err
			}
			if opts.jsonOut {
				return printJSON(cmd.OutOrStdout(), eq)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "RA %.6f°  Dec %.6f°\n", eq.RA, eq.Dec)
			return nil
		},
	}
}

func ingressCmd(opts *options) *cobra.Command {
	var within float64

	cmd := &cobra.Command{
		Use:   "ingress <body>",
		Short: "Find the next sign change of a body",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := zodiacal.ParseBody(args[0])
			if err != nil {
				return err
			}
			return withApp(cmd, opts, func(ctx context.Context, a *app) error {
				in, err := a.engine.NextIngress(ctx, a.jd, body, a.obs, within)
				if err != nil {
					return err
				}
				if a.jsonOut {
					return printJSON(a.out, in)
				}
				dir := ""
				if in.Retrograde {
					dir = " (retrograde)"
				}
				fmt.Fprintf(a.out, "%s enters %s from %s at %s%s\n",
					body.Name(zodiacal.English), in.To, in.From, in.Time.Format(time.RFC3339), dir)
				return nil
			})
		},
	}
	cmd.Flags().Float64Var(&within, "within", 400, "Search window in days")
	return cmd
}

func stationCmd(opts *options) *cobra.Command {
	var within float64

	cmd := &cobra.Command{
		Use:   "station <body>",
		Short: "Find the next time a body turns retrograde or direct",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := zodiacal.ParseBody(args[0])
			if err != nil {
				return err
			}
			return withApp(cmd, opts, func(ctx context.Context, a *app) error {
				st, err := a.engine.NextStation(ctx, a.jd, body, a.obs, within)
				if err != nil {
					return err
				}
				if a.jsonOut {
					return printJSON(a.out, st)
				}
				split, err := zodiacal.SplitDegrees(st.Longitude, zodiacal.Truncate)
				if err != nil {
					return err
				}
				fmt.Fprintf(a.out, "%s turns %s at %s, %s\n",
					body.Name(zodiacal.English), st.Turning, st.Time.Format(time.RFC3339), split)
				return nil
			})
		},
	}
	cmd.Flags().Float64Var(&within, "within", 400, "Search window in days")
	return cmd
}
