package zodiacal_test

import (
	"context"
	"fmt"
	"time"

	"github.com/thurmanmarka/zodiacal"
)

// ExampleSplitDegrees shows a longitude broken down into sign and degrees.
func ExampleSplitDegrees() {
	s, err := zodiacal.SplitDegrees(290, zodiacal.Truncate)
	if err != nil {
		panic(err)
	}
	fmt.Println(s)
	// Output: 20°00'00 Capricorn
}

// ExampleComputeFortuna computes the Fortuna Part for a day chart.
func ExampleComputeFortuna() {
	res, err := zodiacal.ComputeFortuna(zodiacal.FortunaInput{
		Sun:  zodiacal.StateVector{Longitude: 10},
		Moon: zodiacal.StateVector{Longitude: 100},
		Houses: zodiacal.HouseData{
			Cusps:  []float64{200},
			Angles: zodiacal.AngleSet{Asc: 200, MC: 10},
		},
		Latitude:  45,
		Midheaven: zodiacal.MidheavenTrue,
	})
	if err != nil {
		panic(err)
	}
	fmt.Printf("%.1f diurnal=%v\n", res.Longitude, res.Diurnal)
	// Output: 290.0 diurnal=true
}

// ExampleEngine_Chart casts a chart with the built-in collaborators.
func ExampleEngine_Chart() {
	b := zodiacal.NewBuiltin()
	e := zodiacal.NewEngine(b, b)

	obs := zodiacal.Observer{
		Latitude:    33.4484,   // Phoenix, AZ
		Longitude:   -112.0740, // Phoenix longitude
		HouseSystem: zodiacal.Porphyry,
		Flags:       zodiacal.FlagSpeed,
	}
	jd := zodiacal.JulianDay(time.Date(2025, time.November, 30, 12, 0, 0, 0, time.UTC))

	c, err := e.Chart(context.Background(), jd, obs, []zodiacal.Body{
		zodiacal.Sun, zodiacal.Moon, zodiacal.SouthNode, zodiacal.FortunaPart,
	})
	if err != nil {
		panic(err)
	}
	for _, p := range c.Positions {
		fmt.Printf("%-12s %s %s\n", p.Name, p.Split, p.Motion)
	}
	// No // Output: block; the built-in series are approximate.
}
