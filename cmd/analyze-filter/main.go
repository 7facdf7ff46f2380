// Command analyze-filter prints the second-order sections and magnitude
// response of a Butterworth filter design.
//
// Usage:
//
//	analyze-filter -kind highpass -order 3 -cutoff 1000
//	analyze-filter -kind bandpass -order 2 -low 2000 -high 6000 -rate 48000
//	analyze-filter -recipe click-impulse
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	uisound "github.com/tphakala/go-uisound"
	"github.com/tphakala/go-uisound/internal/filter"
)

const (
	defaultOrder  = 2
	defaultCutoff = 1000.0
	defaultPoints = 16
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("analyze-filter", flag.ContinueOnError)
	kind := fs.String("kind", "highpass", "Filter kind: highpass, lowpass, bandpass")
	order := fs.Int("order", defaultOrder, "Filter order")
	cutoff := fs.Float64("cutoff", defaultCutoff, "Cutoff frequency in Hz (highpass, lowpass)")
	low := fs.Float64("low", 0, "Lower band edge in Hz (bandpass)")
	high := fs.Float64("high", 0, "Upper band edge in Hz (bandpass)")
	rate := fs.Float64("rate", uisound.RateCD, "Sample rate in Hz")
	points := fs.Int("points", defaultPoints, "Number of response points to print")
	recipe := fs.String("recipe", "", "Analyze the filter of a catalog recipe instead")
	if err := fs.Parse(args); err != nil {
		return err
	}

	spec, err := buildSpec(*recipe, *kind, *order, *cutoff, *low, *high, *rate)
	if err != nil {
		return err
	}
	coeffs, err := filter.Design(spec)
	if err != nil {
		return err
	}

	printDesign(out, coeffs, *points)
	return nil
}

func buildSpec(recipe, kind string, order int, cutoff, low, high, rate float64) (filter.Spec, error) {
	if recipe != "" {
		id, err := uisound.ParseRecipeID(recipe)
		if err != nil {
			return filter.Spec{}, err
		}
		r, err := uisound.Lookup(id)
		if err != nil {
			return filter.Spec{}, err
		}
		if r.Filter == nil {
			return filter.Spec{}, errors.New(r.Name + " has no filter")
		}
		return r.Filter.WithRate(rate), nil
	}

	var k filter.Kind
	if err := k.UnmarshalText([]byte(kind)); err != nil {
		return filter.Spec{}, err
	}
	switch k {
	case filter.Bandpass:
		return filter.NewBandpass(order, low, high, rate), nil
	case filter.Lowpass:
		return filter.NewLowpass(order, cutoff, rate), nil
	default:
		return filter.NewHighpass(order, cutoff, rate), nil
	}
}

func printDesign(out io.Writer, c *filter.Coefficients, points int) {
	s := c.Spec
	fmt.Fprintf(out, "=== Butterworth %s, order %d, %.0f Hz ===\n", s.Kind, s.Order, s.Rate)
	if s.Kind == filter.Bandpass {
		fmt.Fprintf(out, "  Band: %.1f - %.1f Hz\n", s.LowHz, s.HighHz)
	} else {
		fmt.Fprintf(out, "  Cutoff: %.1f Hz\n", s.CutoffHz)
	}

	fmt.Fprintf(out, "\nSections (%d):\n", len(c.Sections))
	for i, sec := range c.Sections {
		fmt.Fprintf(out, "  %d: b = [% .10f % .10f % .10f]  a = [1 % .10f % .10f]\n",
			i, sec.B0, sec.B1, sec.B2, sec.A1, sec.A2)
	}

	fmt.Fprintf(out, "\nMagnitude response:\n")
	resp := c.ComputeFrequencyResponse(points)
	for k, f := range resp.Frequencies {
		fmt.Fprintf(out, "  %8.1f Hz  %8.2f dB\n", f, filter.MagnitudeDB(resp.Magnitude[k]))
	}

	fmt.Fprintf(out, "\nAt band edges:\n")
	for _, f := range edges(s) {
		fmt.Fprintf(out, "  %8.1f Hz  %8.2f dB\n", f, filter.MagnitudeDB(c.Magnitude(f)))
	}
}

// edges returns the frequencies where the response should be -3 dB.
func edges(s filter.Spec) []float64 {
	if s.Kind == filter.Bandpass {
		return []float64{s.LowHz, s.HighHz}
	}
	return []float64{s.CutoffHz}
}
