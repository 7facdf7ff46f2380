package uisound

import (
	"fmt"
	"math"

	"github.com/tphakala/go-uisound/internal/envelope"
	"github.com/tphakala/go-uisound/internal/filter"
	"github.com/tphakala/go-uisound/internal/pipeline"
	"github.com/tphakala/go-uisound/internal/sample"
)

// StageOrder decides whether the recipe envelope shapes the mix before or
// after the filter.
type StageOrder = pipeline.Order

// Stage orders.
const (
	FilterThenEnvelope = pipeline.FilterThenEnvelope
	EnvelopeThenFilter = pipeline.EnvelopeThenFilter
)

// Layer is one weighted source in a recipe's mix.
type Layer struct {
	Source SourceSpec `yaml:"source"`

	// Weight multiplies the layer in the mix.
	Weight float64 `yaml:"weight"`

	// Offset delays the layer start, in seconds.
	Offset float64 `yaml:"offset,omitempty"`

	// Envelope, when set, shapes this layer alone before mixing.
	Envelope *EnvelopeSpec `yaml:"envelope,omitempty"`
}

// Recipe is a data description of one sound: the layers to mix, an
// optional filter and envelope over the mix, and the target peak.
type Recipe struct {
	Name        string        `yaml:"name"`
	Description string        `yaml:"description,omitempty"`
	Layers      []Layer       `yaml:"layers"`
	Filter      *FilterSpec   `yaml:"filter,omitempty"`
	Envelope    *EnvelopeSpec `yaml:"envelope,omitempty"`
	Order       StageOrder    `yaml:"order,omitempty"`
	Peak        float64       `yaml:"peak"`
}

// Clone returns a deep copy.
func (r Recipe) Clone() Recipe {
	out := r
	out.Layers = make([]Layer, len(r.Layers))
	for i, l := range r.Layers {
		out.Layers[i] = l
		if l.Envelope != nil {
			e := *l.Envelope
			out.Layers[i].Envelope = &e
		}
	}
	if r.Filter != nil {
		f := *r.Filter
		out.Filter = &f
	}
	if r.Envelope != nil {
		e := *r.Envelope
		out.Envelope = &e
	}
	return out
}

// Validate checks every part of the recipe against rate. A recipe that
// passes renders without configuration errors.
func (r *Recipe) Validate(rate float64) error {
	return r.validate(rate, r.Peak)
}

func (r *Recipe) validate(rate, peak float64) error {
	if r.Name == "" {
		return fmt.Errorf("%w: recipe has no name", ErrInvalidConfig)
	}
	if len(r.Layers) == 0 {
		return fmt.Errorf("%w: recipe %s has no layers", ErrInvalidConfig, r.Name)
	}

	for i, l := range r.Layers {
		if err := l.validate(rate); err != nil {
			return fmt.Errorf("recipe %s layer %d: %w", r.Name, i, err)
		}
	}

	if _, err := pipeline.BuildPipeline(r.pipelineSpec(peak), rate); err != nil {
		return fmt.Errorf("recipe %s: %w", r.Name, err)
	}
	return nil
}

func (l Layer) validate(rate float64) error {
	if err := l.Source.Validate(); err != nil {
		return err
	}
	if _, err := sample.LengthFor(l.Source.Duration, rate); err != nil {
		return err
	}
	if math.IsNaN(l.Weight) || math.IsInf(l.Weight, 0) {
		return fmt.Errorf("%w: weight must be finite", ErrInvalidConfig)
	}
	if l.Offset < 0 || math.IsNaN(l.Offset) || math.IsInf(l.Offset, 0) {
		return fmt.Errorf("%w: offset must be non-negative, got %v", ErrInvalidConfig, l.Offset)
	}
	if end := l.Offset + l.Source.Duration; end > maxDuration {
		return fmt.Errorf("%w: layer ends at %vs, limit is %vs", ErrInvalidConfig, end, maxDuration)
	}
	if l.Envelope != nil {
		return l.Envelope.Validate()
	}
	return nil
}

func (r *Recipe) pipelineSpec(peak float64) pipeline.Spec {
	var f *filter.Spec
	if r.Filter != nil {
		spec := *r.Filter
		f = &spec
	}
	var e *envelope.Spec
	if r.Envelope != nil {
		spec := *r.Envelope
		e = &spec
	}
	return pipeline.Spec{
		Filter:   f,
		Envelope: e,
		Order:    r.Order,
		Peak:     peak,
	}
}

// Duration returns the length of the mix in seconds at rate.
func (r *Recipe) Duration(rate float64) float64 {
	end := 0
	for _, l := range r.Layers {
		n, err := sample.LengthFor(l.Source.Duration, rate)
		if err != nil {
			continue
		}
		end = max(end, offsetSamples(l.Offset, rate)+n)
	}
	return float64(end) / rate
}

func offsetSamples(offset, rate float64) int {
	return int(math.Round(offset * rate))
}
