// Package pipeline chains the post-mix processing of a recipe: an optional
// filter, an optional envelope and the final peak normalization.
package pipeline

import (
	"fmt"
	"strings"

	"github.com/tphakala/go-uisound/internal/envelope"
	"github.com/tphakala/go-uisound/internal/filter"
	"github.com/tphakala/go-uisound/internal/mix"
	"github.com/tphakala/go-uisound/internal/sample"
)

// Stage represents a single processing step applied to a mixed buffer.
type Stage interface {
	// Process returns a new buffer; the input is left untouched.
	Process(in sample.Buffer) (sample.Buffer, error)

	// Type identifies the stage.
	Type() StageType
}

// StageType identifies the type of processing stage.
type StageType int

const (
	// StageFilter runs a Butterworth section cascade.
	StageFilter StageType = iota

	// StageEnvelope multiplies by an envelope curve.
	StageEnvelope

	// StageNormalize rescales to the target peak.
	StageNormalize
)

func (t StageType) String() string {
	if name, ok := stageNames[t]; ok {
		return name
	}
	return fmt.Sprintf("StageType(%d)", int(t))
}

// Order decides whether the envelope shapes the signal before or after
// filtering. Normalization always runs last.
type Order int

const (
	// FilterThenEnvelope filters the mix, then shapes it.
	FilterThenEnvelope Order = iota

	// EnvelopeThenFilter shapes the mix, then filters it. The filter's
	// ringing is then left unshaped, which suits percussive clicks.
	EnvelopeThenFilter
)

func (o Order) String() string {
	if name, ok := orderNames[o]; ok {
		return name
	}
	return fmt.Sprintf("Order(%d)", int(o))
}

// MarshalText implements encoding.TextMarshaler.
func (o Order) MarshalText() ([]byte, error) {
	if _, ok := orderNames[o]; !ok {
		return nil, fmt.Errorf("%w: unknown stage order %d", sample.ErrInvalidConfig, int(o))
	}
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *Order) UnmarshalText(text []byte) error {
	name := strings.ToLower(strings.TrimSpace(string(text)))
	for order, n := range orderNames {
		if n == name {
			*o = order
			return nil
		}
	}
	return fmt.Errorf("%w: unknown stage order %q", sample.ErrInvalidConfig, string(text))
}

// Spec describes the post-mix chain of one recipe.
type Spec struct {
	Filter   *filter.Spec
	Envelope *envelope.Spec
	Order    Order
	Peak     float64
}

// Pipeline is a validated, ready to run stage chain.
type Pipeline struct {
	stages []Stage
	rate   float64
}

// BuildPipeline validates spec, designs the filter at rate and returns the
// chain. Nothing is built if any part is invalid.
func BuildPipeline(spec Spec, rate float64) (*Pipeline, error) {
	if _, ok := orderNames[spec.Order]; !ok {
		return nil, fmt.Errorf("%w: unknown stage order %d", sample.ErrInvalidConfig, int(spec.Order))
	}
	if spec.Peak <= 0 || spec.Peak > 1 {
		return nil, fmt.Errorf("%w: target peak must be in (0, 1], got %v", sample.ErrInvalidConfig, spec.Peak)
	}

	var filterStage, envelopeStage Stage
	if spec.Filter != nil {
		coeffs, err := filter.Design(spec.Filter.WithRate(rate))
		if err != nil {
			return nil, err
		}
		filterStage = &FilterStage{coeffs: coeffs}
	}
	if spec.Envelope != nil {
		if err := spec.Envelope.Validate(); err != nil {
			return nil, err
		}
		envelopeStage = &EnvelopeStage{spec: *spec.Envelope}
	}

	p := &Pipeline{
		stages: make([]Stage, 0, defaultStageCapacity),
		rate:   rate,
	}
	first, second := filterStage, envelopeStage
	if spec.Order == EnvelopeThenFilter {
		first, second = envelopeStage, filterStage
	}
	for _, s := range []Stage{first, second} {
		if s != nil {
			p.stages = append(p.stages, s)
		}
	}
	p.stages = append(p.stages, &NormalizeStage{peak: spec.Peak})

	return p, nil
}

// Run pushes buf through every stage in order.
func (p *Pipeline) Run(buf sample.Buffer) (sample.Buffer, error) {
	if buf.Rate != p.rate {
		return sample.Buffer{}, fmt.Errorf("%w: pipeline built for %v Hz, got %v Hz",
			sample.ErrInvalidConfig, p.rate, buf.Rate)
	}
	out := buf
	for _, s := range p.stages {
		var err error
		if out, err = s.Process(out); err != nil {
			return sample.Buffer{}, fmt.Errorf("%s stage: %w", s.Type(), err)
		}
	}
	return out, nil
}

// GetStages returns the stage types in execution order.
func (p *Pipeline) GetStages() []StageType {
	types := make([]StageType, len(p.stages))
	for i, s := range p.stages {
		types[i] = s.Type()
	}
	return types
}

// FilterStage applies designed filter coefficients.
type FilterStage struct {
	coeffs *filter.Coefficients
}

// Process implements Stage.
func (s *FilterStage) Process(in sample.Buffer) (sample.Buffer, error) {
	return s.coeffs.Apply(in)
}

// Type implements Stage.
func (s *FilterStage) Type() StageType { return StageFilter }

// Coefficients returns the designed sections.
func (s *FilterStage) Coefficients() *filter.Coefficients { return s.coeffs }

// EnvelopeStage builds a curve for each buffer it sees and applies it.
type EnvelopeStage struct {
	spec envelope.Spec
}

// Process implements Stage.
func (s *EnvelopeStage) Process(in sample.Buffer) (sample.Buffer, error) {
	return envelope.Shape(s.spec, in)
}

// Type implements Stage.
func (s *EnvelopeStage) Type() StageType { return StageEnvelope }

// NormalizeStage rescales to a target peak.
type NormalizeStage struct {
	peak float64
}

// Process implements Stage.
func (s *NormalizeStage) Process(in sample.Buffer) (sample.Buffer, error) {
	return mix.Normalize(in, s.peak)
}

// Type implements Stage.
func (s *NormalizeStage) Type() StageType { return StageNormalize }
