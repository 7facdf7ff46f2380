package uisound

import (
	"errors"
	"fmt"
	"log"
	"math"

	"github.com/tphakala/go-uisound/internal/envelope"
	"github.com/tphakala/go-uisound/internal/filter"
	"github.com/tphakala/go-uisound/internal/pcm"
	"github.com/tphakala/go-uisound/internal/sample"
	"github.com/tphakala/go-uisound/internal/source"
)

// Common errors returned by the synthesizer.
var (
	// ErrInvalidConfig indicates a rejected configuration: a bad sample
	// rate, filter, tone, envelope or recipe. It is returned before any
	// sample is generated.
	ErrInvalidConfig = sample.ErrInvalidConfig

	// ErrUnknownRecipe indicates a recipe identifier or name that is not in
	// the catalog.
	ErrUnknownRecipe = errors.New("unknown recipe")
)

// Types shared with the synthesis stages.
type (
	// Buffer is a mono sample buffer tagged with its sample rate.
	Buffer = sample.Buffer

	// Container is an encoded mono 16-bit PCM sound.
	Container = pcm.Container

	// SourceSpec describes one signal source of a recipe layer.
	SourceSpec = source.Spec

	// FilterSpec describes a Butterworth highpass, lowpass or bandpass filter.
	FilterSpec = filter.Spec

	// EnvelopeSpec describes an amplitude envelope.
	EnvelopeSpec = envelope.Spec
)

// Config holds synthesis configuration. Every value is passed explicitly;
// nothing is read from package state.
type Config struct {
	// SampleRate is the output rate in Hz. It must be a whole number
	// between 8 kHz and 192 kHz.
	SampleRate float64

	// Seed initializes the noise generators. Equal seeds give identical
	// output.
	Seed uint64

	// Peak overrides the target peak of every recipe when non-zero.
	Peak float64

	// EnableParallel renders independent recipes concurrently in RenderAll.
	EnableParallel bool

	// Logger receives warnings about samples clamped during quantization.
	// Nil disables them.
	Logger *log.Logger
}

// DefaultConfig returns CD rate, the default seed and the recipes' own peaks.
func DefaultConfig() Config {
	return Config{
		SampleRate: RateCD,
		Seed:       DefaultSeed,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.SampleRate < minSampleRate || c.SampleRate > maxSampleRate || math.IsNaN(c.SampleRate) {
		return fmt.Errorf("%w: sample rate must be %d-%d Hz, got %v",
			ErrInvalidConfig, minSampleRate, maxSampleRate, c.SampleRate)
	}
	if c.SampleRate != math.Trunc(c.SampleRate) {
		return fmt.Errorf("%w: sample rate must be a whole number of Hz, got %v", ErrInvalidConfig, c.SampleRate)
	}
	if c.Peak < 0 || c.Peak > maxPeak || math.IsNaN(c.Peak) {
		return fmt.Errorf("%w: peak must be in [0, 1], got %v", ErrInvalidConfig, c.Peak)
	}
	return nil
}

func (c *Config) warnf(format string, args ...any) {
	if c.Logger != nil {
		c.Logger.Printf(format, args...)
	}
}
