// Package sample defines the mono sample buffer shared by every synthesis stage.
package sample

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig indicates a rejected buffer, tone, filter or envelope
// configuration. It is returned before any sample is generated.
var ErrInvalidConfig = errors.New("invalid synthesis configuration")

// Buffer is an ordered sequence of amplitudes, nominally in [-1, 1],
// tagged with the sample rate it was generated at.
type Buffer struct {
	// Samples holds the amplitudes.
	Samples []float64

	// Rate is the sample rate in Hz.
	Rate float64
}

// New allocates a zeroed buffer of the given length.
// Length must be at least 1 and rate must be positive.
func New(length int, rate float64) (Buffer, error) {
	if err := ValidateShape(length, rate); err != nil {
		return Buffer{}, err
	}
	return Buffer{Samples: make([]float64, length), Rate: rate}, nil
}

// FromSamples wraps existing samples without copying.
func FromSamples(samples []float64, rate float64) (Buffer, error) {
	if err := ValidateShape(len(samples), rate); err != nil {
		return Buffer{}, err
	}
	return Buffer{Samples: samples, Rate: rate}, nil
}

// ValidateShape checks the length and rate invariants of a buffer.
func ValidateShape(length int, rate float64) error {
	if rate <= 0 || math.IsNaN(rate) || math.IsInf(rate, 0) {
		return fmt.Errorf("%w: sample rate must be positive, got %v", ErrInvalidConfig, rate)
	}
	if length < 1 {
		return fmt.Errorf("%w: buffer length must be at least 1, got %d", ErrInvalidConfig, length)
	}
	return nil
}

// LengthFor returns round(duration*rate), the number of samples covering
// duration seconds. It fails when the result would be empty.
func LengthFor(duration, rate float64) (int, error) {
	if rate <= 0 || math.IsNaN(rate) || math.IsInf(rate, 0) {
		return 0, fmt.Errorf("%w: sample rate must be positive, got %v", ErrInvalidConfig, rate)
	}
	if duration <= 0 || math.IsNaN(duration) || math.IsInf(duration, 0) {
		return 0, fmt.Errorf("%w: duration must be positive, got %v", ErrInvalidConfig, duration)
	}
	n := int(math.Round(duration * rate))
	if n < 1 {
		return 0, fmt.Errorf("%w: duration %vs is shorter than one sample at %v Hz", ErrInvalidConfig, duration, rate)
	}
	return n, nil
}

// Len returns the number of samples.
func (b Buffer) Len() int {
	return len(b.Samples)
}

// Duration returns the buffer duration in seconds.
func (b Buffer) Duration() float64 {
	if b.Rate <= 0 {
		return 0
	}
	return float64(len(b.Samples)) / b.Rate
}

// Clone returns a deep copy.
func (b Buffer) Clone() Buffer {
	out := make([]float64, len(b.Samples))
	copy(out, b.Samples)
	return Buffer{Samples: out, Rate: b.Rate}
}

// Padded returns a copy of b with offset leading zeros and trailing zeros up
// to length. Samples that would fall past length are dropped.
func (b Buffer) Padded(offset, length int) Buffer {
	out := make([]float64, length)
	if offset < length {
		copy(out[offset:], b.Samples)
	}
	return Buffer{Samples: out, Rate: b.Rate}
}
