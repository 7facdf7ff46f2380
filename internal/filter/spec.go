package filter

import (
	"fmt"
	"math"
	"strings"

	"github.com/tphakala/go-uisound/internal/sample"
)

// Kind enumerates the supported filter responses.
type Kind int

const (
	// Highpass attenuates content below CutoffHz.
	Highpass Kind = iota

	// Lowpass attenuates content above CutoffHz.
	Lowpass

	// Bandpass keeps content between LowHz and HighHz.
	Bandpass
)

var kindNames = map[Kind]string{
	Highpass: "highpass",
	Lowpass:  "lowpass",
	Bandpass: "bandpass",
}

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if _, ok := kindNames[k]; !ok {
		return nil, fmt.Errorf("%w: unknown filter kind %d", sample.ErrInvalidConfig, int(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	name := strings.ToLower(strings.TrimSpace(string(text)))
	for kind, n := range kindNames {
		if n == name {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("%w: unknown filter kind %q", sample.ErrInvalidConfig, string(text))
}

// Spec describes a Butterworth filter to be designed.
//
// Highpass and Lowpass use CutoffHz; Bandpass uses LowHz and HighHz.
// Rate is the sample rate the filter will run at; recipes leave it zero and
// the renderer fills it in with WithRate.
type Spec struct {
	Kind     Kind    `yaml:"kind"`
	Order    int     `yaml:"order"`
	CutoffHz float64 `yaml:"cutoff_hz,omitempty"`
	LowHz    float64 `yaml:"low_hz,omitempty"`
	HighHz   float64 `yaml:"high_hz,omitempty"`
	Rate     float64 `yaml:"-"`
}

// NewHighpass returns a highpass spec.
func NewHighpass(order int, cutoffHz, rate float64) Spec {
	return Spec{Kind: Highpass, Order: order, CutoffHz: cutoffHz, Rate: rate}
}

// NewLowpass returns a lowpass spec.
func NewLowpass(order int, cutoffHz, rate float64) Spec {
	return Spec{Kind: Lowpass, Order: order, CutoffHz: cutoffHz, Rate: rate}
}

// NewBandpass returns a bandpass spec.
func NewBandpass(order int, lowHz, highHz, rate float64) Spec {
	return Spec{Kind: Bandpass, Order: order, LowHz: lowHz, HighHz: highHz, Rate: rate}
}

// WithRate returns a copy of s bound to the given sample rate.
func (s Spec) WithRate(rate float64) Spec {
	s.Rate = rate
	return s
}

// Nyquist returns half the sample rate.
func (s Spec) Nyquist() float64 {
	return s.Rate / halfDivisor
}

// Validate checks the spec against the sample rate it is bound to.
func (s Spec) Validate() error {
	if s.Rate <= 0 || math.IsNaN(s.Rate) || math.IsInf(s.Rate, 0) {
		return fmt.Errorf("%w: filter sample rate must be positive, got %v", sample.ErrInvalidConfig, s.Rate)
	}

	if s.Order < minOrder || s.Order > maxOrder {
		return fmt.Errorf("%w: filter order %d out of range [%d, %d]", sample.ErrInvalidConfig, s.Order, minOrder, maxOrder)
	}

	nyquist := s.Nyquist()
	switch s.Kind {
	case Highpass, Lowpass:
		if s.CutoffHz <= 0 || math.IsNaN(s.CutoffHz) {
			return fmt.Errorf("%w: %s cutoff must be positive, got %v Hz", sample.ErrInvalidConfig, s.Kind, s.CutoffHz)
		}
		if s.CutoffHz >= nyquist {
			return fmt.Errorf("%w: %s cutoff %v Hz must be below Nyquist (%v Hz)", sample.ErrInvalidConfig, s.Kind, s.CutoffHz, nyquist)
		}

	case Bandpass:
		if s.LowHz <= 0 || math.IsNaN(s.LowHz) {
			return fmt.Errorf("%w: bandpass low edge must be positive, got %v Hz", sample.ErrInvalidConfig, s.LowHz)
		}
		if s.LowHz >= s.HighHz || math.IsNaN(s.HighHz) {
			return fmt.Errorf("%w: bandpass low edge %v Hz must be below high edge %v Hz", sample.ErrInvalidConfig, s.LowHz, s.HighHz)
		}
		if s.HighHz >= nyquist {
			return fmt.Errorf("%w: bandpass high edge %v Hz must be below Nyquist (%v Hz)", sample.ErrInvalidConfig, s.HighHz, nyquist)
		}

	default:
		return fmt.Errorf("%w: unknown filter kind %d", sample.ErrInvalidConfig, int(s.Kind))
	}

	return nil
}
