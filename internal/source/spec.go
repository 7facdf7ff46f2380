package source

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strings"

	"github.com/tphakala/go-uisound/internal/sample"
)

// Waveform selects the periodic function of a tone.
type Waveform int

const (
	// Sine is sin(φ).
	Sine Waveform = iota

	// Sawtooth ramps linearly from -1 to 1 over one period.
	Sawtooth

	// Square is +1 for the first half period and -1 for the second.
	Square
)

var waveformNames = map[Waveform]string{
	Sine:     "sine",
	Sawtooth: "sawtooth",
	Square:   "square",
}

func (w Waveform) String() string {
	if name, ok := waveformNames[w]; ok {
		return name
	}
	return fmt.Sprintf("Waveform(%d)", int(w))
}

// MarshalText implements encoding.TextMarshaler.
func (w Waveform) MarshalText() ([]byte, error) {
	if _, ok := waveformNames[w]; !ok {
		return nil, fmt.Errorf("%w: unknown waveform %d", sample.ErrInvalidConfig, int(w))
	}
	return []byte(w.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (w *Waveform) UnmarshalText(text []byte) error {
	name := strings.ToLower(strings.TrimSpace(string(text)))
	for wf, n := range waveformNames {
		if n == name {
			*w = wf
			return nil
		}
	}
	return fmt.Errorf("%w: unknown waveform %q", sample.ErrInvalidConfig, string(text))
}

func (w Waveform) fn() func(float64) float64 {
	switch w {
	case Sawtooth:
		return sawtooth
	case Square:
		return square
	default:
		return sine
	}
}

// ToneSpec describes one oscillator burst.
type ToneSpec struct {
	Frequency float64  // Hz, > 0
	Duration  float64  // seconds, > 0
	Amplitude float64  // (0, 1]
	Waveform  Waveform // sine, sawtooth or square
}

// Validate checks the tone parameters.
func (s ToneSpec) Validate() error {
	if s.Frequency <= 0 || math.IsNaN(s.Frequency) || math.IsInf(s.Frequency, 0) {
		return fmt.Errorf("%w: tone frequency must be positive, got %v", sample.ErrInvalidConfig, s.Frequency)
	}
	if s.Duration <= 0 || math.IsNaN(s.Duration) || math.IsInf(s.Duration, 0) {
		return fmt.Errorf("%w: tone duration must be positive, got %v", sample.ErrInvalidConfig, s.Duration)
	}
	if s.Amplitude <= 0 || s.Amplitude > maxToneAmplitude || math.IsNaN(s.Amplitude) {
		return fmt.Errorf("%w: tone amplitude must be in (0, 1], got %v", sample.ErrInvalidConfig, s.Amplitude)
	}
	if _, ok := waveformNames[s.Waveform]; !ok {
		return fmt.Errorf("%w: unknown waveform %d", sample.ErrInvalidConfig, int(s.Waveform))
	}
	return nil
}

// Kind enumerates the sources a recipe layer can draw from.
type Kind int

const (
	// KindUniform is uniform white noise.
	KindUniform Kind = iota

	// KindPink is pink (1/f) noise.
	KindPink

	// KindTone is a periodic oscillator.
	KindTone

	// KindImpulse is a leading block of ones.
	KindImpulse
)

var kindNames = map[Kind]string{
	KindUniform: "uniform",
	KindPink:    "pink",
	KindTone:    "tone",
	KindImpulse: "impulse",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if _, ok := kindNames[k]; !ok {
		return nil, fmt.Errorf("%w: unknown source kind %d", sample.ErrInvalidConfig, int(k))
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
	return fmt.Errorf("%w: unknown source kind %q", sample.ErrInvalidConfig, string(text))
}

// Spec is the data description of one source inside a recipe.
//
// Duration is in seconds. Amplitude scales the output and defaults to 1 when
// zero. Frequency and Waveform apply to tones, ImpulseWidth (in samples) to
// impulses.
type Spec struct {
	Kind         Kind     `yaml:"kind"`
	Duration     float64  `yaml:"duration"`
	Frequency    float64  `yaml:"frequency,omitempty"`
	Amplitude    float64  `yaml:"amplitude,omitempty"`
	Waveform     Waveform `yaml:"waveform,omitempty"`
	ImpulseWidth int      `yaml:"impulse_width,omitempty"`
}

func (s Spec) level() float64 {
	if s.Amplitude == 0 {
		return defaultLevel
	}
	return s.Amplitude
}

// Tone returns the tone parameters of a KindTone spec.
func (s Spec) Tone() ToneSpec {
	return ToneSpec{
		Frequency: s.Frequency,
		Duration:  s.Duration,
		Amplitude: s.level(),
		Waveform:  s.Waveform,
	}
}

// Validate checks the spec without generating anything.
func (s Spec) Validate() error {
	if s.Duration <= 0 || math.IsNaN(s.Duration) || math.IsInf(s.Duration, 0) {
		return fmt.Errorf("%w: %s source duration must be positive, got %v", sample.ErrInvalidConfig, s.Kind, s.Duration)
	}
	if s.Amplitude < 0 || s.Amplitude > maxToneAmplitude || math.IsNaN(s.Amplitude) {
		return fmt.Errorf("%w: %s source amplitude must be in [0, 1], got %v", sample.ErrInvalidConfig, s.Kind, s.Amplitude)
	}

	switch s.Kind {
	case KindUniform, KindPink:
		return nil
	case KindTone:
		return s.Tone().Validate()
	case KindImpulse:
		if s.ImpulseWidth < minImpulseSize {
			return fmt.Errorf("%w: impulse width must not be negative, got %d", sample.ErrInvalidConfig, s.ImpulseWidth)
		}
		return nil
	default:
		return fmt.Errorf("%w: unknown source kind %d", sample.ErrInvalidConfig, int(s.Kind))
	}
}

// Generate renders spec at rate. rng is required for noise kinds and
// ignored otherwise.
func Generate(spec Spec, rate float64, rng *rand.Rand) (sample.Buffer, error) {
	if err := spec.Validate(); err != nil {
		return sample.Buffer{}, err
	}

	if spec.Kind == KindTone {
		return Tone(spec.Tone(), rate)
	}

	length, err := sample.LengthFor(spec.Duration, rate)
	if err != nil {
		return sample.Buffer{}, err
	}

	var buf sample.Buffer
	switch spec.Kind {
	case KindUniform:
		buf, err = UniformNoise(length, rate, rng)
	case KindPink:
		buf, err = PinkNoise(length, rate, rng)
	case KindImpulse:
		buf, err = ImpulseBurst(length, spec.ImpulseWidth, rate)
	}
	if err != nil {
		return sample.Buffer{}, err
	}

	if level := spec.level(); level != defaultLevel {
		for i := range buf.Samples {
			buf.Samples[i] *= level
		}
	}
	return buf, nil
}
