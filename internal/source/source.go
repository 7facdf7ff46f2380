// Package source produces raw sample sequences: uniform and pink noise,
// periodic oscillators and impulse bursts. Nothing here filters or shapes
// its output.
//
// Every stochastic source takes an explicit *rand.Rand; there is no package
// level generator. Two calls with generators in the same state produce
// identical buffers.
package source

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/tphakala/go-uisound/internal/filter"
	"github.com/tphakala/go-uisound/internal/sample"
)

// pinkNumerator and pinkDenominator hold the pink noise transfer function.
var (
	pinkNumerator   = []float64{pinkB0, pinkB1, pinkB2, pinkB3}
	pinkDenominator = []float64{pinkA0, pinkA1, pinkA2, pinkA3}
)

// NewRand returns a PCG generator seeded with (seed, stream).
func NewRand(seed, stream uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, stream))
}

// UniformNoise draws length samples independently and uniformly from [-1, 1).
func UniformNoise(length int, rate float64, rng *rand.Rand) (sample.Buffer, error) {
	if rng == nil {
		return sample.Buffer{}, fmt.Errorf("%w: noise source requires a random generator", sample.ErrInvalidConfig)
	}
	buf, err := sample.New(length, rate)
	if err != nil {
		return sample.Buffer{}, err
	}

	for i := range buf.Samples {
		buf.Samples[i] = uniformScale*rng.Float64() - 1
	}
	return buf, nil
}

// PinkNoise filters uniform noise through the fixed pink noise filter.
func PinkNoise(length int, rate float64, rng *rand.Rand) (sample.Buffer, error) {
	white, err := UniformNoise(length, rate, rng)
	if err != nil {
		return sample.Buffer{}, err
	}

	pink, err := filter.LFilter(pinkNumerator, pinkDenominator, white.Samples)
	if err != nil {
		return sample.Buffer{}, err
	}
	return sample.Buffer{Samples: pink, Rate: rate}, nil
}

// Tone samples amplitude·waveform(2π·f·t) at t = i/rate for
// i in [0, round(duration·rate)).
func Tone(spec ToneSpec, rate float64) (sample.Buffer, error) {
	if err := spec.Validate(); err != nil {
		return sample.Buffer{}, err
	}
	length, err := sample.LengthFor(spec.Duration, rate)
	if err != nil {
		return sample.Buffer{}, err
	}
	buf, err := sample.New(length, rate)
	if err != nil {
		return sample.Buffer{}, err
	}

	wave := spec.Waveform.fn()
	step := twoPi * spec.Frequency / rate
	for i := range buf.Samples {
		buf.Samples[i] = spec.Amplitude * wave(step*float64(i))
	}
	return buf, nil
}

// ImpulseBurst returns length samples whose first width samples are 1 and
// the rest 0. A width longer than the buffer fills the whole buffer.
func ImpulseBurst(length, width int, rate float64) (sample.Buffer, error) {
	if width < minImpulseSize {
		return sample.Buffer{}, fmt.Errorf("%w: impulse width must not be negative, got %d", sample.ErrInvalidConfig, width)
	}
	buf, err := sample.New(length, rate)
	if err != nil {
		return sample.Buffer{}, err
	}

	for i := range min(width, length) {
		buf.Samples[i] = impulseLevel
	}
	return buf, nil
}

func sine(phase float64) float64 {
	return math.Sin(phase)
}

// sawtooth rises linearly from -1 to 1 over each period.
func sawtooth(phase float64) float64 {
	p := math.Mod(phase, twoPi)
	return p/halfPeriod - 1
}

// square is +1 for the first half of each period and -1 for the second.
func square(phase float64) float64 {
	if math.Mod(phase, twoPi) < halfPeriod {
		return 1
	}
	return -1
}
