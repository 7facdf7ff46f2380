package source

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-uisound/internal/sample"
	"github.com/tphakala/go-uisound/internal/testutil"
)

const (
	testRate   = 44100.0
	testSeed   = 42
	testStream = 7

	waveTolerance = 1e-12
)

func TestUniformNoise_Deterministic(t *testing.T) {
	a, err := UniformNoise(4410, testRate, NewRand(testSeed, testStream))
	require.NoError(t, err)
	b, err := UniformNoise(4410, testRate, NewRand(testSeed, testStream))
	require.NoError(t, err)
	c, err := UniformNoise(4410, testRate, NewRand(testSeed+1, testStream))
	require.NoError(t, err)

	assert.Equal(t, a.Samples, b.Samples, "same seed must reproduce the buffer")
	assert.NotEqual(t, a.Samples, c.Samples, "different seeds should differ")
}

func TestUniformNoise_Range(t *testing.T) {
	buf, err := UniformNoise(44100, testRate, NewRand(testSeed, testStream))
	require.NoError(t, err)
	require.Equal(t, 44100, buf.Len())

	testutil.AssertAllInRange(t, buf.Samples, -1, 1)

	var mean float64
	for _, s := range buf.Samples {
		mean += s
	}
	mean /= float64(buf.Len())
	assert.InDelta(t, 0, mean, 0.02, "uniform noise should be roughly zero mean")
}

func TestUniformNoise_Errors(t *testing.T) {
	tests := []struct {
		name   string
		length int
		rate   float64
		rng    bool
	}{
		{"zero_length", 0, testRate, true},
		{"negative_rate", 10, -1, true},
		{"nil_rng", 10, testRate, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := NewRand(testSeed, testStream)
			if !tt.rng {
				rng = nil
			}
			_, err := UniformNoise(tt.length, tt.rate, rng)
			require.Error(t, err)
			assert.True(t, errors.Is(err, sample.ErrInvalidConfig))
		})
	}
}

// lagOneCorrelation is the normalized autocorrelation at lag 1.
func lagOneCorrelation(x []float64) float64 {
	var num, den float64
	for i := range x {
		den += x[i] * x[i]
		if i > 0 {
			num += x[i] * x[i-1]
		}
	}
	return num / den
}

func TestPinkNoise(t *testing.T) {
	pink, err := PinkNoise(44100, testRate, NewRand(testSeed, testStream))
	require.NoError(t, err)
	again, err := PinkNoise(44100, testRate, NewRand(testSeed, testStream))
	require.NoError(t, err)
	white, err := UniformNoise(44100, testRate, NewRand(testSeed, testStream))
	require.NoError(t, err)

	assert.Equal(t, pink.Samples, again.Samples)
	testutil.AssertNoNaNOrInf(t, pink.Samples)

	// Pink noise concentrates energy at low frequencies, so neighbouring
	// samples are strongly correlated where white noise samples are not.
	assert.Greater(t, lagOneCorrelation(pink.Samples), 0.5)
	assert.Less(t, math.Abs(lagOneCorrelation(white.Samples)), 0.05)
}

func TestTone(t *testing.T) {
	buf, err := Tone(ToneSpec{Frequency: 880, Duration: 0.15, Amplitude: 0.5, Waveform: Sine}, testRate)
	require.NoError(t, err)

	require.Equal(t, 6615, buf.Len())
	assert.Equal(t, testRate, buf.Rate)
	assert.InDelta(t, 0, buf.Samples[0], waveTolerance)
	for i := 0; i < buf.Len(); i += 97 {
		want := 0.5 * math.Sin(2*math.Pi*880*float64(i)/testRate)
		assert.InDelta(t, want, buf.Samples[i], 1e-9, "sample %d", i)
	}
	testutil.AssertAllInRange(t, buf.Samples, -0.5, 0.5)
}

func TestTone_Validation(t *testing.T) {
	tests := []struct {
		name string
		spec ToneSpec
	}{
		{"zero_frequency", ToneSpec{Frequency: 0, Duration: 0.1, Amplitude: 1}},
		{"negative_duration", ToneSpec{Frequency: 440, Duration: -0.1, Amplitude: 1}},
		{"zero_amplitude", ToneSpec{Frequency: 440, Duration: 0.1, Amplitude: 0}},
		{"amplitude_above_one", ToneSpec{Frequency: 440, Duration: 0.1, Amplitude: 1.5}},
		{"unknown_waveform", ToneSpec{Frequency: 440, Duration: 0.1, Amplitude: 1, Waveform: Waveform(9)}},
		{"too_short", ToneSpec{Frequency: 440, Duration: 1e-7, Amplitude: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Tone(tt.spec, testRate)
			require.Error(t, err)
			assert.True(t, errors.Is(err, sample.ErrInvalidConfig))
		})
	}
}

func TestWaveforms(t *testing.T) {
	tests := []struct {
		name  string
		fn    func(float64) float64
		phase float64
		want  float64
	}{
		{"sine_quarter", sine, math.Pi / 2, 1},
		{"sawtooth_start", sawtooth, 0, -1},
		{"sawtooth_quarter", sawtooth, math.Pi / 2, -0.5},
		{"sawtooth_half", sawtooth, math.Pi, 0},
		{"sawtooth_wraps", sawtooth, 2*math.Pi + math.Pi/2, -0.5},
		{"square_first_half", square, 0.1, 1},
		{"square_second_half", square, math.Pi + 0.1, -1},
		{"square_wraps", square, 2*math.Pi + 0.1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.fn(tt.phase), 1e-9)
		})
	}
}

func TestImpulseBurst(t *testing.T) {
	buf, err := ImpulseBurst(10, 3, testRate)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1, 1, 0, 0, 0, 0, 0, 0, 0}, buf.Samples)

	wide, err := ImpulseBurst(4, 10, testRate)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1, 1, 1}, wide.Samples)

	none, err := ImpulseBurst(4, 0, testRate)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0, 0}, none.Samples)

	_, err = ImpulseBurst(4, -1, testRate)
	require.ErrorIs(t, err, sample.ErrInvalidConfig)
}

func TestGenerate(t *testing.T) {
	tests := []struct {
		name    string
		spec    Spec
		wantLen int
		peak    float64
	}{
		{"uniform", Spec{Kind: KindUniform, Duration: 0.01}, 441, 1},
		{"uniform_scaled", Spec{Kind: KindUniform, Duration: 0.01, Amplitude: 0.25}, 441, 0.25},
		{"tone", Spec{Kind: KindTone, Duration: 0.15, Frequency: 880, Amplitude: 0.6}, 6615, 0.6},
		{"impulse", Spec{Kind: KindImpulse, Duration: 0.005, ImpulseWidth: 20}, 221, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, err := Generate(tt.spec, testRate, NewRand(testSeed, testStream))
			require.NoError(t, err)
			assert.Equal(t, tt.wantLen, buf.Len())
			testutil.AssertPeakAtMost(t, buf.Samples, tt.peak)
		})
	}
}

func TestGenerate_Errors(t *testing.T) {
	tests := []struct {
		name string
		spec Spec
	}{
		{"unknown_kind", Spec{Kind: Kind(99), Duration: 0.1}},
		{"zero_duration", Spec{Kind: KindPink}},
		{"tone_without_frequency", Spec{Kind: KindTone, Duration: 0.1}},
		{"negative_amplitude", Spec{Kind: KindUniform, Duration: 0.1, Amplitude: -1}},
		{"negative_impulse", Spec{Kind: KindImpulse, Duration: 0.1, ImpulseWidth: -3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Generate(tt.spec, testRate, NewRand(testSeed, testStream))
			require.ErrorIs(t, err, sample.ErrInvalidConfig)
		})
	}
}

func TestKindText(t *testing.T) {
	for kind, name := range kindNames {
		text, err := kind.MarshalText()
		require.NoError(t, err)
		assert.Equal(t, name, string(text))

		var parsed Kind
		require.NoError(t, parsed.UnmarshalText([]byte(" "+name+" ")))
		assert.Equal(t, kind, parsed)
	}

	var k Kind
	require.ErrorIs(t, k.UnmarshalText([]byte("brown")), sample.ErrInvalidConfig)

	var w Waveform
	require.NoError(t, w.UnmarshalText([]byte("Square")))
	assert.Equal(t, Square, w)
	require.ErrorIs(t, w.UnmarshalText([]byte("triangle")), sample.ErrInvalidConfig)
}
