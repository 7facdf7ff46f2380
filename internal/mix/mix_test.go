package mix

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-uisound/internal/pcm"
	"github.com/tphakala/go-uisound/internal/sample"
	"github.com/tphakala/go-uisound/internal/source"
	"github.com/tphakala/go-uisound/internal/testutil"
)

const (
	testRate = 44100.0

	mixTolerance = 1e-12
)

func buf(samples ...float64) sample.Buffer {
	return sample.Buffer{Samples: samples, Rate: testRate}
}

func TestMix(t *testing.T) {
	tests := []struct {
		name       string
		components []Component
		want       []float64
	}{
		{
			name:       "single",
			components: []Component{{Buffer: buf(1, -1), Weight: 0.5}},
			want:       []float64{0.5, -0.5},
		},
		{
			name: "pads_shorter",
			components: []Component{
				{Buffer: buf(1, 1, 1, 1), Weight: 1},
				{Buffer: buf(1, 1), Weight: 0.5},
			},
			want: []float64{1.5, 1.5, 1, 1},
		},
		{
			name: "offset_extends",
			components: []Component{
				{Buffer: buf(1, 1), Weight: 1},
				{Buffer: buf(2, 2), Weight: 1, Offset: 3},
			},
			want: []float64{1, 1, 0, 2, 2},
		},
		{
			name: "overlap",
			components: []Component{
				{Buffer: buf(1, 1, 1), Weight: 1},
				{Buffer: buf(-1, -1), Weight: 1, Offset: 1},
			},
			want: []float64{1, 0, 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Mix(tt.components...)
			require.NoError(t, err)
			assert.InDeltaSlice(t, tt.want, got.Samples, mixTolerance)
			assert.Equal(t, testRate, got.Rate)
		})
	}
}

func TestMix_Errors(t *testing.T) {
	_, err := Mix()
	require.ErrorIs(t, err, sample.ErrInvalidConfig)

	_, err = Mix(
		Component{Buffer: buf(1), Weight: 1},
		Component{Buffer: sample.Buffer{Samples: []float64{1}, Rate: 48000}, Weight: 1},
	)
	require.ErrorIs(t, err, sample.ErrInvalidConfig)

	_, err = Mix(Component{Buffer: buf(1), Weight: 1, Offset: -1})
	require.ErrorIs(t, err, sample.ErrInvalidConfig)

	_, err = Mix(Component{Buffer: buf(1), Weight: math.NaN()})
	require.ErrorIs(t, err, sample.ErrInvalidConfig)
}

func TestMix_DoesNotModifyInputs(t *testing.T) {
	a := buf(0.25, 0.5)
	_, err := Mix(Component{Buffer: a, Weight: 2}, Component{Buffer: a, Weight: 3})
	require.NoError(t, err)
	assert.Equal(t, []float64{0.25, 0.5}, a.Samples)
}

func TestNormalize(t *testing.T) {
	in := buf(0.1, -0.4, 0.2)
	out, err := Normalize(in, 0.8)
	require.NoError(t, err)

	assert.InDeltaSlice(t, []float64{0.2, -0.8, 0.4}, out.Samples, mixTolerance)
	assert.InDelta(t, 0.8, Peak(out), mixTolerance)
	assert.Equal(t, []float64{0.1, -0.4, 0.2}, in.Samples, "input must not be modified")
}

func TestNormalize_Silence(t *testing.T) {
	in := buf(0, 0, 0, 0)
	out, err := Normalize(in, 0.9)
	require.NoError(t, err)
	assert.Equal(t, in.Samples, out.Samples)
	testutil.AssertNoNaNOrInf(t, out.Samples)
}

func TestNormalize_InvalidTarget(t *testing.T) {
	for _, target := range []float64{0, -0.5, 1.5, math.NaN()} {
		_, err := Normalize(buf(1), target)
		require.ErrorIs(t, err, sample.ErrInvalidConfig, "target %v", target)
	}
}

// TestMixNormalizeQuantize mixes a two-tone chord at 0.3 and 0.24 and checks
// that the normalized peak lands on round(0.9·32767) after quantization.
func TestMixNormalizeQuantize(t *testing.T) {
	low, err := source.Tone(source.ToneSpec{Frequency: 1046.5, Duration: 0.15, Amplitude: 0.3}, testRate)
	require.NoError(t, err)
	high, err := source.Tone(source.ToneSpec{Frequency: 1318.5, Duration: 0.15, Amplitude: 0.24}, testRate)
	require.NoError(t, err)

	mixed, err := Mix(Component{Buffer: low, Weight: 1}, Component{Buffer: high, Weight: 1})
	require.NoError(t, err)

	normalized, err := Normalize(mixed, 0.9)
	require.NoError(t, err)
	testutil.AssertPeakAtMost(t, normalized.Samples, 0.9)

	quantized, clipped := pcm.Quantize(normalized)
	assert.Zero(t, clipped)

	var peak int
	for _, q := range quantized {
		peak = max(peak, int(q), -int(q))
	}
	assert.Equal(t, 29490, peak)
}
