package envelope

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-uisound/internal/sample"
	"github.com/tphakala/go-uisound/internal/testutil"
)

const (
	testRate = 44100.0

	clickLength = 441   // 10 ms
	toneLength  = 6615  // 150 ms
	chimeLength = 22050 // 500 ms

	// attack*rate is far past the int range
	hugeAttack = 1.42e10

	curveTolerance = 1e-12
)

func TestBuildCurve_ShortBufferClamp(t *testing.T) {
	// 10 ms is far shorter than the 90 ms attack+release window.
	spec := NewLinearAttackRelease(0.01, 0.08)

	a, r := Segments(spec.Attack, spec.Release, clickLength, testRate)
	assert.Equal(t, 49, a)
	assert.Equal(t, 392, r)
	assert.LessOrEqual(t, a+r, clickLength)

	curve, err := BuildCurve(spec, clickLength, testRate)
	require.NoError(t, err)
	require.Equal(t, clickLength, curve.Len())
	testutil.AssertAllInRange(t, curve.Samples, 0, 1)

	assert.InDelta(t, 0, curve.Samples[0], curveTolerance)
	assert.InDelta(t, 1, curve.Samples[a-1], curveTolerance)
	assert.InDelta(t, 0, curve.Samples[clickLength-1], curveTolerance)
	testutil.AssertMonotonic(t, curve.Samples[:a])
	testutil.AssertNonIncreasing(t, curve.Samples[a:])
}

func TestSegments(t *testing.T) {
	tests := []struct {
		name        string
		attack      float64
		release     float64
		length      int
		wantAttack  int
		wantRelease int
	}{
		{"fits", 0.01, 0.08, toneLength, 441, 3528},
		{"exact_fit", 0.05, 0.45, 22050, 2205, 19845},
		{"zero_segments", 0, 0, 100, 0, 0},
		{"attack_only_too_long", 1, 0, 100, 100, 0},
		{"single_sample", 0.01, 0.01, 1, 0, 0},
		{"huge_attack", hugeAttack, 0.08, chimeLength, chimeLength, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, r := Segments(tt.attack, tt.release, tt.length, testRate)
			assert.Equal(t, tt.wantAttack, a)
			assert.Equal(t, tt.wantRelease, r)
			assert.LessOrEqual(t, a+r, tt.length)
		})
	}
}

func TestBuildCurve_HugeAttack(t *testing.T) {
	for _, spec := range []Spec{
		NewLinearAttackRelease(hugeAttack, 0.08),
		NewLogRelease(hugeAttack, 0.08, 0.01),
	} {
		var curve sample.Buffer
		var err error
		require.NotPanics(t, func() {
			curve, err = BuildCurve(spec, chimeLength, testRate)
		})
		require.NoError(t, err)
		require.Equal(t, chimeLength, curve.Len())
		testutil.AssertAllInRange(t, curve.Samples, 0, 1+curveTolerance)
	}
}

func TestBuildCurve_LinearAttackRelease(t *testing.T) {
	curve, err := BuildCurve(NewLinearAttackRelease(0.01, 0.08), toneLength, testRate)
	require.NoError(t, err)

	v := curve.Samples
	assert.InDelta(t, 0, v[0], curveTolerance)
	assert.InDelta(t, 1, v[440], curveTolerance)
	assert.InDelta(t, 0.5, v[220], curveTolerance)

	holdEnd := toneLength - 3528
	for i := 441; i < holdEnd; i++ {
		require.Equal(t, 1.0, v[i], "hold segment at %d", i)
	}
	assert.InDelta(t, 1, v[holdEnd], curveTolerance)
	assert.InDelta(t, 0, v[toneLength-1], curveTolerance)
	testutil.AssertNonIncreasing(t, v[holdEnd:])
}

func TestBuildCurve_LogRelease(t *testing.T) {
	const floor = 0.01
	length := 22050

	curve, err := BuildCurve(NewLogRelease(0.05, 0.45, floor), length, testRate)
	require.NoError(t, err)

	v := curve.Samples
	testutil.AssertAllInRange(t, v, 0, 1)
	assert.InDelta(t, 0, v[0], curveTolerance)
	assert.InDelta(t, 1, v[2205], curveTolerance, "release starts at full level")
	assert.InDelta(t, floor, v[length-1], curveTolerance, "release stops at the floor, not zero")

	// Equal ratio between neighbours on a log-spaced release.
	ratio := v[2206] / v[2205]
	assert.InDelta(t, ratio, v[length-1]/v[length-2], 1e-9)
}

func TestBuildCurve_ExponentialDecay(t *testing.T) {
	const fraction = 0.3

	curve, err := BuildCurve(NewExponentialDecay(fraction), clickLength, testRate)
	require.NoError(t, err)

	assert.Equal(t, 1.0, curve.Samples[0])
	for _, i := range []int{1, 100, 440} {
		want := math.Exp(-float64(i) / (clickLength * fraction))
		assert.InDelta(t, want, curve.Samples[i], curveTolerance)
	}
	testutil.AssertNonIncreasing(t, curve.Samples)
}

func TestBuildCurve_DecaySeconds(t *testing.T) {
	const tau = 0.015

	curve, err := BuildCurve(NewDecaySeconds(tau), 529, testRate)
	require.NoError(t, err)

	want := math.Exp(-(528 / testRate) / tau)
	assert.InDelta(t, want, curve.Samples[528], curveTolerance)
	testutil.AssertNonIncreasing(t, curve.Samples)
}

func TestBuildCurve_AttackExpDecay(t *testing.T) {
	const length = 176 // 4 ms

	curve, err := BuildCurve(NewAttackExpDecay(0.1, 0.05), length, testRate)
	require.NoError(t, err)

	v := curve.Samples
	attack := 17
	assert.InDelta(t, 0, v[0], curveTolerance)
	assert.InDelta(t, 1, v[attack-1], curveTolerance)
	assert.Equal(t, 1.0, v[attack], "decay restarts at full level")
	assert.InDelta(t, math.Exp(-10/(length*0.05)), v[attack+10], curveTolerance)
	testutil.AssertMonotonic(t, v[:attack])
	testutil.AssertNonIncreasing(t, v[attack:])
}

func TestBuildCurve_Errors(t *testing.T) {
	tests := []struct {
		name   string
		spec   Spec
		length int
		rate   float64
	}{
		{"zero_length", NewExponentialDecay(0.3), 0, testRate},
		{"zero_rate", NewExponentialDecay(0.3), 10, 0},
		{"zero_time_constant", NewExponentialDecay(0), 10, testRate},
		{"negative_attack", NewLinearAttackRelease(-0.1, 0.1), 10, testRate},
		{"negative_release", NewLinearAttackRelease(0.1, -0.1), 10, testRate},
		{"zero_floor", NewLogRelease(0.01, 0.1, 0), 10, testRate},
		{"floor_above_one", NewLogRelease(0.01, 0.1, 2), 10, testRate},
		{"attack_fraction_above_one", NewAttackExpDecay(1.5, 0.05), 10, testRate},
		{"unknown_kind", Spec{Kind: Kind(77)}, 10, testRate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildCurve(tt.spec, tt.length, tt.rate)
			require.ErrorIs(t, err, sample.ErrInvalidConfig)
		})
	}
}

func TestApply(t *testing.T) {
	buf := sample.Buffer{Samples: []float64{1, -1, 0.5, 2}, Rate: testRate}
	curve := sample.Buffer{Samples: []float64{0, 0.5, 1, 0.25}, Rate: testRate}

	out, err := Apply(curve, buf)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, -0.5, 0.5, 0.5}, out.Samples)
	assert.Equal(t, []float64{1, -1, 0.5, 2}, buf.Samples, "input must not be modified")

	_, err = Apply(sample.Buffer{Samples: []float64{1}, Rate: testRate}, buf)
	require.ErrorIs(t, err, sample.ErrInvalidConfig)

	_, err = Apply(sample.Buffer{Samples: []float64{1, 1, 1, 1}, Rate: 48000}, buf)
	require.ErrorIs(t, err, sample.ErrInvalidConfig)
}

func TestShape(t *testing.T) {
	buf := sample.Buffer{Samples: make([]float64, clickLength), Rate: testRate}
	for i := range buf.Samples {
		buf.Samples[i] = 1
	}

	out, err := Shape(NewExponentialDecay(0.2), buf)
	require.NoError(t, err)
	curve, err := BuildCurve(NewExponentialDecay(0.2), clickLength, testRate)
	require.NoError(t, err)
	assert.Equal(t, curve.Samples, out.Samples)
}

func TestKindText(t *testing.T) {
	for kind, name := range kindNames {
		text, err := kind.MarshalText()
		require.NoError(t, err)
		assert.Equal(t, name, string(text))

		var parsed Kind
		require.NoError(t, parsed.UnmarshalText(text))
		assert.Equal(t, kind, parsed)
	}

	var k Kind
	require.ErrorIs(t, k.UnmarshalText([]byte("adsr")), sample.ErrInvalidConfig)
}
