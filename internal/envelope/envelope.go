package envelope

import (
	"fmt"
	"math"

	"github.com/tphakala/go-uisound/internal/mathutil"
	"github.com/tphakala/go-uisound/internal/sample"
	"github.com/tphakala/go-uisound/internal/simdops"
)

// Segments returns the attack and release lengths in samples for a buffer
// of length samples at rate. When attack plus release would exceed length
// both are scaled down by the same factor, so attack+release <= length.
func Segments(attack, release float64, length int, rate float64) (attackLen, releaseLen int) {
	// float math: attack*rate can exceed the int range for long durations
	a := math.Max(math.Round(attack*rate), minSegment)
	r := math.Max(math.Round(release*rate), minSegment)
	n := float64(length)

	if total := a + r; total > n {
		a = math.Floor(a * n / total)
		r = math.Floor(r * n / total)
	}
	a = math.Min(a, n)
	r = math.Min(r, n-a)
	return int(a), int(r)
}

// BuildCurve evaluates spec over length samples at rate.
func BuildCurve(spec Spec, length int, rate float64) (sample.Buffer, error) {
	if err := spec.Validate(); err != nil {
		return sample.Buffer{}, err
	}
	curve, err := sample.New(length, rate)
	if err != nil {
		return sample.Buffer{}, err
	}
	v := curve.Samples

	switch spec.Kind {
	case ExponentialDecay:
		scale := float64(length) * spec.TimeConstant
		for i := range v {
			v[i] = math.Exp(-float64(i) / scale)
		}

	case DecaySeconds:
		for i := range v {
			v[i] = math.Exp(-float64(i) / rate / spec.TimeConstant)
		}

	case LinearAttackRelease, LogRelease:
		for i := range v {
			v[i] = peakLevel
		}
		a, r := Segments(spec.Attack, spec.Release, length, rate)
		copy(v[:a], mathutil.Linspace(zeroLevel, peakLevel, a))

		var tail []float64
		if spec.Kind == LogRelease {
			tail = mathutil.Geomspace(peakLevel, spec.Floor, r)
		} else {
			tail = mathutil.Linspace(peakLevel, zeroLevel, r)
		}
		// release is written last and wins where the two overlap
		copy(v[length-r:], tail)

	case AttackExpDecay:
		a := int(spec.AttackFraction * float64(length))
		copy(v[:a], mathutil.Linspace(zeroLevel, peakLevel, a))
		scale := float64(length) * spec.TimeConstant
		for j := range length - a {
			v[a+j] = math.Exp(-float64(j) / scale)
		}
	}

	return curve, nil
}

// Apply multiplies buf by curve sample-wise into a new buffer.
func Apply(curve, buf sample.Buffer) (sample.Buffer, error) {
	if curve.Len() != buf.Len() {
		return sample.Buffer{}, fmt.Errorf("%w: envelope length %d does not match buffer length %d",
			sample.ErrInvalidConfig, curve.Len(), buf.Len())
	}
	if curve.Rate != buf.Rate {
		return sample.Buffer{}, fmt.Errorf("%w: envelope rate %v does not match buffer rate %v",
			sample.ErrInvalidConfig, curve.Rate, buf.Rate)
	}

	out := make([]float64, buf.Len())
	simdops.Mul(out, buf.Samples, curve.Samples)
	return sample.Buffer{Samples: out, Rate: buf.Rate}, nil
}

// Shape builds the curve for buf and applies it.
func Shape(spec Spec, buf sample.Buffer) (sample.Buffer, error) {
	curve, err := BuildCurve(spec, buf.Len(), buf.Rate)
	if err != nil {
		return sample.Buffer{}, err
	}
	return Apply(curve, buf)
}
