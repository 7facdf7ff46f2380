// Package filter designs and applies the IIR filters used by the synthesis
// pipeline.
//
// Filters are Butterworth designs obtained from the analog prototype by
// frequency prewarping, a lowpass/highpass/bandpass frequency transform and
// the bilinear transform. The result is always kept as a cascade of
// second-order sections; a single high-order transfer function is never
// formed, so orders up to maxOrder stay numerically stable.
package filter

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-dsp/dsp/filter/biquad"
	"github.com/tphakala/go-uisound/internal/mathutil"
	"github.com/tphakala/go-uisound/internal/sample"
)

// Section is one biquad stage:
//
//	H(z) = (B0 + B1·z⁻¹ + B2·z⁻²) / (1 + A1·z⁻¹ + A2·z⁻²)
//
// First-order stages have B2 == A2 == 0.
type Section = biquad.Coefficients

// Coefficients is a designed filter: the spec it was built from and its
// cascade of sections.
type Coefficients struct {
	Spec     Spec
	Sections []Section
}

// zeroBank hands out the digital zeros of the design, which for the supported
// responses all sit at z = +1 (DC) or z = -1 (Nyquist).
type zeroBank struct {
	atDC      int
	atNyquist int
}

// take returns the numerator of a section carrying n zeros (1 or 2),
// preferring one zero of each kind so bandpass sections are balanced.
func (zb *zeroBank) take(n int) (b0, b1, b2 float64) {
	if n == 1 {
		switch {
		case zb.atNyquist > 0:
			zb.atNyquist--
			return 1, 1, 0
		case zb.atDC > 0:
			zb.atDC--
			return 1, -1, 0
		}
		return 1, 0, 0
	}

	switch {
	case zb.atDC > 0 && zb.atNyquist > 0:
		zb.atDC--
		zb.atNyquist--
		return 1, 0, -1
	case zb.atNyquist >= 2:
		zb.atNyquist -= 2
		return 1, 2, 1
	case zb.atDC >= 2:
		zb.atDC -= 2
		return 1, -2, 1
	}
	return 1, 0, 0
}

// Design builds a Butterworth filter from spec.
// It fails with sample.ErrInvalidConfig when a cutoff is at or above Nyquist,
// when a bandpass low edge is not below its high edge, or when the order is
// out of range.
func Design(spec Spec) (*Coefficients, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	prototype := mathutil.ButterworthPoles(spec.Order)
	analog := make([]complex128, 0, 2*len(prototype))
	zeros := zeroBank{}
	var refOmega float64

	switch spec.Kind {
	case Lowpass:
		wc := mathutil.Prewarp(spec.CutoffHz, spec.Rate)
		for _, p := range prototype {
			analog = append(analog, p*complex(wc, 0))
		}
		zeros.atNyquist = spec.Order
		refOmega = 0

	case Highpass:
		wc := mathutil.Prewarp(spec.CutoffHz, spec.Rate)
		for _, p := range prototype {
			analog = append(analog, complex(wc, 0)/p)
		}
		zeros.atDC = spec.Order
		refOmega = math.Pi

	case Bandpass:
		w1 := mathutil.Prewarp(spec.LowHz, spec.Rate)
		w2 := mathutil.Prewarp(spec.HighHz, spec.Rate)
		wo := math.Sqrt(w1 * w2)
		bw := w2 - w1
		for _, p := range prototype {
			a, b := mathutil.LowpassToBandpass(p, wo, bw)
			analog = append(analog, a, b)
		}
		zeros.atDC = spec.Order
		zeros.atNyquist = spec.Order
		// The bilinear transform maps the analog centre wo onto this digital frequency.
		refOmega = halfDivisor * math.Atan(wo/(halfDivisor*spec.Rate))
	}

	digital := make([]complex128, len(analog))
	for i, s := range analog {
		digital[i] = mathutil.Bilinear(s, spec.Rate)
	}

	complexPoles, realPoles := mathutil.PairPoles(digital)
	sections := make([]Section, 0, len(complexPoles)+len(realPoles))

	for _, p := range complexPoles {
		b0, b1, b2 := zeros.take(2)
		sections = append(sections, Section{
			B0: b0, B1: b1, B2: b2,
			A1: -halfDivisor * real(p),
			A2: real(p)*real(p) + imag(p)*imag(p),
		})
	}

	for i := 0; i+1 < len(realPoles); i += 2 {
		r1, r2 := realPoles[i], realPoles[i+1]
		b0, b1, b2 := zeros.take(2)
		sections = append(sections, Section{
			B0: b0, B1: b1, B2: b2,
			A1: -(r1 + r2),
			A2: r1 * r2,
		})
	}

	if len(realPoles)%2 == 1 {
		r := realPoles[len(realPoles)-1]
		b0, b1, _ := zeros.take(1)
		sections = append(sections, Section{B0: b0, B1: b1, A1: -r})
	}

	// Normalize every section to unit gain at the reference frequency so the
	// cascade has unit passband gain and no section carries extreme scaling.
	for i := range sections {
		g := cmplx.Abs(sectionResponse(sections[i], refOmega))
		if g < minSectionGain {
			return nil, fmt.Errorf("%w: degenerate %s section %d", sample.ErrInvalidConfig, spec.Kind, i)
		}
		sections[i].B0 /= g
		sections[i].B1 /= g
		sections[i].B2 /= g
	}

	return &Coefficients{Spec: spec, Sections: sections}, nil
}

// sectionResponse evaluates the section at normalized angular frequency omega (rad/sample).
func sectionResponse(s Section, omega float64) complex128 {
	z1 := cmplx.Exp(complex(0, -omega))
	z2 := z1 * z1
	num := complex(s.B0, 0) + complex(s.B1, 0)*z1 + complex(s.B2, 0)*z2
	den := 1 + complex(s.A1, 0)*z1 + complex(s.A2, 0)*z2
	return num / den
}

// Apply runs the cascade over in with zero initial state and returns a new
// buffer of the same length. The output is not renormalized.
func (c *Coefficients) Apply(in sample.Buffer) (sample.Buffer, error) {
	if err := sample.ValidateShape(in.Len(), in.Rate); err != nil {
		return sample.Buffer{}, err
	}
	if in.Rate != c.Spec.Rate {
		return sample.Buffer{}, fmt.Errorf("%w: filter designed for %v Hz applied to %v Hz buffer",
			sample.ErrInvalidConfig, c.Spec.Rate, in.Rate)
	}

	out := make([]float64, in.Len())
	copy(out, in.Samples)
	for _, coeffs := range c.Sections {
		sec := biquad.NewSection(coeffs)
		for i, v := range out {
			out[i] = sec.ProcessSample(v)
		}
	}
	return sample.Buffer{Samples: out, Rate: in.Rate}, nil
}

// Order returns the number of poles across all sections.
func (c *Coefficients) Order() int {
	n := 0
	for _, s := range c.Sections {
		if s.A2 == 0 && s.B2 == 0 {
			n++
		} else {
			n += 2
		}
	}
	return n
}
