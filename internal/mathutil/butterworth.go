// Package mathutil provides the analog prototype and transform math behind
// the IIR filter designs, plus small numeric helpers shared by the pipeline.
package mathutil

import (
	"math"
	"math/cmplx"
)

// ButterworthPoles returns the poles of the normalized (1 rad/s) analog
// Butterworth lowpass prototype of the given order.
//
// The poles lie on the left half of the unit circle:
//
//	p[k] = -exp(jπ·m/(2N)),  m = -N+1, -N+3, ..., N-1
//
// Conjugate pairs are adjacent in the result only by symmetry; callers that
// need explicit pairing should use PairPoles.
func ButterworthPoles(order int) []complex128 {
	if order < 1 {
		return nil
	}

	poles := make([]complex128, 0, order)
	for m := -order + 1; m < order; m += 2 {
		theta := math.Pi * float64(m) / (halfDivisor * float64(order))
		poles = append(poles, -cmplx.Exp(complex(0, theta)))
	}
	return poles
}

// Prewarp maps a digital frequency in Hz to the analog angular frequency that
// the bilinear transform at the given sample rate sends back onto it.
func Prewarp(freqHz, rate float64) float64 {
	return bilinearFactor * rate * math.Tan(math.Pi*freqHz/rate)
}

// Bilinear maps an analog pole or zero s to the z-plane: z = (2fs+s)/(2fs-s).
func Bilinear(s complex128, rate float64) complex128 {
	fs2 := complex(bilinearFactor*rate, 0)
	return (fs2 + s) / (fs2 - s)
}

// LowpassToBandpass maps one prototype pole onto its two bandpass poles for a
// passband centred at wo (rad/s) with bandwidth bw (rad/s).
func LowpassToBandpass(p complex128, wo, bw float64) (complex128, complex128) {
	pl := p * complex(bw/halfDivisor, 0)
	disc := cmplx.Sqrt(pl*pl - complex(wo*wo, 0))
	return pl + disc, pl - disc
}

// PairPoles splits z-plane poles into conjugate pairs (one representative with
// positive imaginary part each) and real poles, sorted by descending magnitude
// so that the poles closest to the unit circle come first.
func PairPoles(poles []complex128) (complexPoles []complex128, realPoles []float64) {
	for _, p := range poles {
		switch {
		case math.Abs(imag(p)) <= conjugateTolerance:
			realPoles = append(realPoles, real(p))
		case imag(p) > 0:
			complexPoles = append(complexPoles, p)
		}
	}

	sortByMagnitudeDesc(complexPoles)
	sortRealByMagnitudeDesc(realPoles)
	return complexPoles, realPoles
}

func sortByMagnitudeDesc(s []complex128) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && cmplx.Abs(s[j]) > cmplx.Abs(s[j-1]); j-- {
			s[j], s[j-1] = s[j-1], s[j]
		}
	}
}

func sortRealByMagnitudeDesc(s []float64) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && math.Abs(s[j]) > math.Abs(s[j-1]); j-- {
			s[j], s[j-1] = s[j-1], s[j]
		}
	}
}
