package filter

import (
	"fmt"

	"github.com/tphakala/go-uisound/internal/sample"
)

// LFilter applies the rational transfer function
//
//	H(z) = (b[0] + b[1]·z⁻¹ + ... ) / (a[0] + a[1]·z⁻¹ + ...)
//
// to x with zero initial state, in transposed direct form II. Coefficients are
// normalized by a[0]. Intended for short fixed-coefficient filters; designed
// filters go through Coefficients.Apply instead.
func LFilter(b, a, x []float64) ([]float64, error) {
	if len(b) == 0 || len(a) == 0 {
		return nil, fmt.Errorf("%w: empty filter coefficients", sample.ErrInvalidConfig)
	}
	if a[0] == 0 {
		return nil, fmt.Errorf("%w: leading denominator coefficient is zero", sample.ErrInvalidConfig)
	}

	n := max(len(a), len(b))
	bn := make([]float64, n)
	an := make([]float64, n)
	for i, v := range b {
		bn[i] = v / a[0]
	}
	for i, v := range a {
		an[i] = v / a[0]
	}

	state := make([]float64, n)
	y := make([]float64, len(x))
	for i, v := range x {
		out := bn[0]*v + state[0]
		for k := 1; k < n; k++ {
			state[k-1] = bn[k]*v - an[k]*out
			if k < n-1 {
				state[k-1] += state[k]
			}
		}
		y[i] = out
	}
	return y, nil
}
