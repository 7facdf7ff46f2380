// Package simdops provides the SIMD-accelerated vector kernels used by the
// mixer, the normalizer and the analysis helpers.
package simdops

import (
	"github.com/tphakala/simd/f64"
)

// Ops provides SIMD-accelerated operations on float64 slices.
// Function pointers keep call sites independent of the kernel package.
type Ops struct {
	// DotProduct computes Σ a[i]*b[i] over the shorter of the two slices.
	DotProduct func(a, b []float64) float64

	// Sum returns the sum of all elements.
	Sum func(a []float64) float64

	// Scale multiplies each element by scalar s: dst[i] = a[i] * s
	Scale func(dst, a []float64, s float64)

	// AddScaled accumulates dst[i] += alpha * s[i]
	AddScaled func(dst []float64, alpha float64, s []float64)

	// Mul computes the element-wise product: dst[i] = a[i] * b[i]
	Mul func(dst, a, b []float64)

	// Abs writes |a[i]| into dst.
	Abs func(dst, a []float64)

	// Max returns the largest element of a.
	Max func(a []float64) float64
}

var ops64 = Ops{
	DotProduct: f64.DotProduct,
	Sum:        f64.Sum,
	Scale:      f64.Scale,
	AddScaled:  f64.AddScaled,
	Mul:        f64.Mul,
	Abs:        f64.Abs,
	Max:        f64.Max,
}

// Float64Ops returns the float64 SIMD operations.
func Float64Ops() *Ops {
	return &ops64
}

// Scale writes a[i]*s into dst. dst and a may alias.
func Scale(dst, a []float64, s float64) {
	ops64.Scale(dst, a, s)
}

// Sum returns the sum of all elements of a.
func Sum(a []float64) float64 {
	return ops64.Sum(a)
}

// Energy returns Σ a[i]².
func Energy(a []float64) float64 {
	return ops64.DotProduct(a, a)
}

// AddScaled accumulates dst[i] += a[i]*w for i < len(a).
// dst must be at least as long as a.
func AddScaled(dst, a []float64, w float64) {
	if len(a) == 0 {
		return
	}
	ops64.AddScaled(dst[:len(a)], w, a)
}

// Mul writes a[i]*b[i] into dst for i < len(dst).
func Mul(dst, a, b []float64) {
	ops64.Mul(dst, a, b)
}

// MaxAbs returns the largest absolute value in a, or 0 for an empty slice.
func MaxAbs(a []float64) float64 {
	if len(a) == 0 {
		return 0
	}
	mag := make([]float64, len(a))
	ops64.Abs(mag, a)
	return ops64.Max(mag)
}
