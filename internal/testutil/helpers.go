// Package testutil provides reusable assertions for sample buffers in synthesis tests.
package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Default tolerances for various test scenarios.
const (
	DefaultTolerance = 1e-10
	PeakTolerance    = 1e-6 // Relative slack allowed above a normalization target
)

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(v) {
			return assert.Fail(t, "found NaN", "s[%d] is NaN", i)
		}
		if math.IsInf(v, 0) {
			return assert.Fail(t, "found Inf", "s[%d] is Inf", i)
		}
	}
	return true
}

// AssertAllInRange verifies that all elements are within [min, max].
func AssertAllInRange(t *testing.T, s []float64, minVal, maxVal float64, msgAndArgs ...any) bool {
	t.Helper()
	for i, v := range s {
		if v < minVal || v > maxVal {
			return assert.Fail(t, "value out of range",
				"s[%d]=%f is outside range [%f, %f]", i, v, minVal, maxVal)
		}
	}
	return true
}

// AssertMonotonic verifies that a slice never falls.
func AssertMonotonic(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	return AssertMonotonicWithin(t, s, 0, msgAndArgs...)
}

// AssertMonotonicWithin verifies that a slice never falls by more than tol
// between neighbours. Use it for curves that settle onto a plateau with
// rounding-level ripple.
func AssertMonotonicWithin(t *testing.T, s []float64, tol float64, msgAndArgs ...any) bool {
	t.Helper()
	for i := 1; i < len(s); i++ {
		if s[i] < s[i-1]-tol {
			return assert.Fail(t, "not monotonic",
				"s[%d]=%g < s[%d]=%g (tolerance %g)", i, s[i], i-1, s[i-1], tol)
		}
	}
	return true
}

// AssertNonIncreasing verifies that a slice never rises.
func AssertNonIncreasing(t *testing.T, s []float64, msgAndArgs ...any) bool {
	t.Helper()
	for i := 1; i < len(s); i++ {
		if s[i] > s[i-1] {
			return assert.Fail(t, "not non-increasing",
				"s[%d]=%f > s[%d]=%f", i, s[i], i-1, s[i-1])
		}
	}
	return true
}

// AssertPeakAtMost verifies max(|s|) ≤ target·(1+PeakTolerance).
func AssertPeakAtMost(t *testing.T, s []float64, target float64, msgAndArgs ...any) bool {
	t.Helper()
	limit := target * (1 + PeakTolerance)
	for i, v := range s {
		if math.Abs(v) > limit {
			return assert.Fail(t, "peak exceeds target",
				"|s[%d]|=%g exceeds %g", i, math.Abs(v), limit)
		}
	}
	return true
}

// Peak returns max(|s|).
func Peak(s []float64) float64 {
	var peak float64
	for _, v := range s {
		peak = math.Max(peak, math.Abs(v))
	}
	return peak
}

// AssertRelativeError verifies that the relative error between actual and expected is within tolerance.
func AssertRelativeError(t *testing.T, expected, actual, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if expected == 0 {
		return assert.InDelta(t, expected, actual, tolerance, msgAndArgs...)
	}
	relError := math.Abs(actual-expected) / math.Abs(expected)
	return assert.LessOrEqual(t, relError, tolerance,
		"relative error %e exceeds tolerance %e (expected=%f, actual=%f)",
		relError, tolerance, expected, actual)
}
