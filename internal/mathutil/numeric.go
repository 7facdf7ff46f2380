package mathutil

import "math"

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// RoundToInt rounds half away from zero.
func RoundToInt(v float64) int {
	return int(math.Round(v))
}

// Linspace returns n evenly spaced values from start to stop inclusive.
// n == 1 yields [start].
func Linspace(start, stop float64, n int) []float64 {
	if n <= 0 {
		return []float64{}
	}
	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out
	}
	step := (stop - start) / float64(n-1)
	for i := range n {
		out[i] = start + step*float64(i)
	}
	out[n-1] = stop
	return out
}

// Geomspace returns n values spaced evenly on a log scale from start to stop
// inclusive. Both endpoints must be positive.
func Geomspace(start, stop float64, n int) []float64 {
	if n <= 0 {
		return []float64{}
	}
	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out
	}
	logStart := math.Log(start)
	step := (math.Log(stop) - logStart) / float64(n-1)
	for i := range n {
		out[i] = math.Exp(logStart + step*float64(i))
	}
	out[0] = start
	out[n-1] = stop
	return out
}
