package filter

import (
	"math"
	"math/cmplx"
)

// FilterResponse holds the frequency response of a filter.
type FilterResponse struct {
	// Frequencies at which response was calculated, in Hz (0 to Nyquist)
	Frequencies []float64

	// Magnitude response at each frequency (linear scale)
	Magnitude []float64

	// Phase response at each frequency (radians)
	Phase []float64
}

// Response evaluates the cascade at freqHz.
func (c *Coefficients) Response(freqHz float64) complex128 {
	omega := halfDivisor * math.Pi * freqHz / c.Spec.Rate
	h := complex(1, 0)
	for _, s := range c.Sections {
		h *= sectionResponse(s, omega)
	}
	return h
}

// Magnitude returns |H| at freqHz.
func (c *Coefficients) Magnitude(freqHz float64) float64 {
	return cmplx.Abs(c.Response(freqHz))
}

// ComputeFrequencyResponse evaluates the filter at numPoints frequencies
// evenly spaced from DC up to (excluding) Nyquist.
//
// Parameters:
//
//	numPoints: Number of frequency points to evaluate (default: 512)
func (c *Coefficients) ComputeFrequencyResponse(numPoints int) FilterResponse {
	if numPoints <= 0 {
		numPoints = defaultResponsePoints
	}

	response := FilterResponse{
		Frequencies: make([]float64, numPoints),
		Magnitude:   make([]float64, numPoints),
		Phase:       make([]float64, numPoints),
	}

	nyquist := c.Spec.Nyquist()
	for k := range numPoints {
		freq := nyquist * float64(k) / float64(numPoints)
		h := c.Response(freq)

		response.Frequencies[k] = freq
		response.Magnitude[k] = cmplx.Abs(h)
		response.Phase[k] = cmplx.Phase(h)
	}

	return response
}

// MagnitudeDB converts linear magnitude to decibels.
func MagnitudeDB(magnitude float64) float64 {
	const (
		minMagnitude = 1e-10 // Avoid log(0)
		dbMultiplier = 20.0  // 20*log10 for magnitude
	)

	if magnitude < minMagnitude {
		magnitude = minMagnitude
	}
	return dbMultiplier * math.Log10(magnitude)
}
