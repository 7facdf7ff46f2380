// Package analysis measures rendered sounds: level, spectrum and the
// spectral descriptors used to check that filters and recipes behave.
package analysis

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/tphakala/go-uisound/internal/sample"
	"github.com/tphakala/go-uisound/internal/simdops"
	"gonum.org/v1/gonum/dsp/fourier"
)

const (
	// Minimum FFT size; short clicks are zero-padded up to it.
	minFFTSize = 1024

	// Real FFT of size N has N/2 + 1 unique bins.
	fftHermitianDivisor = 2
)

// Spectrum is the one-sided power spectrum of a buffer.
type Spectrum struct {
	Frequencies []float64 // Hz, one per bin
	Power       []float64 // |X[k]|²
	BinWidth    float64   // Hz
}

// RMS returns the root mean square level of buf.
func RMS(buf sample.Buffer) float64 {
	if buf.Len() == 0 {
		return 0
	}
	return math.Sqrt(simdops.Energy(buf.Samples) / float64(buf.Len()))
}

// DC returns the mean of buf.
func DC(buf sample.Buffer) float64 {
	if buf.Len() == 0 {
		return 0
	}
	return simdops.Sum(buf.Samples) / float64(buf.Len())
}

// fftSize returns the next power of two >= n, at least minFFTSize.
func fftSize(n int) int {
	size := minFFTSize
	for size < n {
		size *= 2
	}
	return size
}

// PowerSpectrum zero-pads buf to a power of two and returns its power spectrum.
func PowerSpectrum(buf sample.Buffer) (*Spectrum, error) {
	if err := sample.ValidateShape(buf.Len(), buf.Rate); err != nil {
		return nil, err
	}

	n := fftSize(buf.Len())
	padded := make([]float64, n)
	copy(padded, buf.Samples)

	fft := fourier.NewFFT(n)
	coeffs := fft.Coefficients(nil, padded)

	bins := n/fftHermitianDivisor + 1
	spec := &Spectrum{
		Frequencies: make([]float64, bins),
		Power:       make([]float64, bins),
		BinWidth:    buf.Rate / float64(n),
	}
	for k := range bins {
		// fft.Freq returns cycles per sample
		spec.Frequencies[k] = fft.Freq(k) * buf.Rate
		mag := cmplx.Abs(coeffs[k])
		spec.Power[k] = mag * mag
	}
	return spec, nil
}

// Total returns the summed power over all bins.
func (s *Spectrum) Total() float64 {
	return simdops.Sum(s.Power)
}

// BandPower returns the power in bins with lowHz <= f < highHz.
func (s *Spectrum) BandPower(lowHz, highHz float64) float64 {
	var sum float64
	for k, f := range s.Frequencies {
		if f >= lowHz && f < highHz {
			sum += s.Power[k]
		}
	}
	return sum
}

// Centroid returns the power-weighted mean frequency, or 0 for silence.
func (s *Spectrum) Centroid() float64 {
	total := s.Total()
	if total == 0 {
		return 0
	}
	return simdops.Float64Ops().DotProduct(s.Frequencies, s.Power) / total
}

// Dominant returns the frequency of the strongest bin.
func (s *Spectrum) Dominant() float64 {
	best := 0
	for k, p := range s.Power {
		if p > s.Power[best] {
			best = k
		}
	}
	return s.Frequencies[best]
}

// BandEnergyRatio returns the fraction of power below splitHz.
func BandEnergyRatio(buf sample.Buffer, splitHz float64) (float64, error) {
	if splitHz <= 0 || splitHz > buf.Rate/2 {
		return 0, fmt.Errorf("%w: split frequency must be in (0, %v], got %v",
			sample.ErrInvalidConfig, buf.Rate/2, splitHz)
	}
	spec, err := PowerSpectrum(buf)
	if err != nil {
		return 0, err
	}
	total := spec.Total()
	if total == 0 {
		return 0, nil
	}
	return spec.BandPower(0, splitHz) / total, nil
}

// Report summarizes a rendered sound.
type Report struct {
	Samples    int
	Rate       float64
	Duration   float64 // seconds
	Peak       float64
	RMS        float64
	DC         float64
	CentroidHz float64
	DominantHz float64
}

// Analyze computes a Report for buf.
func Analyze(buf sample.Buffer) (*Report, error) {
	spec, err := PowerSpectrum(buf)
	if err != nil {
		return nil, err
	}
	return &Report{
		Samples:    buf.Len(),
		Rate:       buf.Rate,
		Duration:   buf.Duration(),
		Peak:       simdops.MaxAbs(buf.Samples),
		RMS:        RMS(buf),
		DC:         DC(buf),
		CentroidHz: spec.Centroid(),
		DominantHz: spec.Dominant(),
	}, nil
}

// String formats the report on one line.
func (r *Report) String() string {
	return fmt.Sprintf("%d samples @ %.0f Hz (%.1f ms), peak %.4f, rms %.4f, dc %+.5f, centroid %.0f Hz, dominant %.0f Hz",
		r.Samples, r.Rate, r.Duration*1000, r.Peak, r.RMS, r.DC, r.CentroidHz, r.DominantHz)
}
