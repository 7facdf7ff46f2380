// Package mix sums weighted sample buffers and rescales the result to a
// target peak.
package mix

import (
	"fmt"
	"math"

	"github.com/tphakala/go-uisound/internal/sample"
	"github.com/tphakala/go-uisound/internal/simdops"
)

const maxPeak = 1.0

// Component is one weighted input of a mix. Offset delays the buffer by that
// many samples; the gap is filled with zeros.
type Component struct {
	Buffer sample.Buffer
	Weight float64
	Offset int
}

// end returns the index one past the component's last sample.
func (c Component) end() int {
	return c.Offset + c.Buffer.Len()
}

// Mix returns Σ weight·buffer, with every component zero-padded to the end
// of the longest one. All components must share one sample rate.
func Mix(components ...Component) (sample.Buffer, error) {
	if len(components) == 0 {
		return sample.Buffer{}, fmt.Errorf("%w: mix needs at least one component", sample.ErrInvalidConfig)
	}

	rate := components[0].Buffer.Rate
	length := 0
	for i, c := range components {
		if c.Buffer.Rate != rate {
			return sample.Buffer{}, fmt.Errorf("%w: component %d has rate %v, expected %v",
				sample.ErrInvalidConfig, i, c.Buffer.Rate, rate)
		}
		if c.Offset < 0 {
			return sample.Buffer{}, fmt.Errorf("%w: component %d has negative offset %d",
				sample.ErrInvalidConfig, i, c.Offset)
		}
		if math.IsNaN(c.Weight) || math.IsInf(c.Weight, 0) {
			return sample.Buffer{}, fmt.Errorf("%w: component %d has non-finite weight", sample.ErrInvalidConfig, i)
		}
		length = max(length, c.end())
	}

	out, err := sample.New(length, rate)
	if err != nil {
		return sample.Buffer{}, err
	}
	for _, c := range components {
		simdops.AddScaled(out.Samples[c.Offset:], c.Buffer.Samples, c.Weight)
	}
	return out, nil
}

// Peak returns max(|sample|) over buf.
func Peak(buf sample.Buffer) float64 {
	return simdops.MaxAbs(buf.Samples)
}

// Normalize scales buf so that its peak equals target. A silent buffer is
// returned unchanged. target must be in (0, 1].
func Normalize(buf sample.Buffer, target float64) (sample.Buffer, error) {
	if target <= 0 || target > maxPeak || math.IsNaN(target) {
		return sample.Buffer{}, fmt.Errorf("%w: target peak must be in (0, 1], got %v", sample.ErrInvalidConfig, target)
	}

	out := buf.Clone()
	peak := Peak(buf)
	if peak == 0 {
		return out, nil
	}
	simdops.Scale(out.Samples, out.Samples, target/peak)
	return out, nil
}
