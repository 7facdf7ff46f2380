package mathutil

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	poleTolerance = 1e-12
	testRate      = 44100.0
)

// TestButterworthPoles_UnitCircleLeftHalf verifies the prototype poles are
// stable and normalized.
func TestButterworthPoles_UnitCircleLeftHalf(t *testing.T) {
	for order := 1; order <= 8; order++ {
		poles := ButterworthPoles(order)
		require.Len(t, poles, order)

		for _, p := range poles {
			assert.InDelta(t, 1.0, cmplx.Abs(p), poleTolerance, "order %d pole %v not on unit circle", order, p)
			assert.Less(t, real(p), 0.0, "order %d pole %v not in left half plane", order, p)
		}
	}
}

func TestButterworthPoles_OddOrderHasRealPole(t *testing.T) {
	poles := ButterworthPoles(3)
	complexPoles, realPoles := PairPoles(poles)

	assert.Len(t, complexPoles, 1)
	require.Len(t, realPoles, 1)
	assert.InDelta(t, -1.0, realPoles[0], poleTolerance)
}

func TestButterworthPoles_InvalidOrder(t *testing.T) {
	assert.Empty(t, ButterworthPoles(0))
	assert.Empty(t, ButterworthPoles(-2))
}

// TestBilinear_MapsStablePolesInsideUnitCircle verifies left-half-plane
// poles land inside the unit circle.
func TestBilinear_MapsStablePolesInsideUnitCircle(t *testing.T) {
	wc := Prewarp(1000, testRate)
	for _, p := range ButterworthPoles(5) {
		z := Bilinear(p*complex(wc, 0), testRate)
		assert.Less(t, cmplx.Abs(z), 1.0)
	}
}

func TestPrewarp_SmallFrequencyApproachesAngular(t *testing.T) {
	got := Prewarp(10, testRate)
	assert.InDelta(t, 2*math.Pi*10, got, 1e-3)
}

func TestLowpassToBandpass_ProductIsCenterSquared(t *testing.T) {
	wo := 2 * math.Pi * 1000.0
	bw := 2 * math.Pi * 500.0
	for _, p := range ButterworthPoles(2) {
		a, b := LowpassToBandpass(p, wo, bw)
		prod := a * b
		assert.InDelta(t, wo*wo, real(prod), 1e-6*wo*wo)
		assert.InDelta(t, 0.0, imag(prod), 1e-6*wo*wo)
	}
}

func TestPairPoles_SplitsAndSorts(t *testing.T) {
	poles := []complex128{
		complex(0.5, 0.2), complex(0.5, -0.2),
		complex(0.9, 0.1), complex(0.9, -0.1),
		complex(0.3, 0), complex(-0.7, 0),
	}
	complexPoles, realPoles := PairPoles(poles)

	require.Len(t, complexPoles, 2)
	assert.Greater(t, cmplx.Abs(complexPoles[0]), cmplx.Abs(complexPoles[1]))
	assert.Equal(t, []float64{-0.7, 0.3}, realPoles)
}

func TestClamp(t *testing.T) {
	assert.InDelta(t, 1.0, Clamp(3, -1, 1), 0)
	assert.InDelta(t, -1.0, Clamp(-3, -1, 1), 0)
	assert.InDelta(t, 0.25, Clamp(0.25, -1, 1), 0)
}

func TestRoundToInt_HalfAwayFromZero(t *testing.T) {
	assert.Equal(t, 3, RoundToInt(2.5))
	assert.Equal(t, -3, RoundToInt(-2.5))
	assert.Equal(t, 6615, RoundToInt(0.15*44100))
}

func TestLinspace(t *testing.T) {
	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75, 1}, Linspace(0, 1, 5))
	assert.Equal(t, []float64{0}, Linspace(0, 1, 1))
	assert.Empty(t, Linspace(0, 1, 0))
	assert.Equal(t, []float64{1, 0}, Linspace(1, 0, 2))
}

func TestGeomspace(t *testing.T) {
	got := Geomspace(1, 0.01, 3)
	require.Len(t, got, 3)
	assert.InDelta(t, 1.0, got[0], 0)
	assert.InDelta(t, 0.1, got[1], 1e-12)
	assert.InDelta(t, 0.01, got[2], 0)
	assert.Equal(t, []float64{1}, Geomspace(1, 0.01, 1))
}
