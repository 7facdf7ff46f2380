package simdops

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const opsTolerance = 1e-12

func TestScale_InPlace(t *testing.T) {
	a := []float64{1, -2, 3, -4, 5}
	Scale(a, a, 0.5)
	assert.InDeltaSlice(t, []float64{0.5, -1, 1.5, -2, 2.5}, a, opsTolerance)
}

func TestSumAndEnergy(t *testing.T) {
	a := []float64{1, 2, 3, 4}
	assert.InDelta(t, 10.0, Sum(a), opsTolerance)
	assert.InDelta(t, 30.0, Energy(a), opsTolerance)
}

func TestAddScaled(t *testing.T) {
	dst := []float64{1, 1, 1, 1}
	AddScaled(dst, []float64{2, 4}, 0.25)
	assert.InDeltaSlice(t, []float64{1.5, 2, 1, 1}, dst, opsTolerance)

	AddScaled(dst, nil, 3)
	assert.InDeltaSlice(t, []float64{1.5, 2, 1, 1}, dst, opsTolerance)
}

func TestMaxAbs(t *testing.T) {
	tests := []struct {
		name string
		in   []float64
		want float64
	}{
		{"empty", nil, 0},
		{"positive_peak", []float64{0.1, 0.7, -0.3}, 0.7},
		{"negative_peak", []float64{0.1, -0.9, 0.3}, 0.9},
		{"silence", []float64{0, 0, 0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, MaxAbs(tt.in), opsTolerance)
		})
	}
}

func TestMul(t *testing.T) {
	a := []float64{1, -2, 3, 0.5}
	b := []float64{0.5, 0.5, 0, 2}
	dst := make([]float64, len(a))
	Mul(dst, a, b)
	assert.InDeltaSlice(t, []float64{0.5, -1, 0, 1}, dst, opsTolerance)
}

func TestFloat64Ops_Complete(t *testing.T) {
	ops := Float64Ops()
	assert.NotNil(t, ops.DotProduct)
	assert.NotNil(t, ops.Sum)
	assert.NotNil(t, ops.Scale)
	assert.NotNil(t, ops.AddScaled)
	assert.NotNil(t, ops.Mul)
	assert.NotNil(t, ops.Abs)
	assert.NotNil(t, ops.Max)
}
