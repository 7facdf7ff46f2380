package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/go-uisound/internal/testutil"
)

const (
	testNumPoints512 = 512
	dbTolerance      = 0.01

	// passband plateau ripple from rounding
	plateauRipple = 1e-12
)

func TestComputeFrequencyResponse(t *testing.T) {
	c, err := Design(NewHighpass(4, 1000, testRate))
	require.NoError(t, err)

	resp := c.ComputeFrequencyResponse(testNumPoints512)
	require.Len(t, resp.Frequencies, testNumPoints512)
	require.Len(t, resp.Magnitude, testNumPoints512)
	require.Len(t, resp.Phase, testNumPoints512)

	assert.InDelta(t, 0.0, resp.Frequencies[0], 0)
	assert.Less(t, resp.Frequencies[testNumPoints512-1], testRate/2)

	// A highpass response rises monotonically from DC.
	testutil.AssertMonotonicWithin(t, resp.Magnitude, plateauRipple)
	testutil.AssertAllInRange(t, resp.Magnitude, 0, 1+gainTolerance)
}

func TestComputeFrequencyResponse_DefaultPoints(t *testing.T) {
	c, err := Design(NewLowpass(2, 1000, testRate))
	require.NoError(t, err)
	assert.Len(t, c.ComputeFrequencyResponse(0).Magnitude, defaultResponsePoints)
}

func TestMagnitudeDB(t *testing.T) {
	assert.InDelta(t, 0.0, MagnitudeDB(1), dbTolerance)
	assert.InDelta(t, -3.0103, MagnitudeDB(halfPowerMagnitude), dbTolerance)
	assert.InDelta(t, -200.0, MagnitudeDB(0), dbTolerance)
}
