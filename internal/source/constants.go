package source

import "math"

// Pink noise approximation.
//
// A fixed third-order recursive filter applied to uniform white noise gives a
// spectrum falling at roughly -3 dB/octave across the audio band. The
// coefficients are a published constant set and are never derived at runtime.
const (
	pinkB0 = 0.049922035
	pinkB1 = -0.095993537
	pinkB2 = 0.050612699
	pinkB3 = -0.004408786

	pinkA0 = 1.0
	pinkA1 = -2.494956002
	pinkA2 = 2.017265875
	pinkA3 = -0.522189400
)

// Waveform and level constants
const (
	twoPi      = 2 * math.Pi
	halfPeriod = math.Pi

	uniformScale = 2.0 // 2·U[0,1) - 1 spans [-1, 1)
	impulseLevel = 1.0
	defaultLevel = 1.0

	maxToneAmplitude = 1.0
	minImpulseSize   = 0
)
