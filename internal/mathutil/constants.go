package mathutil

// Bilinear transform constants
const (
	// bilinearFactor is the 2 in s = 2·fs·(z-1)/(z+1).
	bilinearFactor = 2.0

	// conjugateTolerance decides whether a pole is treated as real.
	// Poles with |Im| below this are paired as real poles.
	conjugateTolerance = 1e-12
)

// Common division constants
const (
	halfDivisor = 2.0 // Division by 2
)
