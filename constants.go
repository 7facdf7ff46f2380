package uisound

// Sample rate limits
const (
	minSampleRate = RateTelephony
	maxSampleRate = RateHiRes192
)

// Level limits
const (
	maxPeak = 1.0 // Full scale
)

// Length limits
const (
	// maxDuration bounds the end of every layer, offset included, in seconds.
	maxDuration = 10.0
)

// Catalog defaults
const (
	// DefaultSeed seeds every render unless the caller overrides it.
	DefaultSeed = 0x5eed

	// customStream is the generator stream used for recipes outside the catalog.
	customStream = 1 << 32
)
