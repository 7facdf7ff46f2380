package filter

const (
	// Filter design limits
	minOrder = 1
	maxOrder = 8

	// Gain normalization
	minSectionGain = 1e-300 // Below this a section gain is treated as zero

	// Frequency response defaults
	defaultResponsePoints = 512
	halfDivisor           = 2.0
)
