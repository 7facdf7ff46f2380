package envelope

const (
	peakLevel  = 1.0
	zeroLevel  = 0.0
	maxFloor   = 1.0
	maxAttack  = 1.0 // AttackFraction upper bound
	minSegment = 0
)
