package parameter

// Cosmetic effect lifetimes in seconds
const (
	ExplosionDuration     = 0.3
	FloatingScoreDuration = 0.8

	// FloatingScoreRise is the upward speed of score text
	FloatingScoreRise = 90.0
)
