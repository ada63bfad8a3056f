package parameter

// Player projectiles
const (
	BulletSpeed  = 700.0
	BulletWidth  = 5.0
	BulletHeight = 15.0

	// MuzzleOffset is the spawn offset above the ship center
	MuzzleOffset = 20.0

	// ParallelOffset is the X offset of each barrel for the parallel double shot
	ParallelOffset = 10.0

	// DivergeSpeed is the lateral speed of each barrel for the V double shot
	DivergeSpeed = 150.0

	// FanStep is the lateral speed step between adjacent fan projectiles
	FanStep = 120.0

	// RapidInterval is the deferred emission interval for rapid modes in seconds
	RapidInterval = 0.1
)
