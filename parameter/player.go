package parameter

// Ship
const (
	ShipSpeed  = 500.0
	ShipWidth  = 30.0
	ShipHeight = 15.0

	// ShipStartY is the ship baseline, just above the bottom edge
	ShipStartY = -PlayfieldHeight/2 + 40

	ShipHealth = 3

	// ShipHitRadius is the enemy projectile vs ship threshold
	ShipHitRadius = 15.0

	// PickupRadius is the ship vs pickup threshold
	PickupRadius = 25.0
)
