package parameter

// System Execution Priorities (lower runs first)
// Order is the per-tick data flow: input, fire, movement, director, collision
const (
	PriorityShip      = 10
	PriorityWeapon    = 20
	PriorityMovement  = 30
	PriorityEffect    = 40 // After movement, cosmetic only
	PriorityDirector  = 50 // After movement so on-screen checks use fresh positions
	PriorityCollision = 60
	PriorityLoot      = 70 // Event driven
)
