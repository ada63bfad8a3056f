package component

// ShipComponent is the player ship
// RapidRemaining and RapidTimer form the deferred fire queue for rapid modes
type ShipComponent struct {
	Health         int
	Weapon         WeaponMode
	RapidRemaining int
	RapidTimer     TimerComponent
}
