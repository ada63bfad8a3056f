package component

// ProjectileOwner decides which collision rules apply, fixed at creation
type ProjectileOwner uint8

const (
	FromPlayer ProjectileOwner = iota
	FromEnemy
)

// ProjectileComponent marks a bullet, lifetime ends at the playfield edge or on hit
type ProjectileComponent struct {
	Owner ProjectileOwner
}
