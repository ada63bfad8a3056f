package engine

import "github.com/lixenwraith/xgalaga/component"

// ComponentStore provides cached pointers to typed component stores
// Pointers remain valid for the world lifetime, Clear empties stores in place
type ComponentStore struct {
	Kinetic *Store[component.KineticComponent]

	Ship       *Store[component.ShipComponent]
	Enemy      *Store[component.EnemyComponent]
	Projectile *Store[component.ProjectileComponent]
	Pickup     *Store[component.PickupComponent]
	Effect     *Store[component.EffectComponent]
}

func newComponentStore() ComponentStore {
	return ComponentStore{
		Kinetic:    NewStore[component.KineticComponent](),
		Ship:       NewStore[component.ShipComponent](),
		Enemy:      NewStore[component.EnemyComponent](),
		Projectile: NewStore[component.ProjectileComponent](),
		Pickup:     NewStore[component.PickupComponent](),
		Effect:     NewStore[component.EffectComponent](),
	}
}

// all lists every store for uniform lifecycle operations
func (cs *ComponentStore) all() []AnyStore {
	return []AnyStore{cs.Kinetic, cs.Ship, cs.Enemy, cs.Projectile, cs.Pickup, cs.Effect}
}
