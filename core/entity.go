package core

// Entity is a unique identifier for an object in the world
// Zero is never issued and marks an absent entity
type Entity uint64

// Valid reports whether e refers to an issued identifier
func (e Entity) Valid() bool {
	return e != 0
}
