package component

// EnemyKind separates regular enemies from the wave's closing boss
type EnemyKind uint8

const (
	EnemySoldier EnemyKind = iota
	EnemyBoss
)

func (k EnemyKind) String() string {
	if k == EnemyBoss {
		return "boss"
	}
	return "soldier"
}

// Direction is the side a wave enters from
type Direction uint8

const (
	DirectionTop Direction = iota
	DirectionLeft
	DirectionRight
)

func (d Direction) String() string {
	switch d {
	case DirectionLeft:
		return "left"
	case DirectionRight:
		return "right"
	default:
		return "top"
	}
}

// EnemyComponent marks a hostile ship with its own fire cadence
type EnemyComponent struct {
	Kind      EnemyKind
	Direction Direction
	FireTimer TimerComponent
}
