package component

// EffectKind selects the cosmetic effect
type EffectKind uint8

const (
	EffectExplosion EffectKind = iota
	EffectFloatingScore
)

// EffectComponent is a transient visual, never collides
type EffectComponent struct {
	Kind  EffectKind
	Value int // Score shown by EffectFloatingScore
	Timer TimerComponent
}
