package component

import "github.com/lixenwraith/xgalaga/core"

// KineticComponent is the position and velocity every simulated entity carries
type KineticComponent struct {
	Pos core.Vec2
	Vel core.Vec2
}
