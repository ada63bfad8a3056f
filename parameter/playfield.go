package parameter

// Playfield extent in world units, origin at center, +Y up
const (
	PlayfieldWidth  = 800.0
	PlayfieldHeight = 600.0

	// CullMargin is how far past the edge a non-ship entity may travel before removal
	CullMargin = 50.0
)
