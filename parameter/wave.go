package parameter

// Wave director
const (
	EnemiesPerWave = 10
	WavesPerLevel  = 5
	Levels         = 3

	// SpawnCadence is the repeating interval between enemy spawns in seconds
	SpawnCadence = 0.6

	// WavePause is the one-shot pause after a wave or level in seconds
	WavePause = 2.0

	// MaxEnemiesPerWave is the hard cap on the configured wave size
	MaxEnemiesPerWave = 10
)

// Direction names accepted in config
const (
	DirectionTop   = "top"
	DirectionLeft  = "left"
	DirectionRight = "right"
)

// ScriptedDirections drives the opening waves, CycleDirections repeats afterwards
var (
	ScriptedDirections = []string{DirectionLeft, DirectionRight, DirectionTop}
	CycleDirections    = []string{DirectionTop, DirectionLeft, DirectionRight}
)
