package parameter

// Enemy kinematics
const (
	EnemySpeed = 120.0

	// EnemyDrift is the downward component of side entries
	EnemyDrift = 20.0

	// EnemyEntryHeight is the Y of side entries
	EnemyEntryHeight = 200.0

	// EnemyEntryInset is how far outside the edge enemies appear
	EnemyEntryInset = 20.0

	// EnemyTopSpread is the fraction of playfield width used for top entries
	EnemyTopSpread = 0.8

	EnemySize = 25.0
	BossScale = 2.5
)

// Enemy combat
const (
	SoldierHitRadius = 25.0
	BossHitRadius    = 50.0

	SoldierScore = 10
	BossScore    = 100

	SoldierFirePeriod = 2.5
	BossFirePeriod    = 1.2

	// EnemyFireJitter spreads initial fire timers so a wave does not volley in sync
	EnemyFireJitter = 0.5

	// EnemyBulletSpeed is EnemySpeed * 1.8
	EnemyBulletSpeed = 216.0
)
