package system

import (
	"sync/atomic"

	"github.com/lixenwraith/xgalaga/component"
	"github.com/lixenwraith/xgalaga/core"
	"github.com/lixenwraith/xgalaga/engine"
	"github.com/lixenwraith/xgalaga/event"
	"github.com/lixenwraith/xgalaga/parameter"
	"github.com/lixenwraith/xgalaga/status"
)

// DirectorSystem runs the wave state machine
// Spawning -> Fighting -> Waiting | LevelCompleted -> Spawning, halting on game over or victory
type DirectorSystem struct {
	world *engine.World

	statSpawned *atomic.Int64
	statState   *status.AtomicString
}

func NewDirectorSystem(world *engine.World) engine.System {
	s := &DirectorSystem{world: world}
	s.statSpawned = world.Resources.Status.Ints.Get("enemy.spawned")
	s.statState = world.Resources.Status.Strings.Get("wave.state")
	s.Init()
	return s
}

func (s *DirectorSystem) Init() {
	s.world.Resources.Wave.Reset(s.world.Resources.Config)
	s.statSpawned.Store(0)
	s.statState.Store(s.world.Resources.Wave.State.String())
}

func (s *DirectorSystem) Name() string {
	return "director"
}

func (s *DirectorSystem) Priority() int {
	return parameter.PriorityDirector
}

func (s *DirectorSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventWaveSkipRequest,
		event.EventGameReset,
	}
}

func (s *DirectorSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventGameReset:
		s.Init()
	case event.EventWaveSkipRequest:
		s.ForceLevelComplete()
	}
}

func (s *DirectorSystem) Update() {
	// Terminal flags are checked before any state
	if s.world.Resources.Game.Terminal() {
		return
	}

	dt := s.world.Resources.Time.DeltaTime
	wave := s.world.Resources.Wave

	switch wave.State {
	case engine.WaveSpawning:
		if wave.SpawnTimer.Tick(dt) {
			s.spawnEnemy()
			if wave.Spawned >= s.world.Resources.Config.Wave.EnemiesPerWave {
				wave.State = engine.WaveFighting
			}
		}

	case engine.WaveFighting:
		if s.world.Components.Enemy.Count() == 0 {
			s.completeWave()
		}

	case engine.WaveWaiting, engine.WaveLevelCompleted:
		if wave.PauseTimer.Tick(dt) {
			s.advance()
		}
	}

	s.statState.Store(wave.State.String())
}

// ForceLevelComplete jumps to the level pause, live enemies stay but no longer gate progress
func (s *DirectorSystem) ForceLevelComplete() {
	wave := s.world.Resources.Wave
	if s.world.Resources.Game.Terminal() || wave.State == engine.WaveLevelCompleted {
		return
	}
	wave.State = engine.WaveLevelCompleted
	wave.PauseTimer.Reset()
	s.statState.Store(wave.State.String())
	s.world.PushEvent(event.EventLevelCompleted, &event.WavePayload{
		Level: wave.Level, Wave: wave.Wave, Direction: wave.Direction,
	})
}

func (s *DirectorSystem) spawnEnemy() {
	cfg := s.world.Resources.Config
	wave := s.world.Resources.Wave
	rng := s.world.Resources.Rand

	index := wave.Spawned
	kind := component.EnemySoldier
	if cfg.Wave.BossEnabled && index == cfg.Wave.EnemiesPerWave-1 {
		kind = component.EnemyBoss
	}

	halfW, halfH := cfg.Playfield.Width/2, cfg.Playfield.Height/2
	var pos, vel core.Vec2
	switch wave.Direction {
	case component.DirectionLeft:
		pos = core.V(-halfW-cfg.Enemy.EntryInset, cfg.Enemy.EntryHeight)
		vel = core.V(cfg.Enemy.Speed, -cfg.Enemy.Drift)
	case component.DirectionRight:
		pos = core.V(halfW+cfg.Enemy.EntryInset, cfg.Enemy.EntryHeight)
		vel = core.V(-cfg.Enemy.Speed, -cfg.Enemy.Drift)
	default:
		pos = core.V((rng.Float64()-0.5)*cfg.Playfield.Width*cfg.Enemy.TopSpread, halfH+cfg.Enemy.EntryInset)
		vel = core.V(0, -cfg.Enemy.Speed)
	}

	fire := component.NewRepeatingTimer(cfg.Enemy.FirePeriod(kind))
	if cfg.Enemy.FireJitter > 0 {
		fire.Remaining += rng.Float64() * cfg.Enemy.FireJitter
	}

	e := s.world.CreateEntity()
	s.world.Components.Kinetic.Set(e, component.KineticComponent{Pos: pos, Vel: vel})
	s.world.Components.Enemy.Set(e, component.EnemyComponent{
		Kind:      kind,
		Direction: wave.Direction,
		FireTimer: fire,
	})

	if index == 0 {
		s.world.PushEvent(event.EventWaveStarted, &event.WavePayload{
			Level: wave.Level, Wave: wave.Wave, Direction: wave.Direction,
		})
	}
	wave.Spawned++
	s.statSpawned.Add(1)
	s.world.PushEvent(event.EventEnemySpawned, &event.EnemySpawnedPayload{
		Entity: e, Kind: kind, Direction: wave.Direction, Index: index,
	})
}

// completeWave leaves Fighting, called exactly once per wave
func (s *DirectorSystem) completeWave() {
	cfg := s.world.Resources.Config
	wave := s.world.Resources.Wave

	// Kill counter, never the spawned counter: escaped enemies are not kills
	kills := wave.KilledByPlayer
	if cfg.Wave.PerfectCountsRams {
		kills += wave.Rammed
	}
	wave.Perfect = kills >= cfg.Wave.EnemiesPerWave

	s.world.PushEvent(event.EventWaveCompleted, &event.WaveCompletedPayload{
		Level:   wave.Level,
		Wave:    wave.Wave,
		Kills:   wave.KilledByPlayer,
		Spawned: wave.Spawned,
		Perfect: wave.Perfect,
	})

	wave.PauseTimer.Reset()
	if wave.Wave >= cfg.Wave.WavesPerLevel {
		wave.State = engine.WaveLevelCompleted
		s.world.PushEvent(event.EventLevelCompleted, &event.WavePayload{
			Level: wave.Level, Wave: wave.Wave, Direction: wave.Direction,
		})
		return
	}
	wave.State = engine.WaveWaiting
}

// advance ends a pause: next wave, next level, or victory
func (s *DirectorSystem) advance() {
	cfg := s.world.Resources.Config
	wave := s.world.Resources.Wave

	if wave.State == engine.WaveLevelCompleted {
		if wave.Level >= cfg.Wave.Levels {
			s.world.Resources.Game.Victory = true
			s.world.PushEvent(event.EventVictory, nil)
			return
		}
		wave.Level++
		wave.Wave = 1
	} else {
		wave.Wave++
	}

	wave.Spawned = 0
	wave.KilledByPlayer = 0
	wave.Rammed = 0
	wave.Perfect = false
	wave.Direction = cfg.Wave.DirectionFor(wave.GlobalWave(cfg.Wave.WavesPerLevel))
	wave.SpawnTimer.Reset()
	wave.State = engine.WaveSpawning
}
