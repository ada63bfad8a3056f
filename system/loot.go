package system

import (
	"sync/atomic"

	"github.com/samber/lo"

	"github.com/lixenwraith/xgalaga/component"
	"github.com/lixenwraith/xgalaga/core"
	"github.com/lixenwraith/xgalaga/engine"
	"github.com/lixenwraith/xgalaga/event"
	"github.com/lixenwraith/xgalaga/parameter"
)

type lootEntry struct {
	Payload component.PickupPayload
	Weight  float64
}

// LootSystem rolls drops for player kills and counts collections
type LootSystem struct {
	world *engine.World

	table       []lootEntry
	totalWeight float64

	statDrops    *atomic.Int64
	statCollects *atomic.Int64
}

func NewLootSystem(world *engine.World) engine.System {
	s := &LootSystem{world: world}
	s.statDrops = world.Resources.Status.Ints.Get("loot.drops")
	s.statCollects = world.Resources.Status.Ints.Get("loot.collects")
	s.Init()
	return s
}

func (s *LootSystem) Init() {
	s.initTable()
	s.statDrops.Store(0)
	s.statCollects.Store(0)
}

// initTable resolves the configured table, config validation guarantees it parses
func (s *LootSystem) initTable() {
	payloads, weights, _ := s.world.Resources.Config.Loot.Resolve()

	entries := lo.Map(payloads, func(p component.PickupPayload, i int) lootEntry {
		return lootEntry{Payload: p, Weight: weights[i]}
	})
	s.table = lo.Filter(entries, func(e lootEntry, _ int) bool {
		return e.Weight > 0
	})
	s.totalWeight = lo.SumBy(s.table, func(e lootEntry) float64 {
		return e.Weight
	})
}

func (s *LootSystem) Name() string {
	return "loot"
}

func (s *LootSystem) Priority() int {
	return parameter.PriorityLoot
}

func (s *LootSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventEnemyKilled,
		event.EventPickupCollected,
		event.EventGameReset,
	}
}

func (s *LootSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventGameReset:
		s.Init()
	case event.EventEnemyKilled:
		if payload, ok := ev.Payload.(*event.EnemyKilledPayload); ok {
			s.onEnemyKilled(payload)
		}
	case event.EventPickupCollected:
		s.statCollects.Add(1)
	}
}

func (s *LootSystem) Update() {}

func (s *LootSystem) onEnemyKilled(payload *event.EnemyKilledPayload) {
	cfg := s.world.Resources.Config.Loot
	rng := s.world.Resources.Rand

	if len(s.table) == 0 || rng.Float64() >= cfg.DropChance {
		return
	}

	pick := s.roll(rng.Float64() * s.totalWeight)

	e := s.world.CreateEntity()
	s.world.Components.Kinetic.Set(e, component.KineticComponent{
		Pos: payload.Pos,
		Vel: core.V(0, -cfg.Speed),
	})
	s.world.Components.Pickup.Set(e, component.PickupComponent{Payload: pick})
	s.statDrops.Add(1)
	s.world.PushEvent(event.EventPickupSpawned, &event.PickupPayload{
		Entity: e, Payload: pick, Pos: payload.Pos,
	})
}

// roll walks the cumulative weights, r is in [0, totalWeight)
func (s *LootSystem) roll(r float64) component.PickupPayload {
	for _, entry := range s.table {
		if r < entry.Weight {
			return entry.Payload
		}
		r -= entry.Weight
	}
	return s.table[len(s.table)-1].Payload
}
