package engine

import (
	"math/rand"
	"sync"

	"github.com/lixenwraith/xgalaga/config"
	"github.com/lixenwraith/xgalaga/core"
	"github.com/lixenwraith/xgalaga/event"
	"github.com/lixenwraith/xgalaga/parameter"
	"github.com/lixenwraith/xgalaga/status"
)

// World contains all entities and their components using typed stores
// mu guards id allocation and the system list, stores carry their own locks
type World struct {
	mu           sync.RWMutex
	nextEntityID core.Entity

	Components ComponentStore
	Resources  Resource

	eventQueue *event.EventQueue
	router     *EventRouter

	systems []System
}

// NewWorld creates a world bound to cfg, rng and registry
// A nil registry gets a private one
func NewWorld(cfg *config.Config, rng *rand.Rand, registry *status.Registry) *World {
	if registry == nil {
		registry = status.NewRegistry()
	}
	w := &World{
		nextEntityID: 1,
		Components:   newComponentStore(),
		Resources: Resource{
			Time:   &TimeResource{},
			Config: cfg,
			Game:   &GameStateResource{},
			Wave:   &WaveResource{},
			Player: &PlayerResource{},
			Input:  &InputResource{},
			Rand:   rng,
			Status: registry,
		},
		eventQueue: event.NewEventQueue(),
		router:     NewEventRouter(),
	}
	w.Resources.Wave.Reset(cfg)
	return w
}

// CreateEntity reserves a new entity ID
func (w *World) CreateEntity() core.Entity {
	w.mu.Lock()
	defer w.mu.Unlock()

	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// DestroyEntity removes all components associated with an entity
// Destroying an unknown or already destroyed entity is a no-op
func (w *World) DestroyEntity(e core.Entity) {
	for _, s := range w.Components.all() {
		s.Remove(e)
	}
	if w.Resources.Player.Entity == e {
		w.Resources.Player.Entity = 0
	}
}

// DestroyBatch removes a pass's collected entities from every store
func (w *World) DestroyBatch(entities []core.Entity) {
	if len(entities) == 0 {
		return
	}
	for _, s := range w.Components.all() {
		s.RemoveBatch(entities)
	}
	for _, e := range entities {
		if w.Resources.Player.Entity == e {
			w.Resources.Player.Entity = 0
		}
	}
}

// IsAlive reports whether e still has a body in the world
func (w *World) IsAlive(e core.Entity) bool {
	return e != 0 && w.Components.Kinetic.Has(e)
}

// Clear removes all entities and components and drops pending events
func (w *World) Clear() {
	w.mu.Lock()
	w.nextEntityID = 1
	w.mu.Unlock()

	for _, s := range w.Components.all() {
		s.Clear()
	}
	w.Resources.Player.Entity = 0
	w.eventQueue.Reset()
}

// EntityCount returns the number of live bodies
func (w *World) EntityCount() int {
	return w.Components.Kinetic.Count()
}

// AddSystem adds a system, registers its event types and keeps priority order
func (w *World) AddSystem(system System) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.systems = append(w.systems, system)
	w.router.Register(system)

	// Sort by priority (bubble sort, small N)
	for i := 0; i < len(w.systems)-1; i++ {
		for j := 0; j < len(w.systems)-i-1; j++ {
			if w.systems[j].Priority() > w.systems[j+1].Priority() {
				w.systems[j], w.systems[j+1] = w.systems[j+1], w.systems[j]
			}
		}
	}
}

// Systems returns a copy of all registered systems in run order
func (w *World) Systems() []System {
	w.mu.RLock()
	defer w.mu.RUnlock()
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// Update advances time by dt seconds and runs all systems in priority order
func (w *World) Update(dt float64) {
	t := w.Resources.Time
	t.DeltaTime = dt
	t.SimTime += dt
	t.FrameNumber++

	for _, system := range w.Systems() {
		system.Update()
	}
}

// PushEvent emits a game event stamped with the current frame
func (w *World) PushEvent(eventType event.EventType, payload any) {
	w.eventQueue.Push(event.GameEvent{
		Type:    eventType,
		Payload: payload,
		Frame:   w.Resources.Time.FrameNumber,
	})
}

// DrainEvents consumes pending events and routes them to handlers
// Handlers may push follow-up events, which are drained in further passes up to a bound
// Returns every routed event in order
func (w *World) DrainEvents() []event.GameEvent {
	var drained []event.GameEvent
	for pass := 0; pass < parameter.EventDrainPasses; pass++ {
		events := w.eventQueue.Consume()
		if len(events) == 0 {
			break
		}
		w.router.Dispatch(events)
		drained = append(drained, events...)
	}
	return drained
}

// PendingEvents returns the queue length
func (w *World) PendingEvents() int {
	return w.eventQueue.Len()
}

// EventPeak returns the most events pending at once since the last Clear
func (w *World) EventPeak() int {
	return w.eventQueue.Peak()
}

// Router exposes the router for handler introspection in tests and hosts
func (w *World) Router() *EventRouter {
	return w.router
}
