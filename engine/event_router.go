package engine

import "github.com/lixenwraith/xgalaga/event"

// EventRouter dispatches events to registered systems
//
// Architecture:
//   - Single-threaded dispatch (no concurrency issues with World mutation)
//   - Multiple handlers can register for the same event type
//   - Handlers are invoked in registration order
type EventRouter struct {
	handlers map[event.EventType][]System
}

func NewEventRouter() *EventRouter {
	return &EventRouter{
		handlers: make(map[event.EventType][]System),
	}
}

// Register adds a system for its declared event types
func (r *EventRouter) Register(s System) {
	for _, t := range s.EventTypes() {
		r.handlers[t] = append(r.handlers[t], s)
	}
}

// Dispatch routes events in FIFO order
// All handlers for an event are called before moving to the next event
func (r *EventRouter) Dispatch(events []event.GameEvent) {
	for _, ev := range events {
		for _, h := range r.handlers[ev.Type] {
			h.HandleEvent(ev)
		}
	}
}

func (r *EventRouter) HasHandlers(t event.EventType) bool {
	return len(r.handlers[t]) > 0
}

func (r *EventRouter) HandlerCount(t event.EventType) int {
	return len(r.handlers[t])
}
