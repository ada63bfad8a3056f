package engine

import "github.com/lixenwraith/xgalaga/event"

// System is one stage of the tick pipeline
// Update runs in Priority order; HandleEvent runs during the drain phase after all updates
type System interface {
	// Init resets internal state, called on construction and on EventGameReset
	Init()
	Name() string
	Priority() int

	// EventTypes lists the events routed to HandleEvent
	EventTypes() []event.EventType
	HandleEvent(ev event.GameEvent)

	Update()
}
