package event

import "github.com/lixenwraith/xgalaga/parameter"

// EventQueue is the per-tick FIFO of game events
// Owned by the simulation goroutine, not safe for concurrent use
//
// Overflow: the buffer grows, a pushed event is never dropped since loot and
// wave progression are driven by events
type EventQueue struct {
	pending []GameEvent
	peak    int // Largest pending count since the last Reset
}

func NewEventQueue() *EventQueue {
	return &EventQueue{pending: make([]GameEvent, 0, parameter.EventQueueSize)}
}

// Push appends ev
func (eq *EventQueue) Push(ev GameEvent) {
	eq.pending = append(eq.pending, ev)
	eq.peak = max(eq.peak, len(eq.pending))
}

// Consume hands over all pending events in FIFO order, nil when empty
// The returned slice belongs to the caller
func (eq *EventQueue) Consume() []GameEvent {
	if len(eq.pending) == 0 {
		return nil
	}
	result := eq.pending
	eq.pending = make([]GameEvent, 0, max(cap(result), parameter.EventQueueSize))
	return result
}

func (eq *EventQueue) Len() int {
	return len(eq.pending)
}

// Peak returns the high-water mark of pending events
func (eq *EventQueue) Peak() int {
	return eq.peak
}

// Reset drops pending events and the high-water mark
func (eq *EventQueue) Reset() {
	clear(eq.pending)
	eq.pending = eq.pending[:0]
	eq.peak = 0
}
