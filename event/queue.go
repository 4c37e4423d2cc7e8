package event

import (
	"github.com/lixenwraith/grid-snake/constants"
)

// EventQueue is a fixed-size FIFO ring of game events
// Owned by one goroutine: the loop pushes during a tick and drains after it
// Overflow: the oldest pending event is overwritten
type EventQueue struct {
	events [constants.EventQueueSize]GameEvent
	head   int // Index of the oldest pending event
	count  int
}

func NewEventQueue() *EventQueue {
	return &EventQueue{}
}

// Push appends an event, returns false when the oldest pending event was dropped to make room
func (eq *EventQueue) Push(event GameEvent) bool {
	idx := (eq.head + eq.count) & constants.EventBufferMask
	eq.events[idx] = event

	if eq.count == constants.EventQueueSize {
		eq.head = (eq.head + 1) & constants.EventBufferMask
		return false
	}
	eq.count++
	return true
}

// Consume returns pending events oldest first and empties the ring, nil when empty
func (eq *EventQueue) Consume() []GameEvent {
	if eq.count == 0 {
		return nil
	}

	result := make([]GameEvent, eq.count)
	for i := range result {
		idx := (eq.head + i) & constants.EventBufferMask
		result[i] = eq.events[idx]
		eq.events[idx] = GameEvent{} // Release payload
	}
	eq.head = (eq.head + eq.count) & constants.EventBufferMask
	eq.count = 0
	return result
}
