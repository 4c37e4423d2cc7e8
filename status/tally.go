package status

import (
	"github.com/lixenwraith/grid-snake/event"
)

// EventTally counts game events by type name
type EventTally struct {
	counts *Counters
}

func NewEventTally() *EventTally {
	return &EventTally{counts: NewCounters()}
}

func (t *EventTally) HandleEvent(ev event.GameEvent) {
	t.counts.Add(ev.Type.String(), 1)
}

// Count returns how many events of type et were seen
func (t *EventTally) Count(et event.EventType) int64 {
	return t.counts.Value(et.String())
}

// Snapshot returns the counts keyed by event name
func (t *EventTally) Snapshot() map[string]int64 {
	out := make(map[string]int64, t.counts.Count())
	t.counts.Range(func(key string, value int64) {
		out[key] = value
	})
	return out
}
