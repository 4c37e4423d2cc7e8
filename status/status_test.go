package status

import (
	"sync"
	"testing"

	"github.com/lixenwraith/grid-snake/event"
)

func TestCountersGetCaches(t *testing.T) {
	c := NewCounters()
	a := c.Get("moves")
	b := c.Get("moves")
	if a != b {
		t.Error("Get should return the cached pointer")
	}
	if c.Count() != 1 {
		t.Errorf("Count = %d, want 1", c.Count())
	}
}

func TestCountersValueDoesNotRegister(t *testing.T) {
	c := NewCounters()
	if v := c.Value("missing"); v != 0 {
		t.Errorf("Value = %d, want 0", v)
	}
	if c.Count() != 0 {
		t.Errorf("Value registered a counter")
	}
}

func TestCountersRangeSorted(t *testing.T) {
	c := NewCounters()
	c.Add("b", 2)
	c.Add("a", 1)
	c.Add("c", 3)

	var keys []string
	var sum int64
	c.Range(func(key string, value int64) {
		keys = append(keys, key)
		sum += value
	})

	if len(keys) != 3 || keys[0] != "a" || keys[1] != "b" || keys[2] != "c" {
		t.Errorf("keys = %v, want sorted a b c", keys)
	}
	if sum != 6 {
		t.Errorf("sum = %d, want 6", sum)
	}
}

func TestCountersConcurrentAdd(t *testing.T) {
	c := NewCounters()
	const workers, perWorker = 8, 1000

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				c.Add("hits", 1)
			}
		}()
	}
	wg.Wait()

	if v := c.Value("hits"); v != workers*perWorker {
		t.Errorf("hits = %d, want %d", v, workers*perWorker)
	}
}

func TestEventTally(t *testing.T) {
	tally := NewEventTally()
	for _, et := range []event.EventType{
		event.EventFoodSpawned,
		event.EventMove,
		event.EventMove,
		event.EventFoodEaten,
		event.EventFoodSpawned,
		event.EventCollision,
	} {
		tally.HandleEvent(event.GameEvent{Type: et})
	}

	tests := []struct {
		et   event.EventType
		want int64
	}{
		{event.EventMove, 2},
		{event.EventFoodSpawned, 2},
		{event.EventFoodEaten, 1},
		{event.EventCollision, 1},
		{event.EventQuit, 0},
	}
	for _, tt := range tests {
		if got := tally.Count(tt.et); got != tt.want {
			t.Errorf("Count(%s) = %d, want %d", tt.et, got, tt.want)
		}
	}

	snap := tally.Snapshot()
	if len(snap) != 4 {
		t.Errorf("snapshot has %d keys, want 4: %v", len(snap), snap)
	}
	if snap["move"] != 2 {
		t.Errorf("snapshot move = %d", snap["move"])
	}
}
