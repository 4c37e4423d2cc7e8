package status

import (
	"sort"
	"sync"
	"sync/atomic"
)

// Counters is a thread-safe set of named int64 counters
// Registration takes the lock; cached pointers are lock-free
type Counters struct {
	mu    sync.RWMutex
	items map[string]*atomic.Int64
}

// NewCounters creates an empty counter set
func NewCounters() *Counters {
	return &Counters{
		items: make(map[string]*atomic.Int64),
	}
}

// Get returns the counter for key, creating it at zero if absent
func (c *Counters) Get(key string) *atomic.Int64 {
	c.mu.RLock()
	if ptr, ok := c.items[key]; ok {
		c.mu.RUnlock()
		return ptr
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring write lock
	if ptr, ok := c.items[key]; ok {
		return ptr
	}
	ptr := new(atomic.Int64)
	c.items[key] = ptr
	return ptr
}

// Add increments key by delta and returns the new value
func (c *Counters) Add(key string, delta int64) int64 {
	return c.Get(key).Add(delta)
}

// Value reads key without registering it, zero when absent
func (c *Counters) Value(key string) int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if ptr, ok := c.items[key]; ok {
		return ptr.Load()
	}
	return 0
}

// Range visits every counter in sorted key order
func (c *Counters) Range(fn func(key string, value int64)) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	keys := make([]string, 0, len(c.items))
	for k := range c.items {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		fn(k, c.items[k].Load())
	}
}

// Count returns the number of registered counters
func (c *Counters) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
