package constants

// Event Queue Limits
const (
	// EventQueueSize is the capacity of the per-tick event ring
	// A tick publishes at most two events (food eaten plus spawn or board filled), the first tick one more
	EventQueueSize = 8

	// EventBufferMask is the bitmask for ring index wrap (8 - 1)
	EventBufferMask = EventQueueSize - 1
)
