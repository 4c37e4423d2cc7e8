package event

// CellPayload identifies a board cell
type CellPayload struct {
	Row    int
	Column int
}

// MovePayload describes the snake after a resolved move
type MovePayload struct {
	Head   CellPayload
	Length int
	Score  int
}

// GameEvent is a single queued event, Tick is the loop tick that produced it
type GameEvent struct {
	Type    EventType
	Payload any
	Tick    int64
}

// Handler consumes dispatched events
type Handler interface {
	HandleEvent(ev GameEvent)
}

// HandlerFunc adapts a function to Handler
type HandlerFunc func(ev GameEvent)

func (f HandlerFunc) HandleEvent(ev GameEvent) { f(ev) }
