package event

// EventType represents the type of game event
type EventType int

const (
	// EventWait signals a tick consumed by an unrecognized key
	// Trigger: Resolver on NoOp | Payload: nil
	EventWait EventType = iota

	// EventMove signals the snake advanced into an empty cell
	// Trigger: Resolver | Payload: MovePayload
	EventMove

	// EventFoodEaten signals the snake grew into a food cell
	// Trigger: Resolver | Payload: MovePayload
	EventFoodEaten

	// EventFoodSpawned signals a new food cell was placed
	// Trigger: Game start, Resolver after growth | Payload: CellPayload
	EventFoodSpawned

	// EventBoundaryHit signals a move off the board
	// Trigger: Resolver | Payload: MovePayload (head unchanged)
	EventBoundaryHit

	// EventCollision signals a move into the snake body
	// Trigger: Resolver | Payload: MovePayload (head unchanged)
	EventCollision

	// EventBoardFilled signals the snake covers every cell
	// Trigger: Resolver after growth | Payload: MovePayload
	EventBoardFilled

	// EventQuit signals the player quit
	// Trigger: Loop on Quit command or closed input | Payload: nil
	EventQuit
)

var eventNames = [...]string{
	EventWait:        "wait",
	EventMove:        "move",
	EventFoodEaten:   "food_eaten",
	EventFoodSpawned: "food_spawned",
	EventBoundaryHit: "boundary_hit",
	EventCollision:   "collision",
	EventBoardFilled: "board_filled",
	EventQuit:        "quit",
}

func (t EventType) String() string {
	if t < 0 || int(t) >= len(eventNames) {
		return "unknown"
	}
	return eventNames[t]
}

// Terminal reports whether the event ends the game
func (t EventType) Terminal() bool {
	switch t {
	case EventBoundaryHit, EventCollision, EventBoardFilled, EventQuit:
		return true
	default:
		return false
	}
}
