package game

// Outcome classifies the game after a resolved tick
type Outcome uint8

const (
	OutcomeAlive Outcome = iota
	OutcomeDead
	OutcomeQuit
	OutcomeWon // Snake covers the board, no cell left for food
)

func (o Outcome) String() string {
	switch o {
	case OutcomeAlive:
		return "alive"
	case OutcomeDead:
		return "dead"
	case OutcomeQuit:
		return "quit"
	case OutcomeWon:
		return "won"
	default:
		return "unknown"
	}
}

// MoveKind is the transition a command produced
type MoveKind uint8

const (
	MoveWait MoveKind = iota
	MoveStep
	MoveGrow
	MoveBoundary
	MoveCollision
	MoveQuit
)

// Move reports what Apply did
type Move struct {
	Kind    MoveKind
	Outcome Outcome
	Head    Position // Head after the move; unchanged on wait and death

	// Set on MoveGrow when new food was placed
	Food       Position
	FoodPlaced bool
}

// Resolve applies cmd and returns the resulting outcome
func (g *Game) Resolve(cmd Command) Outcome {
	return g.Apply(cmd).Outcome
}

// Apply resolves one command against the board
// Bounds are checked before any cell read; death leaves the board untouched.
// Moving onto the current tail is a collision even though the tail would vacate.
func (g *Game) Apply(cmd Command) Move {
	head := g.snake.Head()

	if cmd == CommandQuit {
		return Move{Kind: MoveQuit, Outcome: OutcomeQuit, Head: head}
	}
	dir, ok := cmd.Direction()
	if !ok {
		return Move{Kind: MoveWait, Outcome: OutcomeAlive, Head: head}
	}

	candidate := head.Step(dir)
	if !g.grid.InBounds(candidate) {
		return Move{Kind: MoveBoundary, Outcome: OutcomeDead, Head: head}
	}

	switch g.grid.CellAt(candidate) {
	case CellSnake:
		return Move{Kind: MoveCollision, Outcome: OutcomeDead, Head: head}

	case CellFood:
		g.advance(candidate, true)
		g.foodPos, g.hasFood = g.food.Spawn(g.grid)
		m := Move{
			Kind:       MoveGrow,
			Outcome:    OutcomeAlive,
			Head:       candidate,
			Food:       g.foodPos,
			FoodPlaced: g.hasFood,
		}
		if !g.hasFood {
			m.Outcome = OutcomeWon
		}
		return m

	default:
		g.advance(candidate, false)
		return Move{Kind: MoveStep, Outcome: OutcomeAlive, Head: candidate}
	}
}

// advance clears the old body, shifts the snake and re-marks the new body
func (g *Game) advance(candidate Position, growing bool) {
	g.grid.ClearSnakeCells()
	g.snake.ShiftInto(candidate, growing)
	g.snake.MarkOn(g.grid)
}
