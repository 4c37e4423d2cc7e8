package game

import (
	"errors"
	"fmt"
	"io"

	"github.com/lixenwraith/grid-snake/event"
)

// State is the loop's position in the run
type State uint8

const (
	StateRunning State = iota
	StateDead
	StateQuit
	StateWon
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateDead:
		return "dead"
	case StateQuit:
		return "quit"
	case StateWon:
		return "won"
	default:
		return "unknown"
	}
}

// Terminal reports whether the loop has stopped
func (s State) Terminal() bool {
	return s != StateRunning
}

// Renderer draws one frame per tick
type Renderer interface {
	Render(f Frame) error
}

// KeySource blocks until the player presses a key
// io.EOF means input is closed and is treated as quitting
type KeySource interface {
	ReadKey() (rune, error)
}

// Result is the end-of-game report
type Result struct {
	State  State
	Score  int
	Length int
	Ticks  int64
	Final  Frame
}

// Loop runs render, read, resolve until a terminal state
type Loop struct {
	game     *Game
	renderer Renderer
	keys     KeySource

	queue    *event.EventQueue
	handlers []event.Handler

	state   State
	tick    int64
	started bool
}

func NewLoop(g *Game, r Renderer, k KeySource) *Loop {
	return &Loop{
		game:     g,
		renderer: r,
		keys:     k,
		queue:    event.NewEventQueue(),
		state:    StateRunning,
	}
}

// RegisterEventHandler adds a consumer for events drained after each tick
func (l *Loop) RegisterEventHandler(h event.Handler) {
	l.handlers = append(l.handlers, h)
}

func (l *Loop) State() State { return l.state }

// Run blocks until the game ends or a collaborator fails
func (l *Loop) Run() (Result, error) {
	for !l.state.Terminal() {
		if err := l.Step(); err != nil {
			return l.result(), err
		}
	}
	return l.result(), nil
}

// Step runs a single tick; it is a no-op once the loop has stopped
func (l *Loop) Step() error {
	if l.state.Terminal() {
		return nil
	}
	if !l.started {
		l.started = true
		if p, ok := l.game.Food(); ok {
			l.push(event.EventFoodSpawned, cellPayload(p))
			l.dispatch()
		}
	}

	if err := l.renderer.Render(l.game.Frame(l.tick)); err != nil {
		return fmt.Errorf("render tick %d: %w", l.tick, err)
	}

	r, err := l.keys.ReadKey()
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("read key: %w", err)
	}
	l.tick++

	cmd := MapKey(r)
	if err != nil || cmd == CommandQuit {
		l.state = StateQuit
		l.push(event.EventQuit, nil)
		l.dispatch()
		return nil
	}

	l.apply(l.game.Apply(cmd))
	l.dispatch()
	return nil
}

func (l *Loop) apply(m Move) {
	payload := event.MovePayload{
		Head:   cellPayload(m.Head),
		Length: l.game.Snake().Len(),
		Score:  l.game.Score(),
	}

	switch m.Kind {
	case MoveWait:
		l.push(event.EventWait, nil)
	case MoveStep:
		l.push(event.EventMove, payload)
	case MoveGrow:
		l.push(event.EventFoodEaten, payload)
		if m.FoodPlaced {
			l.push(event.EventFoodSpawned, cellPayload(m.Food))
		}
	case MoveBoundary:
		l.push(event.EventBoundaryHit, payload)
	case MoveCollision:
		l.push(event.EventCollision, payload)
	case MoveQuit:
		l.push(event.EventQuit, nil)
	}

	switch m.Outcome {
	case OutcomeDead:
		l.state = StateDead
	case OutcomeQuit:
		l.state = StateQuit
	case OutcomeWon:
		l.state = StateWon
		l.push(event.EventBoardFilled, payload)
	}
}

func (l *Loop) push(t event.EventType, payload any) {
	l.queue.Push(event.GameEvent{Type: t, Payload: payload, Tick: l.tick})
}

func (l *Loop) dispatch() {
	for _, ev := range l.queue.Consume() {
		for _, h := range l.handlers {
			h.HandleEvent(ev)
		}
	}
}

func (l *Loop) result() Result {
	return Result{
		State:  l.state,
		Score:  l.game.Score(),
		Length: l.game.Snake().Len(),
		Ticks:  l.tick,
		Final:  l.game.Frame(l.tick),
	}
}

func cellPayload(p Position) event.CellPayload {
	return event.CellPayload{Row: p.Row, Column: p.Column}
}
