package game

import (
	"fmt"
	"math/rand"
)

// Game owns one board and snake for a single run
type Game struct {
	cfg   Config
	grid  *Grid
	snake *Snake
	food  *FoodSpawner

	foodPos Position
	hasFood bool
}

// New validates cfg, lays out the starting snake and places the first food
func New(cfg Config, rng *rand.Rand) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.InitialLength >= cfg.Cells() {
		return nil, fmt.Errorf("%w: no room for food on %dx%d board", ErrInvalidConfig, cfg.Rows, cfg.Columns)
	}

	g := &Game{
		cfg:   cfg,
		grid:  NewGrid(cfg.Rows, cfg.Columns),
		snake: NewSnake(cfg.Cells()),
		food:  NewFoodSpawner(rng),
	}
	g.snake.Initialize(g.grid, cfg.InitialLength)
	g.foodPos, g.hasFood = g.food.Spawn(g.grid)
	return g, nil
}

func (g *Game) Config() Config { return g.cfg }
func (g *Game) Grid() *Grid    { return g.grid }
func (g *Game) Snake() *Snake  { return g.snake }

// Food returns the current food cell, ok is false once the board is full
func (g *Game) Food() (Position, bool) {
	return g.foodPos, g.hasFood
}

// Score is the number of segments grown since the start, never negative
func (g *Game) Score() int {
	return g.snake.Len() - g.cfg.InitialLength
}

// Frame is the read-only view handed to a renderer each tick
type Frame struct {
	Cells  [][]Cell // [row][column]
	Score  int
	Length int
	Tick   int64
}

// Frame snapshots the board for rendering
func (g *Game) Frame(tick int64) Frame {
	return Frame{
		Cells:  g.grid.Snapshot(),
		Score:  g.Score(),
		Length: g.snake.Len(),
		Tick:   tick,
	}
}
