package game

import (
	"math/rand"
	"reflect"
	"testing"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g, err := New(DefaultConfig(), rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return g
}

// setSnake replaces the snake with segs (head first) and re-marks the grid
func setSnake(g *Game, segs ...Position) {
	g.grid.ClearSnakeCells()
	copy(g.snake.segments, segs)
	g.snake.length = len(segs)
	for _, p := range segs {
		if g.hasFood && g.foodPos == p {
			g.hasFood = false
		}
	}
	g.snake.MarkOn(g.grid)
}

// placeFood moves the single food cell to p
func placeFood(g *Game, p Position) {
	if g.hasFood && g.grid.CellAt(g.foodPos) == CellFood {
		g.grid.Mark(g.foodPos, CellEmpty)
	}
	g.grid.Mark(p, CellFood)
	g.foodPos = p
	g.hasFood = true
}

// clearFood removes food so a test controls every cell
func clearFood(g *Game) {
	if g.hasFood && g.grid.CellAt(g.foodPos) == CellFood {
		g.grid.Mark(g.foodPos, CellEmpty)
	}
	g.hasFood = false
}

// checkInvariants verifies the board agrees with the snake
func checkInvariants(t *testing.T, g *Game) {
	t.Helper()

	segs := g.snake.Segments()
	if got := g.grid.Count(CellSnake); got != len(segs) {
		t.Fatalf("Snake cell count %d != length %d", got, len(segs))
	}

	seen := make(map[Position]bool, len(segs))
	for i, p := range segs {
		if !g.grid.InBounds(p) {
			t.Fatalf("Segment %d out of bounds: %+v", i, p)
		}
		if seen[p] {
			t.Fatalf("Segment %d duplicates %+v", i, p)
		}
		seen[p] = true
		if g.grid.CellAt(p) != CellSnake {
			t.Fatalf("Segment %d at %+v not marked snake (%v)", i, p, g.grid.CellAt(p))
		}
	}

	if food := g.grid.Count(CellFood); food > 1 {
		t.Fatalf("Expected at most one food cell, got %d", food)
	}
}

type boardState struct {
	cells  [][]Cell
	segs   []Position
	length int
}

func captureState(g *Game) boardState {
	return boardState{
		cells:  g.grid.Snapshot(),
		segs:   g.snake.Segments(),
		length: g.snake.Len(),
	}
}

func assertUnchanged(t *testing.T, before boardState, g *Game) {
	t.Helper()
	after := captureState(g)
	if !reflect.DeepEqual(before, after) {
		t.Errorf("Expected no mutation\nbefore: %+v\nafter:  %+v", before.segs, after.segs)
	}
}
