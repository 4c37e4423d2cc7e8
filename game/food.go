package game

import (
	"math/rand"

	"github.com/lixenwraith/grid-snake/constants"
)

// FoodSpawner places food on random empty cells
type FoodSpawner struct {
	rng         *rand.Rand
	maxAttempts int
}

// NewFoodSpawner uses rng for every placement; seeding is the caller's concern
func NewFoodSpawner(rng *rand.Rand) *FoodSpawner {
	return &FoodSpawner{
		rng:         rng,
		maxAttempts: constants.FoodSpawnAttempts,
	}
}

// Spawn marks a uniformly chosen empty cell as food
// Random sampling is capped; past the cap the choice is drawn from the empty
// cell list instead, so a crowded board still resolves in one scan.
// Returns false when the board has no empty cell.
func (f *FoodSpawner) Spawn(grid *Grid) (Position, bool) {
	for i := 0; i < f.maxAttempts; i++ {
		p := Position{
			Row:    f.rng.Intn(grid.Rows()),
			Column: f.rng.Intn(grid.Columns()),
		}
		if grid.CellAt(p) == CellEmpty {
			grid.Mark(p, CellFood)
			return p, true
		}
	}

	empty := grid.EmptyPositions()
	if len(empty) == 0 {
		return Position{}, false
	}
	p := empty[f.rng.Intn(len(empty))]
	grid.Mark(p, CellFood)
	return p, true
}
