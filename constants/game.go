package constants

// Board Dimensions
const (
	// GridRows is the fixed number of rows on the board
	GridRows = 11

	// GridColumns is the fixed number of columns on the board
	GridColumns = 11

	// InitialSnakeLength is the segment count at game start, also the score baseline
	InitialSnakeLength = 3
)

// Food Placement
const (
	// FoodSpawnAttempts caps uniform random sampling before falling back to the empty-cell scan
	FoodSpawnAttempts = 64
)
