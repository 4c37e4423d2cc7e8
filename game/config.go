package game

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/grid-snake/constants"
)

// ErrInvalidConfig is returned by New for a board the snake cannot start on
var ErrInvalidConfig = errors.New("invalid game config")

// Config fixes the board for the lifetime of a game
type Config struct {
	Rows          int
	Columns       int
	InitialLength int
}

// DefaultConfig returns the classic 11x11 board with a 3-segment snake
func DefaultConfig() Config {
	return Config{
		Rows:          constants.GridRows,
		Columns:       constants.GridColumns,
		InitialLength: constants.InitialSnakeLength,
	}
}

// Validate checks the snake fits vertically above the centre cell
func (c Config) Validate() error {
	if c.Rows < 1 || c.Columns < 1 {
		return fmt.Errorf("%w: board %dx%d", ErrInvalidConfig, c.Rows, c.Columns)
	}
	if c.InitialLength < 1 {
		return fmt.Errorf("%w: initial length %d", ErrInvalidConfig, c.InitialLength)
	}
	if c.InitialLength > c.Rows/2+1 {
		return fmt.Errorf("%w: initial length %d does not fit %d rows", ErrInvalidConfig, c.InitialLength, c.Rows)
	}
	return nil
}

// Cells returns the board area, also the snake's storage capacity
func (c Config) Cells() int {
	return c.Rows * c.Columns
}
