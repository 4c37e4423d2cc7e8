package render

import (
	"github.com/lixenwraith/grid-snake/constants"
	"github.com/lixenwraith/grid-snake/game"
)

// Glyph returns the character drawn for a cell
func Glyph(c game.Cell) rune {
	switch c {
	case game.CellSnake:
		return constants.GlyphSnake
	case game.CellFood:
		return constants.GlyphFood
	default:
		return constants.GlyphEmpty
	}
}
