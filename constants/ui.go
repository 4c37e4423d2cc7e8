package constants

import "time"

// Board Glyphs
const (
	GlyphEmpty = '_'
	GlyphSnake = '0'
	GlyphFood  = '*'
)

// Plain Renderer Layout
const (
	// PlainBorder frames each board row
	PlainBorder = '|'

	// PlainPrompt is printed under the board while waiting for a key
	PlainPrompt = ">> "
)

// Screen Renderer Layout
const (
	// ScreenCellWidth is the terminal columns used per board cell, keeps the board roughly square
	ScreenCellWidth = 2

	// ScreenOriginX, ScreenOriginY place the board frame on screen
	ScreenOriginX = 1
	ScreenOriginY = 1

	// StatusLineGap is the blank rows between board frame and status line
	StatusLineGap = 1
)

// End-of-game Report
const (
	BannerRule     = "--------------------------------------"
	BannerGameOver = "-------------Game Over!!!-------------"
	BannerCleared  = "-----------Board Cleared!!!-----------"

	// GameOverDelay is how long the report stays on screen before exit
	GameOverDelay = 1500 * time.Millisecond
)
