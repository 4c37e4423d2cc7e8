package render

import (
	"fmt"
	"io"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/grid-snake/constants"
	"github.com/lixenwraith/grid-snake/game"
)

var (
	styleFrame  = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleEmpty  = tcell.StyleDefault.Foreground(tcell.ColorDarkSlateGray)
	styleSnake  = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	styleFood   = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleStatus = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleHelp   = tcell.StyleDefault.Foreground(tcell.ColorGray).Dim(true)
	styleBanner = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
)

const helpText = "wasd/ijkl/arrows move  q quits"

// ScreenRenderer draws frames on a tcell screen
type ScreenRenderer struct {
	screen tcell.Screen
}

func NewScreenRenderer(screen tcell.Screen) *ScreenRenderer {
	return &ScreenRenderer{screen: screen}
}

func (r *ScreenRenderer) Render(f game.Frame) error {
	r.screen.Clear()
	r.drawFrame(f)
	r.screen.Show()
	return nil
}

// ShowReport draws the final board with the end-of-game banner
func (r *ScreenRenderer) ShowReport(res game.Result) {
	r.screen.Clear()
	bottom := r.drawFrame(res.Final)

	y := bottom + 1
	for _, line := range reportLines(res) {
		drawText(r.screen, constants.ScreenOriginX, y, styleBanner, line)
		y++
	}
	r.screen.Show()
}

// drawFrame draws board, status and help, returns the last row used
func (r *ScreenRenderer) drawFrame(f game.Frame) int {
	ox, oy := constants.ScreenOriginX, constants.ScreenOriginY
	rows := len(f.Cells)
	cols := 0
	if rows > 0 {
		cols = len(f.Cells[0])
	}
	inner := cols * constants.ScreenCellWidth

	drawBox(r.screen, ox, oy, ox+inner+1, oy+rows+1)

	for row, line := range f.Cells {
		for col, c := range line {
			x := ox + 1 + col*constants.ScreenCellWidth
			r.screen.SetContent(x, oy+1+row, Glyph(c), nil, cellStyle(c))
		}
	}

	y := oy + rows + 2 + constants.StatusLineGap
	drawText(r.screen, ox, y, styleStatus, fmt.Sprintf("Score: %d  Length: %d  Tick: %d", f.Score, f.Length, f.Tick))
	drawText(r.screen, ox, y+1, styleHelp, helpText)
	return y + 1
}

// CellOrigin returns the screen coordinate a board cell is drawn at
func CellOrigin(p game.Position) (x, y int) {
	return constants.ScreenOriginX + 1 + p.Column*constants.ScreenCellWidth,
		constants.ScreenOriginY + 1 + p.Row
}

func cellStyle(c game.Cell) tcell.Style {
	switch c {
	case game.CellSnake:
		return styleSnake
	case game.CellFood:
		return styleFood
	default:
		return styleEmpty
	}
}

func drawBox(s tcell.Screen, x1, y1, x2, y2 int) {
	for x := x1 + 1; x < x2; x++ {
		s.SetContent(x, y1, tcell.RuneHLine, nil, styleFrame)
		s.SetContent(x, y2, tcell.RuneHLine, nil, styleFrame)
	}
	for y := y1 + 1; y < y2; y++ {
		s.SetContent(x1, y, tcell.RuneVLine, nil, styleFrame)
		s.SetContent(x2, y, tcell.RuneVLine, nil, styleFrame)
	}
	s.SetContent(x1, y1, tcell.RuneULCorner, nil, styleFrame)
	s.SetContent(x2, y1, tcell.RuneURCorner, nil, styleFrame)
	s.SetContent(x1, y2, tcell.RuneLLCorner, nil, styleFrame)
	s.SetContent(x2, y2, tcell.RuneLRCorner, nil, styleFrame)
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, ch := range text {
		s.SetContent(x, y, ch, nil, style)
		x++
	}
}

// ScreenKeys reads key events from a tcell screen
type ScreenKeys struct {
	screen tcell.Screen
}

func NewScreenKeys(screen tcell.Screen) *ScreenKeys {
	return &ScreenKeys{screen: screen}
}

// ReadKey blocks for the next key; arrows become wasd, Escape and Ctrl-C quit
// Resize events redraw and keep waiting; io.EOF once the screen is finalized
func (k *ScreenKeys) ReadKey() (rune, error) {
	for {
		switch ev := k.screen.PollEvent().(type) {
		case nil:
			return 0, io.EOF
		case *tcell.EventResize:
			k.screen.Sync()
		case *tcell.EventKey:
			return translateScreenKey(ev), nil
		}
	}
}

func translateScreenKey(ev *tcell.EventKey) rune {
	switch ev.Key() {
	case tcell.KeyRune:
		return ev.Rune()
	case tcell.KeyUp:
		return 'w'
	case tcell.KeyDown:
		return 's'
	case tcell.KeyLeft:
		return 'a'
	case tcell.KeyRight:
		return 'd'
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return 'q'
	default:
		return 0
	}
}
