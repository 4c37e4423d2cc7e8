package render

import (
	"bufio"
	"io"

	"github.com/lixenwraith/grid-snake/constants"
	"github.com/lixenwraith/grid-snake/game"
	"github.com/lixenwraith/grid-snake/terminal"
)

// PlainRenderer prints the board as "| _  0  * |" rows followed by a prompt
// Lines end in \r\n since raw mode disables output post-processing
type PlainRenderer struct {
	out   io.Writer
	clear []byte
}

// NewPlainRenderer writes frames to out, clearing the screen before each one
func NewPlainRenderer(out io.Writer) *PlainRenderer {
	return &PlainRenderer{
		out:   out,
		clear: terminal.ClearSequence(),
	}
}

func (r *PlainRenderer) Render(f game.Frame) error {
	w := bufio.NewWriter(r.out)
	w.Write(r.clear)
	writeBoard(w, f)
	w.WriteString(constants.PlainPrompt)
	return w.Flush()
}

func writeBoard(w *bufio.Writer, f game.Frame) {
	for _, row := range f.Cells {
		w.WriteRune(constants.PlainBorder)
		for _, c := range row {
			w.WriteByte(' ')
			w.WriteRune(Glyph(c))
			w.WriteByte(' ')
		}
		w.WriteRune(constants.PlainBorder)
		w.WriteString("\r\n")
	}
}

// KeyReader is the part of terminal.Terminal PlainKeys needs
type KeyReader interface {
	ReadKey() (terminal.Event, error)
}

// PlainKeys adapts terminal key events to runes for game.MapKey
type PlainKeys struct {
	in KeyReader
}

func NewPlainKeys(in KeyReader) *PlainKeys {
	return &PlainKeys{in: in}
}

// ReadKey blocks for the next key; arrows become wasd, Escape and Ctrl-C quit
// Ctrl-D reports io.EOF
func (k *PlainKeys) ReadKey() (rune, error) {
	ev, err := k.in.ReadKey()
	if err != nil {
		return 0, err
	}
	return translateTerminalKey(ev)
}

func translateTerminalKey(ev terminal.Event) (rune, error) {
	switch ev.Key {
	case terminal.KeyRune:
		return ev.Rune, nil
	case terminal.KeyUp:
		return 'w', nil
	case terminal.KeyDown:
		return 's', nil
	case terminal.KeyLeft:
		return 'a', nil
	case terminal.KeyRight:
		return 'd', nil
	case terminal.KeyEscape, terminal.KeyCtrlC:
		return 'q', nil
	case terminal.KeyCtrlD:
		return 0, io.EOF
	default:
		return 0, nil
	}
}
