package terminal

// Key represents a parsed input key
type Key uint8

const (
	KeyNone Key = iota
	KeyRune     // Printable character (check Event.Rune)

	KeyEscape
	KeyEnter

	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	KeyCtrlC
	KeyCtrlD
)

// Event is one key press
type Event struct {
	Key  Key
	Rune rune
}

var keyNames = [...]string{
	KeyNone:   "None",
	KeyRune:   "Rune",
	KeyEscape: "Escape",
	KeyEnter:  "Enter",
	KeyUp:     "Up",
	KeyDown:   "Down",
	KeyLeft:   "Left",
	KeyRight:  "Right",
	KeyCtrlC:  "Ctrl+C",
	KeyCtrlD:  "Ctrl+D",
}

func (k Key) String() string {
	if int(k) < len(keyNames) {
		return keyNames[k]
	}
	return "Unknown"
}
