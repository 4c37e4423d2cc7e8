package terminal

// Pre-allocated ANSI sequence fragments
var (
	csiClear      = []byte("\x1b[2J\x1b[H")
	csiRIS        = []byte("\x1bc") // Reset to Initial State (emergency)
	csiSGR0       = []byte("\x1b[0m")
	csiCursorHide = []byte("\x1b[?25l")
	csiCursorShow = []byte("\x1b[?25h")
	csiAutoWrapOn = []byte("\x1b[?7h")
)

// ClearSequence returns a copy of the bytes that clear the screen and home the cursor
func ClearSequence() []byte {
	return append([]byte(nil), csiClear...)
}
