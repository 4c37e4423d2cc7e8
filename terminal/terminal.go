package terminal

import (
	"io"
	"os"
	"sync"
)

// Terminal owns the TTY for the duration of a game
type Terminal struct {
	backend Backend
	reader  *keyReader

	mu     sync.Mutex
	active bool
}

// New returns a terminal bound to stdin/stdout
func New() *Terminal {
	return NewWithBackend(newBackend())
}

// NewWithBackend wraps a custom backend, used by tests
func NewWithBackend(b Backend) *Terminal {
	return &Terminal{
		backend: b,
		reader:  newKeyReader(b),
	}
}

// Init enters raw mode and hides the cursor
func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.active {
		return nil
	}
	if err := t.backend.Init(); err != nil {
		return err
	}
	t.active = true
	return t.backend.Write(csiCursorHide)
}

// Fini restores terminal state. Safe to call multiple times
func (t *Terminal) Fini() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.active {
		return
	}
	t.reader.stop()
	t.backend.Write(csiSGR0)
	t.backend.Write(csiCursorShow)
	t.backend.Fini()
	t.active = false
}

// ReadKey blocks until the next key press
func (t *Terminal) ReadKey() (Event, error) {
	return t.reader.next()
}

// Write implements io.Writer on the terminal output
func (t *Terminal) Write(p []byte) (int, error) {
	if err := t.backend.Write(p); err != nil {
		return 0, err
	}
	return len(p), nil
}

// EmergencyReset attempts to restore terminal to sane state
// Call this from panic recovery if Fini() cannot be called normally
func EmergencyReset(w io.Writer) {
	w.Write(csiCursorShow)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)
	w.Write(csiRIS)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios; best-effort in crash context
	resetTerminalMode()
}
