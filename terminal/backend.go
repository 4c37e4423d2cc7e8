package terminal

import (
	"errors"
	"time"
)

// ErrNotTerminal is returned by Init when stdin is not a TTY
var ErrNotTerminal = errors.New("stdin is not a terminal")

// errReadTimeout is returned by Backend.Read when a bounded wait expires with no input
var errReadTimeout = errors.New("read timeout")

// Backend abstracts platform-specific terminal operations
type Backend interface {
	// Lifecycle
	Init() error
	Fini()

	// Write writes raw bytes to the terminal output
	Write(p []byte) error

	// Read blocks until input is available, the stop channel is closed, or an error occurs
	// A nil slice with nil error means input reached EOF or stop was requested
	// wait > 0 bounds the wait; errReadTimeout when it expires with nothing read
	Read(stopCh <-chan struct{}, wait time.Duration) ([]byte, error)
}
