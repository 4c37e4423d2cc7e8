//go:build !unix

package terminal

import "time"

type unsupportedBackend struct{}

func newBackend() Backend { return unsupportedBackend{} }

func (unsupportedBackend) Init() error          { return ErrNotTerminal }
func (unsupportedBackend) Fini()                {}
func (unsupportedBackend) Write(p []byte) error { return ErrNotTerminal }
func (unsupportedBackend) Read(<-chan struct{}, time.Duration) ([]byte, error) {
	return nil, ErrNotTerminal
}
