package terminal

import (
	"errors"
	"io"
	"time"
	"unicode/utf8"
)

// escapeTimeout is how long a pending ESC waits for the rest of a sequence
// before it is reported as a standalone Escape press
const escapeTimeout = 50 * time.Millisecond

// keyReader turns raw backend bytes into key events, one per call
type keyReader struct {
	backend Backend
	stopCh  chan struct{}
	buf     []byte
}

func newKeyReader(backend Backend) *keyReader {
	return &keyReader{
		backend: backend,
		stopCh:  make(chan struct{}),
		buf:     make([]byte, 0, 64),
	}
}

// next blocks until a full key is available; io.EOF once input is closed
// An incomplete sequence waits at most escapeTimeout for its remaining bytes
func (r *keyReader) next() (Event, error) {
	for {
		var wait time.Duration
		if len(r.buf) > 0 {
			n, ev := r.parse(r.buf)
			if n > 0 {
				r.buf = r.buf[n:]
				return ev, nil
			}
			wait = escapeTimeout
		}

		data, err := r.backend.Read(r.stopCh, wait)
		if errors.Is(err, errReadTimeout) {
			return r.flushPending(), nil
		}
		if err != nil {
			return Event{}, err
		}
		if len(data) == 0 {
			if len(r.buf) > 0 {
				return r.flushPending(), nil
			}
			return Event{}, io.EOF
		}
		r.buf = append(r.buf, data...)
	}
}

// flushPending gives up on an incomplete buffer
// A lone ESC is the Escape key; any other fragment is dropped as KeyNone
func (r *keyReader) flushPending() Event {
	lone := len(r.buf) == 1 && r.buf[0] == 0x1b
	r.buf = r.buf[:0]
	if lone {
		return Event{Key: KeyEscape}
	}
	return Event{Key: KeyNone}
}

func (r *keyReader) stop() {
	select {
	case <-r.stopCh:
	default:
		close(r.stopCh)
	}
}

// parse consumes one key from data, returns 0 when more bytes are needed
func (r *keyReader) parse(data []byte) (int, Event) {
	b := data[0]

	if b == 0x1b {
		return parseEscape(data)
	}
	if b < 0x20 || b == 0x7f {
		return 1, parseControl(b)
	}
	if b < 0x80 {
		return 1, Event{Key: KeyRune, Rune: rune(b)}
	}

	if !utf8.FullRune(data) {
		return 0, Event{}
	}
	ch, size := utf8.DecodeRune(data)
	if ch == utf8.RuneError {
		return size, Event{Key: KeyNone}
	}
	return size, Event{Key: KeyRune, Rune: ch}
}

// parseEscape handles CSI and SS3 arrow sequences, other sequences are consumed as KeyNone
func parseEscape(data []byte) (int, Event) {
	if len(data) < 2 {
		return 0, Event{}
	}
	if data[1] != '[' && data[1] != 'O' {
		// Alt+key: report the key itself
		return 2, Event{Key: KeyRune, Rune: rune(data[1])}
	}
	if len(data) < 3 {
		return 0, Event{}
	}

	// Skip parameter bytes up to the final byte
	end := 2
	for end < len(data) && (data[end] < 0x40 || data[end] > 0x7e) {
		end++
	}
	if end == len(data) {
		return 0, Event{}
	}

	switch data[end] {
	case 'A':
		return end + 1, Event{Key: KeyUp}
	case 'B':
		return end + 1, Event{Key: KeyDown}
	case 'C':
		return end + 1, Event{Key: KeyRight}
	case 'D':
		return end + 1, Event{Key: KeyLeft}
	default:
		return end + 1, Event{Key: KeyNone}
	}
}

// parseControl maps control characters to keys
func parseControl(b byte) Event {
	switch b {
	case 0x03:
		return Event{Key: KeyCtrlC}
	case 0x04:
		return Event{Key: KeyCtrlD}
	case 0x0a, 0x0d:
		return Event{Key: KeyEnter}
	default:
		return Event{Key: KeyNone}
	}
}
