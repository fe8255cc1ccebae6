package term

import "errors"

// Errors returned by terminal backends.
var (
	// ErrBackendClosed indicates the input stream ended or the backend
	// was shut down while waiting for a key.
	ErrBackendClosed = errors.New("terminal backend closed")
)

// Backend is the terminal capability consumed by the editor and renderer.
// Implementations translate frame-relative drawing ops into real terminal
// output and deliver decoded key events.
type Backend interface {
	// ReadKey blocks until the next key event.
	ReadKey() (KeyEvent, error)

	// Apply executes a batch of drawing ops. The batch is flushed
	// atomically: either the whole frame update is written or an error
	// is returned before any partial write where avoidable.
	Apply(ops []Op) error

	// Size returns the terminal dimensions in cells.
	Size() (width, height int, err error)

	// EnterRaw switches the terminal into raw mode. Callers must pair it
	// with LeaveRaw on every exit path; use AcquireRaw for a scoped
	// guard.
	EnterRaw() error

	// LeaveRaw restores the terminal mode saved by EnterRaw.
	LeaveRaw() error

	// EnterAlt switches to the alternate screen for fullscreen
	// rendering; LeaveAlt returns to the primary screen.
	EnterAlt() error
	LeaveAlt() error
}

// RawMode is a scoped raw-mode acquisition. Release is idempotent, so it
// is safe to defer and also call explicitly on early exits.
type RawMode struct {
	backend  Backend
	released bool
}

// AcquireRaw puts the backend into raw mode and returns the guard that
// restores it.
func AcquireRaw(b Backend) (*RawMode, error) {
	if err := b.EnterRaw(); err != nil {
		return nil, err
	}
	return &RawMode{backend: b}, nil
}

// Release restores the terminal mode. Subsequent calls are no-ops.
func (r *RawMode) Release() error {
	if r.released {
		return nil
	}
	r.released = true
	return r.backend.LeaveRaw()
}
