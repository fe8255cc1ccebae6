package editor

// Mode is the editor's state machine position. Submitted and Cancelled
// are terminal: the read loop exits when either is reached.
type Mode int

const (
	// ModeEditing is the normal inline editing state.
	ModeEditing Mode = iota
	// ModeFullscreen is editing on the alternate screen.
	ModeFullscreen
	// ModeSubmitted means the session ended keeping the contents.
	ModeSubmitted
	// ModeCancelled means the session ended discarding the contents.
	ModeCancelled
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeEditing:
		return "editing"
	case ModeFullscreen:
		return "fullscreen"
	case ModeSubmitted:
		return "submitted"
	case ModeCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Terminal reports whether the mode ends the session.
func (m Mode) Terminal() bool {
	return m == ModeSubmitted || m == ModeCancelled
}
