package editor

import (
	"github.com/dshills/multiline/buffer"
	"github.com/dshills/multiline/clipboard"
	"github.com/dshills/multiline/keybind"
	"github.com/dshills/multiline/render"
	"github.com/dshills/multiline/term"
)

// Option configures an Editor.
type Option func(*Editor)

// WithBackend sets the terminal backend.
func WithBackend(b term.Backend) Option {
	return func(e *Editor) { e.backend = b }
}

// WithKeybinding sets the binding scheme.
func WithKeybinding(kb keybind.Keybinding) Option {
	return func(e *Editor) { e.kb = kb }
}

// WithClipboard sets the clipboard capability. Without one, copy, cut,
// and paste are no-ops.
func WithClipboard(c clipboard.Clipboard) Option {
	return func(e *Editor) { e.clip = c }
}

// WithCompositor replaces the frame compositor, e.g. to change
// decorations or viewport height.
func WithCompositor(c *render.Compositor) Option {
	return func(e *Editor) { e.comp = c }
}

// WithLogger sets the session logger.
func WithLogger(l *Logger) Option {
	return func(e *Editor) { e.log = l }
}

// WithTabWidth sets the indentation width.
func WithTabWidth(n int) Option {
	return func(e *Editor) {
		e.buf = buffer.New(buffer.WithTabWidth(n))
	}
}
