package editor

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/dshills/multiline/buffer"
	"github.com/dshills/multiline/clipboard"
	"github.com/dshills/multiline/cursor"
	"github.com/dshills/multiline/keybind"
	"github.com/dshills/multiline/render"
	"github.com/dshills/multiline/term"
)

// ErrCancelled is returned by Read when the session ends discarding the
// contents.
var ErrCancelled = errors.New("input cancelled")

// Editor owns one editing session: it reads keys from the backend,
// resolves them through the keybinding, applies the resulting actions to
// the buffer and cursor, and renders after every event. All components
// are exclusively owned for the duration of a session; nothing here is
// safe for concurrent use.
type Editor struct {
	buf     *buffer.Buffer
	cur     *cursor.Cursor
	kb      keybind.Keybinding
	backend term.Backend
	comp    *render.Compositor
	rend    *render.Renderer
	clip    clipboard.Clipboard
	log     *Logger

	mode Mode
}

// New creates an editor with an empty buffer. Without options it reads
// stdin, draws the classic decorations on stdout, and has no clipboard.
func New(opts ...Option) *Editor {
	e := &Editor{
		buf:  buffer.New(),
		cur:  cursor.New(),
		kb:   keybind.NewNormal(),
		comp: render.NewCompositor(render.WithClassic()),
		rend: render.NewRenderer(),
		log:  NullLogger,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.backend == nil {
		e.backend = term.Stdio()
	}
	e.log = e.log.WithField("session", uuid.NewString())
	return e
}

// Buffer exposes the text buffer, e.g. for custom decorations.
func (e *Editor) Buffer() *buffer.Buffer {
	return e.buf
}

// Cursor exposes the cursor.
func (e *Editor) Cursor() *cursor.Cursor {
	return e.cur
}

// Mode returns the current state machine position.
func (e *Editor) Mode() Mode {
	return e.mode
}

// Contents returns the buffer contents, lines joined by newlines with no
// trailing newline.
func (e *Editor) Contents() string {
	return e.buf.Contents()
}

// SetContents replaces the buffer with s and places the cursor at the
// end.
func (e *Editor) SetContents(s string) {
	e.buf = buffer.NewFromString(s, buffer.WithTabWidth(e.buf.TabWidth()))
	e.cur = cursor.New()
	last := e.buf.LineCount() - 1
	e.cur.MoveTo(e.buf, buffer.Position{Line: last, Col: e.buf.LineLen(last)}, false)
}

// SetContentsFromReader replaces the buffer with the contents of r.
func (e *Editor) SetContentsFromReader(r io.Reader) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("reading contents: %w", err)
	}
	e.SetContents(string(data))
	return nil
}

// Read runs the editing session: raw mode on, one render per key event,
// until an action submits or cancels. The terminal mode is restored on
// every exit path. Returns the contents on submit and ErrCancelled on
// cancel.
func (e *Editor) Read() (string, error) {
	raw, err := term.AcquireRaw(e.backend)
	if err != nil {
		return "", fmt.Errorf("acquiring terminal: %w", err)
	}
	defer raw.Release()

	e.mode = ModeEditing
	e.rend.Invalidate()
	e.comp.Reset()
	e.log.Info("session started")

	if err := e.render(); err != nil {
		return "", err
	}

	for {
		ev, err := e.backend.ReadKey()
		if err != nil {
			return "", fmt.Errorf("reading input: %w", err)
		}

		action := e.kb.Resolve(ev, e.context())
		e.log.Debug("key %s resolved to %s", ev, action)

		prev := e.mode
		if err := e.Apply(action); err != nil {
			return "", err
		}

		if e.mode.Terminal() {
			if err := e.finish(prev); err != nil {
				return "", err
			}
			break
		}
		if e.mode != prev {
			if err := e.switchScreen(); err != nil {
				return "", err
			}
		}
		if err := e.render(); err != nil {
			return "", err
		}
	}

	if err := raw.Release(); err != nil {
		return "", err
	}
	e.log.Info("session ended: %s", e.mode)

	if e.mode == ModeCancelled {
		return "", ErrCancelled
	}
	return e.buf.Contents(), nil
}

// Apply performs one state transition. It never renders; the read loop
// does that after each event.
func (e *Editor) Apply(a keybind.Action) error {
	switch a.Kind {
	case keybind.ActionNoop:
		return nil

	case keybind.ActionInsertRune:
		if err := e.deleteSelection(); err != nil {
			return err
		}
		pos := e.clampedActive()
		if err := e.buf.InsertRune(pos, a.Rune); err != nil {
			return err
		}
		e.cur.MoveTo(e.buf, buffer.Position{Line: pos.Line, Col: pos.Col + 1}, false)
		return nil

	case keybind.ActionInsertNewline:
		if err := e.deleteSelection(); err != nil {
			return err
		}
		pos := e.clampedActive()
		if err := e.buf.InsertNewline(pos); err != nil {
			return err
		}
		e.cur.MoveTo(e.buf, buffer.Position{Line: pos.Line + 1}, false)
		return nil

	case keybind.ActionDeleteBefore:
		if e.hasSelection() {
			return e.deleteSelection()
		}
		pos, err := e.buf.DeleteBefore(e.clampedActive())
		if err != nil {
			return err
		}
		e.cur.MoveTo(e.buf, pos, false)
		return nil

	case keybind.ActionDeleteAfter:
		if e.hasSelection() {
			return e.deleteSelection()
		}
		pos := e.clampedActive()
		if err := e.buf.DeleteAfter(pos); err != nil {
			return err
		}
		e.cur.MoveTo(e.buf, pos, false)
		return nil

	case keybind.ActionDeleteSelection:
		return e.deleteSelection()

	case keybind.ActionMove:
		e.move(a.Motion, a.Extend)
		return nil

	case keybind.ActionCopy:
		return e.copySelection(false)

	case keybind.ActionCut:
		return e.copySelection(true)

	case keybind.ActionPaste:
		return e.paste()

	case keybind.ActionIndent:
		return e.indent()

	case keybind.ActionOutdent:
		return e.outdent()

	case keybind.ActionToggleFullscreen:
		if e.mode == ModeFullscreen {
			e.mode = ModeEditing
		} else {
			e.mode = ModeFullscreen
		}
		return nil

	case keybind.ActionSubmit:
		e.mode = ModeSubmitted
		return nil

	case keybind.ActionCancel:
		e.mode = ModeCancelled
		return nil

	default:
		return nil
	}
}

func (e *Editor) move(m keybind.Motion, extend bool) {
	switch m {
	case keybind.MotionLeft:
		e.cur.MoveLeft(e.buf, extend)
	case keybind.MotionRight:
		e.cur.MoveRight(e.buf, extend)
	case keybind.MotionUp:
		e.cur.MoveUp(e.buf, extend)
	case keybind.MotionDown:
		e.cur.MoveDown(e.buf, extend)
	case keybind.MotionHome:
		e.cur.MoveHome(e.buf, extend)
	case keybind.MotionEnd:
		e.cur.MoveEnd(e.buf, extend)
	case keybind.MotionWordLeft:
		e.cur.MoveWordLeft(e.buf, extend)
	case keybind.MotionWordRight:
		e.cur.MoveWordRight(e.buf, extend)
	}
}

// copySelection writes the selection to the clipboard, removing it when
// cut is set. Without a selection the cursor's whole line is taken.
// Without a clipboard the action degrades to a no-op.
func (e *Editor) copySelection(cut bool) error {
	if e.clip == nil {
		e.log.Debug("copy/cut ignored: no clipboard configured")
		return nil
	}

	if sel, ok := e.cur.SelectedRange(); ok {
		text, err := e.buf.Slice(sel.Start, sel.End)
		if err != nil {
			return err
		}
		if err := e.clip.Set(text); err != nil {
			e.log.Warn("clipboard write failed: %v", err)
			return nil
		}
		if cut {
			return e.deleteSelection()
		}
		return nil
	}

	// Whole-line copy or cut.
	pos := e.clampedActive()
	if err := e.clip.Set(e.buf.Line(pos.Line) + "\n"); err != nil {
		e.log.Warn("clipboard write failed: %v", err)
		return nil
	}
	if !cut {
		return nil
	}
	start := buffer.Position{Line: pos.Line}
	end := buffer.Position{Line: pos.Line, Col: e.buf.LineLen(pos.Line)}
	if pos.Line+1 < e.buf.LineCount() {
		end = buffer.Position{Line: pos.Line + 1}
	}
	if err := e.buf.DeleteRange(start, end); err != nil {
		return err
	}
	e.cur.MoveTo(e.buf, e.buf.Clamp(start), false)
	return nil
}

// paste inserts the clipboard contents, replacing any selection. An
// unavailable clipboard degrades to a no-op.
func (e *Editor) paste() error {
	if e.clip == nil {
		e.log.Debug("paste ignored: no clipboard configured")
		return nil
	}
	text, err := e.clip.Get()
	if err != nil {
		e.log.Debug("paste ignored: %v", err)
		return nil
	}
	if err := e.deleteSelection(); err != nil {
		return err
	}
	return e.insertText(text)
}

// insertText inserts possibly multi-line text at the cursor.
func (e *Editor) insertText(text string) error {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	pos := e.clampedActive()
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			if err := e.buf.InsertNewline(pos); err != nil {
				return err
			}
			pos = buffer.Position{Line: pos.Line + 1}
		}
		if line != "" {
			if err := e.buf.InsertString(pos, line); err != nil {
				return err
			}
			pos.Col += buffer.ClusterCount(line)
		}
	}
	e.cur.MoveTo(e.buf, pos, false)
	return nil
}

// indent inserts spaces up to the next tab stop.
func (e *Editor) indent() error {
	pos := e.clampedActive()
	tab := e.buf.TabWidth()
	n := tab - pos.Col%tab
	if err := e.buf.InsertString(pos, strings.Repeat(" ", n)); err != nil {
		return err
	}
	e.cur.MoveTo(e.buf, buffer.Position{Line: pos.Line, Col: pos.Col + n}, false)
	return nil
}

// outdent removes up to one tab stop of leading spaces from the line.
func (e *Editor) outdent() error {
	pos := e.clampedActive()
	line := e.buf.Line(pos.Line)
	tab := e.buf.TabWidth()

	n := 0
	for n < tab && n < len(line) && line[n] == ' ' {
		n++
	}
	if n == 0 {
		return nil
	}
	start := buffer.Position{Line: pos.Line}
	if err := e.buf.DeleteRange(start, buffer.Position{Line: pos.Line, Col: n}); err != nil {
		return err
	}
	col := pos.Col - n
	if col < 0 {
		col = 0
	}
	e.cur.MoveTo(e.buf, buffer.Position{Line: pos.Line, Col: col}, false)
	return nil
}

func (e *Editor) hasSelection() bool {
	_, ok := e.cur.SelectedRange()
	return ok
}

// deleteSelection removes the selected range if any and collapses the
// cursor to its start.
func (e *Editor) deleteSelection() error {
	sel, ok := e.cur.SelectedRange()
	if !ok {
		return nil
	}
	if err := e.buf.DeleteRange(sel.Start, sel.End); err != nil {
		return err
	}
	e.cur.MoveTo(e.buf, e.buf.Clamp(sel.Start), false)
	return nil
}

// clampedActive returns the cursor position clamped to the current
// buffer, absorbing any line shrink since the last move.
func (e *Editor) clampedActive() buffer.Position {
	return e.buf.Clamp(e.cur.Active())
}

// context snapshots the facts the keybinding resolves against.
func (e *Editor) context() keybind.Context {
	pos := e.clampedActive()
	return keybind.Context{
		OnLastLine:   pos.Line == e.buf.LineCount()-1,
		LineEmpty:    e.buf.LineLen(pos.Line) == 0,
		HasSelection: e.hasSelection(),
		Fullscreen:   e.mode == ModeFullscreen,
	}
}

// render composes the current state and applies the diffed op batch.
func (e *Editor) render() error {
	frame := e.comp.Compose(render.State{
		Buffer:     e.buf,
		Cursor:     e.cur,
		Fullscreen: e.mode == ModeFullscreen,
	})
	ops := e.rend.Render(frame)
	if len(ops) == 0 {
		return nil
	}
	if err := e.backend.Apply(ops); err != nil {
		return fmt.Errorf("rendering: %w", err)
	}
	return nil
}

// switchScreen moves the widget between the primary and alternate
// screens after a fullscreen toggle.
func (e *Editor) switchScreen() error {
	if e.mode == ModeFullscreen {
		if ops := e.rend.Clear(); len(ops) > 0 {
			if err := e.backend.Apply(ops); err != nil {
				return err
			}
		}
		if err := e.backend.EnterAlt(); err != nil {
			return err
		}
	} else {
		if err := e.backend.LeaveAlt(); err != nil {
			return err
		}
		e.rend.Invalidate()
	}
	e.comp.Reset()
	e.log.Debug("screen switched to %s", e.mode)
	return nil
}

// finish leaves the final widget state on the primary screen and moves
// the terminal cursor below it.
func (e *Editor) finish(prev Mode) error {
	if prev == ModeFullscreen {
		if err := e.backend.LeaveAlt(); err != nil {
			return err
		}
		e.rend.Invalidate()
		e.comp.Reset()
	}
	if err := e.render(); err != nil {
		return err
	}
	if ops := e.rend.Finish(); len(ops) > 0 {
		if err := e.backend.Apply(ops); err != nil {
			return fmt.Errorf("rendering: %w", err)
		}
	}
	return nil
}
