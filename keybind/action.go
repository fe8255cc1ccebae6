package keybind

import "fmt"

// ActionKind identifies the command a key event resolved to.
type ActionKind uint8

const (
	// ActionNoop does nothing. Unbound keys and unavailable capabilities
	// resolve to it.
	ActionNoop ActionKind = iota
	// ActionInsertRune inserts the event's character at the cursor.
	ActionInsertRune
	// ActionInsertNewline splits the current line at the cursor.
	ActionInsertNewline
	// ActionDeleteBefore deletes backward (Backspace).
	ActionDeleteBefore
	// ActionDeleteAfter deletes forward (Delete).
	ActionDeleteAfter
	// ActionDeleteSelection deletes the selected range.
	ActionDeleteSelection
	// ActionMove moves the cursor; Motion and Extend qualify it.
	ActionMove
	// ActionCopy copies the selection (or current line) to the clipboard.
	ActionCopy
	// ActionCut cuts the selection (or current line) to the clipboard.
	ActionCut
	// ActionPaste inserts the clipboard contents at the cursor.
	ActionPaste
	// ActionIndent inserts spaces up to the next tab stop.
	ActionIndent
	// ActionOutdent removes leading spaces up to one tab stop.
	ActionOutdent
	// ActionToggleFullscreen switches between inline and alternate-screen
	// rendering.
	ActionToggleFullscreen
	// ActionSubmit ends the session keeping the contents.
	ActionSubmit
	// ActionCancel ends the session discarding the contents.
	ActionCancel
)

// Motion identifies a cursor movement.
type Motion uint8

const (
	MotionLeft Motion = iota
	MotionRight
	MotionUp
	MotionDown
	MotionHome
	MotionEnd
	MotionWordLeft
	MotionWordRight
)

// Action is a resolved editing or control command. Rune is set for
// ActionInsertRune; Motion and Extend are set for ActionMove.
type Action struct {
	Kind   ActionKind
	Rune   rune
	Motion Motion
	Extend bool
}

// Noop is the do-nothing action.
var Noop = Action{Kind: ActionNoop}

// InsertRune builds a character-insert action.
func InsertRune(r rune) Action {
	return Action{Kind: ActionInsertRune, Rune: r}
}

// Move builds a cursor-motion action.
func Move(m Motion, extend bool) Action {
	return Action{Kind: ActionMove, Motion: m, Extend: extend}
}

// String returns a compact description, useful in tests and logs.
func (a Action) String() string {
	switch a.Kind {
	case ActionNoop:
		return "noop"
	case ActionInsertRune:
		return fmt.Sprintf("insert(%q)", a.Rune)
	case ActionInsertNewline:
		return "newline"
	case ActionDeleteBefore:
		return "delete-before"
	case ActionDeleteAfter:
		return "delete-after"
	case ActionDeleteSelection:
		return "delete-selection"
	case ActionMove:
		name := a.Motion.String()
		if a.Extend {
			return "select-" + name
		}
		return "move-" + name
	case ActionCopy:
		return "copy"
	case ActionCut:
		return "cut"
	case ActionPaste:
		return "paste"
	case ActionIndent:
		return "indent"
	case ActionOutdent:
		return "outdent"
	case ActionToggleFullscreen:
		return "toggle-fullscreen"
	case ActionSubmit:
		return "submit"
	case ActionCancel:
		return "cancel"
	default:
		return fmt.Sprintf("action(%d)", a.Kind)
	}
}

// String returns the motion name.
func (m Motion) String() string {
	switch m {
	case MotionLeft:
		return "left"
	case MotionRight:
		return "right"
	case MotionUp:
		return "up"
	case MotionDown:
		return "down"
	case MotionHome:
		return "home"
	case MotionEnd:
		return "end"
	case MotionWordLeft:
		return "word-left"
	case MotionWordRight:
		return "word-right"
	default:
		return fmt.Sprintf("motion(%d)", m)
	}
}
