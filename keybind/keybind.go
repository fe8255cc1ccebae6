// Package keybind maps raw key events to editing actions. Resolution is a
// pure policy behind the Keybinding interface, so binding schemes can be
// swapped wholesale without touching the editor or renderer.
package keybind

import "github.com/dshills/multiline/term"

// Context is the read-only editor snapshot a policy resolves against. The
// editor rebuilds it before every resolution.
type Context struct {
	// OnLastLine is true when the cursor sits on the buffer's last line.
	OnLastLine bool
	// LineEmpty is true when the cursor's line has no characters.
	LineEmpty bool
	// HasSelection is true when a selection is active.
	HasSelection bool
	// Fullscreen is true when the widget is rendering on the alternate
	// screen.
	Fullscreen bool
}

// Keybinding resolves a key event into an action.
type Keybinding interface {
	Resolve(ev term.KeyEvent, ctx Context) Action
}

// Normal is the default binding scheme.
//
// Enter carries the widget's defining contract: it inserts a newline
// everywhere except on an empty last line, where it submits. Alt-Enter
// always inserts a newline, so a trailing empty line is still reachable
// as content. Escape always submits.
type Normal struct{}

// NewNormal returns the default binding scheme.
func NewNormal() Normal {
	return Normal{}
}

// Resolve implements Keybinding.
func (Normal) Resolve(ev term.KeyEvent, ctx Context) Action {
	switch ev.Key {
	case term.KeyEnter:
		if ev.Mod.Has(term.ModAlt) {
			return Action{Kind: ActionInsertNewline}
		}
		if ctx.OnLastLine && ctx.LineEmpty {
			return Action{Kind: ActionSubmit}
		}
		return Action{Kind: ActionInsertNewline}

	case term.KeyEscape:
		return Action{Kind: ActionSubmit}

	case term.KeyBackspace:
		return Action{Kind: ActionDeleteBefore}
	case term.KeyDelete:
		return Action{Kind: ActionDeleteAfter}

	case term.KeyLeft:
		if ev.Mod.Has(term.ModCtrl) {
			return Move(MotionWordLeft, ev.Mod.Has(term.ModShift))
		}
		return Move(MotionLeft, ev.Mod.Has(term.ModShift))
	case term.KeyRight:
		if ev.Mod.Has(term.ModCtrl) {
			return Move(MotionWordRight, ev.Mod.Has(term.ModShift))
		}
		return Move(MotionRight, ev.Mod.Has(term.ModShift))
	case term.KeyUp:
		return Move(MotionUp, ev.Mod.Has(term.ModShift))
	case term.KeyDown:
		return Move(MotionDown, ev.Mod.Has(term.ModShift))
	case term.KeyHome:
		return Move(MotionHome, ev.Mod.Has(term.ModShift))
	case term.KeyEnd:
		return Move(MotionEnd, ev.Mod.Has(term.ModShift))

	case term.KeyTab:
		if ev.Mod.Has(term.ModShift) {
			return Action{Kind: ActionOutdent}
		}
		return Action{Kind: ActionIndent}

	case term.KeyF12:
		return Action{Kind: ActionToggleFullscreen}

	case term.KeyRune:
		if ev.Mod.Has(term.ModCtrl) {
			switch ev.Rune {
			case 'c':
				return Action{Kind: ActionCopy}
			case 'x':
				return Action{Kind: ActionCut}
			case 'v':
				return Action{Kind: ActionPaste}
			}
			return Noop
		}
		if ev.IsPrintable() {
			return InsertRune(ev.Rune)
		}
		return Noop

	default:
		return Noop
	}
}
