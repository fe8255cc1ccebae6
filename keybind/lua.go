package keybind

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/multiline/term"
)

// Lua is a binding scheme driven by a user script. The script defines a
// global function
//
//	function resolve(key, ctx)
//
// receiving the key as a table (name, rune, ctrl, alt, shift) and the
// context as a table (last_line, line_empty, has_selection, fullscreen).
// It returns an action name such as "submit", "indent" or "move-left",
// or a table {action=..., extend=..., rune=...}. Returning nil delegates
// to the fallback scheme, so a script only overrides the keys it cares
// about.
type Lua struct {
	state    *lua.LState
	fallback Keybinding
}

// NewLua compiles script source into a binding scheme. Keys the script
// does not claim resolve through fallback.
func NewLua(script string, fallback Keybinding) (*Lua, error) {
	state := lua.NewState()
	if err := state.DoString(script); err != nil {
		state.Close()
		return nil, fmt.Errorf("loading keymap script: %w", err)
	}
	if state.GetGlobal("resolve").Type() != lua.LTFunction {
		state.Close()
		return nil, fmt.Errorf("keymap script does not define resolve()")
	}
	if fallback == nil {
		fallback = NewNormal()
	}
	return &Lua{state: state, fallback: fallback}, nil
}

// Close releases the Lua state.
func (l *Lua) Close() {
	l.state.Close()
}

// Resolve implements Keybinding.
func (l *Lua) Resolve(ev term.KeyEvent, ctx Context) Action {
	keyTable := l.state.NewTable()
	keyTable.RawSetString("name", lua.LString(ev.Key.String()))
	if ev.IsRune() {
		keyTable.RawSetString("rune", lua.LString(string(ev.Rune)))
	}
	keyTable.RawSetString("ctrl", lua.LBool(ev.Mod.Has(term.ModCtrl)))
	keyTable.RawSetString("alt", lua.LBool(ev.Mod.Has(term.ModAlt)))
	keyTable.RawSetString("shift", lua.LBool(ev.Mod.Has(term.ModShift)))

	ctxTable := l.state.NewTable()
	ctxTable.RawSetString("last_line", lua.LBool(ctx.OnLastLine))
	ctxTable.RawSetString("line_empty", lua.LBool(ctx.LineEmpty))
	ctxTable.RawSetString("has_selection", lua.LBool(ctx.HasSelection))
	ctxTable.RawSetString("fullscreen", lua.LBool(ctx.Fullscreen))

	err := l.state.CallByParam(lua.P{
		Fn:      l.state.GetGlobal("resolve"),
		NRet:    1,
		Protect: true,
	}, keyTable, ctxTable)
	if err != nil {
		// A broken script must not take the widget down with it.
		return l.fallback.Resolve(ev, ctx)
	}

	ret := l.state.Get(-1)
	l.state.Pop(1)

	action, ok := luaAction(ret)
	if !ok {
		return l.fallback.Resolve(ev, ctx)
	}
	return action
}

// luaAction converts a script return value into an Action. The second
// result is false when the value delegates to the fallback.
func luaAction(v lua.LValue) (Action, bool) {
	switch lv := v.(type) {
	case lua.LString:
		return actionByName(string(lv), false, 0)
	case *lua.LTable:
		name, _ := lv.RawGetString("action").(lua.LString)
		extend := lua.LVAsBool(lv.RawGetString("extend"))
		var r rune
		if s, ok := lv.RawGetString("rune").(lua.LString); ok && len(s) > 0 {
			r = []rune(string(s))[0]
		}
		return actionByName(string(name), extend, r)
	default:
		return Noop, false
	}
}

// actionByName maps the script-facing action vocabulary onto Actions.
// The names mirror Action.String so logs and scripts speak one language.
func actionByName(name string, extend bool, r rune) (Action, bool) {
	switch name {
	case "noop":
		return Noop, true
	case "insert":
		if r == 0 {
			return Noop, false
		}
		return InsertRune(r), true
	case "newline":
		return Action{Kind: ActionInsertNewline}, true
	case "delete-before":
		return Action{Kind: ActionDeleteBefore}, true
	case "delete-after":
		return Action{Kind: ActionDeleteAfter}, true
	case "delete-selection":
		return Action{Kind: ActionDeleteSelection}, true
	case "move-left", "select-left":
		return Move(MotionLeft, extend || name == "select-left"), true
	case "move-right", "select-right":
		return Move(MotionRight, extend || name == "select-right"), true
	case "move-up", "select-up":
		return Move(MotionUp, extend || name == "select-up"), true
	case "move-down", "select-down":
		return Move(MotionDown, extend || name == "select-down"), true
	case "move-home", "select-home":
		return Move(MotionHome, extend || name == "select-home"), true
	case "move-end", "select-end":
		return Move(MotionEnd, extend || name == "select-end"), true
	case "move-word-left", "select-word-left":
		return Move(MotionWordLeft, extend || name == "select-word-left"), true
	case "move-word-right", "select-word-right":
		return Move(MotionWordRight, extend || name == "select-word-right"), true
	case "copy":
		return Action{Kind: ActionCopy}, true
	case "cut":
		return Action{Kind: ActionCut}, true
	case "paste":
		return Action{Kind: ActionPaste}, true
	case "indent":
		return Action{Kind: ActionIndent}, true
	case "outdent":
		return Action{Kind: ActionOutdent}, true
	case "toggle-fullscreen":
		return Action{Kind: ActionToggleFullscreen}, true
	case "submit":
		return Action{Kind: ActionSubmit}, true
	case "cancel":
		return Action{Kind: ActionCancel}, true
	default:
		return Noop, false
	}
}
