package keybind

import (
	"testing"

	"github.com/dshills/multiline/term"
)

func TestNewLuaRejectsBadScript(t *testing.T) {
	if _, err := NewLua("this is not lua", nil); err == nil {
		t.Error("expected error for invalid script")
	}
	if _, err := NewLua("x = 1", nil); err == nil {
		t.Error("expected error for script without resolve()")
	}
}

func TestLuaOverridesKey(t *testing.T) {
	script := `
function resolve(key, ctx)
  if key.name == "Esc" then
    return "cancel"
  end
end
`
	kb, err := NewLua(script, nil)
	if err != nil {
		t.Fatalf("NewLua() error = %v", err)
	}
	defer kb.Close()

	got := kb.Resolve(term.SpecialEvent(term.KeyEscape, term.ModNone), Context{})
	if got.Kind != ActionCancel {
		t.Errorf("escape resolved to %v, want cancel", got)
	}

	// Unclaimed keys fall back to the normal scheme.
	got = kb.Resolve(term.RuneEvent('a', term.ModNone), Context{})
	if got != InsertRune('a') {
		t.Errorf("rune resolved to %v, want insert", got)
	}
}

func TestLuaTableReturn(t *testing.T) {
	script := `
function resolve(key, ctx)
  if key.name == "Up" and key.ctrl then
    return { action = "move-home", extend = true }
  end
end
`
	kb, err := NewLua(script, nil)
	if err != nil {
		t.Fatalf("NewLua() error = %v", err)
	}
	defer kb.Close()

	got := kb.Resolve(term.SpecialEvent(term.KeyUp, term.ModCtrl), Context{})
	if got != Move(MotionHome, true) {
		t.Errorf("Resolve() = %v, want select-home", got)
	}
}

func TestLuaSeesContext(t *testing.T) {
	script := `
function resolve(key, ctx)
  if key.name == "Enter" and ctx.last_line and ctx.line_empty then
    return "cancel"
  end
end
`
	kb, err := NewLua(script, nil)
	if err != nil {
		t.Fatalf("NewLua() error = %v", err)
	}
	defer kb.Close()

	ev := term.SpecialEvent(term.KeyEnter, term.ModNone)

	got := kb.Resolve(ev, Context{OnLastLine: true, LineEmpty: true})
	if got.Kind != ActionCancel {
		t.Errorf("Resolve() with empty last line = %v, want cancel", got)
	}

	// Other positions delegate to the fallback newline behavior.
	got = kb.Resolve(ev, Context{OnLastLine: false})
	if got.Kind != ActionInsertNewline {
		t.Errorf("Resolve() mid-document = %v, want newline", got)
	}
}

func TestLuaUnknownNameFallsBack(t *testing.T) {
	script := `
function resolve(key, ctx)
  return "warp-speed"
end
`
	kb, err := NewLua(script, nil)
	if err != nil {
		t.Fatalf("NewLua() error = %v", err)
	}
	defer kb.Close()

	got := kb.Resolve(term.RuneEvent('z', term.ModNone), Context{})
	if got != InsertRune('z') {
		t.Errorf("Resolve() = %v, want fallback insert", got)
	}
}
