package term

import (
	"fmt"
	"strings"
	"unicode"
)

// Key identifies a keyboard key. Character keys use KeyRune with the
// character in KeyEvent.Rune.
type Key uint16

const (
	// KeyNone represents no key.
	KeyNone Key = iota

	// Special keys
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyDelete
	KeyInsert
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	// Arrow keys
	KeyUp
	KeyDown
	KeyLeft
	KeyRight

	// Function keys
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	// KeyRune is used for character keys.
	KeyRune
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyEscape:
		return "Esc"
	case KeyEnter:
		return "Enter"
	case KeyTab:
		return "Tab"
	case KeyBackspace:
		return "Backspace"
	case KeyDelete:
		return "Delete"
	case KeyInsert:
		return "Insert"
	case KeyHome:
		return "Home"
	case KeyEnd:
		return "End"
	case KeyPageUp:
		return "PageUp"
	case KeyPageDown:
		return "PageDown"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	case KeyRune:
		return "Rune"
	default:
		if k.IsFunctionKey() {
			return fmt.Sprintf("F%d", k-KeyF1+1)
		}
		return fmt.Sprintf("Key(%d)", k)
	}
}

// IsFunctionKey returns true for F1-F12.
func (k Key) IsFunctionKey() bool {
	return k >= KeyF1 && k <= KeyF12
}

// IsArrowKey returns true for the arrow keys.
func (k Key) IsArrowKey() bool {
	return k >= KeyUp && k <= KeyRight
}

// Mod is a bitmask of active modifier keys.
type Mod uint8

const (
	ModNone  Mod = 0
	ModShift Mod = 1 << iota
	ModAlt
	ModCtrl
)

// Has returns true if the mask contains mod.
func (m Mod) Has(mod Mod) bool {
	return m&mod != 0
}

// KeyEvent is a single key press as delivered by a terminal backend.
type KeyEvent struct {
	Key  Key
	Rune rune
	Mod  Mod
}

// RuneEvent builds a character key event.
func RuneEvent(r rune, mod Mod) KeyEvent {
	return KeyEvent{Key: KeyRune, Rune: r, Mod: mod}
}

// SpecialEvent builds an event for a non-character key.
func SpecialEvent(k Key, mod Mod) KeyEvent {
	return KeyEvent{Key: k, Mod: mod}
}

// IsRune returns true if this is a character key event.
func (e KeyEvent) IsRune() bool {
	return e.Key == KeyRune && e.Rune != 0
}

// IsPrintable returns true if this is a printable character with no
// modifier beyond Shift (Shift is part of the character itself).
func (e KeyEvent) IsPrintable() bool {
	return e.IsRune() && unicode.IsPrint(e.Rune) && !e.Mod.Has(ModCtrl) && !e.Mod.Has(ModAlt)
}

// String returns a canonical representation, e.g. "a", "C-x", "S-Tab", "F12".
func (e KeyEvent) String() string {
	var parts []string
	if e.Mod.Has(ModCtrl) {
		parts = append(parts, "C")
	}
	if e.Mod.Has(ModAlt) {
		parts = append(parts, "A")
	}
	if e.Mod.Has(ModShift) && !e.IsRune() {
		parts = append(parts, "S")
	}
	if e.Key == KeyRune {
		if e.Rune == ' ' {
			parts = append(parts, "Space")
		} else {
			parts = append(parts, string(e.Rune))
		}
	} else {
		parts = append(parts, e.Key.String())
	}
	return strings.Join(parts, "-")
}
