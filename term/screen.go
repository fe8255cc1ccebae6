package term

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// Screen adapts a tcell.Screen to Backend so the widget can be embedded
// inside an application that already owns the terminal through tcell. The
// host remains responsible for Init and Fini; this adapter paints the
// widget's frame at a fixed origin and leaves the rest of the screen
// alone.
type Screen struct {
	screen tcell.Screen

	// originX, originY anchor the widget's frame on the screen.
	originX, originY int

	// row, col track the frame-relative cursor between ops.
	row, col     int
	cursorHidden bool
}

// NewScreen wraps an initialized tcell screen, anchoring the widget's
// first row at (x, y).
func NewScreen(screen tcell.Screen, x, y int) *Screen {
	return &Screen{screen: screen, originX: x, originY: y}
}

// ReadKey blocks for the next key event. Non-key tcell events are
// swallowed except resize, which is reported as a size change through the
// next Apply.
func (s *Screen) ReadKey() (KeyEvent, error) {
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return KeyEvent{}, ErrBackendClosed
		}
		if keyEv, ok := ev.(*tcell.EventKey); ok {
			return convertKeyEvent(keyEv), nil
		}
	}
}

// Apply paints a batch of ops into the tcell buffer and shows it.
func (s *Screen) Apply(ops []Op) error {
	for _, op := range ops {
		s.applyOp(op)
	}
	if s.cursorHidden {
		s.screen.HideCursor()
	} else {
		s.screen.ShowCursor(s.originX+s.col, s.originY+s.row)
	}
	s.screen.Show()
	return nil
}

func (s *Screen) applyOp(op Op) {
	switch op.Kind {
	case OpMoveUp:
		s.row -= op.N
	case OpMoveDown:
		s.row += op.N
	case OpMoveCol:
		s.col = op.N
	case OpNewline:
		s.row++
		s.col = 0
	case OpPrint:
		s.print(op.Text, convertStyle(op.Style))
	case OpClearLine:
		s.clearSpan(0, s.screenWidth())
	case OpClearToEnd:
		s.clearSpan(s.col, s.screenWidth())
	case OpClearDown:
		s.clearSpan(s.col, s.screenWidth())
		w, h := s.screen.Size()
		for y := s.originY + s.row + 1; y < h; y++ {
			for x := 0; x < w; x++ {
				s.screen.SetContent(x, y, ' ', nil, tcell.StyleDefault)
			}
		}
	case OpHideCursor:
		s.cursorHidden = true
	case OpShowCursor:
		s.cursorHidden = false
	}
}

func (s *Screen) print(text string, style tcell.Style) {
	y := s.originY + s.row
	for _, r := range text {
		s.screen.SetContent(s.originX+s.col, y, r, nil, style)
		s.col += runewidth.RuneWidth(r)
	}
}

// clearSpan blanks frame columns [from, to) on the current row.
func (s *Screen) clearSpan(from, to int) {
	y := s.originY + s.row
	for x := from; x < to; x++ {
		s.screen.SetContent(s.originX+x, y, ' ', nil, tcell.StyleDefault)
	}
}

func (s *Screen) screenWidth() int {
	w, _ := s.screen.Size()
	return w - s.originX
}

// Size returns the screen area available to the widget.
func (s *Screen) Size() (int, int, error) {
	w, h := s.screen.Size()
	return w - s.originX, h - s.originY, nil
}

// EnterRaw is a no-op: tcell already owns the terminal mode.
func (s *Screen) EnterRaw() error { return nil }

// LeaveRaw is a no-op.
func (s *Screen) LeaveRaw() error { return nil }

// EnterAlt is a no-op: the host application decides screen usage.
func (s *Screen) EnterAlt() error { return nil }

// LeaveAlt is a no-op.
func (s *Screen) LeaveAlt() error { return nil }

// convertStyle translates a widget style into a tcell style.
func convertStyle(st Style) tcell.Style {
	style := tcell.StyleDefault
	if !st.FG.IsDefault() {
		style = style.Foreground(convertColor(st.FG))
	}
	if !st.BG.IsDefault() {
		style = style.Background(convertColor(st.BG))
	}
	if st.Bold {
		style = style.Bold(true)
	}
	if st.Dim {
		style = style.Dim(true)
	}
	if st.Underline {
		style = style.Underline(true)
	}
	if st.Reverse {
		style = style.Reverse(true)
	}
	return style
}

func convertColor(c Color) tcell.Color {
	if c.Indexed {
		return tcell.PaletteColor(int(c.R))
	}
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// convertKeyEvent translates a tcell key event into a KeyEvent.
func convertKeyEvent(ev *tcell.EventKey) KeyEvent {
	mod := convertModMask(ev.Modifiers())

	k := ev.Key()
	switch {
	case k == tcell.KeyRune:
		return RuneEvent(ev.Rune(), mod)
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		// tcell reports Ctrl+letter as a dedicated key; fold it back
		// into a rune event so keybindings see one shape.
		switch k {
		case tcell.KeyCtrlH:
			return SpecialEvent(KeyBackspace, mod&^ModCtrl)
		case tcell.KeyCtrlI:
			return SpecialEvent(KeyTab, mod&^ModCtrl)
		case tcell.KeyCtrlM:
			return SpecialEvent(KeyEnter, mod&^ModCtrl)
		}
		return RuneEvent(rune(k-tcell.KeyCtrlA)+'a', mod|ModCtrl)
	case k == tcell.KeyBacktab:
		return SpecialEvent(KeyTab, mod|ModShift)
	default:
		return SpecialEvent(convertKeyCode(k), mod)
	}
}

func convertKeyCode(k tcell.Key) Key {
	switch k {
	case tcell.KeyEscape:
		return KeyEscape
	case tcell.KeyEnter:
		return KeyEnter
	case tcell.KeyTab:
		return KeyTab
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return KeyBackspace
	case tcell.KeyDelete:
		return KeyDelete
	case tcell.KeyInsert:
		return KeyInsert
	case tcell.KeyHome:
		return KeyHome
	case tcell.KeyEnd:
		return KeyEnd
	case tcell.KeyPgUp:
		return KeyPageUp
	case tcell.KeyPgDn:
		return KeyPageDown
	case tcell.KeyUp:
		return KeyUp
	case tcell.KeyDown:
		return KeyDown
	case tcell.KeyLeft:
		return KeyLeft
	case tcell.KeyRight:
		return KeyRight
	default:
		if k >= tcell.KeyF1 && k <= tcell.KeyF12 {
			return KeyF1 + Key(k-tcell.KeyF1)
		}
		return KeyNone
	}
}

func convertModMask(m tcell.ModMask) Mod {
	var mod Mod
	if m&tcell.ModShift != 0 {
		mod |= ModShift
	}
	if m&tcell.ModAlt != 0 {
		mod |= ModAlt
	}
	if m&tcell.ModCtrl != 0 {
		mod |= ModCtrl
	}
	return mod
}
