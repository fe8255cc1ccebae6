package term

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"unicode/utf8"

	"golang.org/x/term"
)

// ANSI is the default inline terminal backend. It reads raw bytes from a
// tty, decodes escape sequences into key events, and renders drawing ops
// as ANSI control sequences on the output writer. Each Apply batch is
// written in a single flush so a frame never appears half-painted.
type ANSI struct {
	in    *os.File
	out   io.Writer
	fd    int
	saved *term.State

	// queued holds events decoded from a chunk beyond the first.
	queued []KeyEvent
	// pending holds the tail of a sequence split across read chunks.
	pending []byte
	inbuf   [256]byte
}

// NewANSI creates a backend reading keys from in and drawing to out.
func NewANSI(in *os.File, out io.Writer) *ANSI {
	return &ANSI{in: in, out: out, fd: int(in.Fd())}
}

// Stdio creates a backend over stdin/stdout.
func Stdio() *ANSI {
	return NewANSI(os.Stdin, os.Stdout)
}

// EnterRaw switches the input tty into raw mode.
func (a *ANSI) EnterRaw() error {
	state, err := term.MakeRaw(a.fd)
	if err != nil {
		return fmt.Errorf("entering raw mode: %w", err)
	}
	a.saved = state
	return nil
}

// LeaveRaw restores the tty state saved by EnterRaw.
func (a *ANSI) LeaveRaw() error {
	if a.saved == nil {
		return nil
	}
	state := a.saved
	a.saved = nil
	if err := term.Restore(a.fd, state); err != nil {
		return fmt.Errorf("restoring terminal mode: %w", err)
	}
	return nil
}

// EnterAlt switches to the alternate screen and homes the cursor.
func (a *ANSI) EnterAlt() error {
	_, err := io.WriteString(a.out, "\x1b[?1049h\x1b[H")
	return err
}

// LeaveAlt returns to the primary screen.
func (a *ANSI) LeaveAlt() error {
	_, err := io.WriteString(a.out, "\x1b[?1049l")
	return err
}

// Size returns the tty dimensions.
func (a *ANSI) Size() (int, int, error) {
	w, h, err := term.GetSize(a.fd)
	if err != nil {
		return 0, 0, fmt.Errorf("querying terminal size: %w", err)
	}
	return w, h, nil
}

// Apply renders ops into a single buffered write.
func (a *ANSI) Apply(ops []Op) error {
	var buf bytes.Buffer
	for _, op := range ops {
		encodeOp(&buf, op)
	}
	if _, err := a.out.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("writing frame: %w", err)
	}
	return nil
}

// encodeOp appends the ANSI encoding of op to buf.
func encodeOp(buf *bytes.Buffer, op Op) {
	switch op.Kind {
	case OpMoveUp:
		if op.N > 0 {
			buf.WriteString("\x1b[" + strconv.Itoa(op.N) + "A")
		}
	case OpMoveDown:
		if op.N > 0 {
			buf.WriteString("\x1b[" + strconv.Itoa(op.N) + "B")
		}
	case OpMoveCol:
		// CSI G is 1-indexed.
		buf.WriteString("\x1b[" + strconv.Itoa(op.N+1) + "G")
	case OpNewline:
		buf.WriteString("\r\n")
	case OpPrint:
		buf.WriteString(op.Style.sgr())
		buf.WriteString(op.Text)
		buf.WriteString("\x1b[0m")
	case OpClearLine:
		buf.WriteString("\x1b[2K")
	case OpClearToEnd:
		buf.WriteString("\x1b[0K")
	case OpClearDown:
		buf.WriteString("\x1b[0J")
	case OpHideCursor:
		buf.WriteString("\x1b[?25l")
	case OpShowCursor:
		buf.WriteString("\x1b[?25h")
	}
}

// ReadKey blocks for the next key event. Bytes arriving together in one
// read are decoded together, which is how escape sequences are told apart
// from a bare Escape press without timers.
func (a *ANSI) ReadKey() (KeyEvent, error) {
	for {
		if len(a.queued) > 0 {
			ev := a.queued[0]
			a.queued = a.queued[1:]
			return ev, nil
		}

		n, err := a.in.Read(a.inbuf[:])
		if err != nil {
			if err == io.EOF {
				return KeyEvent{}, ErrBackendClosed
			}
			return KeyEvent{}, fmt.Errorf("reading key: %w", err)
		}
		data := a.inbuf[:n]
		if len(a.pending) > 0 {
			data = append(a.pending, data...)
		}
		events, rest := decodeKeys(data)
		a.queued = events
		a.pending = append([]byte(nil), rest...)
	}
}

// decodeKeys parses a chunk of raw input bytes into key events. A
// sequence cut off at the end of the chunk is returned as rest so the
// caller can resume once more bytes arrive.
func decodeKeys(data []byte) ([]KeyEvent, []byte) {
	var events []KeyEvent
	for len(data) > 0 {
		ev, rest, partial := decodeOne(data)
		if partial {
			return events, data
		}
		data = rest
		if ev.Key != KeyNone {
			events = append(events, ev)
		}
	}
	return events, nil
}

// decodeOne parses a single key event from the front of data.
func decodeOne(data []byte) (KeyEvent, []byte, bool) {
	b := data[0]
	switch {
	case b == 0x1b:
		return decodeEscape(data)
	case b == '\r' || b == '\n':
		return SpecialEvent(KeyEnter, ModNone), data[1:], false
	case b == '\t':
		return SpecialEvent(KeyTab, ModNone), data[1:], false
	case b == 0x7f || b == 0x08:
		return SpecialEvent(KeyBackspace, ModNone), data[1:], false
	case b < 0x20:
		// Ctrl+letter arrives as the bare control byte.
		return RuneEvent(rune(b-1+'a'), ModCtrl), data[1:], false
	default:
		r, size := utf8.DecodeRune(data)
		if r == utf8.RuneError && size <= 1 {
			if !utf8.FullRune(data) {
				// A multibyte rune cut off by the chunk boundary.
				return KeyEvent{}, data, true
			}
			return KeyEvent{}, data[1:], false
		}
		return RuneEvent(r, ModNone), data[size:], false
	}
}

// decodeEscape parses a sequence starting with ESC. A lone ESC in the
// chunk is the Escape key; ESC followed by another simple key is that key
// with Alt held.
func decodeEscape(data []byte) (KeyEvent, []byte, bool) {
	if len(data) == 1 {
		return SpecialEvent(KeyEscape, ModNone), nil, false
	}
	switch data[1] {
	case '[':
		return decodeCSI(data[2:])
	case 'O':
		return decodeSS3(data[2:])
	default:
		ev, rest, partial := decodeOne(data[1:])
		ev.Mod |= ModAlt
		return ev, rest, partial
	}
}

// decodeCSI parses a CSI sequence body: parameters then a final byte.
// Running out of bytes before the final byte reports the sequence as
// partial.
func decodeCSI(data []byte) (KeyEvent, []byte, bool) {
	var params []int
	num := 0
	hasNum := false
	for i := 0; i < len(data); i++ {
		b := data[i]
		switch {
		case b >= '0' && b <= '9':
			num = num*10 + int(b-'0')
			hasNum = true
		case b == ';':
			params = append(params, num)
			num = 0
			hasNum = false
		case b >= 0x40 && b <= 0x7e:
			if hasNum {
				params = append(params, num)
			}
			return csiEvent(b, params), data[i+1:], false
		default:
			// Unknown intermediate byte; drop the sequence.
			return KeyEvent{}, data[i+1:], false
		}
	}
	return KeyEvent{}, nil, true
}

// csiEvent maps a CSI final byte plus parameters to a key event.
func csiEvent(final byte, params []int) KeyEvent {
	mod := ModNone
	if len(params) >= 2 {
		mod = csiMod(params[1])
	}

	switch final {
	case 'A':
		return SpecialEvent(KeyUp, mod)
	case 'B':
		return SpecialEvent(KeyDown, mod)
	case 'C':
		return SpecialEvent(KeyRight, mod)
	case 'D':
		return SpecialEvent(KeyLeft, mod)
	case 'H':
		return SpecialEvent(KeyHome, mod)
	case 'F':
		return SpecialEvent(KeyEnd, mod)
	case 'Z':
		// Backtab.
		return SpecialEvent(KeyTab, mod|ModShift)
	case '~':
		if len(params) == 0 {
			return KeyEvent{}
		}
		return tildeEvent(params[0], mod)
	default:
		return KeyEvent{}
	}
}

// tildeEvent maps the legacy CSI <n>~ keys.
func tildeEvent(code int, mod Mod) KeyEvent {
	switch code {
	case 1, 7:
		return SpecialEvent(KeyHome, mod)
	case 2:
		return SpecialEvent(KeyInsert, mod)
	case 3:
		return SpecialEvent(KeyDelete, mod)
	case 4, 8:
		return SpecialEvent(KeyEnd, mod)
	case 5:
		return SpecialEvent(KeyPageUp, mod)
	case 6:
		return SpecialEvent(KeyPageDown, mod)
	case 11, 12, 13, 14, 15:
		return SpecialEvent(KeyF1+Key(code-11), mod)
	case 17, 18, 19, 20, 21:
		return SpecialEvent(KeyF6+Key(code-17), mod)
	case 23:
		return SpecialEvent(KeyF11, mod)
	case 24:
		return SpecialEvent(KeyF12, mod)
	default:
		return KeyEvent{}
	}
}

// decodeSS3 parses an SS3 sequence (ESC O <final>).
func decodeSS3(data []byte) (KeyEvent, []byte, bool) {
	if len(data) == 0 {
		return KeyEvent{}, nil, true
	}
	rest := data[1:]
	switch data[0] {
	case 'A':
		return SpecialEvent(KeyUp, ModNone), rest, false
	case 'B':
		return SpecialEvent(KeyDown, ModNone), rest, false
	case 'C':
		return SpecialEvent(KeyRight, ModNone), rest, false
	case 'D':
		return SpecialEvent(KeyLeft, ModNone), rest, false
	case 'H':
		return SpecialEvent(KeyHome, ModNone), rest, false
	case 'F':
		return SpecialEvent(KeyEnd, ModNone), rest, false
	case 'P', 'Q', 'R', 'S':
		return SpecialEvent(KeyF1+Key(data[0]-'P'), ModNone), rest, false
	default:
		return KeyEvent{}, rest, false
	}
}

// csiMod converts an xterm modifier parameter into a Mod mask.
func csiMod(param int) Mod {
	if param < 2 {
		return ModNone
	}
	bits := param - 1
	var mod Mod
	if bits&1 != 0 {
		mod |= ModShift
	}
	if bits&2 != 0 {
		mod |= ModAlt
	}
	if bits&4 != 0 {
		mod |= ModCtrl
	}
	return mod
}
