package term

import "fmt"

// OpKind identifies a terminal drawing operation.
type OpKind uint8

const (
	// OpMoveUp moves the cursor N rows up in the widget's frame.
	OpMoveUp OpKind = iota
	// OpMoveDown moves the cursor N rows down.
	OpMoveDown
	// OpMoveCol moves the cursor to absolute column N on the current row.
	OpMoveCol
	// OpNewline moves to the start of the next row, scrolling the
	// terminal if the widget grows past the bottom.
	OpNewline
	// OpPrint writes styled text at the cursor.
	OpPrint
	// OpClearLine clears the entire current row.
	OpClearLine
	// OpClearToEnd clears from the cursor to the end of the row.
	OpClearToEnd
	// OpClearDown clears from the cursor to the end of the frame.
	OpClearDown
	// OpHideCursor hides the terminal cursor during a repaint.
	OpHideCursor
	// OpShowCursor shows the terminal cursor again.
	OpShowCursor
)

// Op is one drawing command emitted by the renderer. Ops address rows
// relative to the widget's frame, never absolute screen coordinates: the
// widget renders inline and does not own the whole terminal.
type Op struct {
	Kind  OpKind
	N     int    // row delta or target column
	Text  string // OpPrint payload
	Style Style  // OpPrint style
}

// MoveUp builds a relative cursor-up op.
func MoveUp(n int) Op { return Op{Kind: OpMoveUp, N: n} }

// MoveDown builds a relative cursor-down op.
func MoveDown(n int) Op { return Op{Kind: OpMoveDown, N: n} }

// MoveCol builds an absolute-column op. Columns are 0-indexed.
func MoveCol(col int) Op { return Op{Kind: OpMoveCol, N: col} }

// Newline builds a row-advance op.
func Newline() Op { return Op{Kind: OpNewline} }

// Print builds a styled text op.
func Print(text string, style Style) Op {
	return Op{Kind: OpPrint, Text: text, Style: style}
}

// ClearLine builds a clear-row op.
func ClearLine() Op { return Op{Kind: OpClearLine} }

// ClearToEnd builds a clear-to-end-of-row op.
func ClearToEnd() Op { return Op{Kind: OpClearToEnd} }

// ClearDown builds a clear-below op.
func ClearDown() Op { return Op{Kind: OpClearDown} }

// HideCursor builds a hide-cursor op.
func HideCursor() Op { return Op{Kind: OpHideCursor} }

// ShowCursor builds a show-cursor op.
func ShowCursor() Op { return Op{Kind: OpShowCursor} }

// String returns a compact description, useful in tests and logs.
func (op Op) String() string {
	switch op.Kind {
	case OpMoveUp:
		return fmt.Sprintf("up(%d)", op.N)
	case OpMoveDown:
		return fmt.Sprintf("down(%d)", op.N)
	case OpMoveCol:
		return fmt.Sprintf("col(%d)", op.N)
	case OpNewline:
		return "newline"
	case OpPrint:
		return fmt.Sprintf("print(%q)", op.Text)
	case OpClearLine:
		return "clearline"
	case OpClearToEnd:
		return "cleartoend"
	case OpClearDown:
		return "cleardown"
	case OpHideCursor:
		return "hidecursor"
	case OpShowCursor:
		return "showcursor"
	default:
		return fmt.Sprintf("op(%d)", op.Kind)
	}
}
