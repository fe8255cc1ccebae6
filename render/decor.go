package render

import (
	"fmt"

	"github.com/dshills/multiline/term"
)

// Header produces rows drawn above the buffer body.
type Header interface {
	Rows(s State) []Row
}

// Footer produces rows drawn below the buffer body.
type Footer interface {
	Rows(s State) []Row
}

// Margin produces the gutter prefix for one body row. Width must match
// the display width of every row the margin draws, or cursor positioning
// drifts.
type Margin interface {
	Width() int
	Row(s State, line int) Row
}

// NoHeader renders nothing above the body.
type NoHeader struct{}

func (NoHeader) Rows(State) []Row { return nil }

// NoFooter renders nothing below the body.
type NoFooter struct{}

func (NoFooter) Rows(State) []Row { return nil }

// NoMargin renders no gutter.
type NoMargin struct{}

func (NoMargin) Width() int         { return 0 }
func (NoMargin) Row(State, int) Row { return nil }

// ClassicHeader draws the boxed title line.
type ClassicHeader struct{}

func (ClassicHeader) Rows(State) []Row {
	return []Row{{Span{Text: "      ╭─── Input Prompt ─────────"}}}
}

// ClassicFooter draws the status line with line/char counts and the
// cursor position.
type ClassicFooter struct{}

func (ClassicFooter) Rows(s State) []Row {
	pos := s.Cursor.Active()
	col := pos.Col
	if n := s.Buffer.LineLen(pos.Line); col > n {
		col = n
	}
	text := fmt.Sprintf("      ╰──┤ Lines: %d ├─┤ Chars: %d ├─┤ Ln: %d, Col: %d",
		s.Buffer.LineCount(), s.Buffer.CharCount(), pos.Line, col)
	return []Row{{Span{Text: text}}}
}

// ClassicGutter draws right-aligned line numbers followed by a vertical
// delimiter, bold on the cursor's line.
type ClassicGutter struct{}

const (
	gutterWidth = 5
	gutterPad   = 3

	gutterDelim     = " │ "
	gutterDelimBold = " ┃ "
)

func (ClassicGutter) Width() int { return gutterWidth + gutterPad }

func (ClassicGutter) Row(s State, line int) Row {
	number := Span{Text: fmt.Sprintf("%*d", gutterWidth, line+1)}
	delim := Span{Text: gutterDelim}
	if line == s.Cursor.Active().Line {
		delim = Span{Text: gutterDelimBold, Style: term.DefaultStyle().WithBold()}
	}
	return Row{number, delim}
}
