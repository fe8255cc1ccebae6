package render

import (
	"strings"

	"github.com/dshills/multiline/term"
)

// Span is a run of text in one style.
type Span struct {
	Text  string
	Style term.Style
}

// Row is one display row built from styled spans.
type Row []Span

// Text returns the row's text with styling stripped.
func (r Row) Text() string {
	var sb strings.Builder
	for _, span := range r {
		sb.WriteString(span.Text)
	}
	return sb.String()
}

// Equal reports whether two rows would paint identically.
func (r Row) Equal(other Row) bool {
	if len(r) != len(other) {
		return false
	}
	for i := range r {
		if r[i] != other[i] {
			return false
		}
	}
	return true
}

// Frame is one fully composed picture of the widget: decoration and body
// rows plus the cursor position in frame coordinates. CursorCol is a
// display column, so wide characters already count double.
type Frame struct {
	Rows      []Row
	CursorRow int
	CursorCol int
}

// Height returns the number of rows.
func (f Frame) Height() int {
	return len(f.Rows)
}
