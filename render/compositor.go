package render

import (
	"strings"

	"github.com/dshills/multiline/buffer"
	"github.com/dshills/multiline/cursor"
	"github.com/dshills/multiline/term"
)

// State is the read-only snapshot a frame is composed from. Decoration
// slots receive the same snapshot, so every part of a frame is a pure
// function of editor state.
type State struct {
	Buffer     *buffer.Buffer
	Cursor     *cursor.Cursor
	Fullscreen bool
}

// Compositor builds frames from editor state. It owns the viewport
// scroll position and the decoration slots; it never talks to the
// terminal itself.
type Compositor struct {
	header Header
	footer Footer
	margin Margin

	// maxHeight caps visible body lines; 0 means unlimited.
	maxHeight int
	selStyle  term.Style

	top int
}

// Option configures a Compositor.
type Option func(*Compositor)

// WithHeader sets the header slot.
func WithHeader(h Header) Option {
	return func(c *Compositor) { c.header = h }
}

// WithFooter sets the footer slot.
func WithFooter(f Footer) Option {
	return func(c *Compositor) { c.footer = f }
}

// WithMargin sets the gutter slot.
func WithMargin(m Margin) Option {
	return func(c *Compositor) { c.margin = m }
}

// WithMaxHeight caps the number of visible body lines. Zero removes the
// cap.
func WithMaxHeight(n int) Option {
	return func(c *Compositor) { c.maxHeight = n }
}

// WithSelectionStyle overrides the style applied to selected text.
func WithSelectionStyle(s term.Style) Option {
	return func(c *Compositor) { c.selStyle = s }
}

// WithClassic installs the classic boxed header, numbered gutter, and
// status footer in one step.
func WithClassic() Option {
	return func(c *Compositor) {
		c.header = ClassicHeader{}
		c.footer = ClassicFooter{}
		c.margin = ClassicGutter{}
	}
}

// NewCompositor creates a compositor with no decorations and reverse
// video selection.
func NewCompositor(opts ...Option) *Compositor {
	c := &Compositor{
		header:   NoHeader{},
		footer:   NoFooter{},
		margin:   NoMargin{},
		selStyle: term.DefaultStyle().WithReverse(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Compose builds the frame for the current state.
func (c *Compositor) Compose(s State) Frame {
	cur := s.Cursor.Active()
	top, height := c.window(s.Buffer.LineCount(), cur.Line)

	var rows []Row
	rows = append(rows, c.header.Rows(s)...)
	bodyStart := len(rows)

	for line := top; line < top+height; line++ {
		row := append(Row{}, c.margin.Row(s, line)...)
		row = append(row, c.bodySpans(s, line)...)
		rows = append(rows, row)
	}
	rows = append(rows, c.footer.Rows(s)...)

	col := cur.Col
	if n := s.Buffer.LineLen(cur.Line); col > n {
		col = n
	}
	return Frame{
		Rows:      rows,
		CursorRow: bodyStart + cur.Line - top,
		CursorCol: c.margin.Width() + buffer.DisplayWidth(s.Buffer.Line(cur.Line), col),
	}
}

// Reset clears the retained scroll position.
func (c *Compositor) Reset() {
	c.top = 0
}

// window computes the visible body line range, scrolling the retained
// top only as far as needed to keep the cursor inside.
func (c *Compositor) window(lineCount, cursorLine int) (top, height int) {
	if c.maxHeight <= 0 || lineCount <= c.maxHeight {
		c.top = 0
		return 0, lineCount
	}

	height = c.maxHeight
	if cursorLine < c.top {
		c.top = cursorLine
	} else if cursorLine >= c.top+height {
		c.top = cursorLine - height + 1
	}
	if c.top > lineCount-height {
		c.top = lineCount - height
	}
	return c.top, height
}

// bodySpans renders one buffer line, splitting it around the selection.
func (c *Compositor) bodySpans(s State, line int) []Span {
	text := s.Buffer.Line(line)

	sel, ok := s.Cursor.SelectedRange()
	if !ok || line < sel.Start.Line || line > sel.End.Line {
		if text == "" {
			return nil
		}
		return []Span{{Text: text}}
	}

	lineLen := s.Buffer.LineLen(line)
	from := 0
	if line == sel.Start.Line {
		from = sel.Start.Col
	}
	to := lineLen
	if line == sel.End.Line {
		to = sel.End.Col
	}

	var spans []Span
	if head := clusterSlice(text, 0, from); head != "" {
		spans = append(spans, Span{Text: head})
	}
	if mid := clusterSlice(text, from, to); mid != "" {
		spans = append(spans, Span{Text: mid, Style: c.selStyle})
	}
	if tail := clusterSlice(text, to, lineLen); tail != "" {
		spans = append(spans, Span{Text: tail})
	}
	return spans
}

// clusterSlice returns the text between two cluster offsets.
func clusterSlice(text string, from, to int) string {
	if from >= to {
		return ""
	}
	clusters := buffer.Clusters(text)
	if from > len(clusters) {
		return ""
	}
	if to > len(clusters) {
		to = len(clusters)
	}
	return strings.Join(clusters[from:to], "")
}
