package buffer

import (
	"errors"
	"io"
	"strings"
)

// Errors returned by buffer operations.
var (
	// ErrOutOfBounds indicates a position outside the buffer's line/column
	// invariant. Callers are expected to pass clamped positions; receiving
	// this error is a programming error, not a recoverable state.
	ErrOutOfBounds = errors.New("position out of bounds")
)

// Buffer is an ordered sequence of lines, index 0 topmost. A line never
// contains a newline; newlines exist only as boundaries between lines.
// At least one line always exists: the empty buffer is one empty line.
//
// Buffer is not safe for concurrent use. The editor owns it exclusively
// for the duration of a read session.
type Buffer struct {
	lines    []string
	tabWidth int
}

// New creates an empty buffer.
func New(opts ...Option) *Buffer {
	b := &Buffer{
		lines:    []string{""},
		tabWidth: 4,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// NewFromString creates a buffer seeded with initial content.
// CRLF and lone CR line endings are normalized to LF boundaries.
func NewFromString(s string, opts ...Option) *Buffer {
	b := New(opts...)
	s = normalizeLineEndings(s)
	b.lines = strings.Split(s, "\n")
	return b
}

// NewFromReader creates a buffer from an io.Reader.
func NewFromReader(r io.Reader, opts ...Option) (*Buffer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return NewFromString(string(data), opts...), nil
}

// normalizeLineEndings converts CRLF and CR boundaries to LF.
func normalizeLineEndings(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// Read Operations

// LineCount returns the number of lines. Always >= 1.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// Line returns the text of line i without a trailing newline.
func (b *Buffer) Line(i int) string {
	if i < 0 || i >= len(b.lines) {
		return ""
	}
	return b.lines[i]
}

// LineLen returns the length of line i in grapheme clusters.
func (b *Buffer) LineLen(i int) int {
	return ClusterCount(b.Line(i))
}

// CharCount returns the total number of clusters in the buffer, counting
// each line boundary as one.
func (b *Buffer) CharCount() int {
	n := 0
	for i, ln := range b.lines {
		if i > 0 {
			n++
		}
		n += ClusterCount(ln)
	}
	return n
}

// CharAt returns the cluster at pos, or "" when pos is at end-of-line.
func (b *Buffer) CharAt(pos Position) (string, error) {
	if err := b.validate(pos); err != nil {
		return "", err
	}
	cs := Clusters(b.lines[pos.Line])
	if pos.Col == len(cs) {
		return "", nil
	}
	return cs[pos.Col], nil
}

// Slice returns the content between two positions, normalized to document
// order, with lines joined by newlines. Used for copy and selection display.
func (b *Buffer) Slice(start, end Position) (string, error) {
	r := Range{Start: start, End: end}.Normalize()
	start, end = r.Start, r.End
	if err := b.validate(start); err != nil {
		return "", err
	}
	if err := b.validate(end); err != nil {
		return "", err
	}

	if start.Line == end.Line {
		cs := Clusters(b.lines[start.Line])
		return strings.Join(cs[start.Col:end.Col], ""), nil
	}

	var sb strings.Builder
	first := Clusters(b.lines[start.Line])
	sb.WriteString(strings.Join(first[start.Col:], ""))
	for i := start.Line + 1; i < end.Line; i++ {
		sb.WriteByte('\n')
		sb.WriteString(b.lines[i])
	}
	last := Clusters(b.lines[end.Line])
	sb.WriteByte('\n')
	sb.WriteString(strings.Join(last[:end.Col], ""))
	return sb.String(), nil
}

// Contents returns all lines joined by a single newline. No trailing
// newline is added; this is the externally observable result of a session.
func (b *Buffer) Contents() string {
	return strings.Join(b.lines, "\n")
}

// IsEmpty returns true if the buffer holds no content.
func (b *Buffer) IsEmpty() bool {
	return len(b.lines) == 1 && b.lines[0] == ""
}

// TabWidth returns the buffer's tab stop width.
func (b *Buffer) TabWidth() int {
	return b.tabWidth
}

// Clamp returns pos adjusted to satisfy the buffer's invariants: the line
// index is clamped to [0, LineCount) and the column to [0, LineLen].
func (b *Buffer) Clamp(pos Position) Position {
	if pos.Line < 0 {
		pos.Line = 0
	}
	if pos.Line >= len(b.lines) {
		pos.Line = len(b.lines) - 1
	}
	if pos.Col < 0 {
		pos.Col = 0
	}
	if max := b.LineLen(pos.Line); pos.Col > max {
		pos.Col = max
	}
	return pos
}

// validate reports ErrOutOfBounds unless pos satisfies the column invariant.
func (b *Buffer) validate(pos Position) error {
	if pos.Line < 0 || pos.Line >= len(b.lines) {
		return ErrOutOfBounds
	}
	if pos.Col < 0 || pos.Col > b.LineLen(pos.Line) {
		return ErrOutOfBounds
	}
	return nil
}

// Write Operations

// InsertString inserts s at pos. The string may not contain newlines; use
// InsertNewline for line breaks.
func (b *Buffer) InsertString(pos Position, s string) error {
	if err := b.validate(pos); err != nil {
		return err
	}
	b.lines[pos.Line] = spliceLine(b.lines[pos.Line], pos.Col, pos.Col, s)
	return nil
}

// InsertRune inserts a single character at pos, shifting the remainder of
// the line right.
func (b *Buffer) InsertRune(pos Position, r rune) error {
	return b.InsertString(pos, string(r))
}

// InsertNewline splits the line at pos: everything at and after pos.Col
// moves to a new line directly below, and subsequent lines shift down.
func (b *Buffer) InsertNewline(pos Position) error {
	if err := b.validate(pos); err != nil {
		return err
	}
	cs := Clusters(b.lines[pos.Line])
	head := strings.Join(cs[:pos.Col], "")
	tail := strings.Join(cs[pos.Col:], "")

	b.lines = append(b.lines, "")
	copy(b.lines[pos.Line+2:], b.lines[pos.Line+1:])
	b.lines[pos.Line] = head
	b.lines[pos.Line+1] = tail
	return nil
}

// DeleteBefore deletes the character before pos. At column 0 it merges the
// current line into the end of the previous line; at the very start of the
// buffer it is a no-op. Returns the position of the deleted character.
func (b *Buffer) DeleteBefore(pos Position) (Position, error) {
	if err := b.validate(pos); err != nil {
		return pos, err
	}
	if pos.Col > 0 {
		b.lines[pos.Line] = spliceLine(b.lines[pos.Line], pos.Col-1, pos.Col, "")
		return Position{Line: pos.Line, Col: pos.Col - 1}, nil
	}
	if pos.Line == 0 {
		return pos, nil
	}
	prevLen := b.LineLen(pos.Line - 1)
	b.mergeLines(pos.Line - 1)
	return Position{Line: pos.Line - 1, Col: prevLen}, nil
}

// DeleteAfter deletes the character at pos. At end-of-line it merges the
// next line upward; at the very end of the buffer it is a no-op.
func (b *Buffer) DeleteAfter(pos Position) error {
	if err := b.validate(pos); err != nil {
		return err
	}
	if pos.Col < b.LineLen(pos.Line) {
		b.lines[pos.Line] = spliceLine(b.lines[pos.Line], pos.Col, pos.Col+1, "")
		return nil
	}
	if pos.Line+1 < len(b.lines) {
		b.mergeLines(pos.Line)
	}
	return nil
}

// DeleteRange deletes the content between two positions, merging lines as
// needed. The range is normalized to document order first.
func (b *Buffer) DeleteRange(start, end Position) error {
	r := Range{Start: start, End: end}.Normalize()
	start, end = r.Start, r.End
	if err := b.validate(start); err != nil {
		return err
	}
	if err := b.validate(end); err != nil {
		return err
	}

	if start.Line == end.Line {
		b.lines[start.Line] = spliceLine(b.lines[start.Line], start.Col, end.Col, "")
		return nil
	}

	firstCS := Clusters(b.lines[start.Line])
	lastCS := Clusters(b.lines[end.Line])
	merged := strings.Join(firstCS[:start.Col], "") + strings.Join(lastCS[end.Col:], "")

	b.lines[start.Line] = merged
	b.lines = append(b.lines[:start.Line+1], b.lines[end.Line+1:]...)
	return nil
}

// mergeLines joins line i+1 onto the end of line i.
func (b *Buffer) mergeLines(i int) {
	b.lines[i] += b.lines[i+1]
	b.lines = append(b.lines[:i+1], b.lines[i+2:]...)
}
