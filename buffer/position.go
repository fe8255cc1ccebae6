package buffer

import "fmt"

// Position is a line/column location in a buffer.
// Both Line and Col are 0-indexed. Col counts grapheme clusters from the
// start of the line and may equal the line length (end-of-line insertion
// point).
type Position struct {
	Line int
	Col  int
}

// String returns a human-readable representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d:%d)", p.Line, p.Col)
}

// Compare returns -1 if p < other, 0 if p == other, 1 if p > other
// in document order.
func (p Position) Compare(other Position) int {
	if p.Line < other.Line {
		return -1
	}
	if p.Line > other.Line {
		return 1
	}
	if p.Col < other.Col {
		return -1
	}
	if p.Col > other.Col {
		return 1
	}
	return 0
}

// Before returns true if p comes before other in document order.
func (p Position) Before(other Position) bool {
	return p.Compare(other) < 0
}

// After returns true if p comes after other in document order.
func (p Position) After(other Position) bool {
	return p.Compare(other) > 0
}

// IsZero returns true if this is the zero position (0:0).
func (p Position) IsZero() bool {
	return p.Line == 0 && p.Col == 0
}

// Range is a pair of positions. Start <= End is not enforced here;
// use Normalize before treating it as a document-order span.
type Range struct {
	Start Position
	End   Position
}

// Normalize returns the range with Start <= End in document order.
func (r Range) Normalize() Range {
	if r.End.Before(r.Start) {
		return Range{Start: r.End, End: r.Start}
	}
	return r
}

// IsEmpty returns true if the range spans no content.
func (r Range) IsEmpty() bool {
	return r.Start == r.End
}

// String returns a human-readable representation of the range.
func (r Range) String() string {
	return fmt.Sprintf("%s-%s", r.Start, r.End)
}
