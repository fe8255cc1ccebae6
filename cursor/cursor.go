package cursor

import (
	"github.com/dshills/multiline/buffer"
)

// Cursor is the current edit position over a buffer: an active point plus
// an optional selection anchor. The anchor is fixed where the selection
// started; the active point is where typing occurs. The selection is
// directional, so the anchor may be before or after the active point in
// document order.
//
// Cursor never mutates the buffer; it only reads line lengths to stay
// within the buffer's column invariant.
type Cursor struct {
	active   buffer.Position
	anchor   buffer.Position
	anchored bool
}

// New creates a cursor at the start of the buffer with no selection.
func New() *Cursor {
	return &Cursor{}
}

// Active returns the active (typing) position.
func (c *Cursor) Active() buffer.Position {
	return c.active
}

// Anchor returns the selection anchor, if one exists.
func (c *Cursor) Anchor() (buffer.Position, bool) {
	return c.anchor, c.anchored
}

// HasSelection returns true if a non-empty selection exists.
func (c *Cursor) HasSelection() bool {
	return c.anchored && c.anchor != c.active
}

// SelectedRange returns the selection normalized to document order
// (start <= end), or ok=false when no selection exists.
func (c *Cursor) SelectedRange() (buffer.Range, bool) {
	if !c.HasSelection() {
		return buffer.Range{}, false
	}
	return buffer.Range{Start: c.anchor, End: c.active}.Normalize(), true
}

// ClearSelection drops the anchor, collapsing the cursor to a point.
func (c *Cursor) ClearSelection() {
	c.anchored = false
}

// MoveTo places the active point at pos, clamped to the buffer.
func (c *Cursor) MoveTo(buf *buffer.Buffer, pos buffer.Position, extend bool) {
	c.beginMove(extend)
	c.active = buf.Clamp(pos)
	c.endMove()
}

// MoveLeft moves one column left, wrapping to the end of the previous line
// at column 0.
func (c *Cursor) MoveLeft(buf *buffer.Buffer, extend bool) {
	c.beginMove(extend)
	c.active = buf.Clamp(c.active)
	if c.active.Col > 0 {
		c.active.Col--
	} else if c.active.Line > 0 {
		c.active.Line--
		c.active.Col = buf.LineLen(c.active.Line)
	}
	c.endMove()
}

// MoveRight moves one column right, wrapping to the start of the next line
// at end-of-line.
func (c *Cursor) MoveRight(buf *buffer.Buffer, extend bool) {
	c.beginMove(extend)
	c.active = buf.Clamp(c.active)
	if c.active.Col < buf.LineLen(c.active.Line) {
		c.active.Col++
	} else if c.active.Line+1 < buf.LineCount() {
		c.active.Line++
		c.active.Col = 0
	}
	c.endMove()
}

// MoveUp moves one line up, clamping the column to the shorter line. On the
// first line it moves to column 0.
func (c *Cursor) MoveUp(buf *buffer.Buffer, extend bool) {
	c.beginMove(extend)
	if c.active.Line == 0 {
		c.active.Col = 0
	} else {
		c.active.Line--
		c.active = buf.Clamp(c.active)
	}
	c.endMove()
}

// MoveDown moves one line down, clamping the column to the shorter line.
// On the last line it moves to end-of-line.
func (c *Cursor) MoveDown(buf *buffer.Buffer, extend bool) {
	c.beginMove(extend)
	if c.active.Line+1 == buf.LineCount() {
		c.active.Col = buf.LineLen(c.active.Line)
	} else {
		c.active.Line++
		c.active = buf.Clamp(c.active)
	}
	c.endMove()
}

// MoveHome moves to column 0 on the current line.
func (c *Cursor) MoveHome(buf *buffer.Buffer, extend bool) {
	c.beginMove(extend)
	c.active.Col = 0
	c.endMove()
}

// MoveEnd moves to end-of-line on the current line.
func (c *Cursor) MoveEnd(buf *buffer.Buffer, extend bool) {
	c.beginMove(extend)
	c.active = buf.Clamp(c.active)
	c.active.Col = buf.LineLen(c.active.Line)
	c.endMove()
}

// Clamp re-validates the active point and anchor against the buffer. The
// editor calls this after any buffer mutation that could shrink a line out
// from under a stale position.
func (c *Cursor) Clamp(buf *buffer.Buffer) {
	c.active = buf.Clamp(c.active)
	if c.anchored {
		c.anchor = buf.Clamp(c.anchor)
		if c.anchor == c.active {
			c.anchored = false
		}
	}
}

// beginMove establishes or drops the anchor before a movement.
func (c *Cursor) beginMove(extend bool) {
	if extend {
		if !c.anchored {
			c.anchor = c.active
			c.anchored = true
		}
	} else {
		c.anchored = false
	}
}

// endMove drops an anchor that landed on the active point.
func (c *Cursor) endMove() {
	if c.anchored && c.anchor == c.active {
		c.anchored = false
	}
}
