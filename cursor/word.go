package cursor

import (
	"unicode"
	"unicode/utf8"

	"github.com/dshills/multiline/buffer"
)

// isSpaceCluster reports whether a grapheme cluster is whitespace, judged
// by its first rune.
func isSpaceCluster(c string) bool {
	r, _ := utf8.DecodeRuneInString(c)
	return unicode.IsSpace(r)
}

// MoveWordRight moves to the boundary after the next run of non-whitespace,
// wrapping across line ends.
func (c *Cursor) MoveWordRight(buf *buffer.Buffer, extend bool) {
	c.beginMove(extend)
	c.active = buf.Clamp(c.active)

	cs := buffer.Clusters(buf.Line(c.active.Line))
	if c.active.Col == len(cs) {
		if c.active.Line+1 < buf.LineCount() {
			c.active.Line++
			c.active.Col = 0
		}
		c.endMove()
		return
	}

	col := c.active.Col
	for col < len(cs) && isSpaceCluster(cs[col]) {
		col++
	}
	for col < len(cs) && !isSpaceCluster(cs[col]) {
		col++
	}
	c.active.Col = col
	c.endMove()
}

// MoveWordLeft moves to the start of the previous run of non-whitespace,
// wrapping across line starts.
func (c *Cursor) MoveWordLeft(buf *buffer.Buffer, extend bool) {
	c.beginMove(extend)
	c.active = buf.Clamp(c.active)

	if c.active.Col == 0 {
		if c.active.Line > 0 {
			c.active.Line--
			c.active.Col = buf.LineLen(c.active.Line)
		}
		c.endMove()
		return
	}

	cs := buffer.Clusters(buf.Line(c.active.Line))
	col := c.active.Col
	for col > 0 && isSpaceCluster(cs[col-1]) {
		col--
	}
	for col > 0 && !isSpaceCluster(cs[col-1]) {
		col--
	}
	c.active.Col = col
	c.endMove()
}
