package render

import "github.com/dshills/multiline/term"

// Renderer turns frames into terminal op batches. It retains the last
// frame it emitted and produces only the ops needed to reconcile the
// screen, so a one-character edit repaints one row, and rendering the
// same state twice emits nothing.
//
// Ops address rows relative to the widget's frame. The renderer tracks
// where it last left the terminal cursor and moves relatively from
// there, mirroring how the widget shares the terminal with whatever was
// printed before it.
type Renderer struct {
	prev  Frame
	drawn bool

	// row is the frame row the terminal cursor sits on while a batch is
	// being built.
	row int
}

// NewRenderer creates an empty renderer. The first Render paints the
// whole frame.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Invalidate forces the next Render to repaint every row.
func (r *Renderer) Invalidate() {
	r.drawn = false
	r.prev = Frame{}
	r.row = 0
}

// Render reconciles the terminal with the new frame and returns the op
// batch to apply. An empty batch means the screen is already correct.
func (r *Renderer) Render(f Frame) []term.Op {
	if f.Height() == 0 {
		return nil
	}
	if !r.drawn {
		return r.fullDraw(f)
	}

	changed := r.changedRows(f)
	if len(changed) == 0 && f.Height() == r.prev.Height() {
		if f.CursorRow == r.prev.CursorRow && f.CursorCol == r.prev.CursorCol {
			return nil
		}
		// Only the cursor moved.
		var ops []term.Op
		r.row = r.prev.CursorRow
		r.moveToRow(&ops, f.CursorRow)
		ops = append(ops, term.MoveCol(f.CursorCol))
		r.prev = f
		return ops
	}

	ops := []term.Op{term.HideCursor()}
	r.row = r.prev.CursorRow

	// Allocate rows for a taller frame before painting them.
	if grow := f.Height() - r.prev.Height(); grow > 0 {
		r.moveToRow(&ops, r.prev.Height()-1)
		for i := 0; i < grow; i++ {
			ops = append(ops, term.Newline())
			r.row++
		}
	}

	for _, i := range changed {
		r.moveToRow(&ops, i)
		ops = append(ops, term.MoveCol(0))
		ops = appendRow(ops, f.Rows[i])
		ops = append(ops, term.ClearToEnd())
	}

	// Wipe rows left behind by a shorter frame.
	if f.Height() < r.prev.Height() {
		r.moveToRow(&ops, f.Height())
		ops = append(ops, term.MoveCol(0), term.ClearDown())
	}

	r.moveToRow(&ops, f.CursorRow)
	ops = append(ops, term.MoveCol(f.CursorCol), term.ShowCursor())
	r.prev = f
	return ops
}

// Finish moves the cursor to a fresh row below the widget so the shell
// prompt resumes cleanly. The renderer forgets its frame afterwards.
func (r *Renderer) Finish() []term.Op {
	if !r.drawn {
		return nil
	}
	var ops []term.Op
	r.row = r.prev.CursorRow
	r.moveToRow(&ops, r.prev.Height()-1)
	ops = append(ops, term.MoveCol(0), term.Newline())
	r.Invalidate()
	return ops
}

// Clear erases the widget from the screen and resets the renderer. Used
// when the widget switches between inline and fullscreen rendering.
func (r *Renderer) Clear() []term.Op {
	if !r.drawn {
		return nil
	}
	var ops []term.Op
	r.row = r.prev.CursorRow
	r.moveToRow(&ops, 0)
	ops = append(ops, term.MoveCol(0), term.ClearDown())
	r.Invalidate()
	return ops
}

// fullDraw paints every row of the frame from a blank slate. The
// terminal cursor is assumed to sit at column 0 of the frame's first
// row.
func (r *Renderer) fullDraw(f Frame) []term.Op {
	ops := []term.Op{term.HideCursor(), term.MoveCol(0)}
	for i, row := range f.Rows {
		if i > 0 {
			ops = append(ops, term.Newline())
		}
		ops = appendRow(ops, row)
		ops = append(ops, term.ClearToEnd())
	}
	r.row = f.Height() - 1
	r.moveToRow(&ops, f.CursorRow)
	ops = append(ops, term.MoveCol(f.CursorCol), term.ShowCursor())

	r.prev = f
	r.drawn = true
	return ops
}

// changedRows lists the frame rows that differ from the previous frame.
func (r *Renderer) changedRows(f Frame) []int {
	var changed []int
	for i := range f.Rows {
		if i >= r.prev.Height() || !f.Rows[i].Equal(r.prev.Rows[i]) {
			changed = append(changed, i)
		}
	}
	return changed
}

// moveToRow emits the relative vertical movement from the tracked row.
func (r *Renderer) moveToRow(ops *[]term.Op, target int) {
	switch {
	case target < r.row:
		*ops = append(*ops, term.MoveUp(r.row-target))
	case target > r.row:
		*ops = append(*ops, term.MoveDown(target-r.row))
	}
	r.row = target
}

func appendRow(ops []term.Op, row Row) []term.Op {
	for _, span := range row {
		ops = append(ops, term.Print(span.Text, span.Style))
	}
	return ops
}
