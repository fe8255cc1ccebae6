package render

import (
	"testing"

	"github.com/dshills/multiline/term"
)

func plainFrame(cursorRow, cursorCol int, lines ...string) Frame {
	rows := make([]Row, len(lines))
	for i, line := range lines {
		rows[i] = Row{{Text: line}}
	}
	return Frame{Rows: rows, CursorRow: cursorRow, CursorCol: cursorCol}
}

func countKind(ops []term.Op, kind term.OpKind) int {
	n := 0
	for _, op := range ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

func printed(ops []term.Op) []string {
	var texts []string
	for _, op := range ops {
		if op.Kind == term.OpPrint {
			texts = append(texts, op.Text)
		}
	}
	return texts
}

func TestRenderFirstFramePaintsEverything(t *testing.T) {
	r := NewRenderer()
	ops := r.Render(plainFrame(1, 2, "alpha", "beta", "gamma"))

	got := printed(ops)
	want := []string{"alpha", "beta", "gamma"}
	if len(got) != len(want) {
		t.Fatalf("printed %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("printed[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if countKind(ops, term.OpNewline) != 2 {
		t.Errorf("newlines = %d, want 2", countKind(ops, term.OpNewline))
	}
	last := ops[len(ops)-1]
	if last.Kind != term.OpShowCursor {
		t.Errorf("last op = %v, want showcursor", last)
	}
}

func TestRenderSameFrameEmitsNothing(t *testing.T) {
	r := NewRenderer()
	f := plainFrame(0, 3, "alpha", "beta")
	r.Render(f)

	if ops := r.Render(f); len(ops) != 0 {
		t.Errorf("second render emitted %v, want none", ops)
	}
}

func TestRenderSingleLineChangeRepaintsOneRow(t *testing.T) {
	r := NewRenderer()
	r.Render(plainFrame(0, 0, "alpha", "beta", "gamma"))

	ops := r.Render(plainFrame(0, 1, "alpha", "betas", "gamma"))
	got := printed(ops)
	if len(got) != 1 || got[0] != "betas" {
		t.Errorf("printed %v, want only the changed row", got)
	}
}

func TestRenderCursorOnlyMoveSkipsRepaint(t *testing.T) {
	r := NewRenderer()
	r.Render(plainFrame(0, 0, "alpha", "beta"))

	ops := r.Render(plainFrame(1, 3, "alpha", "beta"))
	if countKind(ops, term.OpPrint) != 0 {
		t.Errorf("cursor move repainted rows: %v", ops)
	}
	if countKind(ops, term.OpMoveDown) != 1 || countKind(ops, term.OpMoveCol) != 1 {
		t.Errorf("expected one down-move and one column move, got %v", ops)
	}
}

func TestRenderGrowingFrameAllocatesRows(t *testing.T) {
	r := NewRenderer()
	r.Render(plainFrame(0, 0, "alpha"))

	ops := r.Render(plainFrame(1, 0, "alpha", "beta"))
	if countKind(ops, term.OpNewline) != 1 {
		t.Errorf("newlines = %d, want 1", countKind(ops, term.OpNewline))
	}
	got := printed(ops)
	if len(got) != 1 || got[0] != "beta" {
		t.Errorf("printed %v, want only the new row", got)
	}
}

func TestRenderShrinkingFrameClearsBelow(t *testing.T) {
	r := NewRenderer()
	r.Render(plainFrame(2, 0, "alpha", "beta", "gamma"))

	ops := r.Render(plainFrame(0, 0, "alpha"))
	if countKind(ops, term.OpClearDown) != 1 {
		t.Errorf("expected a clear-down op, got %v", ops)
	}
	if countKind(ops, term.OpPrint) != 0 {
		t.Errorf("unchanged row repainted: %v", ops)
	}
}

func TestRenderHidesCursorDuringRepaint(t *testing.T) {
	r := NewRenderer()
	r.Render(plainFrame(0, 0, "alpha"))

	ops := r.Render(plainFrame(0, 0, "omega"))
	if ops[0].Kind != term.OpHideCursor {
		t.Errorf("first op = %v, want hidecursor", ops[0])
	}
	if ops[len(ops)-1].Kind != term.OpShowCursor {
		t.Errorf("last op = %v, want showcursor", ops[len(ops)-1])
	}
}

func TestFinishMovesBelowWidget(t *testing.T) {
	r := NewRenderer()
	r.Render(plainFrame(0, 2, "alpha", "beta", "gamma"))

	ops := r.Finish()
	if countKind(ops, term.OpMoveDown) != 1 {
		t.Errorf("expected a down-move to the frame bottom, got %v", ops)
	}
	if ops[len(ops)-1].Kind != term.OpNewline {
		t.Errorf("last op = %v, want newline", ops[len(ops)-1])
	}

	// The renderer starts fresh afterwards.
	ops = r.Render(plainFrame(0, 0, "next"))
	if len(printed(ops)) != 1 {
		t.Errorf("render after Finish did not repaint: %v", ops)
	}
}

func TestClearErasesWidget(t *testing.T) {
	r := NewRenderer()
	r.Render(plainFrame(2, 0, "alpha", "beta", "gamma"))

	ops := r.Clear()
	if countKind(ops, term.OpMoveUp) != 1 || countKind(ops, term.OpClearDown) != 1 {
		t.Errorf("clear ops = %v, want move to top then clear down", ops)
	}

	if ops := r.Clear(); len(ops) != 0 {
		t.Errorf("second clear emitted %v, want none", ops)
	}
}
