package buffer

import (
	"errors"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	b := New()

	if !b.IsEmpty() {
		t.Error("new buffer should be empty")
	}
	if b.LineCount() != 1 {
		t.Errorf("expected 1 line, got %d", b.LineCount())
	}
	if b.Contents() != "" {
		t.Errorf("expected empty contents, got %q", b.Contents())
	}
}

func TestNewFromString(t *testing.T) {
	b := NewFromString("line1\nline2\nline3")

	if b.LineCount() != 3 {
		t.Errorf("expected 3 lines, got %d", b.LineCount())
	}
	for i, want := range []string{"line1", "line2", "line3"} {
		if got := b.Line(i); got != want {
			t.Errorf("line %d: expected %q, got %q", i, want, got)
		}
	}
}

func TestNewFromStringNormalizesLineEndings(t *testing.T) {
	b := NewFromString("a\r\nb\rc")

	if b.LineCount() != 3 {
		t.Fatalf("expected 3 lines, got %d", b.LineCount())
	}
	if b.Contents() != "a\nb\nc" {
		t.Errorf("unexpected contents %q", b.Contents())
	}
}

func TestNewFromReader(t *testing.T) {
	b, err := NewFromReader(strings.NewReader("hello\nworld"))
	if err != nil {
		t.Fatalf("NewFromReader failed: %v", err)
	}
	if b.LineCount() != 2 {
		t.Errorf("expected 2 lines, got %d", b.LineCount())
	}
}

func TestInsertRune(t *testing.T) {
	b := NewFromString("hllo")

	if err := b.InsertRune(Position{Line: 0, Col: 1}, 'e'); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if b.Line(0) != "hello" {
		t.Errorf("expected %q, got %q", "hello", b.Line(0))
	}
}

func TestInsertRuneAtLineEnd(t *testing.T) {
	b := NewFromString("ab")

	if err := b.InsertRune(Position{Line: 0, Col: 2}, 'c'); err != nil {
		t.Fatalf("insert failed: %v", err)
	}
	if b.Line(0) != "abc" {
		t.Errorf("expected %q, got %q", "abc", b.Line(0))
	}
}

func TestInsertRuneOutOfBounds(t *testing.T) {
	b := NewFromString("ab")

	err := b.InsertRune(Position{Line: 0, Col: 3}, 'x')
	if !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("expected ErrOutOfBounds, got %v", err)
	}
	err = b.InsertRune(Position{Line: 1, Col: 0}, 'x')
	if !errors.Is(err, ErrOutOfBounds) {
		t.Errorf("expected ErrOutOfBounds, got %v", err)
	}
}

func TestInsertNewline(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		pos   Position
		lines []string
	}{
		{"middle of line", "hello", Position{0, 2}, []string{"he", "llo"}},
		{"start of line", "hello", Position{0, 0}, []string{"", "hello"}},
		{"end of line", "hello", Position{0, 5}, []string{"hello", ""}},
		{"between lines", "ab\ncd", Position{0, 1}, []string{"a", "b", "cd"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewFromString(tt.text)
			if err := b.InsertNewline(tt.pos); err != nil {
				t.Fatalf("insert newline failed: %v", err)
			}
			if b.LineCount() != len(tt.lines) {
				t.Fatalf("expected %d lines, got %d", len(tt.lines), b.LineCount())
			}
			for i, want := range tt.lines {
				if got := b.Line(i); got != want {
					t.Errorf("line %d: expected %q, got %q", i, want, got)
				}
			}
		})
	}
}

func TestDeleteBefore(t *testing.T) {
	b := NewFromString("hello")

	pos, err := b.DeleteBefore(Position{Line: 0, Col: 3})
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if b.Line(0) != "helo" {
		t.Errorf("expected %q, got %q", "helo", b.Line(0))
	}
	if pos != (Position{Line: 0, Col: 2}) {
		t.Errorf("unexpected result position %v", pos)
	}
}

func TestDeleteBeforeMergesLines(t *testing.T) {
	b := NewFromString("ab\ncd")

	pos, err := b.DeleteBefore(Position{Line: 1, Col: 0})
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if b.LineCount() != 1 {
		t.Fatalf("expected 1 line, got %d", b.LineCount())
	}
	if b.Line(0) != "abcd" {
		t.Errorf("expected %q, got %q", "abcd", b.Line(0))
	}
	if pos != (Position{Line: 0, Col: 2}) {
		t.Errorf("unexpected result position %v", pos)
	}
}

func TestDeleteBeforeAtBufferStart(t *testing.T) {
	b := NewFromString("ab")

	pos, err := b.DeleteBefore(Position{})
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if b.Line(0) != "ab" {
		t.Errorf("buffer changed: %q", b.Line(0))
	}
	if !pos.IsZero() {
		t.Errorf("unexpected result position %v", pos)
	}
}

func TestDeleteAfter(t *testing.T) {
	b := NewFromString("hello")

	if err := b.DeleteAfter(Position{Line: 0, Col: 1}); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if b.Line(0) != "hllo" {
		t.Errorf("expected %q, got %q", "hllo", b.Line(0))
	}
}

func TestDeleteAfterMergesNextLine(t *testing.T) {
	b := NewFromString("ab\ncd")

	if err := b.DeleteAfter(Position{Line: 0, Col: 2}); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if b.LineCount() != 1 || b.Line(0) != "abcd" {
		t.Errorf("expected merged line, got %v lines %q", b.LineCount(), b.Line(0))
	}
}

func TestDeleteAfterAtBufferEnd(t *testing.T) {
	b := NewFromString("ab")

	if err := b.DeleteAfter(Position{Line: 0, Col: 2}); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if b.Line(0) != "ab" {
		t.Errorf("buffer changed: %q", b.Line(0))
	}
}

func TestNewlineBackspaceRoundTrip(t *testing.T) {
	b := NewFromString("hello")

	if err := b.InsertNewline(Position{Line: 0, Col: 3}); err != nil {
		t.Fatalf("insert newline failed: %v", err)
	}
	if _, err := b.DeleteBefore(Position{Line: 1, Col: 0}); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if b.LineCount() != 1 || b.Line(0) != "hello" {
		t.Errorf("round trip lost content: %d lines, %q", b.LineCount(), b.Line(0))
	}
}

func TestDeleteRange(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		start, end Position
		want       string
	}{
		{"within line", "hello", Position{0, 1}, Position{0, 4}, "ho"},
		{"across two lines", "hello\nworld", Position{0, 3}, Position{1, 2}, "helrld"},
		{"across three lines", "aa\nbb\ncc", Position{0, 1}, Position{2, 1}, "ac"},
		{"reversed order", "hello", Position{0, 4}, Position{0, 1}, "ho"},
		{"empty range", "hello", Position{0, 2}, Position{0, 2}, "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewFromString(tt.text)
			if err := b.DeleteRange(tt.start, tt.end); err != nil {
				t.Fatalf("delete range failed: %v", err)
			}
			if got := b.Contents(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestSlice(t *testing.T) {
	b := NewFromString("hello\nworld\n!")

	tests := []struct {
		name       string
		start, end Position
		want       string
	}{
		{"within line", Position{0, 1}, Position{0, 4}, "ell"},
		{"across lines", Position{0, 3}, Position{1, 2}, "lo\nwo"},
		{"full span", Position{0, 0}, Position{2, 1}, "hello\nworld\n!"},
		{"reversed", Position{1, 2}, Position{0, 3}, "lo\nwo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := b.Slice(tt.start, tt.end)
			if err != nil {
				t.Fatalf("slice failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestCharAt(t *testing.T) {
	b := NewFromString("héllo")

	c, err := b.CharAt(Position{Line: 0, Col: 1})
	if err != nil {
		t.Fatalf("CharAt failed: %v", err)
	}
	if c != "é" {
		t.Errorf("expected %q, got %q", "é", c)
	}

	c, err = b.CharAt(Position{Line: 0, Col: 5})
	if err != nil {
		t.Fatalf("CharAt at end-of-line failed: %v", err)
	}
	if c != "" {
		t.Errorf("expected empty cluster at end-of-line, got %q", c)
	}
}

func TestCharCount(t *testing.T) {
	b := NewFromString("hello there\nthis is a simple prompt\nthats multiline and decent enough\n")

	if got := b.CharCount(); got != 70 {
		t.Errorf("expected 70 chars, got %d", got)
	}
	if b.LineCount() != 4 {
		t.Errorf("expected 4 lines, got %d", b.LineCount())
	}
}

func TestClamp(t *testing.T) {
	b := NewFromString("ab\ncdef")

	tests := []struct {
		in, want Position
	}{
		{Position{0, 5}, Position{0, 2}},
		{Position{5, 0}, Position{1, 0}},
		{Position{-1, -1}, Position{0, 0}},
		{Position{1, 4}, Position{1, 4}},
	}
	for _, tt := range tests {
		if got := b.Clamp(tt.in); got != tt.want {
			t.Errorf("Clamp(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLineCountInvariant(t *testing.T) {
	b := New()

	// Arbitrary mix of inserts and backspaces never drops below one line.
	pos := Position{}
	for i := 0; i < 50; i++ {
		switch i % 4 {
		case 0, 1:
			if err := b.InsertRune(pos, 'x'); err != nil {
				t.Fatalf("insert failed: %v", err)
			}
			pos.Col++
		case 2:
			if err := b.InsertNewline(pos); err != nil {
				t.Fatalf("newline failed: %v", err)
			}
			pos = Position{Line: pos.Line + 1, Col: 0}
		case 3:
			var err error
			pos, err = b.DeleteBefore(pos)
			if err != nil {
				t.Fatalf("delete failed: %v", err)
			}
		}
		if b.LineCount() < 1 {
			t.Fatal("line count dropped below 1")
		}
	}
}

func TestGraphemeColumns(t *testing.T) {
	// The family emoji is a multi-rune grapheme cluster and must occupy a
	// single column.
	b := NewFromString("a👨‍👩‍👧b")

	if got := b.LineLen(0); got != 3 {
		t.Fatalf("expected 3 clusters, got %d", got)
	}
	if err := b.DeleteAfter(Position{Line: 0, Col: 1}); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if b.Line(0) != "ab" {
		t.Errorf("expected %q, got %q", "ab", b.Line(0))
	}
}
