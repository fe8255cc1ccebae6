package clipboard

import (
	"errors"
	"testing"
)

func TestMemoryEmpty(t *testing.T) {
	m := NewMemory()
	if _, err := m.Get(); !errors.Is(err, ErrUnavailable) {
		t.Errorf("Get() on empty clipboard: err = %v, want ErrUnavailable", err)
	}
}

func TestMemoryRoundTrip(t *testing.T) {
	m := NewMemory()
	if err := m.Set("hello\nworld"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	got, err := m.Get()
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != "hello\nworld" {
		t.Errorf("Get() = %q, want %q", got, "hello\nworld")
	}
}

func TestMemoryOverwrite(t *testing.T) {
	m := NewMemory()
	_ = m.Set("first")
	_ = m.Set("")
	got, err := m.Get()
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != "" {
		t.Errorf("Get() = %q, want empty string", got)
	}
}
