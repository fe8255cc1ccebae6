// Package clipboard provides the copy and paste capability used by the
// editor. The system clipboard is optional: an editor built without one
// simply treats copy, cut, and paste as no-ops.
package clipboard

import (
	"errors"

	"github.com/atotto/clipboard"
)

// ErrUnavailable indicates no system clipboard utility could be reached.
var ErrUnavailable = errors.New("clipboard unavailable")

// Clipboard stores and retrieves a single text payload.
type Clipboard interface {
	Get() (string, error)
	Set(text string) error
}

// System is the OS clipboard.
type System struct{}

// NewSystem returns the OS clipboard, or an error if the platform has no
// usable clipboard utility.
func NewSystem() (*System, error) {
	if clipboard.Unsupported {
		return nil, ErrUnavailable
	}
	return &System{}, nil
}

// Get reads the OS clipboard.
func (s *System) Get() (string, error) {
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", ErrUnavailable
	}
	return text, nil
}

// Set writes the OS clipboard.
func (s *System) Set(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return ErrUnavailable
	}
	return nil
}

// Memory is an in-process clipboard. It backs tests and also serves as a
// private kill buffer when the host does not want OS clipboard access.
type Memory struct {
	text string
	set  bool
}

// NewMemory returns an empty in-process clipboard.
func NewMemory() *Memory {
	return &Memory{}
}

// Get returns the stored text, or ErrUnavailable before any Set.
func (m *Memory) Get() (string, error) {
	if !m.set {
		return "", ErrUnavailable
	}
	return m.text, nil
}

// Set stores text.
func (m *Memory) Set(text string) error {
	m.text = text
	m.set = true
	return nil
}
