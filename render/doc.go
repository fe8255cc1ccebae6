// Package render composes editor state into frames and reconciles those
// frames against the terminal. Composition and reconciliation are split:
// the Compositor is a pure function from state to a styled Frame, while
// the Renderer diffs consecutive frames and emits the minimal op batch.
// Header, footer, and margin are pluggable decoration slots; the classic
// preset reproduces the boxed title, numbered gutter, and status line.
package render
