// Package term abstracts the terminal behind a Backend interface: key
// input decoding, styled output, and mode switching. The default ANSI
// backend renders inline at the current scroll position using relative
// cursor movement, so the widget coexists with whatever the shell already
// printed. A tcell adapter is provided for embedding the widget inside a
// fullscreen tcell application.
//
// Drawing is expressed as frame-relative Ops rather than absolute screen
// writes. A renderer emits an op batch per frame and the backend applies
// it atomically, which keeps partial frames off the screen even on slow
// terminals.
package term
