// Package editor orchestrates one in-terminal input session. It wires a
// text buffer, cursor, keybinding scheme, compositor, and terminal
// backend into a single synchronous loop: block for a key, resolve it to
// an action, apply the action, render the diff. Enter on an empty last
// line submits; everything else edits.
//
// The model is strictly single-threaded. All components are exclusively
// owned by the editor during Read, which suspends only at the blocking
// key read.
package editor
