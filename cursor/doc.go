// Package cursor tracks the edit position and optional selection over a
// buffer. Movement operations clamp per move: vertical movement into a
// shorter line loses the original column rather than remembering it.
package cursor
