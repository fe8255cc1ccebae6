// Package buffer provides the line-oriented text storage for the multiline
// input widget.
//
// Content is held as an ordered sequence of lines rather than a single flat
// buffer because the dominant operations are per-line: cursor movement, line
// rendering, and line-bounded editing. Splits and merges are O(line length),
// which is acceptable at interactive scale.
//
// Columns count grapheme clusters, so multi-byte and combining sequences
// occupy one column each.
package buffer
