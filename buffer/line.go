package buffer

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Clusters splits s into grapheme clusters. Column indices throughout the
// package count clusters, so a combining sequence or emoji occupies a single
// column slot regardless of its byte length.
func Clusters(s string) []string {
	if s == "" {
		return nil
	}
	out := make([]string, 0, len(s))
	state := -1
	for len(s) > 0 {
		var c string
		c, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		out = append(out, c)
	}
	return out
}

// ClusterCount returns the number of grapheme clusters in s.
func ClusterCount(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// ClusterWidth returns the terminal cell width of a single grapheme cluster.
func ClusterWidth(c string) int {
	w := runewidth.StringWidth(c)
	if w < 1 {
		w = 1
	}
	return w
}

// DisplayWidth returns the terminal cell width of the first n clusters of s.
// Used to position the cursor on lines containing wide characters.
func DisplayWidth(s string, n int) int {
	w := 0
	for i, c := range Clusters(s) {
		if i >= n {
			break
		}
		w += ClusterWidth(c)
	}
	return w
}

// spliceLine rebuilds a line from its clusters with the splice applied:
// clusters [from, to) are replaced by insert.
func spliceLine(line string, from, to int, insert string) string {
	cs := Clusters(line)
	var b strings.Builder
	for _, c := range cs[:from] {
		b.WriteString(c)
	}
	b.WriteString(insert)
	for _, c := range cs[to:] {
		b.WriteString(c)
	}
	return b.String()
}
