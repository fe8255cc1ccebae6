package buffer

import "testing"

func TestClusters(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"abc", 3},
		{"héllo", 5},
		{"a👨‍👩‍👧b", 3},
	}
	for _, tt := range tests {
		if got := len(Clusters(tt.in)); got != tt.want {
			t.Errorf("Clusters(%q) count = %d, want %d", tt.in, got, tt.want)
		}
		if got := ClusterCount(tt.in); got != tt.want {
			t.Errorf("ClusterCount(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestDisplayWidth(t *testing.T) {
	// CJK characters are two cells wide.
	if got := DisplayWidth("日本ab", 2); got != 4 {
		t.Errorf("DisplayWidth = %d, want 4", got)
	}
	if got := DisplayWidth("日本ab", 3); got != 5 {
		t.Errorf("DisplayWidth = %d, want 5", got)
	}
	if got := DisplayWidth("abc", 10); got != 3 {
		t.Errorf("DisplayWidth past end = %d, want 3", got)
	}
}

func TestSpliceLine(t *testing.T) {
	tests := []struct {
		line     string
		from, to int
		insert   string
		want     string
	}{
		{"hello", 1, 4, "", "ho"},
		{"hello", 2, 2, "y", "heyllo"},
		{"", 0, 0, "x", "x"},
		{"héllo", 1, 2, "e", "hello"},
	}
	for _, tt := range tests {
		if got := spliceLine(tt.line, tt.from, tt.to, tt.insert); got != tt.want {
			t.Errorf("spliceLine(%q, %d, %d, %q) = %q, want %q",
				tt.line, tt.from, tt.to, tt.insert, got, tt.want)
		}
	}
}
