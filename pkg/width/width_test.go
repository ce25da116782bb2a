// ABOUTME: Tests for grapheme and visible width measurement
// ABOUTME: Covers ASCII, wide runes, emoji, combining marks, and escape stripping

package width

import (
	"slices"
	"testing"
)

func TestVisible(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "empty", input: "", want: 0},
		{name: "ascii", input: "pixels", want: 6},
		{name: "truecolor escape", input: "\x1b[38;2;255;0;0m█\x1b[0m", want: 1},
		{name: "cjk", input: "漢字", want: 4},
		{name: "octant glyphs", input: "\U0001CD30\U0001CD31", want: 2},
		{name: "combining accent", input: "e\u0301", want: 1},
		{name: "only escapes", input: "\x1b[H\x1b[0m", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Visible(tt.input); got != tt.want {
				t.Errorf("Visible(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestVisible_Cached(t *testing.T) {
	t.Parallel()

	s := "\x1b[31m漢\x1b[0m"
	first := Visible(s)
	if second := Visible(s); second != first {
		t.Errorf("cached width = %d, want %d", second, first)
	}
}

func TestMemo_Evicts(t *testing.T) {
	t.Parallel()

	m := newMemo(2)
	m.put("a", 1)
	m.put("b", 2)
	m.put("c", 3)

	if _, ok := m.get("a"); ok {
		t.Error("oldest entry survived eviction")
	}
	if v, ok := m.get("c"); !ok || v != 3 {
		t.Errorf("get(c) = (%d, %v), want (3, true)", v, ok)
	}
}

func TestClusters(t *testing.T) {
	t.Parallel()

	got := slices.Collect(Clusters("ae\u0301漢"))
	want := []string{"a", "e\u0301", "漢"}
	if !slices.Equal(got, want) {
		t.Errorf("Clusters() = %q, want %q", got, want)
	}
}

func TestSingleCluster(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  bool
	}{
		{input: "", want: false},
		{input: "a", want: true},
		{input: "ab", want: false},
		{input: "e\u0301", want: true},
		{input: "👍🏽", want: true},
	}

	for _, tt := range tests {
		if got := SingleCluster(tt.input); got != tt.want {
			t.Errorf("SingleCluster(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestVisible_IgnoresEscapes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "sgr", input: "\x1b[38;2;1;2;3m\x1b[48;2;4;5;6mX\x1b[0m", want: 1},
		{name: "osc bel", input: "\x1b]0;title\x07body", want: 4},
		{name: "wide colored", input: "\x1b[31m界\x1b[0mab", want: 4},
		{name: "cursor home", input: "\x1b[Hab", want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Visible(tt.input); got != tt.want {
				t.Errorf("Visible(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}
