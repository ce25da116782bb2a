// ABOUTME: Table-driven tests for key parsing covering ASCII, control bytes, and escape sequences
// ABOUTME: Also checks Split on buffers holding several keys and the String names

package key

import (
	"slices"
	"testing"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
		want Event
	}{
		// Printable
		{name: "lowercase a", data: "a", want: Event{Type: Rune, Rune: 'a'}},
		{name: "uppercase A", data: "A", want: Event{Type: Rune, Rune: 'A'}},
		{name: "space", data: " ", want: Event{Type: Rune, Rune: ' '}},
		{name: "multibyte", data: "é", want: Event{Type: Rune, Rune: 'é'}},

		// Control bytes
		{name: "ctrl+c", data: "\x03", want: Event{Type: CtrlC, Ctrl: true}},
		{name: "ctrl+d", data: "\x04", want: Event{Type: CtrlD, Ctrl: true}},
		{name: "ctrl+l", data: "\x0c", want: Event{Type: Rune, Rune: 'l', Ctrl: true}},
		{name: "enter", data: "\r", want: Event{Type: Enter}},
		{name: "line feed", data: "\n", want: Event{Type: Enter}},
		{name: "tab", data: "\t", want: Event{Type: Tab}},
		{name: "backspace", data: "\x7f", want: Event{Type: Backspace}},
		{name: "escape", data: "\x1b", want: Event{Type: Escape}},

		// CSI
		{name: "arrow up", data: "\x1b[A", want: Event{Type: Up}},
		{name: "arrow left", data: "\x1b[D", want: Event{Type: Left}},
		{name: "home", data: "\x1b[H", want: Event{Type: Home}},
		{name: "home vt", data: "\x1b[1~", want: Event{Type: Home}},
		{name: "page down", data: "\x1b[6~", want: Event{Type: PageDown}},
		{name: "delete", data: "\x1b[3~", want: Event{Type: Delete}},
		{name: "backtab", data: "\x1b[Z", want: Event{Type: BackTab, Shift: true}},

		// SS3
		{name: "SS3 up", data: "\x1bOA", want: Event{Type: Up}},
		{name: "SS3 end", data: "\x1bOF", want: Event{Type: End}},

		// Alt
		{name: "alt+x", data: "\x1bx", want: Event{Type: Rune, Rune: 'x', Alt: true}},
		{name: "alt+enter", data: "\x1b\r", want: Event{Type: Enter, Alt: true}},
		{name: "alt+[", data: "\x1b[", want: Event{Type: Rune, Rune: '[', Alt: true}},

		// Unknown
		{name: "empty", data: "", want: Event{Type: Unknown}},
		{name: "unknown csi", data: "\x1b[99q", want: Event{Type: Unknown}},
		{name: "invalid utf8", data: "\xff\xfe", want: Event{Type: Unknown}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Parse(tt.data); got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.data, got, tt.want)
			}
		})
	}
}

func TestSplit(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		buf  string
		want []string
	}{
		{name: "runes", buf: "abé", want: []string{"a", "b", "é"}},
		{name: "arrows", buf: "\x1b[A\x1b[B", want: []string{"\x1b[A", "\x1b[B"}},
		{name: "mixed", buf: "q\x1b[5~\x03", want: []string{"q", "\x1b[5~", "\x03"}},
		{name: "ss3 and alt", buf: "\x1bOA\x1bx", want: []string{"\x1bOA", "\x1bx"}},
		{name: "double escape", buf: "\x1b\x1b", want: []string{"\x1b", "\x1b"}},
		{name: "truncated csi", buf: "a\x1b[1", want: []string{"a", "\x1b[1"}},
		{name: "empty", buf: "", want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Split(tt.buf); !slices.Equal(got, tt.want) {
				t.Errorf("Split(%q) = %q, want %q", tt.buf, got, tt.want)
			}
		})
	}
}

func TestEvent_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		event Event
		want  string
	}{
		{event: Event{Type: Up}, want: "Up"},
		{event: Event{Type: Rune, Rune: 'q'}, want: "q"},
		{event: Event{Type: Rune, Rune: ' '}, want: "Space"},
		{event: Event{Type: Rune, Rune: 'x', Ctrl: true, Alt: true}, want: "Alt+Ctrl+x"},
		{event: Event{Type: CtrlC, Ctrl: true}, want: "Ctrl+C"},
		{event: Event{Type: Type(99)}, want: "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.event.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestEvent_Is(t *testing.T) {
	t.Parallel()

	if !Parse("q").Is('q') {
		t.Error("Parse(q).Is('q') = false")
	}
	if Parse("\x1bq").Is('q') {
		t.Error("Alt+q matched a plain q")
	}
}
