// ABOUTME: Defines the Event type and Parse for terminal keyboard input
// ABOUTME: Handles printable runes, control bytes, Alt prefixes, and CSI/SS3 escape sequences

package key

import (
	"fmt"
	"unicode/utf8"
)

// Event is a parsed keyboard input event.
type Event struct {
	Type  Type
	Rune  rune // For Rune events
	Alt   bool
	Ctrl  bool
	Shift bool
}

// Type enumerates the kinds of key events.
type Type int

const (
	Rune      Type = iota // Printable character, or Ctrl+letter with Ctrl set
	Enter                 // Enter / Return
	Tab                   // Tab
	BackTab               // Shift+Tab
	Backspace             // Backspace / DEL (0x7F)
	Delete                // Delete key
	Up                    // Arrow up
	Down                  // Arrow down
	Left                  // Arrow left
	Right                 // Arrow right
	Home                  // Home
	End                   // End
	PageUp                // Page Up
	PageDown              // Page Down
	Escape                // Escape
	CtrlC                 // Ctrl+C
	CtrlD                 // Ctrl+D
	Unknown               // Unrecognized input
)

// Parse parses one key sequence of raw terminal input. Use Split first
// when a read may contain several keys.
func Parse(data string) Event {
	if len(data) == 0 {
		return Event{Type: Unknown}
	}

	if len(data) == 1 {
		return parseSingleByte(data[0])
	}

	if data[0] == 0x1b {
		return parseEscapeSequence(data)
	}

	r, _ := utf8.DecodeRuneInString(data)
	if r == utf8.RuneError {
		return Event{Type: Unknown}
	}
	return Event{Type: Rune, Rune: r}
}

// parseSingleByte handles an ASCII or control byte.
func parseSingleByte(b byte) Event {
	switch {
	case b == 0x0d || b == 0x0a:
		return Event{Type: Enter}
	case b == 0x09:
		return Event{Type: Tab}
	case b == 0x7f || b == 0x08:
		return Event{Type: Backspace}
	case b == 0x1b:
		return Event{Type: Escape}
	case b == 0x03:
		return Event{Type: CtrlC, Ctrl: true}
	case b == 0x04:
		return Event{Type: CtrlD, Ctrl: true}
	case b >= 0x01 && b <= 0x1a:
		return Event{Type: Rune, Rune: rune('a' + b - 1), Ctrl: true}
	case b >= 0x20 && b <= 0x7e:
		return Event{Type: Rune, Rune: rune(b)}
	}
	return Event{Type: Unknown}
}

func parseEscapeSequence(data string) Event {
	if e, ok := sequences[data]; ok {
		return e
	}

	// Alt+key: ESC followed by one complete non-escape key.
	if len(data) > 1 && data[1] != '[' && data[1] != 'O' && data[1] != 0x1b {
		inner := Parse(data[1:])
		if inner.Type != Unknown && utf8.RuneCountInString(data[1:]) == 1 {
			inner.Alt = true
			return inner
		}
	}
	if data == "\x1bO" || data == "\x1b[" {
		// A lone Alt+O or Alt+[ arrives as a bare prefix.
		return Event{Type: Rune, Rune: rune(data[1]), Alt: true}
	}
	return Event{Type: Unknown}
}

// Is reports whether e is a plain (unmodified) press of r.
func (e Event) Is(r rune) bool {
	return e.Type == Rune && e.Rune == r && !e.Alt && !e.Ctrl
}

var typeNames = map[Type]string{
	Enter:     "Enter",
	Tab:       "Tab",
	BackTab:   "BackTab",
	Backspace: "Backspace",
	Delete:    "Delete",
	Up:        "Up",
	Down:      "Down",
	Left:      "Left",
	Right:     "Right",
	Home:      "Home",
	End:       "End",
	PageUp:    "PageUp",
	PageDown:  "PageDown",
	Escape:    "Escape",
	CtrlC:     "Ctrl+C",
	CtrlD:     "Ctrl+D",
	Unknown:   "Unknown",
}

// String returns a human-readable name such as "Up", "q", or "Alt+Ctrl+x".
func (e Event) String() string {
	name, ok := typeNames[e.Type]
	if e.Type == Rune {
		name, ok = string(e.Rune), true
		if e.Rune == ' ' {
			name = "Space"
		}
		if e.Ctrl {
			name = fmt.Sprintf("Ctrl+%s", name)
		}
	}
	if !ok {
		return "Unknown"
	}
	if e.Alt {
		name = "Alt+" + name
	}
	return name
}
