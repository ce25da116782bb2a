// ABOUTME: Converts Bubble Tea key messages into key.Event values
// ABOUTME: Mirrors the raw byte parser so update funcs see the same events on every backend

package bubble

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mauromedda/termpix/pkg/key"
)

var keyTypes = map[tea.KeyType]key.Event{
	tea.KeyEnter:     {Type: key.Enter},
	tea.KeyCtrlJ:     {Type: key.Enter},
	tea.KeyTab:       {Type: key.Tab},
	tea.KeyShiftTab:  {Type: key.BackTab, Shift: true},
	tea.KeyBackspace: {Type: key.Backspace},
	tea.KeyCtrlH:     {Type: key.Backspace},
	tea.KeyDelete:    {Type: key.Delete},
	tea.KeyUp:        {Type: key.Up},
	tea.KeyDown:      {Type: key.Down},
	tea.KeyLeft:      {Type: key.Left},
	tea.KeyRight:     {Type: key.Right},
	tea.KeyHome:      {Type: key.Home},
	tea.KeyEnd:       {Type: key.End},
	tea.KeyPgUp:      {Type: key.PageUp},
	tea.KeyPgDown:    {Type: key.PageDown},
	tea.KeyEsc:       {Type: key.Escape},
	tea.KeyCtrlC:     {Type: key.CtrlC, Ctrl: true},
	tea.KeyCtrlD:     {Type: key.CtrlD, Ctrl: true},
	tea.KeySpace:     {Type: key.Rune, Rune: ' '},
}

// FromKeyMsg converts msg to a key.Event.
func FromKeyMsg(msg tea.KeyMsg) key.Event {
	ev, ok := keyTypes[msg.Type]
	switch {
	case ok:
	case msg.Type == tea.KeyRunes && len(msg.Runes) == 1:
		ev = key.Event{Type: key.Rune, Rune: msg.Runes[0]}
	case msg.Type >= tea.KeyCtrlA && msg.Type <= tea.KeyCtrlZ:
		ev = key.Event{Type: key.Rune, Rune: rune('a' + msg.Type - tea.KeyCtrlA), Ctrl: true}
	default:
		return key.Event{Type: key.Unknown}
	}
	ev.Alt = msg.Alt
	return ev
}
