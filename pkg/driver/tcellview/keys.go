// ABOUTME: Converts tcell key events into key.Event values
// ABOUTME: Named keys map through a table; Ctrl letters become Ctrl-flagged runes

package tcellview

import (
	"github.com/gdamore/tcell/v2"

	"github.com/mauromedda/termpix/pkg/key"
)

var keyTypes = map[tcell.Key]key.Event{
	tcell.KeyEnter:      {Type: key.Enter},
	tcell.KeyLF:         {Type: key.Enter},
	tcell.KeyTab:        {Type: key.Tab},
	tcell.KeyBacktab:    {Type: key.BackTab, Shift: true},
	tcell.KeyBackspace:  {Type: key.Backspace},
	tcell.KeyBackspace2: {Type: key.Backspace},
	tcell.KeyDelete:     {Type: key.Delete},
	tcell.KeyUp:         {Type: key.Up},
	tcell.KeyDown:       {Type: key.Down},
	tcell.KeyLeft:       {Type: key.Left},
	tcell.KeyRight:      {Type: key.Right},
	tcell.KeyHome:       {Type: key.Home},
	tcell.KeyEnd:        {Type: key.End},
	tcell.KeyPgUp:       {Type: key.PageUp},
	tcell.KeyPgDn:       {Type: key.PageDown},
	tcell.KeyEscape:     {Type: key.Escape},
	tcell.KeyCtrlC:      {Type: key.CtrlC, Ctrl: true},
	tcell.KeyCtrlD:      {Type: key.CtrlD, Ctrl: true},
}

// FromEventKey converts ev to a key.Event.
func FromEventKey(ev *tcell.EventKey) key.Event {
	k := ev.Key()
	e, ok := keyTypes[k]
	switch {
	case ok:
	case k == tcell.KeyRune:
		e = key.Event{Type: key.Rune, Rune: ev.Rune()}
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		e = key.Event{Type: key.Rune, Rune: rune('a' + k - tcell.KeyCtrlA), Ctrl: true}
	default:
		return key.Event{Type: key.Unknown}
	}
	if ev.Modifiers()&tcell.ModAlt != 0 {
		e.Alt = true
	}
	return e
}
