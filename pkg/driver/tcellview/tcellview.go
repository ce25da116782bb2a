// ABOUTME: tcell backend painting a widget's rendered cells with truecolor styles
// ABOUTME: Runs a ticker-driven frame loop fed by PollEvent and converts tcell keys into key.Event

package tcellview

import (
	"context"
	"time"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"

	"github.com/mauromedda/termpix/internal/log"
	"github.com/mauromedda/termpix/pkg/color"
	"github.com/mauromedda/termpix/pkg/driver"
	"github.com/mauromedda/termpix/pkg/key"
	"github.com/mauromedda/termpix/pkg/pixel"
	"github.com/mauromedda/termpix/pkg/widget"
)

// View presents a CellGrid widget on a tcell screen.
type View[W widget.CellGrid] struct {
	screen tcell.Screen
	root   W
}

// New returns a view of root on screen. The screen must already be
// initialized.
func New[W widget.CellGrid](screen tcell.Screen, root W) *View[W] {
	return &View[W]{screen: screen, root: root}
}

// Widget returns the root widget.
func (v *View[W]) Widget() W { return v.root }

// Draw paints the root widget at the top-left corner and shows it.
// Cells beyond the screen are clipped.
func (v *View[W]) Draw() {
	v.screen.Clear()
	for y, row := range v.root.Cells() {
		x := 0
		for _, c := range row {
			mainc, comb := splitGlyph(c.Glyph)
			v.screen.SetContent(x, y, mainc, comb, Style(c))
			x += max(1, c.Width)
		}
	}
	v.screen.Show()
}

func splitGlyph(glyph string) (rune, []rune) {
	if glyph == "" {
		return ' ', nil
	}
	mainc, n := utf8.DecodeRuneInString(glyph)
	var comb []rune
	if n < len(glyph) {
		comb = []rune(glyph[n:])
	}
	return mainc, comb
}

// Style converts a cell's colors into a tcell style. A foreground set
// over a set background is blended onto it first.
func Style(c pixel.Cell) tcell.Style {
	fg := c.Foreground
	if !fg.IsDefault() && !c.Background.IsDefault() {
		fg = color.Blend(fg, c.Background)
	}
	return tcell.StyleDefault.Foreground(tcellColor(fg)).Background(tcellColor(c.Background))
}

func tcellColor(c color.Color) tcell.Color {
	v, ok := c.Value()
	if !ok {
		return tcell.ColorDefault
	}
	return tcell.NewRGBColor(int32(v.R), int32(v.G), int32(v.B))
}

// Run draws frames fps times per second, passing the latest key event
// to update, until update returns Stop, Ctrl-C arrives, or ctx is
// cancelled. update may be nil.
func (v *View[W]) Run(ctx context.Context, update driver.UpdateFunc[W], fps int) error {
	if fps <= 0 {
		fps = driver.DefaultFrameRate
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	events := make(chan tcell.Event, 64)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	var pending *key.Event
	v.Draw()
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				k := FromEventKey(ev)
				if k.Type == key.CtrlC {
					log.Debug("tcell view interrupted")
					return nil
				}
				pending = &k
			case *tcell.EventResize:
				v.screen.Sync()
			}

		case <-ticker.C:
			if update != nil && update(v.root, pending) == driver.Stop {
				return nil
			}
			pending = nil
			v.Draw()
		}
	}
}
