// ABOUTME: Tests for the tcell backend against tcell's simulation screen
// ABOUTME: Checks painted glyphs and RGB styles, wide text cells, key conversion, and the run loop

package tcellview

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/mauromedda/termpix/pkg/canvas"
	"github.com/mauromedda/termpix/pkg/color"
	"github.com/mauromedda/termpix/pkg/driver"
	"github.com/mauromedda/termpix/pkg/key"
	"github.com/mauromedda/termpix/pkg/pixel"
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init() error: %v", err)
	}
	screen.SetSize(10, 4)
	t.Cleanup(screen.Fini)
	return screen
}

func TestDraw_ColorCanvas(t *testing.T) {
	t.Parallel()

	c, err := canvas.New[pixel.Dual](2, 2, color.Default)
	if err != nil {
		t.Fatal(err)
	}
	if err := c.SetPixels([]color.Color{color.Red, color.Blue, color.Green, color.Green}); err != nil {
		t.Fatal(err)
	}

	screen := newScreen(t)
	New(screen, c).Draw()

	mainc, _, style, _ := screen.GetContent(0, 0)
	if mainc != '▀' {
		t.Errorf("glyph = %q, want ▀", mainc)
	}
	fg, bg, _ := style.Decompose()
	if fg != tcell.NewRGBColor(255, 0, 0) || bg != tcell.NewRGBColor(0, 255, 0) {
		t.Errorf("style = (%v, %v), want red over green", fg, bg)
	}

	mainc, _, style, _ = screen.GetContent(1, 0)
	if mainc != '▀' {
		t.Errorf("glyph = %q, want ▀", mainc)
	}
	if fg, _, _ := style.Decompose(); fg != tcell.NewRGBColor(0, 0, 255) {
		t.Errorf("fg = %v, want blue", fg)
	}
}

func TestDraw_MonochromeDefaults(t *testing.T) {
	t.Parallel()

	c, err := canvas.New[pixel.Quad](2, 2, false)
	if err != nil {
		t.Fatal(err)
	}
	if err := c.SetPixel(1, 1, true); err != nil {
		t.Fatal(err)
	}

	screen := newScreen(t)
	New(screen, c).Draw()

	mainc, _, style, _ := screen.GetContent(0, 0)
	if mainc != '▗' {
		t.Errorf("glyph = %q, want ▗", mainc)
	}
	fg, bg, _ := style.Decompose()
	if fg != tcell.ColorDefault || bg != tcell.ColorDefault {
		t.Errorf("style = (%v, %v), want defaults", fg, bg)
	}
}

func TestDraw_WideText(t *testing.T) {
	t.Parallel()

	txt, err := canvas.TextFromString(4, 1, "界ab", color.White, color.Default)
	if err != nil {
		t.Fatal(err)
	}

	screen := newScreen(t)
	New(screen, txt).Draw()

	want := map[int]rune{0: '界', 2: 'a', 3: 'b'}
	for x, r := range want {
		if got, _, _, _ := screen.GetContent(x, 0); got != r {
			t.Errorf("GetContent(%d, 0) = %q, want %q", x, got, r)
		}
	}
}

func TestStyle_BlendsTranslucentForeground(t *testing.T) {
	t.Parallel()

	cell := pixel.Cell{
		Glyph:      "▀",
		Width:      1,
		Foreground: color.Red.WithOpacity(0),
		Background: color.Blue,
	}
	fg, bg, _ := Style(cell).Decompose()
	if fg != tcell.NewRGBColor(0, 0, 255) || bg != tcell.NewRGBColor(0, 0, 255) {
		t.Errorf("style = (%v, %v), want a transparent fg to show the bg", fg, bg)
	}
}

func TestFromEventKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ev   *tcell.EventKey
		want key.Event
	}{
		{name: "rune", ev: tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), want: key.Event{Type: key.Rune, Rune: 'q'}},
		{name: "alt rune", ev: tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModAlt), want: key.Event{Type: key.Rune, Rune: 'x', Alt: true}},
		{name: "enter", ev: tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), want: key.Event{Type: key.Enter}},
		{name: "page down", ev: tcell.NewEventKey(tcell.KeyPgDn, 0, tcell.ModNone), want: key.Event{Type: key.PageDown}},
		{name: "backspace2", ev: tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), want: key.Event{Type: key.Backspace}},
		{name: "ctrl+c", ev: tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), want: key.Event{Type: key.CtrlC, Ctrl: true}},
		{name: "ctrl+s", ev: tcell.NewEventKey(tcell.KeyCtrlS, 0, tcell.ModCtrl), want: key.Event{Type: key.Rune, Rune: 's', Ctrl: true}},
		{name: "f5", ev: tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), want: key.Event{Type: key.Unknown}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := FromEventKey(tt.ev); got != tt.want {
				t.Errorf("FromEventKey() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRun_StopsOnKey(t *testing.T) {
	t.Parallel()

	c, err := canvas.New[pixel.Single](4, 2, false)
	if err != nil {
		t.Fatal(err)
	}
	screen := newScreen(t)
	view := New(screen, c)

	calls := 0
	update := func(root *canvas.Canvas[pixel.Single, bool], ev *key.Event) driver.Action {
		calls++
		if ev != nil && ev.Is('q') {
			return driver.Stop
		}
		_ = root.SetPixel(0, 0, true)
		return driver.Continue
	}

	if err := screen.PostEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := view.Run(ctx, update, 200); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if ctx.Err() != nil {
		t.Fatal("Run() did not stop on q")
	}
	if calls == 0 {
		t.Error("update never ran")
	}
}

func TestRun_CtrlC(t *testing.T) {
	t.Parallel()

	c, err := canvas.New[pixel.Single](4, 2, false)
	if err != nil {
		t.Fatal(err)
	}
	screen := newScreen(t)
	if err := screen.PostEvent(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := New(screen, c).Run(ctx, nil, 10); err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if ctx.Err() != nil {
		t.Fatal("Run() did not stop on Ctrl-C")
	}
}
