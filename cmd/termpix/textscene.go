// ABOUTME: Text canvas tiled beside a pixel canvas: a caption panel and a scrolling palette gradient
// ABOUTME: Exercises wide characters in the text surface and horizontal tiling of mixed widgets

package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/mauromedda/termpix/pkg/canvas"
	"github.com/mauromedda/termpix/pkg/color"
	"github.com/mauromedda/termpix/pkg/driver"
	"github.com/mauromedda/termpix/pkg/key"
	"github.com/mauromedda/termpix/pkg/palette"
	"github.com/mauromedda/termpix/pkg/pixel"
	"github.com/mauromedda/termpix/pkg/width"
	"github.com/mauromedda/termpix/pkg/widget"
)

const (
	panelCols    = 28
	defaultGreet = "Hello, 世界! termpix"
)

func runText(ctx context.Context, e *env, args []string) error {
	sc, err := pick(e.cfg.Shape,
		textScene[pixel.Single]{}, textScene[pixel.Dual]{}, textScene[pixel.Quad]{},
		textScene[pixel.Sextant]{}, textScene[pixel.Octant]{}, textScene[pixel.Braille]{})
	if err != nil {
		return err
	}
	return sc.run(ctx, e, args)
}

type textScene[S pixel.Shape] struct{}

func (textScene[S]) run(ctx context.Context, e *env, args []string) error {
	message := defaultGreet
	if len(args) > 0 {
		message = strings.Join(args, " ")
	}

	width, height := canvasSize[S]()
	sw, sh := pixel.Size[S]()
	rows := height / sh
	cols := max(width/sw-panelCols, 1)

	p := palette.Current()
	panel, err := textPanel(panelCols, rows, message, e.cfg.Shape, p)
	if err != nil {
		return fmt.Errorf("text: %w", err)
	}
	strip, err := canvas.New[S](cols*sw, rows*sh, color.Default)
	if err != nil {
		return fmt.Errorf("text: %w", err)
	}
	root, err := widget.NewHorizontal(panel, strip)
	if err != nil {
		return fmt.Errorf("text: %w", err)
	}

	paintGradient(strip, 0, p)
	phase := 0.0
	update := func(h *widget.Horizontal[*canvas.Text, *canvas.Canvas[S, color.Color]], ev *key.Event) driver.Action {
		if quitKey(ev) {
			return driver.Stop
		}
		_, c := h.Children()
		paintGradient(c, phase, palette.Current())
		phase += 0.01
		return driver.Continue
	}
	return present(ctx, e, "text", root, update)
}

// textPanel lays out message word-wrapped to cols, followed by the shape
// and palette names.
func textPanel(cols, rows int, message, shape string, p palette.Palette) (*canvas.Text, error) {
	panel, err := canvas.NewText(cols, rows)
	if err != nil {
		return nil, err
	}
	lines := append(wrap(message, cols), "", "shape   "+shape, "palette "+p.Name)
	for y, line := range lines {
		if y >= rows {
			break
		}
		if _, err := panel.WriteString(0, y, line, p.Foreground, color.Default); err != nil {
			return nil, err
		}
	}
	return panel, nil
}

// wrap breaks s into lines at most cols columns wide, splitting on spaces.
func wrap(s string, cols int) []string {
	var lines []string
	var line strings.Builder
	for _, word := range strings.Fields(s) {
		switch {
		case line.Len() == 0:
		case width.Visible(line.String())+1+width.Visible(word) > cols:
			lines = append(lines, line.String())
			line.Reset()
		default:
			line.WriteByte(' ')
		}
		line.WriteString(word)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return lines
}

// paintGradient fills c with diagonal bands of the palette gradient.
func paintGradient[S pixel.Shape](c *canvas.Canvas[S, color.Color], phase float64, p palette.Palette) {
	w, h := c.Width(), c.Height()
	for y := range h {
		for x := range w {
			t := float64(x)/float64(w) + float64(y)/float64(2*h) + phase
			_ = c.SetPixel(x, y, p.Gradient(t-float64(int(t))))
		}
	}
}
