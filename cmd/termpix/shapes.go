// ABOUTME: Rasterizer showcase drawn in UV space: axes, circle, rotating star, and a sine sweep
// ABOUTME: An overlay swaps in a help card on h; space pauses, q quits

package main

import (
	"context"
	"fmt"
	"math"

	"github.com/mauromedda/termpix/pkg/canvas"
	"github.com/mauromedda/termpix/pkg/color"
	"github.com/mauromedda/termpix/pkg/driver"
	"github.com/mauromedda/termpix/pkg/key"
	"github.com/mauromedda/termpix/pkg/palette"
	"github.com/mauromedda/termpix/pkg/pixel"
	"github.com/mauromedda/termpix/pkg/raster"
	"github.com/mauromedda/termpix/pkg/widget"
)

const spin = 0.05

var shapesHelp = []string{
	"termpix shapes",
	"",
	"h      toggle this card",
	"space  pause",
	"q      quit",
}

func runShapes(ctx context.Context, e *env, args []string) error {
	sc, err := pick(e.cfg.Shape,
		shapesScene[pixel.Single]{}, shapesScene[pixel.Dual]{}, shapesScene[pixel.Quad]{},
		shapesScene[pixel.Sextant]{}, shapesScene[pixel.Octant]{}, shapesScene[pixel.Braille]{})
	if err != nil {
		return err
	}
	return sc.run(ctx, e, args)
}

type shapesScene[S pixel.Shape] struct{}

func (shapesScene[S]) run(ctx context.Context, e *env, _ []string) error {
	width, height := canvasSize[S]()
	uv, err := newPlot[S](width, height)
	if err != nil {
		return fmt.Errorf("shapes: %w", err)
	}
	card, err := helpCard(uv.WidthCharacters(), uv.HeightCharacters(), palette.Current())
	if err != nil {
		return fmt.Errorf("shapes: %w", err)
	}
	root, err := widget.NewOverlay(uv, card)
	if err != nil {
		return fmt.Errorf("shapes: %w", err)
	}

	angle, paused := 0.0, false
	drawScene(uv, angle, palette.Current())
	update := func(o *widget.Overlay[*widget.UV[color.Color], *canvas.Text], ev *key.Event) driver.Action {
		switch {
		case quitKey(ev):
			return driver.Stop
		case ev != nil && ev.Is('h'):
			o.SetChild1OnTop(!o.Child1OnTop())
		case ev != nil && ev.Is(' '):
			paused = !paused
		}
		if !paused {
			angle += spin
		}
		plot, _ := o.Children()
		drawScene(plot, angle, palette.Current())
		return driver.Continue
	}
	return present(ctx, e, "shapes", root, update)
}

// newPlot returns a UV surface spanning y in [-1, 1] upwards and x over
// the same physical scale, cells being twice as tall as wide.
func newPlot[S pixel.Shape](width, height int) (*widget.UV[color.Color], error) {
	c, err := canvas.New[S](width, height, color.Default)
	if err != nil {
		return nil, err
	}
	uv := widget.NewUV[color.Color](c)
	xr := aspect(c.WidthCharacters(), c.HeightCharacters())
	uv.SetXBounds(-xr, xr)
	uv.SetYBounds(1, -1)
	return uv, nil
}

// aspect is the half-width of a plot whose half-height is 1.
func aspect(cols, rows int) float64 {
	return float64(cols) / float64(2*rows)
}

func star(points int, outer, inner float64) raster.Polyline {
	pl := raster.Polyline{Closed: true}
	for i := range 2 * points {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		theta := math.Pi/2 + float64(i)*math.Pi/float64(points)
		pl.Points = append(pl.Points, raster.Point{X: r * math.Cos(theta), Y: r * math.Sin(theta)})
	}
	return pl
}

func drawScene(uv *widget.UV[color.Color], angle float64, p palette.Palette) {
	if c, ok := uv.Child().(interface{ Fill(color.Color) }); ok {
		c.Fill(p.Background)
	}
	xr, _ := uv.XBounds()
	xr = math.Abs(xr)

	uv.Draw(raster.Rectangle{X1: -xr * 0.95, Y1: -0.95, X2: xr * 0.95, Y2: 0.95}, p.Accent)
	uv.Draw(raster.Line{X1: -xr, X2: xr}, p.Foreground)
	uv.Draw(raster.Line{Y1: -1, Y2: 1}, p.Foreground)
	uv.Draw(raster.Circle(0, 0, 0.8), p.Accent)
	uv.Draw(star(5, 0.6, 0.25).Transform(raster.Rotate(angle, raster.Point{})), p.Gradient(0.8))

	for u := range uv.XValues() {
		v := 0.5 * math.Sin(3*u+angle)
		_ = uv.SetPixel(u, v, p.Gradient((u+xr)/(2*xr)))
	}
}

// helpCard returns a text surface of the given size listing the keys.
func helpCard(cols, rows int, p palette.Palette) (*canvas.Text, error) {
	card, err := canvas.NewText(cols, rows)
	if err != nil {
		return nil, err
	}
	blank, err := pixel.NewCharacter(" ", p.Foreground, p.Background)
	if err != nil {
		return nil, err
	}
	if err := card.Fill(blank); err != nil {
		return nil, err
	}
	for i, line := range shapesHelp {
		if i >= rows {
			break
		}
		if _, err := card.WriteString(1, i, line, p.Foreground, p.Background); err != nil {
			return nil, err
		}
	}
	return card, nil
}
