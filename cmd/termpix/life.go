// ABOUTME: Game of Life on a double-buffered color canvas, cells tinted by age through the palette
// ABOUTME: Each frame steps the world, paints the back buffer, and swaps; r reseeds, q quits

package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strconv"

	"github.com/mauromedda/termpix/pkg/canvas"
	"github.com/mauromedda/termpix/pkg/color"
	"github.com/mauromedda/termpix/pkg/driver"
	"github.com/mauromedda/termpix/pkg/key"
	"github.com/mauromedda/termpix/pkg/palette"
	"github.com/mauromedda/termpix/pkg/pixel"
	"github.com/mauromedda/termpix/pkg/raster"
	"github.com/mauromedda/termpix/pkg/terminal"
	"github.com/mauromedda/termpix/pkg/widget"
)

const (
	defaultDensity = 0.3
	// maxAge is the generation count at which a cell reaches the last
	// palette stop.
	maxAge = 32
)

func runLife(ctx context.Context, e *env, args []string) error {
	sc, err := pick(e.cfg.Shape,
		lifeScene[pixel.Single]{}, lifeScene[pixel.Dual]{}, lifeScene[pixel.Quad]{},
		lifeScene[pixel.Sextant]{}, lifeScene[pixel.Octant]{}, lifeScene[pixel.Braille]{})
	if err != nil {
		return err
	}
	return sc.run(ctx, e, args)
}

type lifeScene[S pixel.Shape] struct{}

func (lifeScene[S]) run(ctx context.Context, e *env, args []string) error {
	density := defaultDensity
	if len(args) > 0 {
		d, err := strconv.ParseFloat(args[0], 64)
		if err != nil || d <= 0 || d >= 1 {
			return fmt.Errorf("life: density %q must be between 0 and 1", args[0])
		}
		density = d
	}

	width, height := canvasSize[S]()
	c, err := canvas.New[S](width, height, color.Default)
	if err != nil {
		return fmt.Errorf("life: %w", err)
	}
	rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	w := newWorld(width, height)
	w.seed(rng, density)

	update := func(db *widget.DoubleBuffer[*canvas.Canvas[S, color.Color]], ev *key.Event) driver.Action {
		if quitKey(ev) {
			return driver.Stop
		}
		if ev != nil && ev.Is('r') {
			w.seed(rng, density)
		}
		w.step()
		w.paint(db.Back(), palette.Current())
		db.SwapBuffers()
		return driver.Continue
	}
	return present(ctx, e, "life", widget.NewDoubleBuffer(c), update)
}

// canvasSize returns the largest pixel size for shape S that fits the
// terminal, leaving one row for a status line.
func canvasSize[S pixel.Shape]() (width, height int) {
	cols, rows := 80, 24
	if w, h, err := terminal.NewProcessTerminal().Size(); err == nil && w > 0 && h > 1 {
		cols, rows = w, h
	}
	sw, sh := pixel.Size[S]()
	return cols * sw, (rows - 1) * sh
}

// world is a toroidal Life grid. age is 0 for dead cells and the number
// of generations survived otherwise.
type world struct {
	width, height int
	age, next     []int
}

func newWorld(width, height int) *world {
	return &world{
		width:  width,
		height: height,
		age:    make([]int, width*height),
		next:   make([]int, width*height),
	}
}

func (w *world) seed(rng *rand.Rand, density float64) {
	for i := range w.age {
		w.age[i] = 0
		if rng.Float64() < density {
			w.age[i] = 1
		}
	}
}

func (w *world) alive(x, y int) bool {
	x = (x + w.width) % w.width
	y = (y + w.height) % w.height
	return w.age[y*w.width+x] > 0
}

func (w *world) neighbours(x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if (dx != 0 || dy != 0) && w.alive(x+dx, y+dy) {
				n++
			}
		}
	}
	return n
}

// step advances one generation.
func (w *world) step() {
	for y := range w.height {
		for x := range w.width {
			i := y*w.width + x
			n := w.neighbours(x, y)
			switch {
			case w.age[i] > 0 && (n == 2 || n == 3):
				w.next[i] = w.age[i] + 1
			case w.age[i] == 0 && n == 3:
				w.next[i] = 1
			default:
				w.next[i] = 0
			}
		}
	}
	w.age, w.next = w.next, w.age
}

// paint colors live cells along the palette gradient by age and dead
// cells with the palette background.
func (w *world) paint(c raster.Plotter[color.Color], p palette.Palette) {
	for y := range w.height {
		for x := range w.width {
			v := p.Background
			if a := w.age[y*w.width+x]; a > 0 {
				v = p.Gradient(float64(min(a, maxAge)) / maxAge)
			}
			_ = c.SetPixel(x, y, v)
		}
	}
}
