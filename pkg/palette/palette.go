// ABOUTME: Named color palettes: foreground, background, accent, and gradient stops
// ABOUTME: Gradient interpolates between stops in CIE Lab space via go-colorful

package palette

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/mauromedda/termpix/pkg/color"
)

// Palette groups the colors a demo or view draws with.
type Palette struct {
	Name       string
	Foreground color.Color
	Background color.Color
	Accent     color.Color
	// Stops are the gradient colors from t = 0 to t = 1.
	Stops []color.Color
}

// Default returns the palette used when nothing else is configured.
func Default() Palette {
	return Palette{
		Name:       "default",
		Foreground: color.White,
		Background: color.Black,
		Accent:     color.Cyan,
		Stops:      []color.Color{color.Blue, color.Cyan, color.Green, color.Yellow, color.Red},
	}
}

// Gradient returns the color at position t in [0, 1] along the stops.
// Values outside the range are clamped. A palette without stops yields
// its foreground.
func (p Palette) Gradient(t float64) color.Color {
	switch len(p.Stops) {
	case 0:
		return p.Foreground
	case 1:
		return p.Stops[0]
	}
	t = max(0, min(t, 1))

	pos := t * float64(len(p.Stops)-1)
	i := min(int(pos), len(p.Stops)-2)
	a, aok := p.Stops[i].Value()
	b, bok := p.Stops[i+1].Value()
	if !aok || !bok {
		if pos-float64(i) < 0.5 {
			return p.Stops[i]
		}
		return p.Stops[i+1]
	}

	mixed := toColorful(a.RGB).BlendLab(toColorful(b.RGB), pos-float64(i)).Clamped()
	r, g, bl := mixed.RGB255()
	return color.New(r, g, bl)
}

// ParseHex parses "#rrggbb" or "#rgb" into an opaque color. The word
// "default" yields color.Default.
func ParseHex(s string) (color.Color, error) {
	if s == "default" {
		return color.Default, nil
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.Default, fmt.Errorf("parsing color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.New(r, g, b), nil
}

func toColorful(c color.RGB) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}
