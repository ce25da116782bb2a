// ABOUTME: Opaque 24-bit RGB color with distance, mean mixing, and truecolor escapes
// ABOUTME: RGB values are treated as fully opaque when promoted to ARGB

package color

import (
	"fmt"
	"math"
)

// RGB is an opaque truecolor value.
type RGB struct {
	R, G, B uint8
}

// ARGB promotes c to a fully opaque ARGB value.
func (c RGB) ARGB() ARGB {
	return ARGB{A: 255, RGB: c}
}

// Color wraps c as a set terminal color.
func (c RGB) Color() Color {
	return Of(c.ARGB())
}

// Hex formats c as #rrggbb.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// foreground returns the SGR sequence selecting c as foreground.
func (c RGB) foreground() string {
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", c.R, c.G, c.B)
}

// background returns the SGR sequence selecting c as background.
func (c RGB) background() string {
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm", c.R, c.G, c.B)
}

// DistanceRGB is the Euclidean distance between a and b with every
// channel normalised to [0, 1].
func DistanceRGB(a, b RGB) float64 {
	dr := (float64(a.R) - float64(b.R)) / 255
	dg := (float64(a.G) - float64(b.G)) / 255
	db := (float64(a.B) - float64(b.B)) / 255
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// BlendRGB composites top over bottom. Opaque colors always cover,
// so the top color is returned.
func BlendRGB(top, _ RGB) RGB {
	return top
}

// MixRGB returns the componentwise floor mean of colors, or black when
// colors is empty.
func MixRGB(colors ...RGB) RGB {
	if len(colors) == 0 {
		return RGB{}
	}
	var r, g, b int
	for _, c := range colors {
		r += int(c.R)
		g += int(c.G)
		b += int(c.B)
	}
	n := len(colors)
	return RGB{R: uint8(r / n), G: uint8(g / n), B: uint8(b / n)}
}

// ColorizeRGB wraps text in foreground and background escapes followed
// by a reset. Both colors are emitted unblended.
func ColorizeRGB(text string, fg, bg RGB) string {
	return fg.foreground() + bg.background() + text + reset
}
