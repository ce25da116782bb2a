// ABOUTME: Terminal color that is either the terminal default or a translucent RGB value
// ABOUTME: Blend, Distance, Mix, and Colorize treat Default as "inherit from the terminal"

package color

import "strconv"

const reset = "\x1b[0m"

// Color is a terminal color. The zero value is Default, meaning the
// terminal's own foreground or background is used.
type Color struct {
	value ARGB
	set   bool
}

// Default inherits the terminal's color.
var Default = Color{}

// Named colors.
var (
	Black       = RGB{0, 0, 0}.Color()
	DarkGray    = RGB{63, 63, 63}.Color()
	Gray        = RGB{127, 127, 127}.Color()
	LightGray   = RGB{191, 191, 191}.Color()
	White       = RGB{255, 255, 255}.Color()
	Red         = RGB{255, 0, 0}.Color()
	Green       = RGB{0, 255, 0}.Color()
	Blue        = RGB{0, 0, 255}.Color()
	Yellow      = RGB{255, 255, 0}.Color()
	Cyan        = RGB{0, 255, 255}.Color()
	Magenta     = RGB{255, 0, 255}.Color()
	Transparent = Of(TransparentARGB)
)

// TransparentARGB is black with zero opacity.
var TransparentARGB = ARGB{}

// Of returns a set Color holding c.
func Of(c ARGB) Color {
	return Color{value: c, set: true}
}

// New returns an opaque Color from 8-bit channels.
func New(r, g, b uint8) Color {
	return RGB{R: r, G: g, B: b}.Color()
}

// IsDefault reports whether c inherits the terminal color.
func (c Color) IsDefault() bool {
	return !c.set
}

// Value returns the ARGB value and whether c is set.
func (c Color) Value() (ARGB, bool) {
	return c.value, c.set
}

// WithOpacity returns c with its opacity replaced. Default stays Default.
func (c Color) WithOpacity(a uint8) Color {
	if !c.set {
		return c
	}
	v := c.value
	v.A = a
	return Of(v)
}

// String describes c for debugging.
func (c Color) String() string {
	if !c.set {
		return "default"
	}
	if c.value.Opaque() {
		return c.value.Hex()
	}
	return c.value.Hex() + "@" + strconv.Itoa(int(c.value.A))
}

// Blend composites top over bottom. When both are set the alpha-over
// operator applies. Otherwise a set top with non-zero opacity wins and
// everything else yields bottom.
func Blend(top, bottom Color) Color {
	switch {
	case top.set && bottom.set:
		return Of(BlendARGB(top.value, bottom.value))
	case top.set && top.value.A > 0:
		return top
	default:
		return bottom
	}
}

// Distance measures how far apart a and b are. Default is not
// comparable and has distance 0 to everything.
func Distance(a, b Color) float64 {
	if !a.set || !b.set {
		return 0
	}
	return DistanceARGB(a.value, b.value)
}

// Mix averages the set colors, ignoring Default entries. It returns
// Default when no color is set.
func Mix(colors ...Color) Color {
	values := make([]ARGB, 0, len(colors))
	for _, c := range colors {
		if c.set {
			values = append(values, c.value)
		}
	}
	if len(values) == 0 {
		return Default
	}
	return Of(MixARGB(values...))
}

// Colorize wraps text in truecolor escapes. A Default side emits no
// escape, and text without any set color is returned unchanged. A set
// foreground is blended over a set background before emission.
func Colorize(text string, fg, bg Color) string {
	if !fg.set && !bg.set {
		return text
	}

	out := make([]byte, 0, len(text)+48)
	if fg.set {
		shown := fg.value
		if bg.set {
			shown = BlendARGB(fg.value, bg.value)
		}
		out = append(out, shown.foreground()...)
	}
	if bg.set {
		out = append(out, bg.value.background()...)
	}
	out = append(out, text...)
	out = append(out, reset...)
	return string(out)
}
