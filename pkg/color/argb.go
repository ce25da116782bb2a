// ABOUTME: Translucent RGB color with alpha-over blending and opacity-aware distance
// ABOUTME: Opacity 0 is fully transparent, 255 is fully opaque

package color

import "math"

// ARGB is an RGB color with an opacity channel.
type ARGB struct {
	A uint8
	RGB
}

// Color wraps c as a set terminal color.
func (c ARGB) Color() Color {
	return Of(c)
}

// Opaque reports whether c fully covers whatever lies beneath it.
func (c ARGB) Opaque() bool {
	return c.A == 255
}

// BlendARGB composites top over bottom with the alpha-over operator.
// Two fully transparent inputs yield Transparent.
func BlendARGB(top, bottom ARGB) ARGB {
	at := float64(top.A) / 255
	ab := float64(bottom.A) / 255
	res := ab*(1-at) + at
	if res == 0 {
		return TransparentARGB
	}

	channel := func(t, b uint8) uint8 {
		v := (float64(t)*at + float64(b)*(1-at)*ab) / res
		return clamp(v)
	}
	return ARGB{
		A: clamp(res * 255),
		RGB: RGB{
			R: channel(top.R, bottom.R),
			G: channel(top.G, bottom.G),
			B: channel(top.B, bottom.B),
		},
	}
}

// DistanceARGB extends DistanceRGB with the normalised opacity difference.
func DistanceARGB(a, b ARGB) float64 {
	da := (float64(a.A) - float64(b.A)) / 255
	return math.Hypot(DistanceRGB(a.RGB, b.RGB), da)
}

// MixARGB averages opacity and color channels independently.
func MixARGB(colors ...ARGB) ARGB {
	if len(colors) == 0 {
		return ARGB{}
	}
	rgbs := make([]RGB, len(colors))
	var a int
	for i, c := range colors {
		a += int(c.A)
		rgbs[i] = c.RGB
	}
	return ARGB{A: uint8(a / len(colors)), RGB: MixRGB(rgbs...)}
}

// ColorizeARGB emits both colors unblended, ignoring opacity.
func ColorizeARGB(text string, fg, bg ARGB) string {
	return ColorizeRGB(text, fg.RGB, bg.RGB)
}

func clamp(v float64) uint8 {
	switch {
	case math.IsNaN(v) || v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(math.Round(v))
}
