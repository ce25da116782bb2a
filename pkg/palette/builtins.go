// ABOUTME: Built-in palettes: default, pastel, fire, grayscale
// ABOUTME: Provides Builtin(name) lookup and sorted BuiltinNames() enumeration

package palette

import (
	"slices"

	"github.com/mauromedda/termpix/pkg/color"
)

var builtins = map[string]Palette{
	"default": Default(),
	"pastel": {
		Name:       "pastel",
		Foreground: color.New(250, 245, 235),
		Background: color.New(40, 42, 54),
		Accent:     color.New(255, 179, 186),
		Stops: []color.Color{
			color.New(186, 225, 255),
			color.New(186, 255, 201),
			color.New(255, 255, 186),
			color.New(255, 223, 186),
			color.New(255, 179, 186),
		},
	},
	"fire": {
		Name:       "fire",
		Foreground: color.New(255, 220, 120),
		Background: color.Black,
		Accent:     color.New(255, 90, 0),
		Stops: []color.Color{
			color.Black,
			color.New(128, 0, 0),
			color.Red,
			color.New(255, 140, 0),
			color.Yellow,
			color.White,
		},
	},
	"grayscale": {
		Name:       "grayscale",
		Foreground: color.LightGray,
		Background: color.Black,
		Accent:     color.White,
		Stops:      []color.Color{color.Black, color.DarkGray, color.Gray, color.LightGray, color.White},
	},
}

// Builtin returns the named built-in palette.
func Builtin(name string) (Palette, bool) {
	p, ok := builtins[name]
	if !ok {
		return Palette{}, false
	}
	p.Stops = slices.Clone(p.Stops)
	return p, true
}

// BuiltinNames returns the built-in palette names in sorted order.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
