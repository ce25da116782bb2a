// ABOUTME: Cell is one rendered terminal position: a glyph plus foreground and background
// ABOUTME: Backends that paint cells directly consume this instead of escape strings

package pixel

import "github.com/mauromedda/termpix/pkg/color"

// Cell is a rendered terminal position.
type Cell struct {
	// Glyph is a single grapheme cluster.
	Glyph string
	// Width is the number of terminal columns the glyph covers.
	Width      int
	Foreground color.Color
	Background color.Color
}

// Blank is an empty single-column cell with default colors.
var Blank = Cell{Glyph: " ", Width: 1}

// String renders the cell with truecolor escapes.
func (c Cell) String() string {
	return color.Colorize(c.Glyph, c.Foreground, c.Background)
}
