// ABOUTME: Character is a colored text cell holding one printable grapheme cluster
// ABOUTME: Input is NFC-normalized; wide clusters report a width of two columns

package pixel

import (
	"fmt"
	"unicode"

	"github.com/mauromedda/termpix/pkg/color"
	"github.com/mauromedda/termpix/pkg/width"
	"golang.org/x/text/unicode/norm"
)

// Character is one grapheme with its colors.
type Character struct {
	glyph      string
	width      int
	Foreground color.Color
	Background color.Color
}

// NewCharacter validates s as a single printable grapheme cluster.
func NewCharacter(s string, fg, bg color.Color) (Character, error) {
	s = norm.NFC.String(s)
	if !width.SingleCluster(s) {
		n := 0
		for range width.Clusters(s) {
			n++
		}
		return Character{}, fmt.Errorf("character %q: %w", s, &CountError{Got: n, Want: 1})
	}
	for _, r := range s {
		if unicode.IsControl(r) {
			return Character{}, fmt.Errorf("character %q: %w", s, ErrControlCharacter)
		}
	}
	return Character{
		glyph:      s,
		width:      max(width.Grapheme(s), 1),
		Foreground: fg,
		Background: bg,
	}, nil
}

// MustCharacter is NewCharacter for literals known to be valid.
func MustCharacter(s string, fg, bg color.Color) Character {
	c, err := NewCharacter(s, fg, bg)
	if err != nil {
		panic(err)
	}
	return c
}

// Glyph returns the grapheme cluster. The zero Character is a space.
func (c Character) Glyph() string {
	if c.glyph == "" {
		return " "
	}
	return c.glyph
}

// Width returns the number of columns the glyph covers.
func (c Character) Width() int {
	if c.width == 0 {
		return 1
	}
	return c.width
}

// Cell converts c into a rendered cell.
func (c Character) Cell() Cell {
	return Cell{Glyph: c.Glyph(), Width: c.Width(), Foreground: c.Foreground, Background: c.Background}
}

// String renders c with its colors.
func (c Character) String() string {
	return c.Cell().String()
}
