// ABOUTME: Fixed-shape grid of boolean or color sub-pixels rendered as one terminal cell
// ABOUTME: Color blocks quantize to two clusters and pick the glyph of the resulting pattern

package pixel

import "github.com/mauromedda/termpix/pkg/color"

// MaxSubpixels is the largest sub-pixel count of any shape.
const MaxSubpixels = 8

// Subpixel is the value type a block stores: on/off or a color.
type Subpixel interface {
	bool | color.Color
}

// Block packs the sub-pixels of one terminal cell. The zero value is a
// block with every sub-pixel off (or Default).
type Block[S Shape, U Subpixel] struct {
	values [MaxSubpixels]U
}

// NewBlock builds a block from exactly width×height values in row-major order.
func NewBlock[S Shape, U Subpixel](values ...U) (Block[S, U], error) {
	var b Block[S, U]
	if want := b.Len(); len(values) != want {
		return b, &CountError{Got: len(values), Want: want}
	}
	copy(b.values[:], values)
	return b, nil
}

// FillBlock returns a block with every sub-pixel set to v.
func FillBlock[S Shape, U Subpixel](v U) Block[S, U] {
	var b Block[S, U]
	for i := range b.Len() {
		b.values[i] = v
	}
	return b
}

// Dims returns the shape's sub-pixel columns and rows.
func (b Block[S, U]) Dims() (width, height int) {
	var s S
	return s.Dims()
}

// Len returns the number of sub-pixels.
func (b Block[S, U]) Len() int {
	w, h := b.Dims()
	return w * h
}

// Subpixel returns the value at (x, y) within the block.
func (b Block[S, U]) Subpixel(x, y int) (U, error) {
	w, h := b.Dims()
	if err := CheckBounds(x, y, w, h); err != nil {
		var zero U
		return zero, err
	}
	return b.values[x+y*w], nil
}

// SetSubpixel replaces the value at (x, y) within the block.
func (b *Block[S, U]) SetSubpixel(x, y int, v U) error {
	w, h := b.Dims()
	if err := CheckBounds(x, y, w, h); err != nil {
		return err
	}
	b.values[x+y*w] = v
	return nil
}

// Subpixels returns a row-major copy of the block's values.
func (b Block[S, U]) Subpixels() []U {
	out := make([]U, b.Len())
	copy(out, b.values[:])
	return out
}

// Cell synthesizes the glyph and colors that depict the block.
func (b Block[S, U]) Cell() Cell {
	var s S
	switch values := any(b.values[:b.Len()]).(type) {
	case []bool:
		return Cell{Glyph: string(s.Glyph(Pattern(values))), Width: 1}
	case []color.Color:
		return chromaCell(s, values)
	}
	return Blank
}

// String renders the block as one colorized terminal cell.
func (b Block[S, U]) String() string {
	return b.Cell().String()
}

// Pattern packs on/off values into a bit pattern, bit i being values[i].
func Pattern(values []bool) uint8 {
	var p uint8
	for i, on := range values {
		if on {
			p |= 1 << i
		}
	}
	return p
}

func chromaCell(s Shape, values []color.Color) Cell {
	switch s.(type) {
	case Single:
		return Cell{Glyph: "█", Width: 1, Foreground: values[0], Background: values[0]}
	case Dual:
		return Cell{Glyph: "▀", Width: 1, Foreground: values[0], Background: values[1]}
	}

	groups := color.GroupColors(values)
	on, off := color.Split(values, groups)
	return Cell{
		Glyph:      string(s.Glyph(Pattern(groups))),
		Width:      1,
		Foreground: on,
		Background: off,
	}
}
