// ABOUTME: Canvas is a runtime-sized bitmap of pixel blocks addressed by sub-pixel coordinates
// ABOUTME: Serializes row-major to colorized glyph rows joined by CRLF without a trailing break

package canvas

import (
	"github.com/mauromedda/termpix/internal/pool"
	"github.com/mauromedda/termpix/pkg/pixel"
)

// LineBreak separates serialized rows.
const LineBreak = "\r\n"

// Canvas is a bitmap whose size is chosen at runtime. Width and height
// are counted in sub-pixels and are multiples of the block shape.
type Canvas[S pixel.Shape, U pixel.Subpixel] struct {
	width  int
	height int
	blocks []pixel.Block[S, U]
}

// New returns a width×height canvas with every sub-pixel set to fill.
func New[S pixel.Shape, U pixel.Subpixel](width, height int, fill U) (*Canvas[S, U], error) {
	if err := checkDims[S](width, height); err != nil {
		return nil, err
	}
	c := &Canvas[S, U]{width: width, height: height}
	c.blocks = make([]pixel.Block[S, U], c.blockCount())
	c.Fill(fill)
	return c, nil
}

// FromData builds a canvas from width×height row-major sub-pixel values.
func FromData[S pixel.Shape, U pixel.Subpixel](width, height int, data []U) (*Canvas[S, U], error) {
	if err := checkDims[S](width, height); err != nil {
		return nil, err
	}
	c := &Canvas[S, U]{width: width, height: height}
	c.blocks = make([]pixel.Block[S, U], c.blockCount())
	if err := c.SetPixels(data); err != nil {
		return nil, err
	}
	return c, nil
}

func checkDims[S pixel.Shape](width, height int) error {
	bw, bh := pixel.Size[S]()
	if width <= 0 || height <= 0 || width%bw != 0 || height%bh != 0 {
		return &DimensionsError{Width: width, Height: height, BlockWidth: bw, BlockHeight: bh}
	}
	return nil
}

func (c *Canvas[S, U]) blockCount() int {
	return c.WidthCharacters() * c.HeightCharacters()
}

// Width returns the width in sub-pixels.
func (c *Canvas[S, U]) Width() int { return c.width }

// Height returns the height in sub-pixels.
func (c *Canvas[S, U]) Height() int { return c.height }

// WidthCharacters returns the width in terminal cells.
func (c *Canvas[S, U]) WidthCharacters() int {
	bw, _ := pixel.Size[S]()
	return c.width / bw
}

// HeightCharacters returns the height in terminal rows.
func (c *Canvas[S, U]) HeightCharacters() int {
	_, bh := pixel.Size[S]()
	return c.height / bh
}

// locate maps a sub-pixel coordinate to its block and in-block offset.
func (c *Canvas[S, U]) locate(x, y int) (block, dx, dy int, err error) {
	if err := pixel.CheckBounds(x, y, c.width, c.height); err != nil {
		return 0, 0, 0, err
	}
	bw, bh := pixel.Size[S]()
	return x/bw + (y/bh)*c.WidthCharacters(), x % bw, y % bh, nil
}

// Pixel returns the sub-pixel at (x, y).
func (c *Canvas[S, U]) Pixel(x, y int) (U, error) {
	i, dx, dy, err := c.locate(x, y)
	if err != nil {
		var zero U
		return zero, err
	}
	return c.blocks[i].Subpixel(dx, dy)
}

// SetPixel sets the sub-pixel at (x, y).
func (c *Canvas[S, U]) SetPixel(x, y int, v U) error {
	i, dx, dy, err := c.locate(x, y)
	if err != nil {
		return err
	}
	return c.blocks[i].SetSubpixel(dx, dy, v)
}

// Pixels returns every sub-pixel in row-major order.
func (c *Canvas[S, U]) Pixels() []U {
	out := make([]U, 0, c.width*c.height)
	for y := range c.height {
		for x := range c.width {
			v, _ := c.Pixel(x, y)
			out = append(out, v)
		}
	}
	return out
}

// SetPixels replaces every sub-pixel from row-major data.
func (c *Canvas[S, U]) SetPixels(data []U) error {
	if want := c.width * c.height; len(data) != want {
		return &pixel.CountError{Got: len(data), Want: want}
	}
	for i, v := range data {
		if err := c.SetPixel(i%c.width, i/c.width, v); err != nil {
			return err
		}
	}
	return nil
}

// Fill sets every sub-pixel to v.
func (c *Canvas[S, U]) Fill(v U) {
	block := pixel.FillBlock[S](v)
	for i := range c.blocks {
		c.blocks[i] = block
	}
}

// Clone returns an independent copy of c.
func (c *Canvas[S, U]) Clone() *Canvas[S, U] {
	out := &Canvas[S, U]{width: c.width, height: c.height}
	out.blocks = make([]pixel.Block[S, U], len(c.blocks))
	copy(out.blocks, c.blocks)
	return out
}

// Cells returns the rendered cells row by row.
func (c *Canvas[S, U]) Cells() [][]pixel.Cell {
	cols := c.WidthCharacters()
	rows := make([][]pixel.Cell, c.HeightCharacters())
	for r := range rows {
		row := make([]pixel.Cell, cols)
		for col := range row {
			row[col] = c.blocks[r*cols+col].Cell()
		}
		rows[r] = row
	}
	return rows
}

// String serializes the canvas as a terminal frame.
func (c *Canvas[S, U]) String() string {
	sb := pool.Builder()
	defer pool.Release(sb)

	cols := c.WidthCharacters()
	for i, b := range c.blocks {
		if i > 0 && i%cols == 0 {
			sb.WriteString(LineBreak)
		}
		sb.WriteString(b.String())
	}
	return sb.String()
}
