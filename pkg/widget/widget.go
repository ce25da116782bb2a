// ABOUTME: Widget contracts shared by canvases and composite nodes
// ABOUTME: Also provides pass-through and double-buffer wrappers around a single child

package widget

import "github.com/mauromedda/termpix/pkg/pixel"

// Widget is anything that can be placed in a layout and serialized as a
// terminal frame.
type Widget interface {
	WidthCharacters() int
	HeightCharacters() int
	String() string
}

// CellGrid is a widget that can also expose its rendered cells, for
// backends that paint cells instead of writing escape strings.
type CellGrid interface {
	Widget
	Cells() [][]pixel.Cell
}

// Surface is a pixel-addressable widget such as a canvas.
type Surface[U pixel.Subpixel] interface {
	Widget
	Width() int
	Height() int
	Pixel(x, y int) (U, error)
	SetPixel(x, y int, v U) error
}

// Cloner is a widget that can produce an independent copy of itself.
type Cloner[W any] interface {
	Widget
	Clone() W
}

// CellsOf returns the cells of w. Widgets that cannot expose cells
// render as blank cells of the same size.
func CellsOf(w Widget) [][]pixel.Cell {
	if g, ok := w.(CellGrid); ok {
		return g.Cells()
	}
	rows := make([][]pixel.Cell, w.HeightCharacters())
	for i := range rows {
		row := make([]pixel.Cell, w.WidthCharacters())
		for j := range row {
			row[j] = pixel.Blank
		}
		rows[i] = row
	}
	return rows
}

// Single forwards every call to its child.
type Single[W Widget] struct {
	child W
}

// NewSingle wraps child.
func NewSingle[W Widget](child W) *Single[W] {
	return &Single[W]{child: child}
}

// Child returns the wrapped widget.
func (s *Single[W]) Child() W { return s.child }

func (s *Single[W]) WidthCharacters() int  { return s.child.WidthCharacters() }
func (s *Single[W]) HeightCharacters() int { return s.child.HeightCharacters() }
func (s *Single[W]) String() string        { return s.child.String() }
func (s *Single[W]) Cells() [][]pixel.Cell { return CellsOf(s.child) }

// DoubleBuffer holds two copies of a widget. Drawing goes to the back
// buffer while the front is shown.
type DoubleBuffer[W Cloner[W]] struct {
	front W
	back  W
}

// NewDoubleBuffer shows child and uses a clone of it as the back buffer.
func NewDoubleBuffer[W Cloner[W]](child W) *DoubleBuffer[W] {
	return &DoubleBuffer[W]{front: child, back: child.Clone()}
}

// Front returns the buffer being shown.
func (d *DoubleBuffer[W]) Front() W { return d.front }

// Back returns the buffer to draw into.
func (d *DoubleBuffer[W]) Back() W { return d.back }

// SwapBuffers exchanges front and back.
func (d *DoubleBuffer[W]) SwapBuffers() {
	d.front, d.back = d.back, d.front
}

func (d *DoubleBuffer[W]) WidthCharacters() int  { return d.front.WidthCharacters() }
func (d *DoubleBuffer[W]) HeightCharacters() int { return d.front.HeightCharacters() }
func (d *DoubleBuffer[W]) String() string        { return d.front.String() }
func (d *DoubleBuffer[W]) Cells() [][]pixel.Cell { return CellsOf(d.front) }
