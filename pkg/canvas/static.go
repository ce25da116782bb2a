// ABOUTME: Static is a canvas whose dimensions come from a caller-declared size type
// ABOUTME: Size mistakes are programming errors, so construction panics instead of returning them

package canvas

import (
	"fmt"

	"github.com/mauromedda/termpix/pkg/pixel"
)

// Size fixes canvas dimensions at the type level:
//
//	type Screen struct{}
//
//	func (Screen) Dims() (int, int) { return 160, 96 }
type Size interface {
	Dims() (width, height int)
}

// Static is a canvas sized by D. Every Canvas method is available and
// the character dimensions are derived from D and S alone.
type Static[S pixel.Shape, U pixel.Subpixel, D Size] struct {
	Canvas[S, U]
}

// NewStatic returns a canvas of size D filled with fill. It panics when
// D does not tile into whole blocks of shape S.
func NewStatic[S pixel.Shape, U pixel.Subpixel, D Size](fill U) *Static[S, U, D] {
	var d D
	w, h := d.Dims()
	c, err := New[S](w, h, fill)
	if err != nil {
		panic(fmt.Sprintf("canvas: static size %T: %v", d, err))
	}
	return &Static[S, U, D]{Canvas: *c}
}

// StaticFromData returns a canvas of size D holding data. It panics when
// D does not tile into whole blocks and returns an error when data has
// the wrong length.
func StaticFromData[S pixel.Shape, U pixel.Subpixel, D Size](data []U) (*Static[S, U, D], error) {
	var zero U
	s := NewStatic[S, U, D](zero)
	if err := s.SetPixels(data); err != nil {
		return nil, err
	}
	return s, nil
}

// StaticWidthCharacters returns the width in cells of any Static[S, U, D].
func StaticWidthCharacters[S pixel.Shape, D Size]() int {
	var d D
	w, _ := d.Dims()
	bw, _ := pixel.Size[S]()
	return w / bw
}

// StaticHeightCharacters returns the height in rows of any Static[S, U, D].
func StaticHeightCharacters[S pixel.Shape, D Size]() int {
	var d D
	_, h := d.Dims()
	_, bh := pixel.Size[S]()
	return h / bh
}

// WidthCharacters returns the width in terminal cells.
func (s *Static[S, U, D]) WidthCharacters() int {
	return StaticWidthCharacters[S, D]()
}

// HeightCharacters returns the height in terminal rows.
func (s *Static[S, U, D]) HeightCharacters() int {
	return StaticHeightCharacters[S, D]()
}

// Clone returns an independent copy of s.
func (s *Static[S, U, D]) Clone() *Static[S, U, D] {
	return &Static[S, U, D]{Canvas: *s.Canvas.Clone()}
}
