// ABOUTME: Two-child layouts: side-by-side and stacked tiling plus a top-child overlay
// ABOUTME: Constructors check character sizes; Must variants panic for type-fixed sizes

package widget

import (
	"strings"

	"github.com/mauromedda/termpix/internal/pool"
	"github.com/mauromedda/termpix/pkg/canvas"
	"github.com/mauromedda/termpix/pkg/pixel"
)

// Horizontal places B to the right of A.
type Horizontal[A, B Widget] struct {
	a A
	b B
}

// NewHorizontal requires both children to have the same height.
func NewHorizontal[A, B Widget](a A, b B) (*Horizontal[A, B], error) {
	if a.HeightCharacters() != b.HeightCharacters() {
		return nil, mismatch("horizontal", a, b)
	}
	return &Horizontal[A, B]{a: a, b: b}, nil
}

// MustHorizontal is NewHorizontal for children whose sizes are fixed.
func MustHorizontal[A, B Widget](a A, b B) *Horizontal[A, B] {
	return must(NewHorizontal(a, b))
}

// Children returns the left and right children.
func (h *Horizontal[A, B]) Children() (A, B) { return h.a, h.b }

func (h *Horizontal[A, B]) WidthCharacters() int {
	return h.a.WidthCharacters() + h.b.WidthCharacters()
}

func (h *Horizontal[A, B]) HeightCharacters() int { return h.a.HeightCharacters() }

// String joins row i of A with row i of B.
func (h *Horizontal[A, B]) String() string {
	left := strings.Split(h.a.String(), canvas.LineBreak)
	right := strings.Split(h.b.String(), canvas.LineBreak)

	sb := pool.Builder()
	defer pool.Release(sb)
	for i := range max(len(left), len(right)) {
		if i > 0 {
			sb.WriteString(canvas.LineBreak)
		}
		if i < len(left) {
			sb.WriteString(left[i])
		}
		if i < len(right) {
			sb.WriteString(right[i])
		}
	}
	return sb.String()
}

func (h *Horizontal[A, B]) Cells() [][]pixel.Cell {
	left, right := CellsOf(h.a), CellsOf(h.b)
	rows := make([][]pixel.Cell, len(left))
	for i := range rows {
		row := make([]pixel.Cell, 0, len(left[i])+len(right[i]))
		rows[i] = append(append(row, left[i]...), right[i]...)
	}
	return rows
}

// Vertical places B below A.
type Vertical[A, B Widget] struct {
	a A
	b B
}

// NewVertical requires both children to have the same width.
func NewVertical[A, B Widget](a A, b B) (*Vertical[A, B], error) {
	if a.WidthCharacters() != b.WidthCharacters() {
		return nil, mismatch("vertical", a, b)
	}
	return &Vertical[A, B]{a: a, b: b}, nil
}

// MustVertical is NewVertical for children whose sizes are fixed.
func MustVertical[A, B Widget](a A, b B) *Vertical[A, B] {
	return must(NewVertical(a, b))
}

// Children returns the top and bottom children.
func (v *Vertical[A, B]) Children() (A, B) { return v.a, v.b }

func (v *Vertical[A, B]) WidthCharacters() int { return v.a.WidthCharacters() }

func (v *Vertical[A, B]) HeightCharacters() int {
	return v.a.HeightCharacters() + v.b.HeightCharacters()
}

func (v *Vertical[A, B]) String() string {
	return v.a.String() + canvas.LineBreak + v.b.String()
}

func (v *Vertical[A, B]) Cells() [][]pixel.Cell {
	return append(CellsOf(v.a), CellsOf(v.b)...)
}

// Overlay stacks two equally sized children and shows one of them.
type Overlay[A, B Widget] struct {
	a      A
	b      B
	aOnTop bool
}

// NewOverlay requires both children to have the same size. The first
// child starts on top.
func NewOverlay[A, B Widget](a A, b B) (*Overlay[A, B], error) {
	if a.WidthCharacters() != b.WidthCharacters() || a.HeightCharacters() != b.HeightCharacters() {
		return nil, mismatch("overlay", a, b)
	}
	return &Overlay[A, B]{a: a, b: b, aOnTop: true}, nil
}

// MustOverlay is NewOverlay for children whose sizes are fixed.
func MustOverlay[A, B Widget](a A, b B) *Overlay[A, B] {
	return must(NewOverlay(a, b))
}

// Children returns the first and second children.
func (o *Overlay[A, B]) Children() (A, B) { return o.a, o.b }

// Child1OnTop reports whether the first child is shown.
func (o *Overlay[A, B]) Child1OnTop() bool { return o.aOnTop }

// SetChild1OnTop selects which child is shown.
func (o *Overlay[A, B]) SetChild1OnTop(onTop bool) { o.aOnTop = onTop }

func (o *Overlay[A, B]) top() Widget {
	if o.aOnTop {
		return o.a
	}
	return o.b
}

func (o *Overlay[A, B]) WidthCharacters() int  { return o.a.WidthCharacters() }
func (o *Overlay[A, B]) HeightCharacters() int { return o.a.HeightCharacters() }
func (o *Overlay[A, B]) String() string        { return o.top().String() }
func (o *Overlay[A, B]) Cells() [][]pixel.Cell { return CellsOf(o.top()) }

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
