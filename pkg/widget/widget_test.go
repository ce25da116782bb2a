// ABOUTME: Tests for tiling, overlay, pass-through, and double-buffer composition
// ABOUTME: Checks dimension invariants, mismatch errors, and CRLF row joining

package widget

import (
	"errors"
	"testing"

	"github.com/mauromedda/termpix/pkg/canvas"
	"github.com/mauromedda/termpix/pkg/color"
	"github.com/mauromedda/termpix/pkg/pixel"
)

func quad(t *testing.T, w, h int, fill bool) *canvas.Canvas[pixel.Quad, bool] {
	t.Helper()
	c, err := canvas.New[pixel.Quad](w, h, fill)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestHorizontal(t *testing.T) {
	t.Parallel()

	h, err := NewHorizontal(quad(t, 4, 4, true), quad(t, 2, 4, false))
	if err != nil {
		t.Fatalf("NewHorizontal() error: %v", err)
	}
	if h.WidthCharacters() != 3 || h.HeightCharacters() != 2 {
		t.Errorf("size = %dx%d, want 3x2", h.WidthCharacters(), h.HeightCharacters())
	}
	want := "██ " + canvas.LineBreak + "██ "
	if got := h.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	cells := h.Cells()
	if len(cells) != 2 || len(cells[0]) != 3 {
		t.Errorf("Cells() = %d rows of %d, want 2 rows of 3", len(cells), len(cells[0]))
	}
}

func TestVertical(t *testing.T) {
	t.Parallel()

	v, err := NewVertical(quad(t, 4, 2, true), quad(t, 4, 4, false))
	if err != nil {
		t.Fatalf("NewVertical() error: %v", err)
	}
	if v.WidthCharacters() != 2 || v.HeightCharacters() != 3 {
		t.Errorf("size = %dx%d, want 2x3", v.WidthCharacters(), v.HeightCharacters())
	}
	want := "██" + canvas.LineBreak + "  " + canvas.LineBreak + "  "
	if got := v.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got := len(v.Cells()); got != 3 {
		t.Errorf("len(Cells()) = %d, want 3", got)
	}
}

func TestNested_Dimensions(t *testing.T) {
	t.Parallel()

	row := MustHorizontal(quad(t, 2, 2, false), quad(t, 6, 2, false))
	layout := MustVertical(row, quad(t, 8, 4, false))
	if layout.WidthCharacters() != 4 || layout.HeightCharacters() != 3 {
		t.Errorf("size = %dx%d, want 4x3", layout.WidthCharacters(), layout.HeightCharacters())
	}

	top, bottom := layout.Children()
	if top != row || bottom.Width() != 8 {
		t.Error("Children() did not return the composed widgets")
	}
}

func TestMismatch(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		build func(t *testing.T) error
	}{
		{name: "horizontal", build: func(t *testing.T) error {
			_, err := NewHorizontal(quad(t, 2, 2, false), quad(t, 2, 4, false))
			return err
		}},
		{name: "vertical", build: func(t *testing.T) error {
			_, err := NewVertical(quad(t, 2, 2, false), quad(t, 4, 2, false))
			return err
		}},
		{name: "overlay", build: func(t *testing.T) error {
			_, err := NewOverlay(quad(t, 2, 2, false), quad(t, 2, 4, false))
			return err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.build(t)
			if !errors.Is(err, ErrDimensionMismatch) {
				t.Fatalf("error = %v, want ErrDimensionMismatch", err)
			}
			var me *MismatchError
			if !errors.As(err, &me) || me.Op != tt.name || me.Width1 != 1 || me.Height1 != 1 {
				t.Errorf("MismatchError = %+v, want op %q with first child 1x1", me, tt.name)
			}
		})
	}
}

func TestMust_Panics(t *testing.T) {
	t.Parallel()

	defer func() {
		err, ok := recover().(error)
		if !ok || !errors.Is(err, ErrDimensionMismatch) {
			t.Errorf("recover() = %v, want ErrDimensionMismatch", err)
		}
	}()
	MustOverlay(quad(t, 2, 2, false), quad(t, 4, 2, false))
}

func TestOverlay(t *testing.T) {
	t.Parallel()

	red, err := canvas.New[pixel.Single](1, 1, color.Red)
	if err != nil {
		t.Fatal(err)
	}
	blue, err := canvas.New[pixel.Single](1, 1, color.Blue)
	if err != nil {
		t.Fatal(err)
	}

	o, err := NewOverlay(red, blue)
	if err != nil {
		t.Fatal(err)
	}
	if !o.Child1OnTop() {
		t.Error("Child1OnTop() = false, want true by default")
	}
	if got, want := o.String(), red.String(); got != want {
		t.Errorf("String() = %q, want the red child %q", got, want)
	}

	o.SetChild1OnTop(false)
	if got, want := o.String(), blue.String(); got != want {
		t.Errorf("String() = %q, want the blue child %q", got, want)
	}
	if got := o.Cells()[0][0].Foreground; got != color.Blue {
		t.Errorf("Cells() foreground = %v, want %v", got, color.Blue)
	}
}

func TestSingle(t *testing.T) {
	t.Parallel()

	c := quad(t, 4, 2, true)
	s := NewSingle(c)
	if s.Child() != c {
		t.Error("Child() returned a different widget")
	}
	if s.String() != c.String() || s.WidthCharacters() != 2 || s.HeightCharacters() != 1 {
		t.Errorf("pass-through mismatch: %q %dx%d", s.String(), s.WidthCharacters(), s.HeightCharacters())
	}
}

func TestDoubleBuffer(t *testing.T) {
	t.Parallel()

	db := NewDoubleBuffer(quad(t, 2, 2, false))
	front, back := db.Front(), db.Back()
	if front == back {
		t.Fatal("back buffer aliases the front")
	}

	if err := db.Back().SetPixel(0, 0, true); err != nil {
		t.Fatal(err)
	}
	if got := db.String(); got != " " {
		t.Errorf("String() before swap = %q, want blank", got)
	}

	db.SwapBuffers()
	if db.Front() != back || db.Back() != front {
		t.Error("SwapBuffers() did not exchange the buffers")
	}
	if got := db.String(); got != "▘" {
		t.Errorf("String() after swap = %q, want %q", got, "▘")
	}
}

type plain struct{ w, h int }

func (p plain) WidthCharacters() int  { return p.w }
func (p plain) HeightCharacters() int { return p.h }
func (p plain) String() string        { return "" }

func TestCellsOf_Fallback(t *testing.T) {
	t.Parallel()

	rows := CellsOf(plain{w: 3, h: 2})
	if len(rows) != 2 || len(rows[1]) != 3 || rows[1][2] != pixel.Blank {
		t.Errorf("CellsOf() = %v, want 2 rows of 3 blank cells", rows)
	}
}
