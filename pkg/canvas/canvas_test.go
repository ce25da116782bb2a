// ABOUTME: Tests for canvas construction, pixel addressing, serialization, and static sizing
// ABOUTME: Round-trips row-major data through every block shape

package canvas

import (
	"errors"
	"strings"
	"testing"

	"github.com/mauromedda/termpix/pkg/color"
	"github.com/mauromedda/termpix/pkg/pixel"
)

// pattern returns deterministic pseudo-random on/off data.
func pattern(n int) []bool {
	out := make([]bool, n)
	seed := uint32(2463534242)
	for i := range out {
		seed ^= seed << 13
		seed ^= seed >> 17
		seed ^= seed << 5
		out[i] = seed&1 == 1
	}
	return out
}

func checkRoundTrip[S pixel.Shape](t *testing.T, width, height int) {
	t.Helper()

	data := pattern(width * height)
	c, err := FromData[S](width, height, data)
	if err != nil {
		t.Fatalf("FromData(%d, %d) error: %v", width, height, err)
	}
	for y := range height {
		for x := range width {
			got, err := c.Pixel(x, y)
			if err != nil {
				t.Fatalf("Pixel(%d, %d) error: %v", x, y, err)
			}
			if got != data[x+y*width] {
				t.Fatalf("Pixel(%d, %d) = %v, want %v", x, y, got, data[x+y*width])
			}
		}
	}

	got := c.Pixels()
	for i := range data {
		if got[i] != data[i] {
			t.Fatalf("Pixels()[%d] = %v, want %v", i, got[i], data[i])
		}
	}
}

func TestFromData_RoundTrip(t *testing.T) {
	t.Parallel()

	t.Run("single", func(t *testing.T) { t.Parallel(); checkRoundTrip[pixel.Single](t, 5, 3) })
	t.Run("dual", func(t *testing.T) { t.Parallel(); checkRoundTrip[pixel.Dual](t, 3, 6) })
	t.Run("quad", func(t *testing.T) { t.Parallel(); checkRoundTrip[pixel.Quad](t, 6, 4) })
	t.Run("sextant", func(t *testing.T) { t.Parallel(); checkRoundTrip[pixel.Sextant](t, 4, 9) })
	t.Run("octant", func(t *testing.T) { t.Parallel(); checkRoundTrip[pixel.Octant](t, 8, 8) })
	t.Run("braille", func(t *testing.T) { t.Parallel(); checkRoundTrip[pixel.Braille](t, 2, 12) })
}

func TestNew_InvalidDimensions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		width, height int
	}{
		{name: "odd width", width: 3, height: 2},
		{name: "odd height", width: 2, height: 3},
		{name: "zero", width: 0, height: 0},
		{name: "negative", width: -2, height: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := New[pixel.Quad](tt.width, tt.height, false)
			if !errors.Is(err, ErrDimensionsNotMultipleOfBlockSize) {
				t.Fatalf("New(%d, %d) error = %v, want ErrDimensionsNotMultipleOfBlockSize", tt.width, tt.height, err)
			}
			var de *DimensionsError
			if !errors.As(err, &de) || de.BlockWidth != 2 || de.BlockHeight != 2 {
				t.Errorf("DimensionsError = %+v, want block 2x2", de)
			}
		})
	}
}

func TestFromData_WrongLength(t *testing.T) {
	t.Parallel()

	_, err := FromData[pixel.Quad](4, 4, make([]bool, 15))
	if !errors.Is(err, pixel.ErrInvalidArgumentCount) {
		t.Fatalf("FromData() error = %v, want ErrInvalidArgumentCount", err)
	}
}

func TestPixel_Bounds(t *testing.T) {
	t.Parallel()

	const w, h = 6, 8
	c, err := New[pixel.Octant](w, h, false)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := c.Pixel(w-1, h-1); err != nil {
		t.Errorf("Pixel(w-1, h-1) error: %v", err)
	}

	for _, pt := range [][2]int{{w, 0}, {0, h}, {-1, 0}} {
		_, err := c.Pixel(pt[0], pt[1])
		var be *pixel.BoundsError
		if !errors.As(err, &be) {
			t.Errorf("Pixel(%d, %d) error = %v, want BoundsError", pt[0], pt[1], err)
			continue
		}
		if be.Width != w || be.Height != h {
			t.Errorf("BoundsError extent = %dx%d, want %dx%d", be.Width, be.Height, w, h)
		}
		if err := c.SetPixel(pt[0], pt[1], true); !errors.Is(err, pixel.ErrCoordinatesOutOfBounds) {
			t.Errorf("SetPixel(%d, %d) error = %v, want out of bounds", pt[0], pt[1], err)
		}
	}
}

func TestString_Diagonal(t *testing.T) {
	t.Parallel()

	c, err := FromData[pixel.Quad](2, 2, []bool{true, false, false, true})
	if err != nil {
		t.Fatal(err)
	}
	if got := c.String(); got != "▚" {
		t.Errorf("String() = %q, want %q", got, "▚")
	}
}

func TestString_Rows(t *testing.T) {
	t.Parallel()

	c, err := New[pixel.Dual](3, 4, false)
	if err != nil {
		t.Fatal(err)
	}
	if err := c.SetPixel(0, 0, true); err != nil {
		t.Fatal(err)
	}
	if err := c.SetPixel(2, 3, true); err != nil {
		t.Fatal(err)
	}

	want := "▀  " + LineBreak + "  ▄"
	if got := c.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if strings.HasSuffix(c.String(), LineBreak) {
		t.Error("String() has a trailing line break")
	}
}

func TestString_Color(t *testing.T) {
	t.Parallel()

	c, err := New[pixel.Dual](1, 2, color.Red)
	if err != nil {
		t.Fatal(err)
	}
	if err := c.SetPixel(0, 1, color.Blue); err != nil {
		t.Fatal(err)
	}
	want := "\x1b[38;2;255;0;0m\x1b[48;2;0;0;255m▀\x1b[0m"
	if got := c.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestCanvas_Dimensions(t *testing.T) {
	t.Parallel()

	c, err := New[pixel.Sextant](10, 12, false)
	if err != nil {
		t.Fatal(err)
	}
	if c.Width() != 10 || c.Height() != 12 {
		t.Errorf("size = %dx%d, want 10x12", c.Width(), c.Height())
	}
	if c.WidthCharacters() != 5 || c.HeightCharacters() != 4 {
		t.Errorf("characters = %dx%d, want 5x4", c.WidthCharacters(), c.HeightCharacters())
	}

	cells := c.Cells()
	if len(cells) != 4 || len(cells[0]) != 5 {
		t.Errorf("Cells() = %dx%d, want 4 rows of 5", len(cells), len(cells[0]))
	}
}

func TestClone_Independent(t *testing.T) {
	t.Parallel()

	c, err := New[pixel.Quad](2, 2, false)
	if err != nil {
		t.Fatal(err)
	}
	dup := c.Clone()
	if err := dup.SetPixel(1, 1, true); err != nil {
		t.Fatal(err)
	}
	if v, _ := c.Pixel(1, 1); v {
		t.Error("mutating the clone changed the original")
	}
}

func TestFill(t *testing.T) {
	t.Parallel()

	c, err := New[pixel.Quad](4, 2, false)
	if err != nil {
		t.Fatal(err)
	}
	c.Fill(true)
	if got := c.String(); got != "██" {
		t.Errorf("String() after Fill = %q, want %q", got, "██")
	}
}

type screen24x16 struct{}

func (screen24x16) Dims() (int, int) { return 24, 16 }

type oddSize struct{}

func (oddSize) Dims() (int, int) { return 3, 3 }

func TestStatic(t *testing.T) {
	t.Parallel()

	s := NewStatic[pixel.Octant, bool, screen24x16](false)
	if s.WidthCharacters() != 12 || s.HeightCharacters() != 4 {
		t.Errorf("characters = %dx%d, want 12x4", s.WidthCharacters(), s.HeightCharacters())
	}
	if got := StaticWidthCharacters[pixel.Octant, screen24x16](); got != 12 {
		t.Errorf("StaticWidthCharacters() = %d, want 12", got)
	}
	if err := s.SetPixel(23, 15, true); err != nil {
		t.Errorf("SetPixel(23, 15) error: %v", err)
	}

	dup := s.Clone()
	if v, _ := dup.Pixel(23, 15); !v {
		t.Error("clone lost pixel data")
	}
}

func TestStaticFromData(t *testing.T) {
	t.Parallel()

	data := pattern(24 * 16)
	s, err := StaticFromData[pixel.Quad, bool, screen24x16](data)
	if err != nil {
		t.Fatalf("StaticFromData() error: %v", err)
	}
	got := s.Pixels()
	for i := range data {
		if got[i] != data[i] {
			t.Fatalf("Pixels()[%d] = %v, want %v", i, got[i], data[i])
		}
	}

	if _, err := StaticFromData[pixel.Quad, bool, screen24x16](data[:10]); !errors.Is(err, pixel.ErrInvalidArgumentCount) {
		t.Errorf("short data error = %v, want ErrInvalidArgumentCount", err)
	}
}

func TestNewStatic_PanicsOnBadSize(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("NewStatic with a 3x3 size and quad shape did not panic")
		}
	}()
	NewStatic[pixel.Quad, bool, oddSize](false)
}
