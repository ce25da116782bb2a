// ABOUTME: UV maps continuous coordinates onto the pixel grid of a child surface
// ABOUTME: Drawables are transformed into texture space before rasterizing onto the child

package widget

import (
	"iter"
	"math"

	"github.com/mauromedda/termpix/pkg/pixel"
	"github.com/mauromedda/termpix/pkg/raster"
)

// UV addresses a surface through continuous coordinates. The x bounds
// span the pixel columns and the y bounds span the pixel rows; a
// maximum below the minimum flips that axis.
type UV[U pixel.Subpixel] struct {
	child      Surface[U]
	xMin, xMax float64
	yMin, yMax float64
}

// NewUV wraps child with bounds equal to its pixel extent.
func NewUV[U pixel.Subpixel](child Surface[U]) *UV[U] {
	return &UV[U]{
		child: child,
		xMax:  float64(child.Width()),
		yMax:  float64(child.Height()),
	}
}

// Child returns the wrapped surface.
func (w *UV[U]) Child() Surface[U] { return w.child }

// SetXBounds sets the coordinates of the left and right edges.
func (w *UV[U]) SetXBounds(lo, hi float64) { w.xMin, w.xMax = lo, hi }

// SetYBounds sets the coordinates of the top and bottom edges.
func (w *UV[U]) SetYBounds(lo, hi float64) { w.yMin, w.yMax = lo, hi }

// XBounds returns the horizontal bounds.
func (w *UV[U]) XBounds() (lo, hi float64) { return w.xMin, w.xMax }

// YBounds returns the vertical bounds.
func (w *UV[U]) YBounds() (lo, hi float64) { return w.yMin, w.yMax }

// UVToTexture converts a coordinate in [lo, hi] to a pixel index in
// [0, extent).
func UVToTexture(uv, lo, hi float64, extent int) int {
	if hi == lo {
		return 0
	}
	return int(math.Round((uv-lo)/(hi-lo)*float64(extent) - 0.5))
}

// TextureToUV returns the coordinate of the center of pixel i.
func TextureToUV(i int, lo, hi float64, extent int) float64 {
	return (float64(i)+0.5)/float64(extent)*(hi-lo) + lo
}

// UVToTextureX converts a horizontal coordinate to a pixel column.
func (w *UV[U]) UVToTextureX(u float64) int {
	return UVToTexture(u, w.xMin, w.xMax, w.child.Width())
}

// UVToTextureY converts a vertical coordinate to a pixel row.
func (w *UV[U]) UVToTextureY(v float64) int {
	return UVToTexture(v, w.yMin, w.yMax, w.child.Height())
}

// TextureToUVX returns the horizontal coordinate of column x.
func (w *UV[U]) TextureToUVX(x int) float64 {
	return TextureToUV(x, w.xMin, w.xMax, w.child.Width())
}

// TextureToUVY returns the vertical coordinate of row y.
func (w *UV[U]) TextureToUVY(y int) float64 {
	return TextureToUV(y, w.yMin, w.yMax, w.child.Height())
}

// locate checks (u, v) against the bounds and returns the clamped pixel.
func (w *UV[U]) locate(u, v float64) (int, int, error) {
	if !within(u, w.xMin, w.xMax) || !within(v, w.yMin, w.yMax) {
		return 0, 0, &UVError{U: u, V: v, XMin: w.xMin, XMax: w.xMax, YMin: w.yMin, YMax: w.yMax}
	}
	x := clampIndex(w.UVToTextureX(u), w.child.Width())
	y := clampIndex(w.UVToTextureY(v), w.child.Height())
	return x, y, nil
}

// Pixel reads the pixel containing (u, v).
func (w *UV[U]) Pixel(u, v float64) (U, error) {
	x, y, err := w.locate(u, v)
	if err != nil {
		var zero U
		return zero, err
	}
	return w.child.Pixel(x, y)
}

// SetPixel writes the pixel containing (u, v).
func (w *UV[U]) SetPixel(u, v float64, val U) error {
	x, y, err := w.locate(u, v)
	if err != nil {
		return err
	}
	return w.child.SetPixel(x, y, val)
}

// Draw rasterizes d, given in UV coordinates, onto the child.
// Endpoints map to pixel centers offset by half a pixel and are not
// clamped like SetPixel coordinates, so a point exactly on a bound can
// round just off the grid and be skipped: a line spanning the full
// range of a flipped axis leaves its last column unplotted.
func (w *UV[U]) Draw(d raster.Drawable, val U) {
	width, height := float64(w.child.Width()), float64(w.child.Height())
	toTexture := func(p raster.Point) raster.Point {
		return raster.Point{
			X: scaleAxis(p.X, w.xMin, w.xMax, width),
			Y: scaleAxis(p.Y, w.yMin, w.yMax, height),
		}
	}
	raster.Draw(w.child, d.Transform(toTexture), val)
}

// XValues yields the coordinate of every pixel column in ascending order.
func (w *UV[U]) XValues() iter.Seq[float64] {
	return axisValues(w.xMin, w.xMax, w.child.Width())
}

// YValues yields the coordinate of every pixel row in ascending order.
func (w *UV[U]) YValues() iter.Seq[float64] {
	return axisValues(w.yMin, w.yMax, w.child.Height())
}

func axisValues(lo, hi float64, extent int) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		for i := range extent {
			j := i
			if hi < lo {
				j = extent - 1 - i
			}
			if !yield(TextureToUV(j, lo, hi, extent)) {
				return
			}
		}
	}
}

func scaleAxis(v, lo, hi, extent float64) float64 {
	if hi == lo {
		return 0
	}
	return (v-lo)/(hi-lo)*extent - 0.5
}

func within(v, lo, hi float64) bool {
	return v >= min(lo, hi) && v <= max(lo, hi)
}

func clampIndex(i, extent int) int {
	return max(0, min(i, extent-1))
}

func (w *UV[U]) WidthCharacters() int  { return w.child.WidthCharacters() }
func (w *UV[U]) HeightCharacters() int { return w.child.HeightCharacters() }
func (w *UV[U]) String() string        { return w.child.String() }
func (w *UV[U]) Cells() [][]pixel.Cell { return CellsOf(w.child) }
