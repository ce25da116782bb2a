// ABOUTME: Drawable shapes rasterized through a plot callback onto any pixel surface
// ABOUTME: Off-surface points are skipped silently so shapes may run past the edges

package raster

import "math"

// Point is a continuous 2-D coordinate.
type Point struct {
	X, Y float64
}

// Transform maps a point into another coordinate space.
type Transform func(Point) Point

// Drawable is a geometric shape that rasterizes itself into integer
// pixel coordinates.
type Drawable interface {
	// Rasterize calls plot for every pixel the shape covers. Points that
	// round to negative coordinates are never plotted.
	Rasterize(plot func(x, y int))
	// Transform returns a copy with every defining point mapped by f.
	Transform(f Transform) Drawable
}

// Plotter is any surface that accepts single-pixel writes.
type Plotter[U any] interface {
	SetPixel(x, y int, v U) error
}

// Draw rasterizes d onto p with value v. Pixels p rejects are skipped.
func Draw[U any](p Plotter[U], d Drawable, v U) {
	d.Rasterize(func(x, y int) {
		_ = p.SetPixel(x, y, v)
	})
}

// DrawAll draws every shape in order.
func DrawAll[U any](p Plotter[U], v U, shapes ...Drawable) {
	for _, d := range shapes {
		Draw(p, d, v)
	}
}

// Translate returns a transform shifting points by (dx, dy).
func Translate(dx, dy float64) Transform {
	return func(p Point) Point { return Point{X: p.X + dx, Y: p.Y + dy} }
}

// Scale returns a transform scaling points about the origin.
func Scale(sx, sy float64) Transform {
	return func(p Point) Point { return Point{X: p.X * sx, Y: p.Y * sy} }
}

// Rotate returns a transform rotating points by theta radians about c.
func Rotate(theta float64, c Point) Transform {
	sin, cos := math.Sincos(theta)
	return func(p Point) Point {
		dx, dy := p.X-c.X, p.Y-c.Y
		return Point{X: c.X + dx*cos - dy*sin, Y: c.Y + dx*sin + dy*cos}
	}
}

// Chain composes transforms, applying them left to right.
func Chain(fs ...Transform) Transform {
	return func(p Point) Point {
		for _, f := range fs {
			p = f(p)
		}
		return p
	}
}

// round converts a coordinate to the nearest pixel index, rounding half
// away from zero.
func round(v float64) int {
	return int(math.Round(v))
}
