// ABOUTME: Line, Rectangle, and Ellipse drawables built on a DDA line stepper
// ABOUTME: Ellipses are sampled polygons joined by lines and closed into a loop

package raster

import "math"

// DefaultEllipsePoints is the sample count used when an Ellipse does not
// specify a usable one.
const DefaultEllipsePoints = 32

// Line is a segment between two points.
type Line struct {
	X1, Y1, X2, Y2 float64
}

// Rasterize steps max(|dx|, |dy|) times from the start to the end point.
func (l Line) Rasterize(plot func(x, y int)) {
	dx := l.X2 - l.X1
	dy := l.Y2 - l.Y1
	steps := math.Max(math.Abs(dx), math.Abs(dy))
	if steps == 0 {
		plotRounded(plot, l.X1, l.Y1)
		return
	}

	xInc, yInc := dx/steps, dy/steps
	x, y := l.X1, l.Y1
	for range round(steps) + 1 {
		plotRounded(plot, x, y)
		x += xInc
		y += yInc
	}
}

// Transform maps both endpoints.
func (l Line) Transform(f Transform) Drawable {
	a := f(Point{l.X1, l.Y1})
	b := f(Point{l.X2, l.Y2})
	return Line{X1: a.X, Y1: a.Y, X2: b.X, Y2: b.Y}
}

func plotRounded(plot func(x, y int), x, y float64) {
	px, py := round(x), round(y)
	if px < 0 || py < 0 {
		return
	}
	plot(px, py)
}

// Rectangle is an axis-aligned box between two corners.
type Rectangle struct {
	X1, Y1, X2, Y2 float64
	Filled         bool
}

// Rasterize draws the border, or every column when Filled.
func (r Rectangle) Rasterize(plot func(x, y int)) {
	if !r.Filled {
		for _, edge := range r.edges() {
			edge.Rasterize(plot)
		}
		return
	}
	from, to := round(r.X1), round(r.X2)
	if from > to {
		from, to = to, from
	}
	for x := from; x <= to; x++ {
		Line{X1: float64(x), Y1: r.Y1, X2: float64(x), Y2: r.Y2}.Rasterize(plot)
	}
}

func (r Rectangle) edges() [4]Line {
	return [4]Line{
		{X1: r.X1, Y1: r.Y1, X2: r.X2, Y2: r.Y1},
		{X1: r.X2, Y1: r.Y1, X2: r.X2, Y2: r.Y2},
		{X1: r.X2, Y1: r.Y2, X2: r.X1, Y2: r.Y2},
		{X1: r.X1, Y1: r.Y2, X2: r.X1, Y2: r.Y1},
	}
}

// Transform maps both corners. The result stays axis-aligned.
func (r Rectangle) Transform(f Transform) Drawable {
	a := f(Point{r.X1, r.Y1})
	b := f(Point{r.X2, r.Y2})
	return Rectangle{X1: a.X, Y1: a.Y, X2: b.X, Y2: b.Y, Filled: r.Filled}
}

// Ellipse is described by its center and two conjugate semi-axis
// vectors: points are Center + U·cos θ + V·sin θ.
type Ellipse struct {
	Center Point
	U, V   Point
	Points int
}

// Circle returns an ellipse with equal radii along the axes.
func Circle(cx, cy, r float64) Ellipse {
	return Ellipse{Center: Point{cx, cy}, U: Point{X: r}, V: Point{Y: r}}
}

// AxisEllipse returns an ellipse with radii rx and ry along the axes.
func AxisEllipse(cx, cy, rx, ry float64) Ellipse {
	return Ellipse{Center: Point{cx, cy}, U: Point{X: rx}, V: Point{Y: ry}}
}

// Vertices returns the sampled polygon, each vertex rounded to a pixel.
func (e Ellipse) Vertices() []Point {
	n := e.Points
	if n < 3 {
		n = DefaultEllipsePoints
	}
	out := make([]Point, n)
	for i := range out {
		sin, cos := math.Sincos(2 * math.Pi * float64(i) / float64(n))
		out[i] = Point{
			X: math.Round(e.Center.X + e.U.X*cos + e.V.X*sin),
			Y: math.Round(e.Center.Y + e.U.Y*cos + e.V.Y*sin),
		}
	}
	return out
}

// Rasterize joins consecutive vertices and closes the loop.
func (e Ellipse) Rasterize(plot func(x, y int)) {
	vs := e.Vertices()
	for i, a := range vs {
		b := vs[(i+1)%len(vs)]
		Line{X1: a.X, Y1: a.Y, X2: b.X, Y2: b.Y}.Rasterize(plot)
	}
}

// Transform maps the center and the two axis end points, then rebuilds
// the axis vectors, so affine transforms map the ellipse exactly.
func (e Ellipse) Transform(f Transform) Drawable {
	c := f(e.Center)
	u := f(Point{e.Center.X + e.U.X, e.Center.Y + e.U.Y})
	v := f(Point{e.Center.X + e.V.X, e.Center.Y + e.V.Y})
	return Ellipse{
		Center: c,
		U:      Point{u.X - c.X, u.Y - c.Y},
		V:      Point{v.X - c.X, v.Y - c.Y},
		Points: e.Points,
	}
}

// Polyline joins consecutive points with lines, optionally closing the loop.
type Polyline struct {
	Points []Point
	Closed bool
}

// Rasterize draws each segment in order.
func (p Polyline) Rasterize(plot func(x, y int)) {
	if len(p.Points) == 1 {
		plotRounded(plot, p.Points[0].X, p.Points[0].Y)
		return
	}
	for i := 0; i+1 < len(p.Points); i++ {
		a, b := p.Points[i], p.Points[i+1]
		Line{X1: a.X, Y1: a.Y, X2: b.X, Y2: b.Y}.Rasterize(plot)
	}
	if p.Closed && len(p.Points) > 2 {
		a, b := p.Points[len(p.Points)-1], p.Points[0]
		Line{X1: a.X, Y1: a.Y, X2: b.X, Y2: b.Y}.Rasterize(plot)
	}
}

// Transform maps every point.
func (p Polyline) Transform(f Transform) Drawable {
	out := Polyline{Points: make([]Point, len(p.Points)), Closed: p.Closed}
	for i, pt := range p.Points {
		out.Points[i] = f(pt)
	}
	return out
}
