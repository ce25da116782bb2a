// ABOUTME: Block shapes: how many sub-pixels a terminal cell packs and which glyph draws each pattern
// ABOUTME: Shapes are zero-size types so dimensions and tables resolve at compile time

package pixel

// Shape describes a block layout. The set of shapes is closed; each one
// has a glyph for every on/off combination of its sub-pixels.
type Shape interface {
	// Dims returns the sub-pixel columns and rows packed into one cell.
	Dims() (width, height int)
	// Glyph returns the character depicting pattern, where bit i is the
	// i-th sub-pixel in row-major order.
	Glyph(pattern uint8) rune
	// Name is the lowercase shape name used in configuration.
	Name() string

	decode(r rune) (uint8, bool)
}

// Single packs one sub-pixel per cell.
type Single struct{}

// Dual packs a column of two sub-pixels using half blocks.
type Dual struct{}

// Quad packs 2×2 sub-pixels using quadrant blocks.
type Quad struct{}

// Sextant packs 2×3 sub-pixels using sextant blocks.
type Sextant struct{}

// Octant packs 2×4 sub-pixels using octant blocks.
type Octant struct{}

// Braille packs 2×4 sub-pixels using braille dots. Braille renders
// more widely than octants but leaves gaps between dots.
type Braille struct{}

func (Single) Dims() (int, int)  { return 1, 1 }
func (Dual) Dims() (int, int)    { return 1, 2 }
func (Quad) Dims() (int, int)    { return 2, 2 }
func (Sextant) Dims() (int, int) { return 2, 3 }
func (Octant) Dims() (int, int)  { return 2, 4 }
func (Braille) Dims() (int, int) { return 2, 4 }

func (Single) Glyph(p uint8) rune  { return singleGlyphs[p&0x01] }
func (Dual) Glyph(p uint8) rune    { return dualGlyphs[p&0x03] }
func (Quad) Glyph(p uint8) rune    { return quadGlyphs[p&0x0f] }
func (Sextant) Glyph(p uint8) rune { return sextantGlyphs[p&0x3f] }
func (Octant) Glyph(p uint8) rune  { return octantGlyphs[p] }
func (Braille) Glyph(p uint8) rune { return brailleGlyphs[p] }

func (Single) Name() string  { return "single" }
func (Dual) Name() string    { return "dual" }
func (Quad) Name() string    { return "quad" }
func (Sextant) Name() string { return "sextant" }
func (Octant) Name() string  { return "octant" }
func (Braille) Name() string { return "braille" }

var (
	singleIndex  = invert(singleGlyphs[:])
	dualIndex    = invert(dualGlyphs[:])
	quadIndex    = invert(quadGlyphs[:])
	sextantIndex = invert(sextantGlyphs[:])
	octantIndex  = invert(octantGlyphs[:])
	brailleIndex = invert(brailleGlyphs[:])
)

func (Single) decode(r rune) (uint8, bool)  { return lookup(singleIndex, r) }
func (Dual) decode(r rune) (uint8, bool)    { return lookup(dualIndex, r) }
func (Quad) decode(r rune) (uint8, bool)    { return lookup(quadIndex, r) }
func (Sextant) decode(r rune) (uint8, bool) { return lookup(sextantIndex, r) }
func (Octant) decode(r rune) (uint8, bool)  { return lookup(octantIndex, r) }
func (Braille) decode(r rune) (uint8, bool) { return lookup(brailleIndex, r) }

// Decode returns the sub-pixel pattern that S draws as r.
func Decode[S Shape](r rune) (uint8, bool) {
	var s S
	return s.decode(r)
}

// Size returns the sub-pixel dimensions of S.
func Size[S Shape]() (width, height int) {
	var s S
	return s.Dims()
}

// Shapes lists every shape, smallest first.
func Shapes() []Shape {
	return []Shape{Single{}, Dual{}, Quad{}, Sextant{}, Octant{}, Braille{}}
}

func invert(table []rune) map[rune]uint8 {
	m := make(map[rune]uint8, len(table))
	for i, r := range table {
		m[r] = uint8(i)
	}
	return m
}

func lookup(m map[rune]uint8, r rune) (uint8, bool) {
	p, ok := m[r]
	return p, ok
}
