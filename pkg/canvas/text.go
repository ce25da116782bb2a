// ABOUTME: Text is a character-addressed surface of colored graphemes
// ABOUTME: Wide graphemes own two columns; the second column is a continuation slot

package canvas

import (
	"fmt"

	"github.com/mauromedda/termpix/internal/pool"
	"github.com/mauromedda/termpix/pkg/color"
	"github.com/mauromedda/termpix/pkg/pixel"
	"github.com/mauromedda/termpix/pkg/width"
)

type textSlot struct {
	ch           pixel.Character
	continuation bool
}

// Text is a grid of characters. Width and height are counted in
// terminal columns and rows.
type Text struct {
	width  int
	height int
	slots  []textSlot
}

// NewText returns a cols×rows surface of blank characters.
func NewText(cols, rows int) (*Text, error) {
	if cols <= 0 || rows <= 0 {
		return nil, &DimensionsError{Width: cols, Height: rows, BlockWidth: 1, BlockHeight: 1}
	}
	return &Text{width: cols, height: rows, slots: make([]textSlot, cols*rows)}, nil
}

// TextFromData lays characters out row-major, giving wide characters two
// columns. The laid-out columns must fill the surface exactly and no
// wide character may straddle a row end.
func TextFromData(cols, rows int, data []pixel.Character) (*Text, error) {
	t, err := NewText(cols, rows)
	if err != nil {
		return nil, err
	}
	slot := 0
	for _, ch := range data {
		w := ch.Width()
		if slot < len(t.slots) {
			if slot%cols+w > cols {
				return nil, fmt.Errorf("character %q at column %d: %w", ch.Glyph(), slot%cols, ErrMalformedCharacterData)
			}
			t.slots[slot] = textSlot{ch: ch}
			if w == 2 {
				t.slots[slot+1] = textSlot{ch: ch, continuation: true}
			}
		}
		slot += w
	}
	if slot != len(t.slots) {
		return nil, &pixel.CountError{Got: slot, Want: len(t.slots)}
	}
	return t, nil
}

// TextFromString splits s into grapheme clusters and lays them out with
// the given colors.
func TextFromString(cols, rows int, s string, fg, bg color.Color) (*Text, error) {
	var data []pixel.Character
	for cluster := range width.Clusters(s) {
		ch, err := pixel.NewCharacter(cluster, fg, bg)
		if err != nil {
			return nil, err
		}
		data = append(data, ch)
	}
	return TextFromData(cols, rows, data)
}

// Width returns the number of columns.
func (t *Text) Width() int { return t.width }

// Height returns the number of rows.
func (t *Text) Height() int { return t.height }

// WidthCharacters returns the number of columns.
func (t *Text) WidthCharacters() int { return t.width }

// HeightCharacters returns the number of rows.
func (t *Text) HeightCharacters() int { return t.height }

// Pixel returns the character covering column x of row y. Both columns
// of a wide character report that character.
func (t *Text) Pixel(x, y int) (pixel.Character, error) {
	if err := pixel.CheckBounds(x, y, t.width, t.height); err != nil {
		return pixel.Character{}, err
	}
	return t.slots[x+y*t.width].ch, nil
}

// SetPixel writes ch at column x of row y. Any wide character partially
// overwritten leaves a blank in its remaining column.
func (t *Text) SetPixel(x, y int, ch pixel.Character) error {
	if err := pixel.CheckBounds(x, y, t.width, t.height); err != nil {
		return err
	}
	w := ch.Width()
	if x+w > t.width {
		return fmt.Errorf("character %q at column %d: %w", ch.Glyph(), x, ErrMalformedCharacterData)
	}
	i := x + y*t.width
	for col := i; col < i+w; col++ {
		t.detach(col, y)
	}
	t.slots[i] = textSlot{ch: ch}
	if w == 2 {
		t.slots[i+1] = textSlot{ch: ch, continuation: true}
	}
	return nil
}

// detach blanks the other half of a wide character occupying slot i.
func (t *Text) detach(i, row int) {
	s := t.slots[i]
	if s.ch.Width() != 2 {
		return
	}
	blank := pixel.Character{Foreground: s.ch.Foreground, Background: s.ch.Background}
	switch {
	case s.continuation && i > row*t.width:
		t.slots[i-1] = textSlot{ch: blank}
	case !s.continuation && i+1 < (row+1)*t.width:
		t.slots[i+1] = textSlot{ch: blank}
	}
	t.slots[i] = textSlot{ch: blank}
}

// Fill sets every column to ch, which must be a single-column character.
func (t *Text) Fill(ch pixel.Character) error {
	if ch.Width() != 1 {
		return fmt.Errorf("fill character %q: %w", ch.Glyph(), ErrMalformedCharacterData)
	}
	for i := range t.slots {
		t.slots[i] = textSlot{ch: ch}
	}
	return nil
}

// WriteString writes s starting at (x, y) and returns the column after
// the last character written. Characters past the row end are dropped.
func (t *Text) WriteString(x, y int, s string, fg, bg color.Color) (int, error) {
	for cluster := range width.Clusters(s) {
		ch, err := pixel.NewCharacter(cluster, fg, bg)
		if err != nil {
			return x, err
		}
		if x+ch.Width() > t.width {
			break
		}
		if err := t.SetPixel(x, y, ch); err != nil {
			return x, err
		}
		x += ch.Width()
	}
	return x, nil
}

// Clone returns an independent copy of t.
func (t *Text) Clone() *Text {
	out := &Text{width: t.width, height: t.height, slots: make([]textSlot, len(t.slots))}
	copy(out.slots, t.slots)
	return out
}

// Cells returns each row's cells, skipping continuation columns.
func (t *Text) Cells() [][]pixel.Cell {
	rows := make([][]pixel.Cell, t.height)
	for r := range rows {
		row := make([]pixel.Cell, 0, t.width)
		for _, s := range t.slots[r*t.width : (r+1)*t.width] {
			if !s.continuation {
				row = append(row, s.ch.Cell())
			}
		}
		rows[r] = row
	}
	return rows
}

// String serializes the surface as a terminal frame.
func (t *Text) String() string {
	sb := pool.Builder()
	defer pool.Release(sb)

	for i, s := range t.slots {
		if i > 0 && i%t.width == 0 {
			sb.WriteString(LineBreak)
		}
		if !s.continuation {
			sb.WriteString(s.ch.String())
		}
	}
	return sb.String()
}
