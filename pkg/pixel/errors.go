// ABOUTME: Sentinel and typed errors for sub-pixel addressing and block construction
// ABOUTME: Typed errors unwrap to sentinels so callers can match with errors.Is

package pixel

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgumentCount reports a value count that does not match
	// the capacity of a block or surface.
	ErrInvalidArgumentCount = errors.New("invalid number of arguments")
	// ErrCoordinatesOutOfBounds reports an address outside a block or surface.
	ErrCoordinatesOutOfBounds = errors.New("coordinates out of bounds")
	// ErrControlCharacter reports a control character where a printable
	// glyph is required.
	ErrControlCharacter = errors.New("control character")
)

// BoundsError carries the offending coordinate and the valid extent.
type BoundsError struct {
	X, Y          int
	Width, Height int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("coordinates (%d, %d) out of bounds for %dx%d", e.X, e.Y, e.Width, e.Height)
}

func (e *BoundsError) Unwrap() error { return ErrCoordinatesOutOfBounds }

// CheckBounds returns a *BoundsError when (x, y) falls outside a
// width×height grid.
func CheckBounds(x, y, width, height int) error {
	if x < 0 || y < 0 || x >= width || y >= height {
		return &BoundsError{X: x, Y: y, Width: width, Height: height}
	}
	return nil
}

// CountError reports how many values were supplied and how many fit.
type CountError struct {
	Got, Want int
}

func (e *CountError) Error() string {
	return fmt.Sprintf("invalid number of arguments: got %d, want %d", e.Got, e.Want)
}

func (e *CountError) Unwrap() error { return ErrInvalidArgumentCount }
