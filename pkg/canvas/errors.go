// ABOUTME: Errors raised while constructing canvases or laying out text cells
// ABOUTME: DimensionsError unwraps to ErrDimensionsNotMultipleOfBlockSize

package canvas

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionsNotMultipleOfBlockSize reports a canvas size that does
	// not tile into whole blocks.
	ErrDimensionsNotMultipleOfBlockSize = errors.New("dimensions not a multiple of block size")
	// ErrMalformedCharacterData reports a wide character that would span
	// two rows.
	ErrMalformedCharacterData = errors.New("malformed character data: character spans multiple rows")
)

// DimensionsError carries the rejected size and the block shape.
type DimensionsError struct {
	Width, Height           int
	BlockWidth, BlockHeight int
}

func (e *DimensionsError) Error() string {
	return fmt.Sprintf("canvas %dx%d is not a positive multiple of block %dx%d",
		e.Width, e.Height, e.BlockWidth, e.BlockHeight)
}

func (e *DimensionsError) Unwrap() error { return ErrDimensionsNotMultipleOfBlockSize }
