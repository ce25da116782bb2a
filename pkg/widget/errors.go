// ABOUTME: Sentinel and typed errors for widget composition and UV addressing
// ABOUTME: MismatchError and UVError unwrap to their sentinels for errors.Is matching

package widget

import (
	"errors"
	"fmt"
)

var (
	// ErrDimensionMismatch reports children whose character sizes cannot
	// be composed.
	ErrDimensionMismatch = errors.New("widget dimensions mismatch")
	// ErrUVOutOfBounds reports a UV coordinate outside the configured bounds.
	ErrUVOutOfBounds = errors.New("uv coordinates out of bounds")
)

// MismatchError carries the character sizes of both children.
type MismatchError struct {
	Op              string
	Width1, Height1 int
	Width2, Height2 int
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%s: %dx%d and %dx%d: %v",
		e.Op, e.Width1, e.Height1, e.Width2, e.Height2, ErrDimensionMismatch)
}

func (e *MismatchError) Unwrap() error { return ErrDimensionMismatch }

func mismatch(op string, a, b Widget) *MismatchError {
	return &MismatchError{
		Op:     op,
		Width1: a.WidthCharacters(), Height1: a.HeightCharacters(),
		Width2: b.WidthCharacters(), Height2: b.HeightCharacters(),
	}
}

// UVError carries the rejected coordinate and the bounds it missed.
type UVError struct {
	U, V       float64
	XMin, XMax float64
	YMin, YMax float64
}

func (e *UVError) Error() string {
	return fmt.Sprintf("uv (%g, %g) outside x [%g, %g] y [%g, %g]",
		e.U, e.V, e.XMin, e.XMax, e.YMin, e.YMax)
}

func (e *UVError) Unwrap() error { return ErrUVOutOfBounds }
