// ABOUTME: Defines the Terminal interface for raw mode, size queries, and output
// ABOUTME: Also holds the control sequences the display driver writes around frames

package terminal

import "strconv"

// Terminal abstracts low-level terminal operations: raw mode,
// size queries, output writing, and resize notifications.
type Terminal interface {
	EnterRawMode() error
	ExitRawMode() error
	Size() (width, height int, err error)
	Write(p []byte) (n int, err error)
	OnResize(fn func(width, height int))
}

// Control sequences.
const (
	AltScreenOn  = "\x1b[?1049h"
	AltScreenOff = "\x1b[?1049l"
	WrapOff      = "\x1b[?7l"
	WrapOn       = "\x1b[?7h"
	Clear        = "\x1b[2J"
	HideCursor   = "\x1b[?25l"
	ShowCursor   = "\x1b[?25h"
	Home         = "\x1b[H"
	SyncStart    = "\x1b[?2026h"
	SyncEnd      = "\x1b[?2026l"
)

// ResizeWindow asks the emulator to resize its window to cols×rows cells.
func ResizeWindow(cols, rows int) string {
	return "\x1b[8;" + strconv.Itoa(rows) + ";" + strconv.Itoa(cols) + "t"
}

// restoreSequence undoes every mode the driver may have set.
const restoreSequence = ShowCursor + WrapOn + AltScreenOff
