// ABOUTME: In-memory Terminal for driver tests: records output, raw-mode transitions, and frames
// ABOUTME: SetSize simulates a window resize by firing the registered callback

package terminal

import (
	"strings"
	"sync"
)

// RawState summarises raw-mode activity on a VirtualTerminal.
type RawState struct {
	Active bool
	Enters int
	Exits  int
}

// VirtualTerminal is a Terminal backed by memory.
type VirtualTerminal struct {
	mu       sync.Mutex
	out      strings.Builder
	cols     int
	rows     int
	raw      RawState
	onResize func(cols, rows int)
}

// NewVirtualTerminal returns a terminal of cols×rows cells.
func NewVirtualTerminal(cols, rows int) *VirtualTerminal {
	return &VirtualTerminal{cols: cols, rows: rows}
}

func (v *VirtualTerminal) EnterRawMode() error {
	v.mu.Lock()
	v.raw.Active = true
	v.raw.Enters++
	v.mu.Unlock()
	return nil
}

func (v *VirtualTerminal) ExitRawMode() error {
	v.mu.Lock()
	v.raw.Active = false
	v.raw.Exits++
	v.mu.Unlock()
	return nil
}

func (v *VirtualTerminal) Size() (cols, rows int, err error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.cols, v.rows, nil
}

func (v *VirtualTerminal) Write(p []byte) (int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.out.Write(p)
}

func (v *VirtualTerminal) OnResize(fn func(cols, rows int)) {
	v.mu.Lock()
	v.onResize = fn
	v.mu.Unlock()
}

// Raw returns a snapshot of raw-mode activity.
func (v *VirtualTerminal) Raw() RawState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.raw
}

// Output returns everything written since creation or the last Reset.
func (v *VirtualTerminal) Output() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.out.String()
}

// Reset discards recorded output.
func (v *VirtualTerminal) Reset() {
	v.mu.Lock()
	v.out.Reset()
	v.mu.Unlock()
}

// Frames splits the output into synchronized frames and returns each
// body with its leading Home (and Clear, if present) removed. An
// unterminated trailing frame is ignored.
func (v *VirtualTerminal) Frames() []string {
	chunks := strings.Split(v.Output(), SyncStart)
	frames := make([]string, 0, len(chunks)-1)
	for _, chunk := range chunks[1:] {
		end := strings.Index(chunk, SyncEnd)
		if end < 0 {
			continue
		}
		body := strings.TrimPrefix(chunk[:end], Clear)
		frames = append(frames, strings.TrimPrefix(body, Home))
	}
	return frames
}

// SetSize changes the reported size and notifies the resize callback.
func (v *VirtualTerminal) SetSize(cols, rows int) {
	v.mu.Lock()
	v.cols, v.rows = cols, rows
	fn := v.onResize
	v.mu.Unlock()

	if fn != nil {
		fn(cols, rows)
	}
}
