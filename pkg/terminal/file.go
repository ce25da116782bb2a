// ABOUTME: FileTerminal implements Terminal over a pair of TTY files using golang.org/x/term
// ABOUTME: Raw mode applies to the input file; size queries and writes use the output file

package terminal

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/term"
)

// FileTerminal is a real terminal backed by an input and an output file.
type FileTerminal struct {
	in  *os.File
	out *os.File

	mu         sync.Mutex
	oldState   *term.State
	resizeFn   func(width, height int)
	listenOnce sync.Once
}

// NewFileTerminal returns a terminal reading from in and writing to out.
func NewFileTerminal(in, out *os.File) *FileTerminal {
	return &FileTerminal{in: in, out: out}
}

// NewProcessTerminal returns a terminal on the process's stdin and stdout.
func NewProcessTerminal() *FileTerminal {
	return NewFileTerminal(os.Stdin, os.Stdout)
}

// Input returns the file keyboard input arrives on.
func (t *FileTerminal) Input() *os.File { return t.in }

// IsTerminal reports whether both files are TTYs.
func (t *FileTerminal) IsTerminal() bool {
	return term.IsTerminal(int(t.in.Fd())) && term.IsTerminal(int(t.out.Fd()))
}

// EnterRawMode switches the input to raw mode, saving the previous state.
// Calling it while already raw is a no-op.
func (t *FileTerminal) EnterRawMode() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.oldState != nil {
		return nil
	}
	state, err := term.MakeRaw(int(t.in.Fd()))
	if err != nil {
		return fmt.Errorf("entering raw mode: %w", err)
	}
	t.oldState = state
	return nil
}

// ExitRawMode restores the state saved by EnterRawMode.
func (t *FileTerminal) ExitRawMode() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.oldState == nil {
		return nil
	}
	if err := term.Restore(int(t.in.Fd()), t.oldState); err != nil {
		return fmt.Errorf("exiting raw mode: %w", err)
	}
	t.oldState = nil
	return nil
}

// Size returns the current terminal dimensions in cells.
func (t *FileTerminal) Size() (width, height int, err error) {
	w, h, err := term.GetSize(int(t.out.Fd()))
	if err != nil {
		return 0, 0, fmt.Errorf("getting terminal size: %w", err)
	}
	return w, h, nil
}

// Write sends bytes to the output file.
func (t *FileTerminal) Write(p []byte) (int, error) {
	n, err := t.out.Write(p)
	if err != nil {
		return n, fmt.Errorf("writing to terminal: %w", err)
	}
	return n, nil
}

// OnResize registers a callback invoked when the terminal is resized.
func (t *FileTerminal) OnResize(fn func(width, height int)) {
	t.mu.Lock()
	t.resizeFn = fn
	t.mu.Unlock()

	t.listenOnce.Do(t.startResizeListener)
}

func (t *FileTerminal) notifyResize() {
	t.mu.Lock()
	fn := t.resizeFn
	t.mu.Unlock()
	if fn == nil {
		return
	}
	w, h, err := t.Size()
	if err != nil {
		return
	}
	fn(w, h)
}
