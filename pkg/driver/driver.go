// ABOUTME: Display driver: owns terminal modes and runs the fixed-rate frame loop for a root widget
// ABOUTME: Input pump and frame loop run under an errgroup; frames use CSI 2026 synchronized output

package driver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mauromedda/termpix/internal/log"
	"github.com/mauromedda/termpix/internal/pool"
	"github.com/mauromedda/termpix/pkg/key"
	"github.com/mauromedda/termpix/pkg/terminal"
	"github.com/mauromedda/termpix/pkg/widget"
)

// DefaultFrameRate is the target frames per second when none is given.
const DefaultFrameRate = 30

// ErrUpdateType reports a WithUpdate callback written for a different
// root widget type.
var ErrUpdateType = errors.New("update function does not match root widget type")

// Action tells the frame loop whether to keep going.
type Action int

const (
	Continue Action = iota
	Stop
)

// UpdateFunc mutates the root once per frame. ev is the latest key
// event since the previous frame, or nil.
type UpdateFunc[W widget.Widget] func(root W, ev *key.Event) Action

type settings struct {
	frameRate int
	input     io.Reader
	update    any
}

// Option configures a Driver.
type Option func(*settings)

// WithFrameRate sets the target frames per second. Non-positive values
// select DefaultFrameRate.
func WithFrameRate(fps int) Option {
	return func(s *settings) { s.frameRate = fps }
}

// WithInput sets the reader keyboard input is parsed from.
func WithInput(r io.Reader) Option {
	return func(s *settings) { s.input = r }
}

// WithUpdate sets the per-frame callback.
func WithUpdate[W widget.Widget](fn UpdateFunc[W]) Option {
	return func(s *settings) { s.update = fn }
}

// Driver presents a root widget on a terminal.
type Driver[W widget.Widget] struct {
	term     terminal.Terminal
	root     W
	update   UpdateFunc[W]
	input    io.Reader
	interval time.Duration

	mu          sync.Mutex
	initialized bool
	closed      bool
	origW       int
	origH       int

	resized atomic.Bool
	frames  atomic.Int64
}

// New returns a driver for root on term.
func New[W widget.Widget](term terminal.Terminal, root W, opts ...Option) (*Driver[W], error) {
	s := settings{frameRate: DefaultFrameRate}
	for _, opt := range opts {
		opt(&s)
	}
	if s.frameRate <= 0 {
		s.frameRate = DefaultFrameRate
	}

	d := &Driver[W]{
		term:     term,
		root:     root,
		input:    s.input,
		interval: time.Second / time.Duration(s.frameRate),
	}
	if s.update != nil {
		fn, ok := s.update.(UpdateFunc[W])
		if !ok {
			return nil, fmt.Errorf("%w: got %T", ErrUpdateType, s.update)
		}
		d.update = fn
	}
	return d, nil
}

// Widget returns the root widget.
func (d *Driver[W]) Widget() W { return d.root }

// Frames returns how many frames have been printed.
func (d *Driver[W]) Frames() int64 { return d.frames.Load() }

// Initialize enters raw mode, switches to the alternate screen, sizes
// the window to the root widget, disables wrapping, clears, and hides
// the cursor.
func (d *Driver[W]) Initialize() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.initialized {
		return nil
	}
	if err := d.term.EnterRawMode(); err != nil {
		return fmt.Errorf("initializing driver: %w", err)
	}
	d.origW, d.origH, _ = d.term.Size()

	cols, rows := d.root.WidthCharacters(), d.root.HeightCharacters()
	seq := terminal.AltScreenOn + terminal.ResizeWindow(cols, rows) +
		terminal.WrapOff + terminal.Clear + terminal.HideCursor
	if _, err := d.term.Write([]byte(seq)); err != nil {
		_ = d.term.ExitRawMode()
		return fmt.Errorf("initializing driver: %w", err)
	}

	d.term.OnResize(func(w, h int) {
		log.Debug("terminal resized", "cols", w, "rows", h)
		d.resized.Store(true)
	})
	d.initialized = true
	log.Debug("driver initialized", "cols", cols, "rows", rows, "interval", d.interval)
	return nil
}

// Close undoes Initialize in reverse order. Only the first call after
// Initialize has any effect.
func (d *Driver[W]) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.initialized || d.closed {
		return nil
	}
	d.closed = true

	seq := terminal.ShowCursor + terminal.WrapOn
	if d.origW > 0 && d.origH > 0 {
		seq += terminal.ResizeWindow(d.origW, d.origH)
	}
	seq += terminal.AltScreenOff
	_, werr := d.term.Write([]byte(seq))
	rerr := d.term.ExitRawMode()

	log.Debug("driver closed", "frames", d.frames.Load())
	if err := errors.Join(werr, rerr); err != nil {
		return fmt.Errorf("closing driver: %w", err)
	}
	return nil
}

// PrintFrame writes the root widget as one synchronized frame.
func (d *Driver[W]) PrintFrame() error {
	sb := pool.Builder()
	defer pool.Release(sb)

	sb.WriteString(terminal.SyncStart)
	if d.resized.Swap(false) {
		sb.WriteString(terminal.Clear)
	}
	sb.WriteString(terminal.Home)
	sb.WriteString(d.root.String())
	sb.WriteString(terminal.SyncEnd)

	if _, err := d.term.Write([]byte(sb.String())); err != nil {
		return fmt.Errorf("printing frame: %w", err)
	}
	d.frames.Add(1)
	return nil
}

// errStopped ends the errgroup when the loop finishes normally.
var errStopped = errors.New("driver stopped")

// Run prints frames at the target rate until the update function
// returns Stop, Ctrl-C is pressed, or ctx is cancelled; those cases
// return nil. Write and input errors are returned, as is a panic in the
// update function, after the terminal has been restored.
func (d *Driver[W]) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	events := make(chan key.Event, 64)

	if d.input != nil {
		g.Go(func() error {
			defer terminal.RecoverGoroutine(d.term)
			return pump(ctx, d.input, events)
		})
	}
	g.Go(func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				terminal.Restore(d.term)
				err = fmt.Errorf("frame loop panic: %v", r)
			}
		}()
		return d.loop(ctx, events)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, errStopped) {
		return err
	}
	return nil
}

func (d *Driver[W]) loop(ctx context.Context, events <-chan key.Event) error {
	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-timer.C:
		}
		start := time.Now()

		if err := d.PrintFrame(); err != nil {
			return err
		}

		ev, interrupted := drain(events)
		if interrupted {
			log.Debug("interrupted by Ctrl-C")
			return errStopped
		}
		if d.update != nil && d.update(d.root, ev) == Stop {
			return errStopped
		}

		elapsed := time.Since(start)
		if elapsed > d.interval {
			log.Debug("slow frame", "frame", d.frames.Load(), "elapsed", elapsed, "budget", d.interval)
		}
		timer.Reset(max(0, d.interval-elapsed))
	}
}

// drain empties events without blocking and returns the latest one.
// interrupted reports whether any of them was Ctrl-C.
func drain(events <-chan key.Event) (latest *key.Event, interrupted bool) {
	for {
		select {
		case ev := <-events:
			if ev.Type == key.CtrlC {
				interrupted = true
			}
			latest = &ev
		default:
			return latest, interrupted
		}
	}
}

type readResult struct {
	data string
	err  error
}

// pump parses input into events until ctx ends or the reader fails. A
// read blocked in the reader outlives pump until it returns.
func pump(ctx context.Context, r io.Reader, events chan<- key.Event) error {
	reads := make(chan readResult)
	go func() {
		buf := make([]byte, 256)
		for {
			n, err := r.Read(buf)
			select {
			case reads <- readResult{data: string(buf[:n]), err: err}:
			case <-ctx.Done():
				return
			}
			if err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case rr := <-reads:
			for _, seq := range key.Split(rr.data) {
				select {
				case events <- key.Parse(seq):
				case <-ctx.Done():
					return nil
				}
			}
			if errors.Is(rr.err, io.EOF) {
				return nil
			}
			if rr.err != nil {
				return fmt.Errorf("reading input: %w", rr.err)
			}
		}
	}
}
