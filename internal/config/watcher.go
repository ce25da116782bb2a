// ABOUTME: Polling file watcher used to hot-reload config and palette files
// ABOUTME: Compares mtimes every interval until its context is cancelled

package config

import (
	"context"
	"os"
	"time"
)

// DefaultWatchInterval is the polling period when none is set.
const DefaultWatchInterval = time.Second

// Watcher reports changes to a fixed set of files.
type Watcher struct {
	paths    []string
	interval time.Duration
	mtimes   map[string]time.Time
}

// NewWatcher returns a watcher over paths. Empty paths are ignored.
func NewWatcher(paths ...string) *Watcher {
	w := &Watcher{interval: DefaultWatchInterval, mtimes: make(map[string]time.Time)}
	for _, p := range paths {
		if p != "" {
			w.paths = append(w.paths, p)
		}
	}
	w.snapshot()
	return w
}

// SetInterval overrides the polling period. Call before Run.
func (w *Watcher) SetInterval(d time.Duration) {
	if d > 0 {
		w.interval = d
	}
}

// Run calls onChange with the changed path whenever a file is created,
// modified, or removed, until ctx is cancelled.
func (w *Watcher) Run(ctx context.Context, onChange func(path string)) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			for _, path := range w.Check() {
				onChange(path)
			}
		}
	}
}

// Check returns the paths changed since the previous check.
func (w *Watcher) Check() []string {
	var changed []string
	for _, path := range w.paths {
		prev, existed := w.mtimes[path]
		info, err := os.Stat(path)
		switch {
		case err != nil && existed:
			delete(w.mtimes, path)
			changed = append(changed, path)
		case err != nil:
		case !existed || !info.ModTime().Equal(prev):
			w.mtimes[path] = info.ModTime()
			changed = append(changed, path)
		}
	}
	return changed
}

func (w *Watcher) snapshot() {
	for _, path := range w.paths {
		if info, err := os.Stat(path); err == nil {
			w.mtimes[path] = info.ModTime()
		}
	}
}
