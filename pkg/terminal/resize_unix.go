// ABOUTME: Unix SIGWINCH handling for FileTerminal resize events
// ABOUTME: One goroutine per terminal forwards window-size signals to the callback

//go:build unix

package terminal

import (
	"os"
	"os/signal"
	"syscall"
)

func (t *FileTerminal) startResizeListener() {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGWINCH)

	go func() {
		defer RecoverGoroutine(t)
		for range sigCh {
			t.notifyResize()
		}
	}()
}
