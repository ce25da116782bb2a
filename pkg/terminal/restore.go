// ABOUTME: Panic guards that hand the terminal back in cooked mode with the cursor visible
// ABOUTME: RestoreOnPanic exits the process; RecoverGoroutine only reports and returns

package terminal

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
)

// RestoreOnPanic is deferred by the goroutine that owns the terminal. On
// panic it restores t, reports the panic, and exits with status 1.
func RestoreOnPanic(t Terminal) {
	if r := recover(); r != nil {
		report(t, "panic", r)
		os.Exit(1)
	}
}

// RecoverGoroutine is deferred by helper goroutines such as the input
// pump. It restores t and swallows the panic.
func RecoverGoroutine(t Terminal) {
	if r := recover(); r != nil {
		report(t, "goroutine panic", r)
	}
}

// Restore shows the cursor, re-enables wrapping, leaves the alternate
// screen, and exits raw mode. Errors are ignored; the terminal may be the
// thing that failed.
func Restore(t Terminal) {
	_, _ = io.WriteString(t, restoreSequence)
	_ = t.ExitRawMode()
}

func report(t Terminal, label string, r any) {
	Restore(t)
	fmt.Fprintf(os.Stderr, "\n%s: %v\n\n%s\n", label, r, debug.Stack())
}
