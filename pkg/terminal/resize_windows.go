// ABOUTME: Windows stub for FileTerminal resize handling
// ABOUTME: Windows consoles do not deliver SIGWINCH

//go:build windows

package terminal

// startResizeListener is a no-op on Windows.
// TODO: poll GetConsoleScreenBufferInfo from the frame loop to detect resizes.
func (t *FileTerminal) startResizeListener() {}
