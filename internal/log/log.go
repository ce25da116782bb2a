// ABOUTME: Process-wide structured logging on a slog text handler with an adjustable level
// ABOUTME: Writes to stderr by default; SetOutput redirects while the alternate screen owns stdout

package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync/atomic"
)

// Level constants matching slog levels.
const (
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
)

var (
	level  slog.LevelVar
	logger atomic.Pointer[slog.Logger]
)

func init() {
	level.Set(LevelInfo)
	SetOutput(os.Stderr)
}

// SetLevel sets the global log level.
func SetLevel(l slog.Level) {
	level.Set(l)
}

// GetLevel returns the current log level.
func GetLevel() slog.Level {
	return level.Level()
}

// ParseLevel converts a name such as "debug" or "WARN" into a level.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return LevelInfo, fmt.Errorf("parsing log level %q: %w", s, err)
	}
	return l, nil
}

// SetOutput sends subsequent records to w.
func SetOutput(w io.Writer) {
	logger.Store(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: &level})))
}

// Logger returns the current logger, for components that attach attributes.
func Logger() *slog.Logger {
	return logger.Load()
}

// Debug logs msg with key/value pairs at debug level.
func Debug(msg string, args ...any) { Logger().Debug(msg, args...) }

// Info logs msg with key/value pairs at info level.
func Info(msg string, args ...any) { Logger().Info(msg, args...) }

// Warn logs msg with key/value pairs at warn level.
func Warn(msg string, args ...any) { Logger().Warn(msg, args...) }

// Error logs msg with key/value pairs at error level.
func Error(msg string, args ...any) { Logger().Error(msg, args...) }
