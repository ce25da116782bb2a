// ABOUTME: Tests for the structured logging package
// ABOUTME: Validates level filtering, key=value output, redirection, and level parsing

package log

import (
	"bytes"
	"log/slog"
	"os"
	"strings"
	"testing"
)

// Not parallel: these tests share the process-wide logger.

func capture(t *testing.T, l slog.Level) *bytes.Buffer {
	t.Helper()
	saved := GetLevel()
	var buf bytes.Buffer
	SetOutput(&buf)
	SetLevel(l)
	t.Cleanup(func() {
		SetLevel(saved)
		SetOutput(os.Stderr)
	})
	return &buf
}

func TestDebugSuppressedAtInfoLevel(t *testing.T) {
	buf := capture(t, LevelInfo)

	Debug("hidden", "n", 1)
	if buf.Len() != 0 {
		t.Errorf("debug record emitted at info level: %q", buf.String())
	}
}

func TestStructuredOutput(t *testing.T) {
	buf := capture(t, LevelDebug)

	Debug("frame", "n", 3, "slow", true)
	Warn("palette missing", "name", "neon")

	out := buf.String()
	for _, want := range []string{"level=DEBUG", "msg=frame", "n=3", "slow=true", "level=WARN", "name=neon"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}

func TestErrorAlwaysEmitted(t *testing.T) {
	buf := capture(t, LevelError)

	Info("quiet")
	Error("loud", "err", "boom")
	if out := buf.String(); strings.Contains(out, "quiet") || !strings.Contains(out, "err=boom") {
		t.Errorf("output = %q, want only the error record", out)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "debug", want: LevelDebug},
		{in: "WARN", want: LevelWarn},
		{in: " error ", want: LevelError},
		{in: "chatty", want: LevelInfo, wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, %v; want %v, err=%v", tt.in, got, err, tt.want, tt.wantErr)
		}
	}
}
