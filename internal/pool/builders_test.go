// ABOUTME: Tests for the pooled strings.Builder helpers
// ABOUTME: Ensures recycled builders come back empty and Join matches strings.Join

package pool

import (
	"strings"
	"testing"
)

func TestBuilder_ComesBackEmpty(t *testing.T) {
	t.Parallel()

	sb := Builder()
	sb.WriteString("frame")
	Release(sb)

	again := Builder()
	defer Release(again)
	if again.Len() != 0 {
		t.Errorf("Builder().Len() = %d, want 0", again.Len())
	}
}

func TestRelease_Nil(t *testing.T) {
	t.Parallel()

	Release(nil)
}

func TestJoin(t *testing.T) {
	t.Parallel()

	tests := [][]string{
		nil,
		{"a"},
		{"row1", "row2", "row3"},
	}
	for _, parts := range tests {
		if got, want := Join(parts, "\r\n"), strings.Join(parts, "\r\n"); got != want {
			t.Errorf("Join(%q) = %q, want %q", parts, got, want)
		}
	}
}
