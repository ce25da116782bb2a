// ABOUTME: Settles lipgloss's background guess before Bubble Tea's init can query the terminal
// ABOUTME: Import with _ ahead of bubbletea; the guess comes from COLORFGBG, defaulting to dark

package termfix

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func init() {
	// Once set explicitly, lipgloss skips its OSC 11 query, whose reply
	// would otherwise leak into the raw driver's key input.
	lipgloss.SetHasDarkBackground(darkBackground(os.Getenv("COLORFGBG")))
}

// darkBackground interprets COLORFGBG ("fg;bg" or "fg;default;bg").
// ANSI background indexes 0-6 and 8 are dark; anything unparsable is
// treated as dark.
func darkBackground(colorfgbg string) bool {
	fields := strings.Split(colorfgbg, ";")
	bg, err := strconv.Atoi(fields[len(fields)-1])
	if colorfgbg == "" || err != nil {
		return true
	}
	return bg <= 6 || bg == 8
}
