// ABOUTME: Bubble Tea model presenting a root widget with an optional lipgloss status footer
// ABOUTME: Ticks at the frame rate, forwards the latest key to the update func, and quits on Stop or Ctrl-C

package bubble

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	// termfix must be imported before bubbletea.
	_ "github.com/mauromedda/termpix/internal/termfix"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mauromedda/termpix/pkg/canvas"
	"github.com/mauromedda/termpix/pkg/color"
	"github.com/mauromedda/termpix/pkg/driver"
	"github.com/mauromedda/termpix/pkg/key"
	"github.com/mauromedda/termpix/pkg/palette"
	"github.com/mauromedda/termpix/pkg/widget"
)

// tickMsg marks a frame deadline.
type tickMsg time.Time

// Model is a tea.Model wrapping a root widget.
type Model[W widget.Widget] struct {
	root     W
	update   driver.UpdateFunc[W]
	interval time.Duration
	footer   string
	style    lipgloss.Style

	pending  *key.Event
	frames   int
	quitting bool
}

// New returns a model for root. update may be nil for a static widget.
func New[W widget.Widget](root W, update driver.UpdateFunc[W]) Model[W] {
	return Model[W]{
		root:     root,
		update:   update,
		interval: time.Second / driver.DefaultFrameRate,
		style:    footerStyle(palette.Current()),
	}
}

// WithFrameRate returns a Model ticking fps times per second. Non-positive
// values keep the default.
func (m Model[W]) WithFrameRate(fps int) Model[W] {
	if fps > 0 {
		m.interval = time.Second / time.Duration(fps)
	}
	return m
}

// WithFooter returns a Model showing text under the widget.
func (m Model[W]) WithFooter(text string) Model[W] {
	m.footer = text
	return m
}

// Widget returns the root widget.
func (m Model[W]) Widget() W { return m.root }

// Frames returns how many ticks have been processed.
func (m Model[W]) Frames() int { return m.frames }

// Init schedules the first frame.
func (m Model[W]) Init() tea.Cmd {
	return m.tick()
}

func (m Model[W]) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Update records key presses and advances the root on every tick.
func (m Model[W]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		ev := FromKeyMsg(msg)
		if ev.Type == key.CtrlC {
			m.quitting = true
			return m, tea.Quit
		}
		m.pending = &ev

	case tickMsg:
		ev := m.pending
		m.pending = nil
		m.frames++
		if m.update != nil && m.update(m.root, ev) == driver.Stop {
			m.quitting = true
			return m, tea.Quit
		}
		return m, m.tick()
	}
	return m, nil
}

// View renders the root widget and the footer.
func (m Model[W]) View() string {
	if m.quitting {
		return ""
	}
	frame := strings.ReplaceAll(m.root.String(), canvas.LineBreak, "\n")
	if m.footer == "" {
		return frame
	}
	status := fmt.Sprintf("%s  %d×%d", m.footer, m.root.WidthCharacters(), m.root.HeightCharacters())
	return frame + "\n" + m.style.Render(status)
}

// footerStyle colors the footer with the palette accent on its background.
func footerStyle(p palette.Palette) lipgloss.Style {
	s := lipgloss.NewStyle().Bold(true)
	if hex, ok := hexOf(p.Accent); ok {
		s = s.Foreground(lipgloss.Color(hex))
	}
	if hex, ok := hexOf(p.Background); ok {
		s = s.Background(lipgloss.Color(hex))
	}
	return s
}

func hexOf(c color.Color) (string, bool) {
	v, ok := c.Value()
	if !ok {
		return "", false
	}
	return v.Hex(), true
}

// Run presents m until it quits or ctx is cancelled. Cancellation is not
// an error.
func Run[W widget.Widget](ctx context.Context, m Model[W], opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}, opts...)
	p := tea.NewProgram(m, opts...)

	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("bubble tea: %w", err)
	}
	return nil
}
