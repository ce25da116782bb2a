// ABOUTME: Presents a root widget on the configured backend: raw driver, Bubble Tea, or tcell
// ABOUTME: Also instantiates shape-generic scenes for the shape named in the config

package main

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/mauromedda/termpix/internal/config"
	"github.com/mauromedda/termpix/pkg/driver"
	"github.com/mauromedda/termpix/pkg/driver/bubble"
	"github.com/mauromedda/termpix/pkg/driver/tcellview"
	"github.com/mauromedda/termpix/pkg/key"
	"github.com/mauromedda/termpix/pkg/pixel"
	"github.com/mauromedda/termpix/pkg/terminal"
	"github.com/mauromedda/termpix/pkg/widget"
)

// scene is a command body instantiated for one pixel shape.
type scene interface {
	run(ctx context.Context, e *env, args []string) error
}

// pick returns the scene whose shape is called name. Candidates must be
// listed in pixel.Shapes() order.
func pick(name string, candidates ...scene) (scene, error) {
	for i, s := range pixel.Shapes() {
		if s.Name() == name && i < len(candidates) {
			return candidates[i], nil
		}
	}
	return nil, fmt.Errorf("%w: shape %q", config.ErrInvalidSetting, name)
}

// quitKey reports whether ev asks to leave a scene.
func quitKey(ev *key.Event) bool {
	return ev != nil && (ev.Is('q') || ev.Type == key.Escape)
}

// present shows root until update stops, the user quits, or ctx ends.
func present[W widget.CellGrid](ctx context.Context, e *env, title string, root W, update driver.UpdateFunc[W]) error {
	switch e.cfg.Backend {
	case config.BackendBubbleTea:
		m := bubble.New(root, update).WithFrameRate(e.cfg.FPS).WithFooter(title)
		return bubble.Run(ctx, m)

	case config.BackendTcell:
		screen, err := tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("creating tcell screen: %w", err)
		}
		if err := screen.Init(); err != nil {
			return fmt.Errorf("initializing tcell screen: %w", err)
		}
		defer screen.Fini()
		return tcellview.New(screen, root).Run(ctx, update, e.cfg.FPS)
	}

	term := terminal.NewProcessTerminal()
	if !term.IsTerminal() {
		return fmt.Errorf("%s: stdout is not a terminal", title)
	}
	d, err := driver.New(term, root,
		driver.WithFrameRate(e.cfg.FPS),
		driver.WithInput(term.Input()),
		driver.WithUpdate(update),
	)
	if err != nil {
		return err
	}
	defer terminal.RestoreOnPanic(term)

	if err := d.Initialize(); err != nil {
		return err
	}
	runErr := d.Run(ctx)
	if err := d.Close(); err != nil && runErr == nil {
		return err
	}
	return runErr
}
