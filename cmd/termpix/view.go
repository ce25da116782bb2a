// ABOUTME: Image viewer: decodes PNG, JPEG, GIF, or WebP and fits it to the terminal as a color canvas
// ABOUTME: A one-row caption is stacked under the image with vertical tiling; q quits

package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/mauromedda/termpix/pkg/canvas"
	"github.com/mauromedda/termpix/pkg/color"
	"github.com/mauromedda/termpix/pkg/driver"
	"github.com/mauromedda/termpix/pkg/image"
	"github.com/mauromedda/termpix/pkg/key"
	"github.com/mauromedda/termpix/pkg/palette"
	"github.com/mauromedda/termpix/pkg/pixel"
	"github.com/mauromedda/termpix/pkg/widget"
)

var errMissingImage = errors.New("view: missing image path")

func runView(ctx context.Context, e *env, args []string) error {
	if len(args) == 0 {
		return errMissingImage
	}
	sc, err := pick(e.cfg.Shape,
		viewScene[pixel.Single]{}, viewScene[pixel.Dual]{}, viewScene[pixel.Quad]{},
		viewScene[pixel.Sextant]{}, viewScene[pixel.Octant]{}, viewScene[pixel.Braille]{})
	if err != nil {
		return err
	}
	return sc.run(ctx, e, args)
}

type viewScene[S pixel.Shape] struct{}

func (viewScene[S]) run(ctx context.Context, e *env, args []string) error {
	path := args[0]
	img, err := image.Load(path)
	if err != nil {
		return fmt.Errorf("view: %w", err)
	}

	width, height := canvasSize[S]()
	sw, sh := pixel.Size[S]()
	// Reserve the caption row.
	w, h := image.FitSize[S](img, width/sw, height/sh-1)
	pic, err := image.ToCanvas[S](img, w, h)
	if err != nil {
		return fmt.Errorf("view: %w", err)
	}

	b := img.Bounds()
	caption, err := captionRow(pic.WidthCharacters(),
		fmt.Sprintf("%s %d×%d", filepath.Base(path), b.Dx(), b.Dy()), palette.Current())
	if err != nil {
		return fmt.Errorf("view: %w", err)
	}
	root, err := widget.NewVertical(pic, caption)
	if err != nil {
		return fmt.Errorf("view: %w", err)
	}

	update := func(_ *widget.Vertical[*canvas.Canvas[S, color.Color], *canvas.Text], ev *key.Event) driver.Action {
		if quitKey(ev) {
			return driver.Stop
		}
		return driver.Continue
	}
	return present(ctx, e, "view", root, update)
}

// captionRow returns a single-row text surface holding s in the accent color.
func captionRow(cols int, s string, p palette.Palette) (*canvas.Text, error) {
	row, err := canvas.NewText(cols, 1)
	if err != nil {
		return nil, err
	}
	if _, err := row.WriteString(0, 0, s, p.Accent, color.Default); err != nil {
		return nil, err
	}
	return row, nil
}
