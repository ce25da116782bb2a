// ABOUTME: Lists builtin and on-disk palettes with a rendered gradient swatch for each
// ABOUTME: The active palette is marked; file palettes show where they were found

package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/mauromedda/termpix/pkg/canvas"
	"github.com/mauromedda/termpix/pkg/color"
	"github.com/mauromedda/termpix/pkg/palette"
	"github.com/mauromedda/termpix/pkg/pixel"
)

const swatchWidth = 24

func runPalettes(_ context.Context, e *env, _ []string) error {
	active := palette.Current().Name
	tw := tabwriter.NewWriter(e.stdout, 0, 4, 2, ' ', 0)

	for _, name := range paletteNames(e.projectRoot) {
		source := "builtin"
		p, ok := palette.Builtin(name)
		if path := paletteFile(e.projectRoot, name); path != "" {
			loaded, err := palette.LoadFile(path)
			if err != nil {
				return err
			}
			p, ok, source = loaded, true, path
		}
		if !ok {
			continue
		}

		marker := " "
		if p.Name == active {
			marker = "*"
		}
		sw, err := swatch(p, swatchWidth)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "%s %s\t%s\t%s\n", marker, name, sw, source)
	}
	return tw.Flush()
}

// swatch renders the palette gradient as one row of full blocks.
func swatch(p palette.Palette, width int) (string, error) {
	c, err := canvas.New[pixel.Single](width, 1, color.Default)
	if err != nil {
		return "", err
	}
	for x := range width {
		if err := c.SetPixel(x, 0, p.Gradient(float64(x)/float64(width-1))); err != nil {
			return "", err
		}
	}
	return c.String(), nil
}
