// ABOUTME: YAML palette file loading with hex colors and default fallback
// ABOUTME: Resolve accepts a built-in name or a file path; Current holds the active palette

package palette

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync/atomic"

	"gopkg.in/yaml.v3"

	"github.com/mauromedda/termpix/pkg/color"
)

// ErrUnknownPalette reports a name that is neither built in nor a file.
var ErrUnknownPalette = errors.New("unknown palette")

type filePalette struct {
	Name       string   `yaml:"name"`
	Foreground string   `yaml:"foreground"`
	Background string   `yaml:"background"`
	Accent     string   `yaml:"accent"`
	Stops      []string `yaml:"stops"`
}

// LoadFile reads a YAML palette. Missing fields fall back to Default.
func LoadFile(path string) (Palette, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Palette{}, fmt.Errorf("reading palette file: %w", err)
	}

	var fp filePalette
	if err := yaml.Unmarshal(data, &fp); err != nil {
		return Palette{}, fmt.Errorf("parsing palette file: %w", err)
	}

	p := Default()
	if fp.Name != "" {
		p.Name = fp.Name
	}
	for _, field := range []struct {
		value string
		dst   *color.Color
	}{
		{fp.Foreground, &p.Foreground},
		{fp.Background, &p.Background},
		{fp.Accent, &p.Accent},
	} {
		if field.value == "" {
			continue
		}
		c, err := ParseHex(field.value)
		if err != nil {
			return Palette{}, fmt.Errorf("%s: %w", path, err)
		}
		*field.dst = c
	}

	if len(fp.Stops) > 0 {
		p.Stops = nil
		for _, s := range fp.Stops {
			c, err := ParseHex(s)
			if err != nil {
				return Palette{}, fmt.Errorf("%s: stops: %w", path, err)
			}
			p.Stops = append(p.Stops, c)
		}
	}
	return p, nil
}

// Resolve returns the built-in palette called nameOrPath, or loads it
// from a file when the argument looks like a path.
func Resolve(nameOrPath string) (Palette, error) {
	if p, ok := Builtin(nameOrPath); ok {
		return p, nil
	}
	if strings.ContainsAny(nameOrPath, `/\`) || strings.HasSuffix(nameOrPath, ".yaml") || strings.HasSuffix(nameOrPath, ".yml") {
		return LoadFile(nameOrPath)
	}
	return Palette{}, fmt.Errorf("%q: %w", nameOrPath, ErrUnknownPalette)
}

var current atomic.Pointer[Palette]

func init() {
	p := Default()
	current.Store(&p)
}

// Current returns the active palette.
func Current() Palette {
	return *current.Load()
}

// Set replaces the active palette.
func Set(p Palette) {
	current.Store(&p)
}
