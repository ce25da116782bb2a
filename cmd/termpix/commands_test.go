// ABOUTME: Tests for command dispatch, fuzzy suggestions, palette listing, and help output
// ABOUTME: Tests touching HOME or the active palette do not run in parallel

package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/mauromedda/termpix/internal/config"
	"github.com/mauromedda/termpix/pkg/palette"
)

const oceanYAML = `name: ocean
foreground: "#e0f7fa"
background: "#001f2e"
accent: "#00bcd4"
stops: ["#001f2e", "#00bcd4"]
`

// isolate points HOME at an empty directory and returns a project root.
func isolate(t *testing.T) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Cleanup(func() { palette.Set(palette.Default()) })
	return t.TempDir()
}

func writePalette(t *testing.T, root, name, content string) string {
	t.Helper()
	dir := filepath.Join(config.ProjectDir(root), "palettes")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, name+".yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestCommandNames(t *testing.T) {
	t.Parallel()

	want := []string{"help", "life", "palettes", "shapes", "text", "view"}
	if got := commandNames(); !slices.Equal(got, want) {
		t.Errorf("commandNames = %q, want %q", got, want)
	}
}

func TestSuggest(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want string
	}{
		{"lif", "life"},
		{"pal", "palettes"},
		{"shp", "shapes"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := suggest(tt.name, commandNames())
			if len(got) == 0 || got[0] != tt.want {
				t.Errorf("suggest(%q) = %q, want %q first", tt.name, got, tt.want)
			}
		})
	}
	if got := suggest("zzz", commandNames()); len(got) != 0 {
		t.Errorf("suggest(zzz) = %q, want none", got)
	}
}

func TestDispatch_Unknown(t *testing.T) {
	t.Parallel()

	e := &env{cfg: config.Defaults(), stdout: &bytes.Buffer{}}
	err := dispatch(context.Background(), e, "lif", nil)
	if !errors.Is(err, ErrUnknownName) {
		t.Fatalf("error = %v, want ErrUnknownName", err)
	}
	if !strings.Contains(err.Error(), "did you mean life") {
		t.Errorf("error = %q, want a suggestion", err)
	}

	err = dispatch(context.Background(), e, "zzz", nil)
	if !strings.Contains(err.Error(), "known: help, life") {
		t.Errorf("error = %q, want the known list", err)
	}
}

func TestDispatch_EmptyShowsHelp(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	e := &env{cfg: config.Defaults(), stdout: &out}
	if err := dispatch(context.Background(), e, "", nil); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "termpix") {
		t.Errorf("help output = %q, want it to mention termpix", out.String())
	}
}

func TestViewMissingImage(t *testing.T) {
	t.Parallel()

	e := &env{cfg: config.Defaults(), stdout: &bytes.Buffer{}}
	if err := runView(context.Background(), e, nil); !errors.Is(err, errMissingImage) {
		t.Errorf("error = %v, want errMissingImage", err)
	}
}

func TestHelpMarkdown(t *testing.T) {
	t.Parallel()

	md, err := helpMarkdown()
	if err != nil {
		t.Fatal(err)
	}
	for _, name := range commandNames() {
		if !strings.Contains(md, "| `"+commands[name].usage+"` |") {
			t.Errorf("help table missing %q", commands[name].usage)
		}
	}
	if strings.HasPrefix(md, "---") {
		t.Error("help still carries frontmatter")
	}
	if i, j := strings.Index(md, "## Commands"), strings.Index(md, "## Usage"); i < 0 || i > j {
		t.Errorf("command table at %d, usage at %d; want the table first", i, j)
	}
}

func TestPaletteNames(t *testing.T) {
	root := isolate(t)
	writePalette(t, root, "ocean", oceanYAML)
	writePalette(t, root, "fire", oceanYAML)

	got := paletteNames(root)
	want := append(palette.BuiltinNames(), "ocean")
	if !slices.Equal(got, want) {
		t.Errorf("paletteNames = %q, want %q", got, want)
	}
	if paletteFile(root, "default") != "" {
		t.Error("paletteFile(default) non-empty, want builtin")
	}
}

func TestRunPalettes(t *testing.T) {
	root := isolate(t)
	path := writePalette(t, root, "ocean", oceanYAML)

	var out bytes.Buffer
	e := &env{cfg: config.Defaults(), projectRoot: root, stdout: &out}
	if err := runPalettes(context.Background(), e, nil); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != len(palette.BuiltinNames())+1 {
		t.Fatalf("got %d lines, want %d:\n%s", len(lines), len(palette.BuiltinNames())+1, out.String())
	}
	var sawActive, sawOcean bool
	for _, line := range lines {
		if strings.HasPrefix(line, "* default") {
			sawActive = true
		}
		if strings.Contains(line, "ocean") && strings.HasSuffix(line, path) {
			sawOcean = true
		}
	}
	if !sawActive {
		t.Errorf("no active marker on default:\n%s", out.String())
	}
	if !sawOcean {
		t.Errorf("ocean row missing its path:\n%s", out.String())
	}
}

func TestSwatch(t *testing.T) {
	t.Parallel()

	sw, err := swatch(palette.Default(), 4)
	if err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(sw, "█"); n != 4 {
		t.Errorf("swatch has %d blocks, want 4: %q", n, sw)
	}
}

func TestLoadPalette(t *testing.T) {
	root := isolate(t)
	path := writePalette(t, root, "ocean", oceanYAML)

	tests := []struct {
		name     string
		want     string
		wantPath string
	}{
		{"fire", "fire", ""},
		{"ocean", "ocean", path},
	}
	for _, tt := range tests {
		cfg := config.Defaults()
		cfg.Palette = tt.name
		e := &env{cfg: cfg, projectRoot: root}
		if err := e.loadPalette(); err != nil {
			t.Fatalf("loadPalette(%q): %v", tt.name, err)
		}
		if got := palette.Current().Name; got != tt.want {
			t.Errorf("Current = %q, want %q", got, tt.want)
		}
		if e.palettePath != tt.wantPath {
			t.Errorf("palettePath = %q, want %q", e.palettePath, tt.wantPath)
		}
	}

	cfg := config.Defaults()
	cfg.Palette = "oceen"
	e := &env{cfg: cfg, projectRoot: root}
	if err := e.loadPalette(); !errors.Is(err, ErrUnknownName) {
		t.Errorf("loadPalette(oceen) = %v, want ErrUnknownName", err)
	}
}

func TestRun_Version(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	if err := run(context.Background(), []string{"-version"}, &out, &bytes.Buffer{}); err != nil {
		t.Fatal(err)
	}
	if want := "termpix dev (unknown)\n"; out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}

func TestRun_InvalidFlagValue(t *testing.T) {
	isolate(t)

	err := run(context.Background(), []string{"-shape", "hexagon", "help"}, &bytes.Buffer{}, &bytes.Buffer{})
	if !errors.Is(err, config.ErrInvalidSetting) {
		t.Errorf("error = %v, want ErrInvalidSetting", err)
	}
}
