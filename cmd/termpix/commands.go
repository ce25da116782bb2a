// ABOUTME: Command table, dispatch, and fuzzy "did you mean" suggestions
// ABOUTME: Unknown command and palette names are ranked against known ones with sahilm/fuzzy

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/sahilm/fuzzy"

	"github.com/mauromedda/termpix/internal/config"
	"github.com/mauromedda/termpix/pkg/palette"
)

// ErrUnknownName reports a command or palette that does not exist.
var ErrUnknownName = errors.New("unknown name")

type command struct {
	usage string
	run   func(ctx context.Context, e *env, args []string) error
}

var commands map[string]command

func init() {
	commands = map[string]command{
		"view":     {usage: "view <image>", run: runView},
		"life":     {usage: "life [density]", run: runLife},
		"shapes":   {usage: "shapes", run: runShapes},
		"text":     {usage: "text [message]", run: runText},
		"palettes": {usage: "palettes", run: runPalettes},
		"help":     {usage: "help", run: runHelp},
	}
}

func commandNames() []string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func dispatch(ctx context.Context, e *env, name string, args []string) error {
	if name == "" {
		name = "help"
	}
	cmd, ok := commands[name]
	if !ok {
		return suggestError("command", name, commandNames())
	}
	return cmd.run(ctx, e, args)
}

// suggest returns up to three known names that fuzzily match name.
func suggest(name string, known []string) []string {
	var out []string
	for _, m := range fuzzy.Find(name, known) {
		out = append(out, m.Str)
		if len(out) == 3 {
			break
		}
	}
	return out
}

func suggestError(kind, name string, known []string) error {
	if s := suggest(name, known); len(s) > 0 {
		return fmt.Errorf("%w: %s %q (did you mean %s?)", ErrUnknownName, kind, name, strings.Join(s, ", "))
	}
	return fmt.Errorf("%w: %s %q (known: %s)", ErrUnknownName, kind, name, strings.Join(known, ", "))
}

// paletteNames lists builtin palettes plus palette files found on disk.
func paletteNames(projectRoot string) []string {
	names := palette.BuiltinNames()
	for _, dir := range config.PaletteDirs(projectRoot) {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			name, ok := strings.CutSuffix(entry.Name(), ".yaml")
			if ok && !entry.IsDir() && !slices.Contains(names, name) {
				names = append(names, name)
			}
		}
	}
	return names
}

// paletteFile returns the on-disk file for name, or "" for builtins.
func paletteFile(projectRoot, name string) string {
	if path := config.FindPalette(projectRoot, name); path != "" {
		return filepath.Clean(path)
	}
	return ""
}
