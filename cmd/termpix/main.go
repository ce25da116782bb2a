// ABOUTME: CLI entry point for termpix with terminal crash recovery
// ABOUTME: Parses flags, loads config, sets up logging and the palette, then dispatches the command

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	// termfix must be imported before any package that imports bubbletea.
	_ "github.com/mauromedda/termpix/internal/termfix"

	"github.com/mauromedda/termpix/internal/config"
	"github.com/mauromedda/termpix/internal/log"
	"github.com/mauromedda/termpix/pkg/palette"
)

var (
	version = "dev"
	commit  = "unknown"
)

// env carries what every command needs.
type env struct {
	cfg         *config.Settings
	projectRoot string
	stdout      io.Writer
	// palettePath is the file the active palette came from, if any.
	palettePath string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "termpix: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, argv []string, stdout, stderr io.Writer) error {
	args, err := parseFlags(argv, stderr)
	if err != nil {
		return err
	}
	if args.version {
		fmt.Fprintf(stdout, "termpix %s (%s)\n", version, commit)
		return nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}
	cfg, err := config.Load(cwd)
	if err != nil {
		return err
	}
	args.apply(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	closeLog, err := setupLogging(cfg, stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	e := &env{cfg: cfg, projectRoot: cwd, stdout: stdout}
	if err := e.loadPalette(); err != nil {
		return err
	}
	log.Debug("config resolved", "fps", cfg.FPS, "shape", cfg.Shape, "palette", cfg.Palette, "backend", cfg.Backend)

	if e.palettePath != "" {
		go e.watchPalette(ctx)
	}
	return dispatch(ctx, e, args.command, args.rest)
}

// setupLogging applies the configured level and output. The returned
// func closes the log file, if one was opened.
func setupLogging(cfg *config.Settings, stderr io.Writer) (func(), error) {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	log.SetLevel(level)

	if cfg.LogFile == "" {
		log.SetOutput(stderr)
		return func() {}, nil
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	log.SetOutput(f)
	return func() {
		log.SetOutput(stderr)
		_ = f.Close()
	}, nil
}

// loadPalette activates the configured palette. Names are looked up in
// the palette directories first, then among the builtins, then as paths.
func (e *env) loadPalette() error {
	name := e.cfg.Palette
	if path := config.FindPalette(e.projectRoot, name); path != "" {
		p, err := palette.LoadFile(path)
		if err != nil {
			return err
		}
		palette.Set(p)
		e.palettePath = path
		return nil
	}

	p, err := palette.Resolve(name)
	if errors.Is(err, palette.ErrUnknownPalette) {
		return suggestError("palette", name, paletteNames(e.projectRoot))
	}
	if err != nil {
		return err
	}
	palette.Set(p)
	if _, builtin := palette.Builtin(name); !builtin {
		e.palettePath = name
	}
	return nil
}

// watchPalette reloads the palette file whenever it changes.
func (e *env) watchPalette(ctx context.Context) {
	w := config.NewWatcher(e.palettePath)
	w.Run(ctx, func(path string) {
		p, err := palette.LoadFile(path)
		if err != nil {
			log.Warn("palette reload failed", "path", path, "err", err)
			return
		}
		palette.Set(p)
		log.Info("palette reloaded", "path", path, "name", p.Name)
	})
}
