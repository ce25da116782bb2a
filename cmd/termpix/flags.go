// ABOUTME: CLI flag parsing using the stdlib flag package
// ABOUTME: Flags override config file values; the first positional argument names the command

package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/mauromedda/termpix/internal/config"
)

type cliArgs struct {
	fps      int
	shape    string
	palette  string
	backend  string
	logLevel string
	logFile  string
	verbose  bool
	version  bool

	command string
	rest    []string
}

func parseFlags(argv []string, stderr io.Writer) (cliArgs, error) {
	var args cliArgs

	fs := flag.NewFlagSet("termpix", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&args.fps, "fps", 0, "Target frames per second")
	fs.StringVar(&args.shape, "shape", "", "Pixel block shape (single, dual, quad, sextant, octant, braille)")
	fs.StringVar(&args.palette, "palette", "", "Palette name or YAML file")
	fs.StringVar(&args.backend, "backend", "", "Display backend (raw, bubbletea, tcell)")
	fs.StringVar(&args.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&args.logFile, "log-file", "", "Write logs to this file instead of stderr")
	fs.BoolVar(&args.verbose, "v", false, "Shorthand for -log-level debug")
	fs.BoolVar(&args.version, "version", false, "Show version and exit")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: termpix [flags] <command> [args]")
		fs.PrintDefaults()
	}

	if err := fs.Parse(argv); err != nil {
		return args, err
	}
	if fs.NArg() > 0 {
		args.command = fs.Arg(0)
		args.rest = fs.Args()[1:]
	}
	return args, nil
}

// apply overlays the flags that were set onto s.
func (a cliArgs) apply(s *config.Settings) {
	if a.fps != 0 {
		s.FPS = a.fps
	}
	for _, f := range []struct{ dst, src *string }{
		{&s.Shape, &a.shape},
		{&s.Palette, &a.palette},
		{&s.Backend, &a.backend},
		{&s.LogLevel, &a.logLevel},
		{&s.LogFile, &a.logFile},
	} {
		if *f.src != "" {
			*f.dst = *f.src
		}
	}
	if a.verbose {
		s.LogLevel = "debug"
	}
}
