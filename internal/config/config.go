// ABOUTME: Settings loading with global + project config merge
// ABOUTME: YAML files via gopkg.in/yaml.v3; project values override global ones, defaults fill the rest

package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/mauromedda/termpix/internal/log"
	"github.com/mauromedda/termpix/pkg/pixel"
)

// Backend names.
const (
	BackendRaw       = "raw"
	BackendBubbleTea = "bubbletea"
	BackendTcell     = "tcell"
)

// Defaults.
const (
	DefaultFPS     = 30
	DefaultShape   = "octant"
	DefaultPalette = "default"
	DefaultBackend = BackendRaw
	maxFPS         = 240
)

// ErrInvalidSetting reports a value outside its allowed set.
var ErrInvalidSetting = errors.New("invalid setting")

// Settings holds the merged configuration.
type Settings struct {
	FPS      int    `yaml:"fps,omitempty"`
	Shape    string `yaml:"shape,omitempty"`
	Palette  string `yaml:"palette,omitempty"`
	LogLevel string `yaml:"log_level,omitempty"`
	LogFile  string `yaml:"log_file,omitempty"`
	Backend  string `yaml:"backend,omitempty"`
}

// Defaults returns the settings used when no file sets a value.
func Defaults() *Settings {
	return &Settings{
		FPS:      DefaultFPS,
		Shape:    DefaultShape,
		Palette:  DefaultPalette,
		LogLevel: "warn",
		Backend:  DefaultBackend,
	}
}

// Load reads and merges global and project-local settings over the
// defaults. Missing files are skipped.
func Load(projectRoot string) (*Settings, error) {
	return LoadFiles(GlobalConfigFile(), ProjectConfigFile(projectRoot))
}

// LoadFiles merges the given files in order over the defaults, expands
// ${VAR} references, and validates the result.
func LoadFiles(paths ...string) (*Settings, error) {
	merged := Defaults()
	for _, path := range paths {
		s, err := loadFile(path)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		log.Debug("config file loaded", "path", path)
		merged = merge(merged, s)
	}

	merged.expandEnv()
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return merged, nil
}

// loadFile reads Settings from a YAML file. Returns zero Settings if the
// file does not exist.
func loadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return &Settings{}, err
	}
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &s, nil
}

// merge overlays the non-zero values of top onto base.
func merge(base, top *Settings) *Settings {
	if base == nil {
		base = &Settings{}
	}
	if top == nil {
		return base
	}

	result := *base
	if top.FPS != 0 {
		result.FPS = top.FPS
	}
	for _, f := range []struct{ dst, src *string }{
		{&result.Shape, &top.Shape},
		{&result.Palette, &top.Palette},
		{&result.LogLevel, &top.LogLevel},
		{&result.LogFile, &top.LogFile},
		{&result.Backend, &top.Backend},
	} {
		if *f.src != "" {
			*f.dst = *f.src
		}
	}
	return &result
}

var envRef = regexp.MustCompile(`\$\{(\w+)\}`)

// expandEnv replaces ${VAR} references in the path-like fields. Unset
// variables become empty.
func (s *Settings) expandEnv() {
	for _, f := range []*string{&s.Palette, &s.LogFile} {
		*f = envRef.ReplaceAllStringFunc(*f, func(m string) string {
			return os.Getenv(m[2 : len(m)-1])
		})
	}
}

// ShapeNames lists the accepted shape values.
func ShapeNames() []string {
	shapes := pixel.Shapes()
	names := make([]string, len(shapes))
	for i, s := range shapes {
		names[i] = s.Name()
	}
	return names
}

// BackendNames lists the accepted backend values.
func BackendNames() []string {
	return []string{BackendRaw, BackendBubbleTea, BackendTcell}
}

// Validate checks every field against its allowed values.
func (s *Settings) Validate() error {
	if s.FPS < 1 || s.FPS > maxFPS {
		return fmt.Errorf("%w: fps %d outside 1..%d", ErrInvalidSetting, s.FPS, maxFPS)
	}
	if !slices.Contains(ShapeNames(), s.Shape) {
		return fmt.Errorf("%w: shape %q", ErrInvalidSetting, s.Shape)
	}
	if !slices.Contains(BackendNames(), s.Backend) {
		return fmt.Errorf("%w: backend %q", ErrInvalidSetting, s.Backend)
	}
	if _, err := log.ParseLevel(s.LogLevel); err != nil {
		return fmt.Errorf("%w: log_level %q", ErrInvalidSetting, s.LogLevel)
	}
	return nil
}
