// Package config loads the shell configuration: window, logical surface,
// audio levels and asset paths.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse default config: %w", err)
	}
	return &cfg, nil
}

// Loader loads configuration YAML files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// Load reads name on top of the built-in defaults, so a file only needs
// the keys it wants to change. The result is validated.
func (l *Loader) Load(name string) (*Config, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}

	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Join(l.basePath, name), err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", name, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", name, err)
	}

	return cfg, nil
}

// LoadFile loads path, or the defaults when path is empty.
func LoadFile(path string) (*Config, error) {
	if path == "" {
		cfg, err := Default()
		if err != nil {
			return nil, err
		}
		return cfg, cfg.Validate()
	}
	return NewLoader(filepath.Dir(path)).Load(filepath.Base(path))
}

// Validate checks that every size is positive and every asset is named.
func (c *Config) Validate() error {
	var errs []error

	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Window.TPS <= 0 {
		errs = append(errs, fmt.Errorf("window tps must be positive, got %d", c.Window.TPS))
	}
	if c.Base.Width <= 0 || c.Base.Height <= 0 {
		errs = append(errs, fmt.Errorf("base size must be positive, got %dx%d", c.Base.Width, c.Base.Height))
	}
	if c.Audio.SampleRate <= 0 {
		errs = append(errs, fmt.Errorf("audio sample rate must be positive, got %d", c.Audio.SampleRate))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 100 {
		errs = append(errs, fmt.Errorf("audio volume must be within 0..100, got %d", c.Audio.Volume))
	}
	if c.Audio.VolumeStep <= 0 {
		errs = append(errs, fmt.Errorf("audio volume step must be positive, got %d", c.Audio.VolumeStep))
	}
	if c.Assets.FontSize <= 0 {
		errs = append(errs, fmt.Errorf("font size must be positive, got %v", c.Assets.FontSize))
	}
	for key, path := range map[string]string{
		"font":  c.Assets.Font,
		"music": c.Assets.Music,
		"click": c.Assets.Click,
	} {
		if path == "" {
			errs = append(errs, fmt.Errorf("asset %s path is empty", key))
		}
	}
	if len(c.Options.Resolutions) == 0 {
		errs = append(errs, errors.New("options must list at least one resolution"))
	}
	for _, r := range c.Options.Resolutions {
		if !r.Valid() {
			errs = append(errs, fmt.Errorf("options resolution %s is not positive", r))
		}
	}

	return errors.Join(errs...)
}
