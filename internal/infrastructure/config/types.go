package config

import "github.com/younwookim/munchkin/internal/infrastructure/display"

// Config is the root of config YAML files
type Config struct {
	Window  WindowConfig  `yaml:"window"`
	Base    BaseConfig    `yaml:"base"`
	Audio   AudioConfig   `yaml:"audio"`
	Assets  AssetsConfig  `yaml:"assets"`
	Options OptionsConfig `yaml:"options"`
}

// WindowConfig describes the real window at startup.
type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	TPS    int    `yaml:"tps"` // Frame cap (iterations per second)
}

// BaseConfig is the fixed logical surface every scene draws into.
type BaseConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type AudioConfig struct {
	SampleRate int `yaml:"sampleRate"`
	Volume     int `yaml:"volume"`     // 0..100
	VolumeStep int `yaml:"volumeStep"` // Options screen increment
}

// AssetsConfig holds asset paths relative to Root.
type AssetsConfig struct {
	Root     string  `yaml:"root"`
	Font     string  `yaml:"font"`
	FontSize float64 `yaml:"fontSize"`
	Music    string  `yaml:"music"`
	Click    string  `yaml:"click"`
}

type OptionsConfig struct {
	Resolutions []display.Resolution `yaml:"resolutions"`
}

// InitialResolution returns the startup window size.
func (c *Config) InitialResolution() display.Resolution {
	return display.Resolution{Width: c.Window.Width, Height: c.Window.Height}
}

// BaseResolution returns the logical surface size.
func (c *Config) BaseResolution() display.Resolution {
	return display.Resolution{Width: c.Base.Width, Height: c.Base.Height}
}
