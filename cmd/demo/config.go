package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config drives the demo window and simulation. It hot-reloads while the
// demo runs; reloading re-runs setup, which stays a no-op thanks to the
// run-once markers.
type Config struct {
	Window WindowConfig `yaml:"window"`
	Dots   DotsConfig   `yaml:"dots"`
}

type WindowConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

type DotsConfig struct {
	Max   int     `yaml:"max"`
	Speed float64 `yaml:"speed"`
	Size  float64 `yaml:"size"`
}

// DefaultConfig returns the config used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Window: WindowConfig{Width: 960, Height: 540},
		Dots:   DotsConfig{Max: 64, Speed: 2.5, Size: 6},
	}
}

// LoadConfig reads a yaml config file, filling unset fields from defaults.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("demo: read config %s: %w", filename, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("demo: unmarshal config %s: %w", filename, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("demo: config %s: %w", filename, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Dots.Max < 0 {
		return fmt.Errorf("dots.max must not be negative, got %d", c.Dots.Max)
	}
	if c.Dots.Speed <= 0 {
		return fmt.Errorf("dots.speed must be positive, got %v", c.Dots.Speed)
	}
	if c.Dots.Size <= 0 {
		return fmt.Errorf("dots.size must be positive, got %v", c.Dots.Size)
	}
	return nil
}
