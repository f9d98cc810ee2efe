package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config controls where the fixture lives and how images are written.
type Config struct {
	// Fixture is the path of the manual test case CSV.
	Fixture string `yaml:"fixture"`

	// OutDir receives one image per fixture row.
	OutDir string `yaml:"out_dir"`

	// Width and Height of rendered images, in points.
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// DefaultConfig matches the repository layout.
func DefaultConfig() *Config {
	return &Config{
		Fixture: "testdata/manual_testcases.csv",
		OutDir:  "testdata/rendered",
		Width:   480,
		Height:  360,
	}
}

// LoadConfig reads a YAML config file over the defaults. An empty path
// returns the defaults unchanged.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("config %s: image size must be positive", path)
	}
	return cfg, nil
}
