// Package config loads the toolchain's optional puc16.toml settings file,
// grounded on the teacher's config.Config (same DefaultConfig/Load shape,
// same tolerant-missing-file behavior).
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds every setting the toolchain's pieces (assembler, simulator,
// debugger, video window) can be tuned with. Every field has a default, so
// the tool runs with no config file at all.
type Config struct {
	Assemble struct {
		IOOrigin           uint16 `toml:"io_origin"`
		CodeOrigin         uint16 `toml:"code_origin"`
		DataOrigin         uint16 `toml:"data_origin"`
		AllowIncludeEscape bool   `toml:"allow_include_escape"`
	} `toml:"assemble"`

	Simulate struct {
		MaxSteps   int    `toml:"max_steps"`
		StackStart uint16 `toml:"stack_start"`
		ThrottleHz int    `toml:"throttle_hz"`
	} `toml:"simulate"`

	Debugger struct {
		HistorySize  int    `toml:"history_size"`
		ShowSource   bool   `toml:"show_source"`
		NumberFormat string `toml:"number_format"` // hex, dec
	} `toml:"debugger"`

	Video struct {
		Enabled      bool `toml:"enabled"`
		LineDoubling bool `toml:"line_doubling"`
	} `toml:"video"`
}

// DefaultConfig returns a Config with every field set to the value the
// toolchain uses when no puc16.toml is present.
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Assemble.IOOrigin = 0
	cfg.Assemble.CodeOrigin = 16
	cfg.Assemble.DataOrigin = 4096
	cfg.Assemble.AllowIncludeEscape = false

	cfg.Simulate.MaxSteps = 1000000
	cfg.Simulate.StackStart = 8191
	cfg.Simulate.ThrottleHz = 60

	cfg.Debugger.HistorySize = 1000
	cfg.Debugger.ShowSource = true
	cfg.Debugger.NumberFormat = "dec"

	cfg.Video.Enabled = true
	cfg.Video.LineDoubling = false

	return cfg
}

// Load reads path and overlays it onto DefaultConfig(). A missing file is
// not an error: Load returns the defaults unmodified, mirroring the
// teacher's LoadFrom behavior so the tool runs with zero configuration.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Origins returns the section-origin map the assembler expects, built from
// the [assemble] settings.
func (c *Config) Origins() map[string]uint16 {
	return map[string]uint16{
		"io":   c.Assemble.IOOrigin,
		"code": c.Assemble.CodeOrigin,
		"data": c.Assemble.DataOrigin,
	}
}

// Save writes cfg to path as TOML, creating parent directories as needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	f, err := os.Create(path) // #nosec G304 -- user-supplied config file path
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}
