// Released under an MIT license. See LICENSE.

// Package config loads fp's optional configuration file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/michaelmacinnis/fp/internal/codec"
	"gopkg.in/yaml.v3"
)

// Config holds the settings read from config.yaml.
type Config struct {
	// Debug enables debug logging.
	Debug bool `yaml:"debug"`

	// Format is the output format: json, nuon or yaml.
	Format string `yaml:"format"`

	// History is the path of the interactive history file. An empty
	// path keeps the default and "-" disables history.
	History string `yaml:"history"`

	// Prompt is shown before each interactive line.
	Prompt string `yaml:"prompt"`
}

// Default returns the settings used when there is no config file.
func Default() *Config {
	c := &Config{}
	c.setDefaults()

	return c
}

// Load reads the config file at path. A missing file is not an error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}

	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	return Parse(data, path)
}

// Parse parses config content. Path is used only for error messages.
func Parse(data []byte, path string) (*Config, error) {
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if err := c.validate(path); err != nil {
		return nil, err
	}

	c.setDefaults()

	return &c, nil
}

// Path returns the location of the config file.
//
// FP_CONFIG wins, then $XDG_CONFIG_HOME/fp/config.yaml, then
// ~/.config/fp/config.yaml.
func Path() string {
	if p := os.Getenv("FP_CONFIG"); p != "" {
		return p
	}

	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		dir = filepath.Join(os.Getenv("HOME"), ".config")
	}

	return filepath.Join(dir, "fp", "config.yaml")
}

func (c *Config) setDefaults() {
	if c.Format == "" {
		c.Format = "nuon"
	}

	if c.Prompt == "" {
		c.Prompt = "> "
	}
}

func (c *Config) validate(path string) error {
	if c.Format != "" && !slices.Contains(codec.Outputs, c.Format) {
		return fmt.Errorf("%s: unknown format %q", path, c.Format)
	}

	return nil
}
