// Package config loads the optional YAML run configuration for the CLI.
// Flags override file values; the file only sets defaults for a run.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config mirrors the gen command's flags.
type Config struct {
	// Template is an inline template; TemplateFile points at a template file
	// instead. Inline wins when both are set.
	Template     string `yaml:"template"`
	TemplateFile string `yaml:"template_file"`

	// Symbols is the fill alphabet, one glyph per symbol. Empty means the
	// standard 1-9 alphabet (or the file-derived one for template files).
	Symbols string `yaml:"symbols"`

	// Cutoff is the fill ratio at which drilling stops.
	Cutoff float64 `yaml:"cutoff"`

	// Seed for the random source; 0 picks a time-based seed.
	Seed int64 `yaml:"seed"`

	// Count is how many puzzles to generate.
	Count int `yaml:"count"`

	// Output file; .html and .json select the format, empty means console.
	Output string `yaml:"output"`

	// Letters switches display symbols to capital letters.
	Letters bool `yaml:"letters"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Cutoff: 0.5,
		Count:  1,
	}
}

// Load reads a YAML config file on top of the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
