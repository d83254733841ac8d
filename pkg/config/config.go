package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/imdario/mergo"
	"gopkg.in/yaml.v3"
)

// ErrNoConversions is returned when a config file lists no conversions.
var ErrNoConversions = errors.New("config.conversions must list at least one conversion")

// Config represents a conversion job file
type Config struct {
	// Defaults are merged into every conversion for fields it leaves empty.
	Defaults    Conversion   `yaml:"defaults"`
	Conversions []Conversion `yaml:"conversions"`
}

// Conversion represents one XSD to OpenAPI conversion
type Conversion struct {
	Name   string `yaml:"name"`
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
	// Format is "yaml" or "json". When empty it follows the output extension.
	Format      string `yaml:"format"`
	Title       string `yaml:"title"`
	Version     string `yaml:"version"`
	Description string `yaml:"description"`
	// Validate toggles validation of the generated document; unset means true.
	Validate *bool `yaml:"validate"`
}

// ShouldValidate reports whether the generated document must be validated.
func (c *Conversion) ShouldValidate() bool {
	return c.Validate == nil || *c.Validate
}

// Load loads configuration from a YAML file. Relative input and output
// paths are resolved against the directory of the file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if len(cfg.Conversions) == 0 {
		return nil, ErrNoConversions
	}
	// mergo treats an explicit false as empty, so validate is merged here.
	defaults := cfg.Defaults
	defaults.Validate = nil
	baseDir := filepath.Dir(path)
	for i := range cfg.Conversions {
		c := &cfg.Conversions[i]
		if c.Validate == nil && cfg.Defaults.Validate != nil {
			c.Validate = boolPtr(*cfg.Defaults.Validate)
		}
		if err := mergo.Merge(c, defaults); err != nil {
			return nil, fmt.Errorf("conversions[%d]: merge defaults: %w", i, err)
		}
		if c.Input == "" || c.Output == "" {
			return nil, fmt.Errorf("conversions[%d] missing required fields (input, output)", i)
		}
		c.Input = resolve(baseDir, c.Input)
		c.Output = resolve(baseDir, c.Output)
		if c.Name == "" {
			c.Name = strings.TrimSuffix(filepath.Base(c.Input), filepath.Ext(c.Input))
		}
		if c.Format == "" {
			c.Format = FormatFor(c.Output)
		}
	}
	return &cfg, nil
}

// Select returns the conversion named only, or every conversion when only
// is empty.
func (cfg *Config) Select(only string) ([]Conversion, error) {
	if only == "" {
		return cfg.Conversions, nil
	}
	for _, c := range cfg.Conversions {
		if c.Name == only {
			return []Conversion{c}, nil
		}
	}
	return nil, fmt.Errorf("no conversion named %q", only)
}

// FormatFor infers the output format from a file name.
func FormatFor(output string) string {
	if strings.EqualFold(filepath.Ext(output), ".json") {
		return "json"
	}
	return "yaml"
}

func boolPtr(v bool) *bool { return &v }

func resolve(baseDir, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	abs, err := filepath.Abs(filepath.Join(baseDir, p))
	if err != nil {
		return filepath.Join(baseDir, p)
	}
	return abs
}
