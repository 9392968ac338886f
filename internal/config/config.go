// SPDX-License-Identifier: MIT
// Package config loads nestflat CLI settings from a YAML file and the environment.
//
// File layout:
//
//	flatten:        # raw option set, same keys as flatten.ParseOptions
//	  depth: 2
//	  matrix: false
//	  copy: true
//	shape: [3, 3]   # used by `nestflat shape` when --shape is not given
//	output: json    # json | yaml
//	log_level: info # debug | info | warn | error
//
// Precedence: defaults < file < environment < command-line flags.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/katalvlaran/nestflat/flatten"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Environment overrides.
const (
	EnvDepth    = "NESTFLAT_DEPTH"
	EnvMatrix   = "NESTFLAT_MATRIX"
	EnvCopy     = "NESTFLAT_COPY"
	EnvOutput   = "NESTFLAT_OUTPUT"
	EnvLogLevel = "NESTFLAT_LOG_LEVEL"
)

// Config holds everything the CLI needs besides the input document.
// Flatten and Shape stay untyped so that they are validated with the same
// rules as any other decoded option set.
type Config struct {
	Flatten  map[string]any `yaml:"flatten,omitempty"`
	Shape    any            `yaml:"shape,omitempty"`
	Output   string         `yaml:"output"`
	LogLevel string         `yaml:"log_level"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() *Config {
	return &Config{
		Flatten:  map[string]any{},
		Output:   OutputJSON,
		LogLevel: "info",
	}
}

// Load reads path over the defaults, then applies environment overrides.
// An empty path or a missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}
	if cfg.Flatten == nil {
		cfg.Flatten = map[string]any{}
	}
	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save writes the configuration as YAML, creating the directory if needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides copies NESTFLAT_* variables into the config.
// Unparseable values are stored verbatim so that Validate reports them.
func (c *Config) applyEnvOverrides() {
	if v, ok := os.LookupEnv(EnvDepth); ok {
		c.Flatten[flatten.KeyDepth] = parseScalar(v, func(s string) (any, error) { return strconv.Atoi(s) })
	}
	if v, ok := os.LookupEnv(EnvMatrix); ok {
		c.Flatten[flatten.KeyMatrix] = parseScalar(v, func(s string) (any, error) { return strconv.ParseBool(s) })
	}
	if v, ok := os.LookupEnv(EnvCopy); ok {
		c.Flatten[flatten.KeyCopy] = parseScalar(v, func(s string) (any, error) { return strconv.ParseBool(s) })
	}
	if v, ok := os.LookupEnv(EnvOutput); ok {
		c.Output = strings.ToLower(strings.TrimSpace(v))
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok {
		c.LogLevel = strings.ToLower(strings.TrimSpace(v))
	}
}

func parseScalar(v string, parse func(string) (any, error)) any {
	out, err := parse(strings.TrimSpace(v))
	if err != nil {
		return v
	}

	return out
}

// Validate checks every field. Option and shape errors wrap the flatten sentinels.
func (c *Config) Validate() error {
	if _, err := flatten.ParseOptions(c.Flatten); err != nil {
		return fmt.Errorf("config: flatten: %w", err)
	}
	if c.Shape != nil {
		if _, err := flatten.ParseShape(c.Shape); err != nil {
			return fmt.Errorf("config: shape: %w", err)
		}
	}
	switch c.Output {
	case OutputJSON, OutputYAML:
	default:
		return fmt.Errorf("config: output must be %q or %q, got %q", OutputJSON, OutputYAML, c.Output)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: unknown log_level %q", c.LogLevel)
	}

	return nil
}

// Options converts the flatten section into library options.
func (c *Config) Options() ([]flatten.Option, error) {
	return flatten.ParseOptions(c.Flatten)
}

// ShapeValue returns the configured shape, or nil when none is set.
func (c *Config) ShapeValue() (flatten.Shape, error) {
	if c.Shape == nil {
		return nil, nil
	}

	return flatten.ParseShape(c.Shape)
}
