// Package config handles loading and validating nwsim configuration files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the configuration file searched for in the working directory.
const FileName = ".nwsim.yaml"

// Config represents the nwsim configuration
type Config struct {
	Version      int                 `yaml:"version"`
	Gap          *float64            `yaml:"gap"`
	Substitution *SubstitutionConfig `yaml:"substitution"`
	Memory       string              `yaml:"memory"`
	Simplify     []string            `yaml:"simplify"`
	Output       *OutputConfig       `yaml:"output"`

	// Internal: path to the loaded config file (empty if using defaults)
	configPath string
	// Internal: match or mismatch was set by the file or SetMatch/SetMismatch
	explicitCosts bool
}

// SubstitutionConfig defines the pairwise cost model
type SubstitutionConfig struct {
	Match    *float64 `yaml:"match"`
	Mismatch *float64 `yaml:"mismatch"`
	// Table is a path to a substitution table file; relative paths resolve
	// against the directory of the config file.
	Table string `yaml:"table"`
}

// OutputConfig defines output settings
type OutputConfig struct {
	Format string `yaml:"format"`
	Color  string `yaml:"color"`
}

// ConfigPath returns the path to the loaded config file, or empty if using defaults
func (c *Config) ConfigPath() string {
	return c.configPath
}

// SetMatch overrides the match cost, e.g. from a command line flag.
func (c *Config) SetMatch(v float64) {
	if c.Substitution == nil {
		c.Substitution = &SubstitutionConfig{}
	}
	c.Substitution.Match = &v
	c.explicitCosts = true
}

// SetMismatch overrides the mismatch cost, e.g. from a command line flag.
func (c *Config) SetMismatch(v float64) {
	if c.Substitution == nil {
		c.Substitution = &SubstitutionConfig{}
	}
	c.Substitution.Mismatch = &v
	c.explicitCosts = true
}

// TablePath returns the substitution table path resolved against the config
// file directory, or empty when no table is configured.
func (c *Config) TablePath() string {
	if c.Substitution == nil || c.Substitution.Table == "" {
		return ""
	}
	if filepath.IsAbs(c.Substitution.Table) || c.configPath == "" {
		return c.Substitution.Table
	}
	return filepath.Join(filepath.Dir(c.configPath), c.Substitution.Table)
}

// Load loads configuration from the specified path or searches for it.
// Search order: configPath (if provided), .nwsim.yaml in cwd, defaults.
func Load(configPath string) (*Config, error) {
	path := configPath
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
	} else {
		if _, err := os.Stat(FileName); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return Default(), nil
			}
			return nil, fmt.Errorf("failed to stat %s: %w", FileName, err)
		}
		path = FileName
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.configPath = path

	return cfg, nil
}

// Parse decodes YAML configuration, fills unset fields from Default and validates.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if sub := cfg.Substitution; sub != nil {
		cfg.explicitCosts = sub.Match != nil || sub.Mismatch != nil
	}
	applyDefaults(&cfg)

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
