package config

import (
	"github.com/katalvlaran/nwsim/needleman"
	"github.com/katalvlaran/nwsim/substitution"
)

// Default returns the default configuration
func Default() *Config {
	gap := needleman.DefaultGap
	sub := substitution.Default()
	return &Config{
		Version: 1,
		Gap:     &gap,
		Substitution: &SubstitutionConfig{
			Match:    &sub.Match,
			Mismatch: &sub.Mismatch,
		},
		Memory:   needleman.DefaultMemoryMode.String(),
		Simplify: []string{},
		Output: &OutputConfig{
			Format: "text",
			Color:  "auto",
		},
	}
}

// applyDefaults fills every field left unset by the file.
func applyDefaults(cfg *Config) {
	def := Default()

	if cfg.Version == 0 {
		cfg.Version = def.Version
	}
	if cfg.Gap == nil {
		cfg.Gap = def.Gap
	}
	if cfg.Substitution == nil {
		cfg.Substitution = def.Substitution
	}
	if cfg.Substitution.Match == nil {
		cfg.Substitution.Match = def.Substitution.Match
	}
	if cfg.Substitution.Mismatch == nil {
		cfg.Substitution.Mismatch = def.Substitution.Mismatch
	}
	if cfg.Memory == "" {
		cfg.Memory = def.Memory
	}
	if cfg.Simplify == nil {
		cfg.Simplify = def.Simplify
	}
	if cfg.Output == nil {
		cfg.Output = def.Output
	}
	if cfg.Output.Format == "" {
		cfg.Output.Format = def.Output.Format
	}
	if cfg.Output.Color == "" {
		cfg.Output.Color = def.Output.Color
	}
}
