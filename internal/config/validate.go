package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/nwsim/metric"
	"github.com/katalvlaran/nwsim/needleman"
)

var (
	// ErrUnsupportedVersion indicates a config version other than 1.
	ErrUnsupportedVersion = errors.New("config: unsupported version")

	// ErrInvalidValue indicates a field with a value outside its allowed set.
	ErrInvalidValue = errors.New("config: invalid value")
)

// Validate validates the configuration
func Validate(cfg *Config) error {
	// Version check
	if cfg.Version != 1 {
		return fmt.Errorf("%w: %d (only version 1 is supported)", ErrUnsupportedVersion, cfg.Version)
	}

	// Costs must be finite
	if cfg.Gap != nil && !finite(*cfg.Gap) {
		return fmt.Errorf("%w: gap must be finite", ErrInvalidValue)
	}
	if s := cfg.Substitution; s != nil {
		if s.Match != nil && !finite(*s.Match) {
			return fmt.Errorf("%w: substitution.match must be finite", ErrInvalidValue)
		}
		if s.Mismatch != nil && !finite(*s.Mismatch) {
			return fmt.Errorf("%w: substitution.mismatch must be finite", ErrInvalidValue)
		}
	}

	// A table carries its own fallbacks
	if cfg.explicitCosts && cfg.Substitution != nil && cfg.Substitution.Table != "" {
		return fmt.Errorf("%w: substitution.match/mismatch cannot be combined with substitution.table (set them inside the table file)", ErrInvalidValue)
	}

	// Validate memory mode
	if _, err := needleman.ParseMemoryMode(cfg.Memory); err != nil {
		return fmt.Errorf("%w: memory %q (must be 'full' or 'two-rows')", ErrInvalidValue, cfg.Memory)
	}

	// Validate simplifiers
	for _, name := range cfg.Simplify {
		if _, ok := metric.SimplifierByName(name); !ok {
			return fmt.Errorf("%w: simplifier %q (must be 'lower', 'fold', 'nfc' or 'space')", ErrInvalidValue, name)
		}
	}

	// Validate output format
	if cfg.Output != nil && cfg.Output.Format != "" {
		switch cfg.Output.Format {
		case "text", "json":
			// valid
		default:
			return fmt.Errorf("%w: output format %s (must be 'text' or 'json')", ErrInvalidValue, cfg.Output.Format)
		}
	}

	// Validate output color
	if cfg.Output != nil && cfg.Output.Color != "" {
		switch cfg.Output.Color {
		case "auto", "always", "never":
			// valid
		default:
			return fmt.Errorf("%w: color mode %s (must be 'auto', 'always', or 'never')", ErrInvalidValue, cfg.Output.Color)
		}
	}

	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
