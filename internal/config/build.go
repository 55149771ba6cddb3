package config

import (
	"fmt"

	"github.com/hashicorp/go-hclog"

	"github.com/katalvlaran/nwsim/metric"
	"github.com/katalvlaran/nwsim/needleman"
	"github.com/katalvlaran/nwsim/substitution"
)

// CostModel builds the configured cost model: the table file when one is
// set (its own match/mismatch apply; Validate rejects explicit ones next to
// a table), otherwise MatchMismatch.
func (c *Config) CostModel() (substitution.Substitution, error) {
	if path := c.TablePath(); path != "" {
		return substitution.LoadTableFile(path)
	}
	return substitution.MatchMismatch{Match: *c.Substitution.Match, Mismatch: *c.Substitution.Mismatch}, nil
}

// Engine builds the alignment engine described by the configuration.
func (c *Config) Engine() (*needleman.NeedlemanWunsch, error) {
	sub, err := c.CostModel()
	if err != nil {
		return nil, err
	}
	mode, err := needleman.ParseMemoryMode(c.Memory)
	if err != nil {
		return nil, err
	}

	nw, err := needleman.New(
		needleman.WithGap(*c.Gap),
		needleman.WithSubstitution(sub),
		needleman.WithMemoryMode(mode),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build engine: %w", err)
	}

	return nw, nil
}

// Metric builds the engine, wraps it in the configured simplifiers and logs
// each comparison through logger.
func (c *Config) Metric(logger hclog.Logger) (metric.StringMetric, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	nw, err := c.Engine()
	if err != nil {
		return nil, err
	}
	logger.Debug("engine ready", "engine", nw.String(), "memory", nw.MemoryMode().String())

	simplifiers := make([]metric.Simplifier, 0, len(c.Simplify))
	for _, name := range c.Simplify {
		fn, ok := metric.SimplifierByName(name)
		if !ok {
			return nil, fmt.Errorf("%w: simplifier %q", ErrInvalidValue, name)
		}
		simplifiers = append(simplifiers, fn)
	}

	return metric.WithLogger(metric.Simplify(nw, simplifiers...), logger), nil
}
