// SPDX-License-Identifier: MIT

// Package needleman: functional configuration of the alignment engine.
//
// Contract:
//   - Option constructors validate their own argument and PANIC on
//     meaningless input (programmer error).
//   - Cross-field checks (bounds vs gap) happen once in New and are
//     reported as errors.
//   - Compare never panics and never errors.
package needleman

import (
	"math"

	"github.com/katalvlaran/nwsim/substitution"
)

// Defaults (single source of truth).
const (
	// DefaultGap is the cost of one inserted or deleted symbol.
	DefaultGap = -2.0

	// DefaultMemoryMode stores the full cost matrix.
	DefaultMemoryMode = FullMatrix
)

const (
	panicGapInvalid        = "needleman: WithGap: gap must be finite"
	panicSubstitutionNil   = "needleman: WithSubstitution(nil)"
	panicMemoryModeInvalid = "needleman: WithMemoryMode: unknown mode"
)

// Options is the resolved configuration of an engine.
type Options struct {
	Gap          float64
	Substitution substitution.Substitution
	MemoryMode   MemoryMode
}

// Option mutates Options. Applying the same option twice is harmless.
type Option func(*Options)

// DefaultOptions returns gap -2, match 0 / mismatch -1, FullMatrix.
func DefaultOptions() Options {
	return Options{
		Gap:          DefaultGap,
		Substitution: substitution.Default(),
		MemoryMode:   DefaultMemoryMode,
	}
}

// WithGap sets the per-symbol insertion/deletion cost.
// Panics on NaN or ±Inf.
// Complexity: O(1).
func WithGap(gap float64) Option {
	if math.IsNaN(gap) || math.IsInf(gap, 0) {
		panic(panicGapInvalid)
	}
	return func(o *Options) {
		o.Gap = gap
	}
}

// WithSubstitution sets the pairwise cost model. Panics on nil.
// Complexity: O(1).
func WithSubstitution(s substitution.Substitution) Option {
	if s == nil {
		panic(panicSubstitutionNil)
	}
	return func(o *Options) {
		o.Substitution = s
	}
}

// WithMemoryMode selects FullMatrix or TwoRows storage.
// Panics on an undeclared mode.
// Complexity: O(1).
func WithMemoryMode(m MemoryMode) Option {
	if !m.valid() {
		panic(panicMemoryModeInvalid)
	}
	return func(o *Options) {
		o.MemoryMode = m
	}
}

// gatherOptions applies opts over DefaultOptions.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
