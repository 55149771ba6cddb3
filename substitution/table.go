// SPDX-License-Identifier: MIT

package substitution

import (
	"fmt"
	"math"
)

// Entry assigns Cost to the pairing of From (in the first sequence) with
// To (in the second sequence).
type Entry struct {
	From rune
	To   rune
	Cost float64
}

// pair is the lookup key of a Table.
type pair struct {
	from, to rune
}

// Table is a pairwise cost model backed by an explicit lookup table.
// Pairs missing from the table fall back to match (equal symbols) or
// mismatch (different symbols).
type Table struct {
	match     float64
	mismatch  float64
	symmetric bool
	costs     map[pair]float64
	lo, hi    float64 // bounds over entries and both fallbacks
}

// NewTable builds a Table from the fallback values and entries.
// When symmetric is true every entry is also stored for (To, From); a later
// entry overrides an earlier one for the same key.
//
// Stage 1 (Validate): all values finite, else ErrNaNInf.
// Stage 2 (Prepare): fill the lookup map.
// Stage 3 (Finalize): compute static bounds once.
// Complexity: O(len(entries)) time and memory.
func NewTable(match, mismatch float64, symmetric bool, entries ...Entry) (*Table, error) {
	// Validate fallbacks
	if !isFinite(match) || !isFinite(mismatch) {
		return nil, fmt.Errorf("NewTable: fallback: %w", ErrNaNInf)
	}

	t := &Table{
		match:     match,
		mismatch:  mismatch,
		symmetric: symmetric,
		costs:     make(map[pair]float64, 2*len(entries)),
		lo:        min(match, mismatch),
		hi:        max(match, mismatch),
	}
	for idx, e := range entries {
		if !isFinite(e.Cost) {
			return nil, fmt.Errorf("NewTable: entry %d (%q→%q): %w", idx, e.From, e.To, ErrNaNInf)
		}
		t.costs[pair{e.From, e.To}] = e.Cost
		if symmetric {
			t.costs[pair{e.To, e.From}] = e.Cost
		}
	}

	// Bounds over what survived overrides
	for _, c := range t.costs {
		t.lo = min(t.lo, c)
		t.hi = max(t.hi, c)
	}

	return t, nil
}

// Compare implements Substitution.
// Complexity: O(1) expected.
func (t *Table) Compare(a []rune, i int, b []rune, j int) float64 {
	if c, ok := t.costs[pair{a[i], b[j]}]; ok {
		return c
	}
	if a[i] == b[j] {
		return t.match
	}

	return t.mismatch
}

// Min implements Substitution.
func (t *Table) Min() float64 { return t.lo }

// Max implements Substitution.
func (t *Table) Max() float64 { return t.hi }

// Len returns the number of stored (ordered) pairs.
func (t *Table) Len() int { return len(t.costs) }

// Symmetric reports whether entries were mirrored at construction.
func (t *Table) Symmetric() bool { return t.symmetric }

// String reports the fallbacks and table size.
func (t *Table) String() string {
	return fmt.Sprintf("Table [matchValue=%s, mismatchValue=%s, pairs=%d]",
		formatCost(t.match), formatCost(t.mismatch), len(t.costs))
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
