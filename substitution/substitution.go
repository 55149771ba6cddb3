// SPDX-License-Identifier: MIT

package substitution

import (
	"fmt"
	"strconv"
)

// Substitution scores the alignment of a[i] against b[j].
//
// Contract:
//   - Compare is deterministic and side-effect free.
//   - Min() <= Compare(a, i, b, j) <= Max() for every pair it is asked to score.
//   - Callers guarantee 0 <= i < len(a) and 0 <= j < len(b).
type Substitution interface {
	// Compare returns the cost of pairing a[i] with b[j].
	Compare(a []rune, i int, b []rune, j int) float64

	// Min returns the smallest value Compare can return.
	Min() float64

	// Max returns the largest value Compare can return.
	Max() float64

	fmt.Stringer
}

// MatchMismatch charges Match for equal symbols and Mismatch otherwise.
type MatchMismatch struct {
	Match    float64
	Mismatch float64
}

// Default returns the classic model: match 0, mismatch -1.
func Default() MatchMismatch {
	return MatchMismatch{Match: 0, Mismatch: -1}
}

// Compare implements Substitution.
// Complexity: O(1).
func (s MatchMismatch) Compare(a []rune, i int, b []rune, j int) float64 {
	if a[i] == b[j] {
		return s.Match
	}

	return s.Mismatch
}

// Min implements Substitution.
func (s MatchMismatch) Min() float64 {
	return min(s.Match, s.Mismatch)
}

// Max implements Substitution.
func (s MatchMismatch) Max() float64 {
	return max(s.Match, s.Mismatch)
}

// String reports the configured values, e.g.
// "MatchMismatch [matchValue=0, mismatchValue=-1]".
func (s MatchMismatch) String() string {
	return "MatchMismatch [matchValue=" + formatCost(s.Match) +
		", mismatchValue=" + formatCost(s.Mismatch) + "]"
}

// formatCost renders a cost with the shortest exact representation.
func formatCost(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
