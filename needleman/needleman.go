// SPDX-License-Identifier: MIT

package needleman

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"unicode/utf8"

	"github.com/katalvlaran/nwsim/substitution"
)

// NeedlemanWunsch scores string similarity by global alignment.
//
// Algorithm Outline:
//  1. Both inputs empty → 1. Exactly one empty → 0.
//  2. raw = RawCost(a, b) (see below).
//  3. L = max(len(a), len(b))
//     maxD = L · max(sub.Max(), gap)
//     minD = L · min(sub.Min(), gap)
//     score = (−raw − minD) / (maxD − minD)
//
// Under the default model (gap −2, match 0, mismatch −1) the score lies in
// [0, 1] and equals 1 exactly for identical inputs.
type NeedlemanWunsch struct {
	gap  float64
	sub  substitution.Substitution
	mode MemoryMode
}

// New builds an engine from opts applied over DefaultOptions.
//
// Errors:
//   - ErrBadBounds       — substitution Min/Max non-finite or Min > Max.
//   - ErrDegenerateCosts — max(Max, gap) == min(Min, gap).
func New(opts ...Option) (*NeedlemanWunsch, error) {
	o := gatherOptions(opts...)

	lo, hi := o.Substitution.Min(), o.Substitution.Max()
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) || lo > hi {
		return nil, fmt.Errorf("New(%v): %w", o.Substitution, ErrBadBounds)
	}
	if max(hi, o.Gap) == min(lo, o.Gap) {
		return nil, fmt.Errorf("New(%v, gap=%g): %w", o.Substitution, o.Gap, ErrDegenerateCosts)
	}

	return &NeedlemanWunsch{gap: o.Gap, sub: o.Substitution, mode: o.MemoryMode}, nil
}

// Default returns the engine with gap −2, match 0, mismatch −1.
func Default() *NeedlemanWunsch {
	o := DefaultOptions()

	return &NeedlemanWunsch{gap: o.Gap, sub: o.Substitution, mode: o.MemoryMode}
}

// Gap returns the configured gap cost.
func (nw *NeedlemanWunsch) Gap() float64 { return nw.gap }

// Substitution returns the configured cost model.
func (nw *NeedlemanWunsch) Substitution() substitution.Substitution { return nw.sub }

// MemoryMode returns the configured storage mode.
func (nw *NeedlemanWunsch) MemoryMode() MemoryMode { return nw.mode }

// Compare returns the similarity of a and b, treating each rune as one symbol.
// Bytes that are not valid UTF-8 stay distinct symbols (see Symbols).
func (nw *NeedlemanWunsch) Compare(a, b string) float64 {
	return nw.CompareRunes(Symbols(a), Symbols(b))
}

// invalidByteBase offsets undecodable bytes into the low-surrogate range,
// which no valid UTF-8 input can produce.
const invalidByteBase = 0xDC00

// Symbols splits s into runes. Each byte of an invalid UTF-8 sequence maps
// to its own rune invalidByteBase+b instead of collapsing into U+FFFD, so
// "a\xff" and "a\xfe" remain different sequences.
// Complexity: O(len(s)).
func Symbols(s string) []rune {
	out := make([]rune, 0, len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			r = invalidByteBase + rune(s[i])
		}
		out = append(out, r)
		i += size
	}

	return out
}

// CompareRunes is Compare over pre-split symbol sequences.
// Complexity: O(m·n) time; memory per MemoryMode.
func (nw *NeedlemanWunsch) CompareRunes(a, b []rune) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1
	}
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	l := float64(max(len(a), len(b)))
	maxDistance := l * max(nw.sub.Max(), nw.gap)
	minDistance := l * min(nw.sub.Min(), nw.gap)

	return (-nw.RawCost(a, b) - minDistance) / (maxDistance - minDistance)
}

// RawCost returns the final cell of the alignment cost matrix:
//
//	d[0][0] = 0, d[i][0] = i, d[0][j] = j
//	d[i][j] = min(d[i−1][j] − gap,
//	              d[i][j−1] − gap,
//	              d[i−1][j−1] − sub(a, i−1, b, j−1))
//
// Equal sequences cost 0 without building the matrix. With one empty
// input the result is the boundary value len(other).
func (nw *NeedlemanWunsch) RawCost(a, b []rune) float64 {
	if slices.Equal(a, b) {
		return 0
	}
	if nw.mode == TwoRows {
		return nw.rawTwoRows(a, b)
	}

	return nw.rawFull(a, b).at(len(a), len(b))
}

// rawFull fills the complete (m+1)×(n+1) matrix.
func (nw *NeedlemanWunsch) rawFull(a, b []rune) *costMatrix {
	m, n := len(a), len(b)
	d := newCostMatrix(m+1, n+1)

	// Boundaries
	for i := 1; i <= m; i++ {
		d.set(i, 0, float64(i))
	}
	for j := 1; j <= n; j++ {
		d.set(0, j, float64(j))
	}

	// Fill row-major; each cell reads only up, left and up-left.
	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			d.set(i, j, min3(
				d.at(i-1, j)-nw.gap,
				d.at(i, j-1)-nw.gap,
				d.at(i-1, j-1)-nw.sub.Compare(a, i-1, b, j-1),
			))
		}
	}

	return d
}

// rawTwoRows runs the same recurrence keeping only two rows.
func (nw *NeedlemanWunsch) rawTwoRows(a, b []rune) float64 {
	m, n := len(a), len(b)
	prev := make([]float64, n+1)
	curr := make([]float64, n+1)

	for j := 1; j <= n; j++ {
		prev[j] = float64(j)
	}
	for i := 1; i <= m; i++ {
		curr[0] = float64(i)
		for j := 1; j <= n; j++ {
			curr[j] = min3(
				prev[j]-nw.gap,
				curr[j-1]-nw.gap,
				prev[j-1]-nw.sub.Compare(a, i-1, b, j-1),
			)
		}
		prev, curr = curr, prev
	}

	return prev[n]
}

// String describes the configuration, e.g.
// "NeedlemanWunsch [costFunction=MatchMismatch [matchValue=0, mismatchValue=-1], gapCost=-2]".
func (nw *NeedlemanWunsch) String() string {
	return "NeedlemanWunsch [costFunction=" + nw.sub.String() +
		", gapCost=" + strconv.FormatFloat(nw.gap, 'f', -1, 64) + "]"
}

// min3 returns the minimum of three float64 values.
func min3(a, b, c float64) float64 {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}
