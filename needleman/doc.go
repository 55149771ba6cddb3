// Package needleman computes a normalized similarity score between two
// strings with the Needleman–Wunsch global-alignment recurrence.
//
// 🚀 What is it for?
//
//	Approximate string matching wherever a bounded score is easier to use
//	than a raw edit distance:
//	  • record linkage & deduplication
//	  • fuzzy search over names, titles, identifiers
//	  • OCR / transcription post-processing with a confusion table
//
// ✨ Key features:
//   - pluggable cost model (package substitution): match/mismatch or a
//     full pairwise table
//   - configurable gap cost
//   - score always normalized by the theoretical best/worst alignment cost
//     for the input lengths
//   - FullMatrix (flat (m+1)×(n+1) buffer) or TwoRows (rolling rows) storage
//
// ⚙️ Usage:
//
//	nw := needleman.Default() // gap -2, match 0, mismatch -1
//	score := nw.Compare("test", "tent") // 0.875
//
//	custom, err := needleman.New(
//	  needleman.WithGap(-1),
//	  needleman.WithSubstitution(substitution.MatchMismatch{Match: 0, Mismatch: -0.5}),
//	  needleman.WithMemoryMode(needleman.TwoRows),
//	)
//
// Sign convention:
//
//	Costs are subtracted in the recurrence, so the default model encodes
//	rewards as negative costs. Keep the gap cost and the substitution costs
//	in the same sign space and the normalization stays consistent.
//
// Performance:
//
//   - Time:   O(m·n)
//   - Memory: O(m·n) (FullMatrix) or O(n) (TwoRows)
//
// An engine is immutable after construction and safe for concurrent use.
package needleman
