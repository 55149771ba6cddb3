// Package substitution supplies the cost models used by the alignment
// engine in package needleman.
//
// A Substitution scores the pairing of one symbol from each sequence and
// reports static bounds on every score it can return. The engine subtracts
// these scores in its recurrence, so rewards are stored as negative costs
// and penalties as positive ones (or vice versa), as long as the gap cost
// lives in the same sign space.
//
// Implementations:
//   - MatchMismatch — one value for equal symbols, another for the rest.
//   - Table         — arbitrary pairwise costs (confusion / BLOSUM-style
//     matrices) with a match/mismatch fallback for pairs not listed.
//
// Tables can be declared in YAML and read with LoadTable / LoadTableFile:
//
//	match: 0
//	mismatch: -1
//	pairs:
//	  - {from: "a", to: "e", cost: -0.25}
//	  - {from: "0", to: "o", cost: -0.1}
//
// Every implementation is pure and immutable after construction, so a
// single value may be shared by any number of engines and goroutines.
package substitution
