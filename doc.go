// Package nwsim scores string similarity with the Needleman–Wunsch
// global-alignment algorithm and normalizes the result into [0, 1].
//
// 🚀 What is nwsim?
//
//	A small, dependency-light toolkit for approximate string matching:
//		• Cost models: match/mismatch or pairwise tables (substitution/)
//		• Alignment engine: DP recurrence + normalization (needleman/)
//		• String metric surface: simplifiers, logging, ranking (metric/)
//		• Command line: nwsim compare / best (cmd/nwsim)
//
// ✨ Why nwsim?
//
//   - Bounded scores – 1 means identical, 0 means maximally dissimilar
//   - Pluggable costs – OCR confusions, keyboard distance, BLOSUM-style tables
//   - Pure & immutable – engines are safe to share across goroutines
//
// Layout:
//
//	substitution/ — Substitution interface, MatchMismatch, Table (+ YAML loader)
//	needleman/    — NeedlemanWunsch engine, options, FullMatrix / TwoRows storage
//	metric/       — StringMetric, simplifiers, hclog decorator, Rank / BestMatch
//	internal/     — config (YAML), output (text/JSON), cli (cobra)
//	cmd/nwsim/    — the nwsim binary
//
// Quick example:
//
//	nw := needleman.Default()
//	nw.Compare("test", "tent") // 0.875
//
//	go install github.com/katalvlaran/nwsim/cmd/nwsim@latest
package nwsim
