package needleman

// MemoryMode controls how the DP cost matrix is stored.
//
//   - FullMatrix — one flat (m+1)×(n+1) buffer, indexed i*(n+1)+j.
//     Memory: O(m·n).
//
//   - TwoRows — only the previous and current rows are kept.
//     Memory: O(n). Produces exactly the same cost as FullMatrix.
type MemoryMode int

const (
	// FullMatrix keeps every cell of the cost matrix.
	FullMatrix MemoryMode = iota

	// TwoRows keeps a rolling pair of rows.
	TwoRows
)

// String returns the mode name used in configuration files.
func (m MemoryMode) String() string {
	switch m {
	case FullMatrix:
		return "full"
	case TwoRows:
		return "two-rows"
	default:
		return "unknown"
	}
}

// ParseMemoryMode maps a configuration name ("full", "two-rows") to a mode.
func ParseMemoryMode(s string) (MemoryMode, error) {
	switch s {
	case "full", "":
		return FullMatrix, nil
	case "two-rows":
		return TwoRows, nil
	default:
		return FullMatrix, ErrUnknownMemoryMode
	}
}

// valid reports whether m is one of the declared modes.
func (m MemoryMode) valid() bool {
	return m == FullMatrix || m == TwoRows
}
