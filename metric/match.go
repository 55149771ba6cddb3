package metric

import "sort"

// Match is one scored candidate.
type Match struct {
	Candidate string
	Index     int // position in the input slice
	Score     float64
}

// Rank scores every candidate against target and orders them by descending
// score. Ties keep input order.
// Complexity: O(k) comparisons plus O(k log k) sorting for k candidates.
func Rank(m StringMetric, target string, candidates []string) []Match {
	out := make([]Match, len(candidates))
	for i, c := range candidates {
		out[i] = Match{Candidate: c, Index: i, Score: m.Compare(target, c)}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})

	return out
}

// BestMatch returns the highest scoring candidate and whether its score is
// at least threshold. An empty candidate list never matches.
func BestMatch(m StringMetric, target string, candidates []string, threshold float64) (Match, bool) {
	var best Match
	found := false
	for i, c := range candidates {
		s := m.Compare(target, c)
		if !found || s > best.Score {
			best = Match{Candidate: c, Index: i, Score: s}
			found = true
		}
	}
	if !found || best.Score < threshold {
		return best, false
	}

	return best, true
}
