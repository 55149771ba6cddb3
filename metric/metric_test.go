package metric_test

import (
	"bytes"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nwsim/metric"
	"github.com/katalvlaran/nwsim/needleman"
)

var _ metric.StringMetric = (*needleman.NeedlemanWunsch)(nil)

// TestFunc checks the function adapter.
func TestFunc(t *testing.T) {
	m := metric.Func(func(a, b string) float64 {
		if a == b {
			return 1
		}
		return 0
	})
	assert.Equal(t, 1.0, m.Compare("x", "x"))
	assert.Equal(t, 0.0, m.Compare("x", "y"))
}

// TestSimplify_CaseFold folds ß and upper case before comparing.
func TestSimplify_CaseFold(t *testing.T) {
	nw := needleman.Default()
	assert.Less(t, nw.Compare("STRASSE", "straße"), 1.0)

	m := metric.Simplify(nw, metric.CaseFold)
	assert.Equal(t, 1.0, m.Compare("STRASSE", "straße"))
}

// TestSimplify_NFC composes combining marks into one symbol.
func TestSimplify_NFC(t *testing.T) {
	decomposed, composed := "cafe\u0301", "caf\u00e9"
	nw := needleman.Default()
	assert.Less(t, nw.Compare(decomposed, composed), 1.0)

	m := metric.Simplify(nw, metric.NFC)
	assert.Equal(t, 1.0, m.Compare(decomposed, composed))
}

// TestSimplify_Chain applies simplifiers in order.
func TestSimplify_Chain(t *testing.T) {
	m := metric.Simplify(needleman.Default(), metric.Lower, metric.CollapseSpace)
	assert.Equal(t, 1.0, m.Compare("  John   SMITH ", "john smith"))
	assert.Equal(t, "NeedlemanWunsch [costFunction=MatchMismatch [matchValue=0, mismatchValue=-1], gapCost=-2] [simplifiers=2]",
		m.(interface{ String() string }).String())
}

// TestSimplify_None returns the metric unchanged.
func TestSimplify_None(t *testing.T) {
	nw := needleman.Default()
	assert.Same(t, nw, metric.Simplify(nw))
}

// TestSimplifierByName covers the configuration names.
func TestSimplifierByName(t *testing.T) {
	for _, name := range []string{"lower", "fold", "nfc", "space"} {
		fn, ok := metric.SimplifierByName(name)
		assert.True(t, ok, name)
		assert.NotNil(t, fn, name)
	}

	space, ok := metric.SimplifierByName("space")
	require.True(t, ok)
	assert.Equal(t, "a b", space(" a \t b\n"))

	_, ok = metric.SimplifierByName("upper")
	assert.False(t, ok)
}

// TestWithLogger writes one trace line per comparison.
func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "test",
		Level:  hclog.Trace,
		Output: &buf,
	})

	m := metric.WithLogger(needleman.Default(), logger)
	assert.Equal(t, 0.875, m.Compare("test", "tent"))

	out := buf.String()
	assert.Contains(t, out, "compare")
	assert.Contains(t, out, "a=test")
	assert.Contains(t, out, "b=tent")
	assert.Contains(t, out, "score=0.875")
}

// TestWithLogger_QuietLevels skips formatting below Trace.
func TestWithLogger_QuietLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := hclog.New(&hclog.LoggerOptions{Level: hclog.Warn, Output: &buf})

	m := metric.WithLogger(needleman.Default(), logger)
	assert.Equal(t, 1.0, m.Compare("a", "a"))
	assert.Empty(t, buf.String())

	assert.Equal(t, 0.0, metric.WithLogger(needleman.Default(), nil).Compare("", "a"), "nil logger is allowed")
}

// TestRank orders candidates by score, ties by input order.
func TestRank(t *testing.T) {
	got := metric.Rank(needleman.Default(), "test", []string{"abcd", "tent", "test", "best", "rest"})
	require.Len(t, got, 5)

	assert.Equal(t, "test", got[0].Candidate)
	assert.Equal(t, 2, got[0].Index)
	assert.Equal(t, 1.0, got[0].Score)
	assert.Equal(t, []string{"tent", "best", "rest"}, []string{got[1].Candidate, got[2].Candidate, got[3].Candidate})
	assert.Equal(t, "abcd", got[4].Candidate)
}

// TestBestMatch covers hit, miss and empty input.
func TestBestMatch(t *testing.T) {
	nw := needleman.Default()
	names := []string{"Jonathan", "Jon", "Joan", "Jane"}

	best, ok := metric.BestMatch(nw, "John", names, 0.8)
	assert.True(t, ok)
	assert.Equal(t, "Joan", best.Candidate)
	assert.Equal(t, 2, best.Index)
	assert.Equal(t, 0.875, best.Score)

	best, ok = metric.BestMatch(nw, "Zzzz", names, 0.9)
	assert.False(t, ok)
	assert.Equal(t, "Jonathan", best.Candidate, "best is reported even below threshold, first wins ties")

	_, ok = metric.BestMatch(nw, "John", nil, 0)
	assert.False(t, ok)
}
