package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/nwsim/internal/config"
)

// run executes a fresh command tree in an empty working directory.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	wd, wdErr := os.Getwd()
	require.NoError(t, wdErr)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	var stdout, stderr bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestCompare(t *testing.T) {
	out, _, err := run(t, "", "compare", "--color", "never", "test", "tent")
	require.NoError(t, err)
	assert.Equal(t, "\"test\" vs \"tent\": 0.8750\n", out)
}

func TestCompare_EmptyArgs(t *testing.T) {
	out, _, err := run(t, "", "compare", "--color", "never", "", "test")
	require.NoError(t, err)
	assert.Equal(t, "\"\" vs \"test\": 0.0000\n", out)
}

func TestCompare_CostFlags(t *testing.T) {
	out, _, err := run(t, "", "compare", "--color", "never", "--gap", "-1", "--mismatch", "-0.5", "--memory", "two-rows", "kitten", "sitting")
	require.NoError(t, err)
	assert.Equal(t, "\"kitten\" vs \"sitting\": 0.7143\n", out)
}

func TestCompare_JSON(t *testing.T) {
	out, _, err := run(t, "", "compare", "--format", "json", "abc", "xyz")
	require.NoError(t, err)

	var got struct {
		Results []struct {
			A, B  string
			Score float64
		}
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got.Results, 1)
	assert.Equal(t, 0.5, got.Results[0].Score)
}

func TestCompare_Simplify(t *testing.T) {
	out, _, err := run(t, "", "compare", "--color", "never", "--simplify", "fold,space", "John  SMITH", "john smith")
	require.NoError(t, err)
	assert.Contains(t, out, ": 1.0000")
}

func TestCompare_TraceLogging(t *testing.T) {
	_, stderr, err := run(t, "", "compare", "--color", "never", "--log-level", "trace", "test", "tent")
	require.NoError(t, err)
	assert.Contains(t, stderr, "engine ready")
	assert.Contains(t, stderr, "score=0.875")
}

func TestCompare_Errors(t *testing.T) {
	_, _, err := run(t, "", "compare", "only-one")
	assert.Error(t, err)

	_, _, err = run(t, "", "compare", "--log-level", "loud", "a", "b")
	assert.ErrorContains(t, err, "--log-level")

	_, _, err = run(t, "", "compare", "--memory", "sparse", "a", "b")
	assert.Error(t, err)

	_, _, err = run(t, "", "compare", "--gap", "0", "--mismatch", "0", "a", "b")
	assert.Error(t, err, "degenerate cost model")

	_, _, err = run(t, "", "compare", "--config", "missing.yaml", "a", "b")
	assert.ErrorContains(t, err, "config file not found")
}

func TestCompare_TableFlag(t *testing.T) {
	table := filepath.Join(t.TempDir(), "ocr.yaml")
	require.NoError(t, os.WriteFile(table, []byte("pairs:\n  - {from: \"0\", to: \"o\", cost: -0.1}\n"), 0o600))

	out, _, err := run(t, "", "compare", "--color", "never", "--table", table, "b00k", "book")
	require.NoError(t, err)
	assert.Equal(t, "\"b00k\" vs \"book\": 0.9750\n", out)
}

func TestCompare_TableRejectsCostFlags(t *testing.T) {
	table := filepath.Join(t.TempDir(), "costs.yaml")
	require.NoError(t, os.WriteFile(table, []byte("mismatch: -1\npairs: []\n"), 0o600))

	_, _, err := run(t, "", "compare", "--table", table, "--mismatch", "-0.1", "test", "tent")
	assert.ErrorIs(t, err, config.ErrInvalidValue)

	_, _, err = run(t, "", "compare", "--table", table, "--match", "0.5", "test", "tent")
	assert.ErrorIs(t, err, config.ErrInvalidValue)

	out, _, err := run(t, "", "compare", "--color", "never", "--table", table, "test", "tent")
	require.NoError(t, err)
	assert.Equal(t, "\"test\" vs \"tent\": 0.8750\n", out)
}

func TestBest(t *testing.T) {
	out, _, err := run(t, "", "best", "--color", "never", "John", "Jonathan", "Jon", "Joan", "Jane")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "\"John\" vs \"Joan\": 0.8750  <- best", lines[0])
	assert.Equal(t, "\"John\" vs \"Jon\": 0.7500", lines[1])
}

func TestBest_FileStdinAndTop(t *testing.T) {
	out, _, err := run(t, "Jonathan\n\n  Joan \nJane\n", "best", "--color", "never", "--file", "-", "--top", "1", "John")
	require.NoError(t, err)
	assert.Equal(t, "\"John\" vs \"Joan\": 0.8750  <- best\n", out)
}

func TestBest_NoMatch(t *testing.T) {
	out, _, err := run(t, "", "best", "--color", "never", "--threshold", "0.95", "John", "Jane")
	assert.ErrorIs(t, err, ErrNoMatch)
	assert.Equal(t, "\"John\" vs \"Jane\": 0.6250\n", out, "results are still printed")
}

func TestBest_Errors(t *testing.T) {
	_, _, err := run(t, "", "best", "John")
	assert.ErrorContains(t, err, "no candidates")

	_, _, err = run(t, "", "best", "--threshold", "2", "John", "Jon")
	assert.ErrorContains(t, err, "--threshold")

	_, _, err = run(t, "", "best", "--top", "-1", "John", "Jon")
	assert.ErrorContains(t, err, "--top")

	_, _, err = run(t, "", "best", "--file", "missing.txt", "John")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	SetVersionInfo("v1.2.3", "abc1234", "2026-01-01")
	t.Cleanup(func() { SetVersionInfo("dev", "none", "unknown") })

	out, _, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "nwsim version v1.2.3\n  commit: abc1234\n  built:  2026-01-01\n", out)
}

func TestColorEnabled(t *testing.T) {
	assert.True(t, colorEnabled("always"))
	assert.False(t, colorEnabled("never"))
}
