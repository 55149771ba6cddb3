package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/nwsim/internal/output"
	"github.com/katalvlaran/nwsim/metric"
)

// ErrNoMatch is returned when no candidate reaches the threshold.
var ErrNoMatch = errors.New("no candidate reached the threshold")

type bestOptions struct {
	file      string
	threshold float64
	top       int
}

func newBestCmd(opts *rootOptions) *cobra.Command {
	bo := &bestOptions{}

	cmd := &cobra.Command{
		Use:   "best <target> [candidates...]",
		Short: "Rank candidates by similarity to a target",
		Long: `Rank candidates by similarity to the target and mark the best one.
Candidates come from arguments and/or --file (one per line, "-" for stdin).
Exits with an error when no candidate reaches --threshold.`,
		Example: `  nwsim best "jon smith" "John Smith" "Joan Smyth" "Jane Doe"
  nwsim best --file names.txt --threshold 0.9 --top 5 "jon smith"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBest(cmd, opts, bo, args[0], args[1:])
		},
	}

	cmd.Flags().StringVarP(&bo.file, "file", "f", "", `Read candidates from file, one per line ("-" for stdin)`)
	cmd.Flags().Float64Var(&bo.threshold, "threshold", 0.8, "Minimum score for a match")
	cmd.Flags().IntVar(&bo.top, "top", 0, "Show only the N best candidates (0 shows all)")

	return cmd
}

func runBest(cmd *cobra.Command, opts *rootOptions, bo *bestOptions, target string, candidates []string) error {
	if bo.threshold < 0 || bo.threshold > 1 {
		return fmt.Errorf("invalid --threshold value: %g (must be within [0, 1])", bo.threshold)
	}
	if bo.top < 0 {
		return fmt.Errorf("invalid --top value: %d", bo.top)
	}

	if bo.file != "" {
		fromFile, err := readCandidates(cmd, bo.file)
		if err != nil {
			return err
		}
		candidates = append(candidates, fromFile...)
	}
	if len(candidates) == 0 {
		return errors.New("no candidates given")
	}

	s, err := newSession(cmd, opts)
	if err != nil {
		return err
	}

	ranked := metric.Rank(s.metric, target, candidates)
	if bo.top > 0 && bo.top < len(ranked) {
		ranked = ranked[:bo.top]
	}

	results := make([]output.Result, len(ranked))
	for i, r := range ranked {
		results[i] = output.Result{A: target, B: r.Candidate, Score: r.Score}
	}
	matched := ranked[0].Score >= bo.threshold
	results[0].Best = matched

	if err := s.renderer.Render(cmd.OutOrStdout(), results); err != nil {
		return err
	}
	if !matched {
		s.logger.Info("best candidate below threshold", "candidate", ranked[0].Candidate, "score", ranked[0].Score, "threshold", bo.threshold)
		return ErrNoMatch
	}
	return nil
}

// readCandidates reads non-empty, trimmed lines from path or stdin.
func readCandidates(cmd *cobra.Command, path string) ([]string, error) {
	var r io.Reader
	if path == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("failed to open candidates file: %w", err)
		}
		defer f.Close()
		r = f
	}

	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			out = append(out, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read candidates: %w", err)
	}
	return out, nil
}
