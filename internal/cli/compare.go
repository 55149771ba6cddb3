package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/nwsim/internal/output"
)

func newCompareCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "compare <a> <b>",
		Short: "Score the similarity of two strings",
		Example: `  nwsim compare test tent
  nwsim compare --gap -1 --mismatch -0.5 kitten sitting
  nwsim compare --simplify fold,space "John  SMITH" "john smith"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, opts)
			if err != nil {
				return err
			}

			score := s.metric.Compare(args[0], args[1])
			return s.renderer.Render(cmd.OutOrStdout(), []output.Result{
				{A: args[0], B: args[1], Score: score},
			})
		},
	}
}
