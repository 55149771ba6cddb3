package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  "Print the version, commit, and build date of nwsim.",
		Run: func(cmd *cobra.Command, args []string) {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "nwsim version %s\n", versionStr)
			if commitStr != "none" && commitStr != "" {
				fmt.Fprintf(w, "  commit: %s\n", commitStr)
			}
			if dateStr != "unknown" && dateStr != "" {
				fmt.Fprintf(w, "  built:  %s\n", dateStr)
			}
		},
	}
}
