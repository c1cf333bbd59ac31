package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newVersionCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "binarize-image %s\n", a.build.Version)
			fmt.Fprintf(out, "  Build time: %s\n", a.build.BuildTime)
			fmt.Fprintf(out, "  Git commit: %s\n", a.build.GitCommit)
		},
	}
}
