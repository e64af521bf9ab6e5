package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rijikit/riji/internal/version"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the riji version.",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "riji %s\n", version.Info())
		},
	}
}
