package cli

import (
	"context"
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newParseCommand(ctx context.Context) *cobra.Command {
	var (
		dialectFlag string
		asJSON      bool
	)

	cmd := &cobra.Command{
		Use:   "parse <export-file>",
		Short: "Parse an export and print the entries without touching the vault.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			dialect, err := resolveDialect(path, dialectFlag, viper.GetString("dialect"))
			if err != nil {
				return err
			}

			result, _, err := parseInput(path, dialect)
			if err != nil {
				return err
			}

			if asJSON {
				out, err := sonic.MarshalIndent(result, "", "  ")
				if err != nil {
					return fmt.Errorf("marshal result: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(out))
				return nil
			}

			printDiagnostics(cmd, result)
			printSummary(cmd, result)
			return nil
		},
	}

	cmd.Flags().StringVar(&dialectFlag, "dialect", "", "Input dialect: auto, pdf or text")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the full parse result as JSON")

	return cmd
}
