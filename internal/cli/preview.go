package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rijikit/riji/internal/ui"
)

func newPreviewCommand(ctx context.Context) *cobra.Command {
	var opts importOptions

	cmd := &cobra.Command{
		Use:   "preview <export-file>",
		Short: "Browse the parsed entries in the terminal; press i to import.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			dialectFlag := opts.dialect
			if opts.forcePDF {
				dialectFlag = dialectPDF
			}
			dialect, err := resolveDialect(path, dialectFlag, viper.GetString("dialect"))
			if err != nil {
				return err
			}

			result, _, err := parseInput(path, dialect)
			if err != nil {
				return err
			}
			printDiagnostics(cmd, result)
			if len(result.Entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No entries found.")
				return nil
			}

			m := ui.NewModel(result.Entries)
			final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
			if err != nil {
				return fmt.Errorf("run TUI: %w", err)
			}

			if final, ok := final.(ui.Model); ok && final.ImportRequested() {
				return runImport(cmd, path, opts)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.vault, "vault", "", "Vault directory (default: config, then ~/Diary)")
	cmd.Flags().StringVar(&opts.strategy, "strategy", "", "Attachment fallback: nearest-date or round-robin")
	cmd.Flags().StringVar(&opts.dialect, "dialect", "", "Input dialect: auto, pdf or text")
	cmd.Flags().BoolVar(&opts.forcePDF, "pdf", false, "Treat the input as a PDF regardless of extension")

	return cmd
}
