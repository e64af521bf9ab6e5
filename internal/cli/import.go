package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rijikit/riji/internal/diary"
	"github.com/rijikit/riji/internal/files"
	"github.com/rijikit/riji/internal/markdown"
	"github.com/rijikit/riji/internal/pdftext"
)

// importOptions collects everything the import flow needs; preview reuses it
// when the user confirms an import from the TUI.
type importOptions struct {
	vault    string
	strategy string
	dialect  string
	forcePDF bool
	dryRun   bool
}

func newImportCommand(ctx context.Context) *cobra.Command {
	var opts importOptions

	cmd := &cobra.Command{
		Use:   "import <export-file>",
		Short: "Parse an export and write one Markdown note per diary day.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.vault, "vault", "", "Vault directory (default: config, then ~/Diary)")
	cmd.Flags().StringVar(&opts.strategy, "strategy", "", "Attachment fallback: nearest-date or round-robin")
	cmd.Flags().StringVar(&opts.dialect, "dialect", "", "Input dialect: auto, pdf or text")
	cmd.Flags().BoolVar(&opts.forcePDF, "pdf", false, "Treat the input as a PDF regardless of extension")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Parse and report without writing the vault")

	return cmd
}

func runImport(cmd *cobra.Command, path string, opts importOptions) error {
	dialectFlag := opts.dialect
	if opts.forcePDF {
		dialectFlag = dialectPDF
	}
	dialect, err := resolveDialect(path, dialectFlag, viper.GetString("dialect"))
	if err != nil {
		return err
	}

	strategyName := opts.strategy
	if strategyName == "" {
		strategyName = viper.GetString("strategy")
	}
	strategy, err := diary.ParseStrategy(strategyName)
	if err != nil {
		return fmt.Errorf("strategy %q: %w", strategyName, err)
	}

	vault := opts.vault
	if vault == "" {
		vault = viper.GetString("vault")
	}
	manager, err := files.NewManager(vault)
	if err != nil {
		return err
	}

	slog.Info("importing", "file", path, "dialect", dialect, "vault", manager.BasePath())

	result, doc, err := parseInput(path, dialect)
	if err != nil {
		return err
	}
	printDiagnostics(cmd, result)

	if dialect == dialectPDF {
		if err := attachImages(path, result, doc, manager, strategy, opts.dryRun); err != nil {
			return err
		}
	}

	if opts.dryRun {
		printSummary(cmd, result)
		fmt.Fprintln(cmd.OutOrStdout(), "Dry run, nothing written.")
		return nil
	}

	writer := markdown.NewWriter(manager)
	for _, entry := range result.Entries {
		if err := writer.Write(cmd.Context(), entry); err != nil {
			return fmt.Errorf("write note for %s: %w", entry.Date, err)
		}
		slog.Debug("wrote note", "date", entry.Date, "attachments", len(entry.Attachments))
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d entr%s into %s\n",
		len(result.Entries), pluralY(len(result.Entries)), manager.BasePath())
	return nil
}

// attachImages lifts the PDF's images, maps entry line ranges onto pages and
// attributes each image to an entry. Image extraction failures degrade to a
// text-only import.
func attachImages(path string, result *diary.ParseResult, doc *pdftext.Document, manager *files.Manager, strategy diary.AttachStrategy, dryRun bool) error {
	pageRanges, err := diary.MapToPages(result.LineRanges, doc.PageOfLine)
	if err != nil {
		slog.Warn("line ranges inconsistent with page map, skipping attachments", "err", err)
		return nil
	}

	images, err := pdftext.ExtractImages(path)
	if err != nil {
		slog.Warn("image extraction failed, importing text only", "err", err)
		return nil
	}
	if len(images) == 0 {
		return nil
	}

	pages := make([]int, len(images))
	for i, img := range images {
		pages[i] = img.Page
	}
	owners := diary.AssignPages(pages, pageRanges, strategy)

	for i, img := range images {
		owner := owners[i]
		if owner < 0 {
			slog.Warn("image has no owning entry", "page", img.Page)
			continue
		}
		entry := &result.Entries[owner]
		if dryRun {
			entry.Attachments = append(entry.Attachments, fmt.Sprintf("(page %d image)", img.Page))
			continue
		}
		id, err := manager.SaveAttachment(entry.Date, img.Data, img.Type)
		if err != nil {
			return fmt.Errorf("save attachment for %s: %w", entry.Date, err)
		}
		entry.Attachments = append(entry.Attachments, id)
		slog.Debug("saved attachment", "date", entry.Date, "page", img.Page, "id", id)
	}
	return nil
}
