package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rijikit/riji/internal/diary"
	"github.com/rijikit/riji/internal/pdftext"
)

const (
	dialectAuto = "auto"
	dialectPDF  = "pdf"
	dialectText = "text"
)

// resolveDialect settles the input dialect from the flag, the config file
// default, and finally the file extension.
func resolveDialect(path, flagValue, configValue string) (string, error) {
	for _, v := range []string{flagValue, configValue} {
		switch v {
		case dialectPDF, dialectText:
			return v, nil
		case "", dialectAuto:
		default:
			return "", fmt.Errorf("unknown dialect %q (expected auto, pdf or text)", v)
		}
	}
	if strings.EqualFold(filepath.Ext(path), ".pdf") {
		return dialectPDF, nil
	}
	return dialectText, nil
}

// parseInput parses the file in the resolved dialect. The returned Document
// is nil for the text dialect.
func parseInput(path, dialect string) (*diary.ParseResult, *pdftext.Document, error) {
	switch dialect {
	case dialectPDF:
		doc, err := pdftext.Extract(path)
		if err != nil {
			return nil, nil, err
		}
		return diary.ParsePDFLines(doc.Lines), doc, nil
	default:
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, nil, err
		}
		return diary.ParseText(string(data)), nil, nil
	}
}

func printDiagnostics(cmd *cobra.Command, result *diary.ParseResult) {
	for _, diag := range result.Errors {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s\n", diag)
	}
}

func printSummary(cmd *cobra.Command, result *diary.ParseResult) {
	out := cmd.OutOrStdout()
	if len(result.Entries) == 0 {
		fmt.Fprintln(out, "No entries found.")
		return
	}
	for _, entry := range result.Entries {
		fmt.Fprintln(out, summarizeEntry(entry))
	}
	fmt.Fprintf(out, "%d entr%s, %d warning%s\n",
		len(result.Entries), pluralY(len(result.Entries)),
		len(result.Errors), pluralS(len(result.Errors)))
}

func summarizeEntry(entry diary.Entry) string {
	var b strings.Builder
	b.WriteString(entry.Date)
	for _, field := range []string{entry.Weekday, entry.Time, entry.Weather, entry.Temperature, entry.Location} {
		if field != "" {
			b.WriteString("  ")
			b.WriteString(field)
		}
	}
	paragraphs := strings.Count(entry.Content, "\n\n") + 1
	fmt.Fprintf(&b, "  (%d paragraph%s)", paragraphs, pluralS(paragraphs))
	return b.String()
}

func pluralY(count int) string {
	if count == 1 {
		return "y"
	}
	return "ies"
}

func pluralS(count int) string {
	if count == 1 {
		return ""
	}
	return "s"
}
