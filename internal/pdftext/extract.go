// Package pdftext reconstructs line-oriented text and lifts image streams
// from diary PDF exports. It is the page-addressable collaborator feeding the
// diary parsing core: every synthesized line maps to exactly one source page.
package pdftext

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"
)

// rowTolerance is the vertical distance (in PDF points) within which two
// glyphs are treated as sharing one physical line.
const rowTolerance = 2.0

// Document is the text reconstructed from a PDF's positional glyph stream.
// Lines and PageOfLine are parallel; pages are 1-based.
type Document struct {
	Lines      []string
	PageOfLine []int
}

// Text returns the synthesized full text, lines joined by \n.
func (d *Document) Text() string {
	return strings.Join(d.Lines, "\n")
}

// Extract synthesizes line-oriented text from the PDF's text layer. Glyphs
// are grouped into rows by vertical coordinate and ordered by horizontal
// position within a row; an explicit blank line separates consecutive pages.
func Extract(path string) (*Document, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	doc := &Document{}
	for pageNr := 1; pageNr <= r.NumPage(); pageNr++ {
		p := r.Page(pageNr)
		if p.V.IsNull() {
			continue
		}
		if len(doc.Lines) > 0 {
			doc.Lines = append(doc.Lines, "")
			doc.PageOfLine = append(doc.PageOfLine, pageNr)
		}
		for _, line := range pageLines(p.Content().Text) {
			doc.Lines = append(doc.Lines, line)
			doc.PageOfLine = append(doc.PageOfLine, pageNr)
		}
	}
	if len(doc.Lines) == 0 {
		return nil, fmt.Errorf("no text layer in %s", path)
	}
	return doc, nil
}

// pageLines groups positional glyphs into rows. PDF y coordinates grow
// upward, so rows are emitted top of page first.
func pageLines(texts []pdf.Text) []string {
	if len(texts) == 0 {
		return nil
	}
	sorted := make([]pdf.Text, len(texts))
	copy(sorted, texts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Y > sorted[j].Y
	})

	var rows [][]pdf.Text
	current := []pdf.Text{sorted[0]}
	rowY := sorted[0].Y
	for _, t := range sorted[1:] {
		if rowY-t.Y > rowTolerance {
			rows = append(rows, current)
			current = nil
			rowY = t.Y
		}
		current = append(current, t)
	}
	rows = append(rows, current)

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		sort.SliceStable(row, func(i, j int) bool { return row[i].X < row[j].X })
		var b strings.Builder
		for _, t := range row {
			b.WriteString(t.S)
		}
		lines = append(lines, b.String())
	}
	return lines
}
