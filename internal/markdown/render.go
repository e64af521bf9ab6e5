// Package markdown turns parsed diary entries into frontmatter-led Markdown
// notes and writes them into the vault.
package markdown

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/rijikit/riji/internal/diary"
)

// Frontmatter is the YAML block leading every note. Empty fields are omitted
// so plain-dialect entries without weather stay clean.
type Frontmatter struct {
	Date        string `yaml:"date"`
	Weekday     string `yaml:"weekday,omitempty"`
	Time        string `yaml:"time,omitempty"`
	Weather     string `yaml:"weather,omitempty"`
	Temperature string `yaml:"temperature,omitempty"`
	Location    string `yaml:"location,omitempty"`
}

// Render produces the full Markdown document for one entry: a YAML
// frontmatter block, the body, then one image link per attachment.
// Attachment links are relative to the note's year directory.
func Render(entry diary.Entry) (string, error) {
	fm := Frontmatter{
		Date:        entry.Date,
		Weekday:     entry.Weekday,
		Time:        entry.Time,
		Weather:     entry.Weather,
		Temperature: entry.Temperature,
		Location:    entry.Location,
	}
	meta, err := yaml.Marshal(&fm)
	if err != nil {
		return "", fmt.Errorf("marshal frontmatter: %w", err)
	}

	var b strings.Builder
	b.WriteString("---\n")
	b.Write(meta)
	b.WriteString("---\n")

	if entry.Content != "" {
		b.WriteString("\n")
		b.WriteString(entry.Content)
		b.WriteString("\n")
	}
	if len(entry.Attachments) > 0 {
		b.WriteString(renderAttachments(entry.Attachments))
	}
	return b.String(), nil
}

func renderAttachments(ids []string) string {
	var b strings.Builder
	b.WriteString("\n")
	for _, id := range ids {
		// Notes live one level below the vault root, so attachment
		// references climb out of the year directory.
		fmt.Fprintf(&b, "![](../%s)\n", id)
	}
	return b.String()
}
