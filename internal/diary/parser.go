package diary

import (
	"fmt"
	"strings"
)

// state tracks the assembler's position between a date header and its body.
type state uint8

const (
	stateIdle state = iota
	stateAwaitingMetadata
	stateAccumulating
)

// ParseText parses a plain-text export, where each entry starts with a
// combined date line carrying the full metadata and the body follows
// verbatim. Body text is trimmed but not reflowed: the application exports
// real line breaks, not positional artifacts.
func ParseText(input string) *ParseResult {
	result := &ParseResult{}

	var current *Entry
	var body []string

	flush := func() {
		if current == nil {
			return
		}
		content := strings.TrimSpace(strings.Join(body, "\n"))
		if content != "" {
			current.Content = content
			result.Entries = append(result.Entries, *current)
		}
		current, body = nil, nil
	}

	for _, line := range splitLines(input) {
		if c, ok := matchDateLine(line); ok {
			flush()
			e := entryFrom(c)
			current = &e
			continue
		}
		if current != nil {
			body = append(body, line)
		}
	}
	flush()

	return result
}

// ParsePDFText parses text reconstructed from a PDF's positional glyph
// stream. See ParsePDFLines.
func ParsePDFText(input string) *ParseResult {
	return ParsePDFLines(splitLines(input))
}

// ParsePDFLines parses the PDF dialect: every line is first run through
// corruption repair, a date header opens an entry, the following line is
// expected to be the metadata line, and all further lines accumulate for
// reflow at flush time. LineRanges records, per emitted entry, the 0-based
// inclusive span from its date header through its last body line.
func ParsePDFLines(lines []string) *ParseResult {
	result := &ParseResult{}

	st := stateIdle
	var current *Entry
	var body []string
	startLine := 0

	flush := func(endLine int) {
		if current == nil {
			return
		}
		content := Reflow(body)
		if content != "" {
			current.Content = content
			result.Entries = append(result.Entries, *current)
			result.LineRanges = append(result.LineRanges, LineRange{Start: startLine, End: endLine})
		}
		current, body = nil, nil
	}

	for i, raw := range lines {
		line := RepairDateLine(raw)

		if c, ok := matchDateHeader(line); ok {
			flush(i - 1)
			e := entryFrom(c)
			current = &e
			startLine = i
			st = stateAwaitingMetadata
			continue
		}

		switch st {
		case stateAwaitingMetadata:
			if c, ok := matchMetadata(line); ok {
				current.Weekday = c.Weekday
				current.Time = c.Time
				current.Weather = c.Weather
				current.Temperature = c.Temperature
				current.Location = c.Location
				st = stateAccumulating
				continue
			}
			if strings.TrimSpace(line) == "" {
				// The renderer sometimes pads a blank line between the
				// title and the metadata; keep waiting.
				continue
			}
			result.Errors = append(result.Errors, fmt.Sprintf(
				"line %d: expected metadata line after date header %s", i+1, current.Date))
			st = stateAccumulating
			body = append(body, line)
		case stateAccumulating:
			body = append(body, line)
		case stateIdle:
			// Preamble before the first date header carries no entry.
		}
	}
	flush(len(lines) - 1)

	return result
}

func entryFrom(c Classified) Entry {
	return Entry{
		Date:        c.Date,
		Weekday:     c.Weekday,
		Time:        c.Time,
		Weather:     c.Weather,
		Temperature: c.Temperature,
		Location:    c.Location,
	}
}

func splitLines(input string) []string {
	input = strings.ReplaceAll(input, "\r\n", "\n")
	lines := strings.Split(input, "\n")
	// Remove the trailing empty element produced by Split when the input ends
	// with a newline.
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
