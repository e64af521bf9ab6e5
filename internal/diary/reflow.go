package diary

import "strings"

// terminalPunct is the fixed set of sentence-terminal marks. A line break is
// treated as semantically meaningful only when the preceding line ends in one
// of these; everything else is assumed to be a hard wrap at the physical page
// width.
var terminalPunct = map[rune]bool{
	'。': true, '．': true, '.': true,
	'！': true, '!': true,
	'？': true, '?': true,
	'；': true, ';': true,
	'：': true, ':': true,
	'）': true, ')': true,
}

// endsTerminal reports whether the line's last rune is sentence-terminal.
func endsTerminal(line string) bool {
	line = strings.TrimRight(line, " \t")
	runes := []rune(line)
	if len(runes) == 0 {
		return false
	}
	return terminalPunct[runes[len(runes)-1]]
}

// Reflow merges the body lines accumulated for one entry into paragraphs:
//
//   - a blank line closes the current paragraph only when the previous line
//     ends in sentence-terminal punctuation; otherwise it is a page-boundary
//     artifact and is ignored;
//   - an info line (anything IsInfoLine recognizes) becomes its own one-line
//     paragraph with breaks forced on both sides;
//   - a normal line is glued directly onto the previous line (no inserted
//     space) when that line does not end in terminal punctuation, rejoining
//     sentences hard-wrapped by the page layout; otherwise it starts a new
//     line within the paragraph.
//
// Paragraphs are joined by exactly one blank line; empty paragraphs vanish.
func Reflow(lines []string) string {
	var paragraphs []string
	var current []string

	flush := func() {
		if len(current) == 0 {
			return
		}
		paragraphs = append(paragraphs, strings.Join(current, "\n"))
		current = nil
	}

	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		switch {
		case line == "":
			if len(current) > 0 && endsTerminal(current[len(current)-1]) {
				flush()
			}
		case IsInfoLine(line):
			flush()
			paragraphs = append(paragraphs, line)
		default:
			if len(current) > 0 && !endsTerminal(current[len(current)-1]) {
				current[len(current)-1] += line
			} else {
				current = append(current, line)
			}
		}
	}
	flush()

	return strings.Join(paragraphs, "\n\n")
}
