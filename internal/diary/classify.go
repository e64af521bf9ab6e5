package diary

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/width"
)

// Kind tags the role a single line plays within an export.
type Kind uint8

const (
	// KindBody is the default: anything no other rule claims.
	KindBody Kind = iota
	// KindBlank is an empty or whitespace-only line.
	KindBlank
	// KindDateHeader is a PDF-dialect date standing alone on its line.
	KindDateHeader
	// KindMetadata is a PDF-dialect weekday/time/weather/... line.
	KindMetadata
	// KindDateLine is a plain-dialect date with inline metadata.
	KindDateLine
)

// Classified is one line together with its recognized role and the fields
// extracted from it. Only the fields relevant to the Kind are populated.
type Classified struct {
	Kind        Kind
	Date        string
	Weekday     string
	Time        string
	Weather     string
	Temperature string
	Location    string
}

// weekdayAlternates maps code points emitted by certain PDF font subsets to
// the canonical ideographs. Subsetted fonts occasionally reuse Kangxi radical
// and compatibility ideograph glyphs for ordinary characters.
var weekdayAlternates = map[rune]rune{
	'\u2f00': '\u4e00', // Kangxi radical one
	'\u2f06': '\u4e8c', // Kangxi radical two
	'\u2f47': '\u65e5', // Kangxi radical sun
	'\uf9d1': '\u516d', // CJK compatibility ideograph six
}

const (
	weekdayClass = `[周週一二三四五六日天\x{2F00}\x{2F06}\x{2F47}\x{F9D1}]`
	monthClass   = `[月\x{2F49}]`
	dayClass     = `[日\x{2F47}]`
	dateCore     = `(\d{4})年(\d{2})` + monthClass + `(\d{2})` + dayClass
)

var (
	dateHeaderStrict   = regexp.MustCompile(`^\s*` + dateCore + `\s*$`)
	dateHeaderLoose    = regexp.MustCompile(`^.{0,4}?` + dateCore + `\s*$`)
	dateHeaderAnywhere = regexp.MustCompile(dateCore)

	// Metadata line: weekday · HH:MM · weather [· temperature] · location.
	// The temperature group must carry a degree glyph so a three-field line
	// resolves to weather+location rather than weather+temperature.
	metadataPattern = regexp.MustCompile(
		`^\s*(` + weekdayClass + `+)\s*·\s*(\d{1,2}:\d{2})\s*·\s*([^·]+?)\s*` +
			`(?:·\s*(-?\d+(?:\.\d+)?\s*(?:°C|℃))\s*)?·\s*([^·]+?)\s*$`)

	// Plain-dialect date line: date, weekday, then optional ·-separated
	// weather/temperature/location groups.
	dateLinePattern = regexp.MustCompile(
		`^\s*(\d{4})年(\d{2})月(\d{2})日\s+(` + weekdayClass + `+)\s*((?:·[^·]*)*)$`)

	temperatureToken = regexp.MustCompile(`^-?\d+(?:\.\d+)?\s*(?:°C|℃)$`)
)

// rule pairs a predicate+extractor with the Kind it yields. Rules are tried
// in order; the first match wins and Body is the fallthrough.
type rule func(string) (Classified, bool)

var pdfRules = []rule{matchDateHeader, matchMetadata, matchBlank}

var plainRules = []rule{matchDateLine, matchBlank}

// ClassifyPDF classifies one line of PDF-derived reconstructed text.
func ClassifyPDF(line string) Classified { return classify(line, pdfRules) }

// ClassifyPlain classifies one line of a plain-text export.
func ClassifyPlain(line string) Classified { return classify(line, plainRules) }

func classify(line string, rules []rule) Classified {
	for _, r := range rules {
		if c, ok := r(line); ok {
			return c
		}
	}
	return Classified{Kind: KindBody}
}

// matchDateHeader recognizes a PDF-dialect date header. The strict pattern
// requires the date alone on the line; the loose pattern tolerates a short
// leading marker; the anywhere pattern salvages dates wrapped in extraction
// garbage.
func matchDateHeader(line string) (Classified, bool) {
	folded := foldWidth(line)
	for _, re := range []*regexp.Regexp{dateHeaderStrict, dateHeaderLoose, dateHeaderAnywhere} {
		if m := re.FindStringSubmatch(folded); m != nil {
			return Classified{
				Kind: KindDateHeader,
				Date: isoDate(m[1], m[2], m[3]),
			}, true
		}
	}
	return Classified{}, false
}

// matchMetadata recognizes the PDF-dialect metadata line.
func matchMetadata(line string) (Classified, bool) {
	m := metadataPattern.FindStringSubmatch(foldWidth(line))
	if m == nil {
		return Classified{}, false
	}
	c := Classified{
		Kind:        KindMetadata,
		Weekday:     normalizeRunes(m[1], weekdayAlternates),
		Time:        padClock(m[2]),
		Weather:     strings.TrimSpace(m[3]),
		Temperature: NormalizeTemperature(m[4]),
		Location:    strings.TrimSpace(m[5]),
	}
	return c, true
}

// matchDateLine recognizes the plain-dialect combined date line.
func matchDateLine(line string) (Classified, bool) {
	m := dateLinePattern.FindStringSubmatch(foldWidth(line))
	if m == nil {
		return Classified{}, false
	}
	c := Classified{
		Kind:    KindDateLine,
		Date:    isoDate(m[1], m[2], m[3]),
		Weekday: normalizeRunes(m[4], weekdayAlternates),
	}
	c.Weather, c.Temperature, c.Location = splitMetaTail(m[5])
	return c, true
}

func matchBlank(line string) (Classified, bool) {
	if strings.TrimSpace(line) == "" {
		return Classified{Kind: KindBlank}, true
	}
	return Classified{}, false
}

// IsInfoLine reports whether the line independently matches any of the
// date-header, date-line, or metadata patterns, regardless of context.
func IsInfoLine(line string) bool {
	if _, ok := matchDateHeader(line); ok {
		return true
	}
	if _, ok := matchMetadata(line); ok {
		return true
	}
	_, ok := matchDateLine(line)
	return ok
}

// splitMetaTail assigns the optional ·-separated trailing groups of a plain
// date line. Groups are positional (weather, temperature, location) but only
// a degree-glyph token may claim the temperature slot.
func splitMetaTail(tail string) (weather, temperature, location string) {
	var rest []string
	for _, part := range strings.Split(tail, "·") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if temperature == "" && temperatureToken.MatchString(part) {
			temperature = NormalizeTemperature(part)
			continue
		}
		rest = append(rest, part)
	}
	if len(rest) > 0 {
		weather = rest[0]
	}
	if len(rest) > 1 {
		location = rest[len(rest)-1]
	}
	return weather, temperature, location
}

// NormalizeTemperature rewrites an accepted temperature token to the
// canonical °C suffix. Empty input stays empty.
func NormalizeTemperature(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, "℃", "°C")
	// Collapse any space between the number and the unit.
	s = strings.ReplaceAll(s, " ", "")
	return s
}

// normalizeRunes rewrites every rune present in the table; all others pass
// through untouched.
func normalizeRunes(s string, table map[rune]rune) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if canon, ok := table[r]; ok {
			r = canon
		}
		b.WriteRune(r)
	}
	return b.String()
}

// foldWidth narrows full-width digits, colons and punctuation so the ASCII
// classes in the patterns match exports rendered with full-width forms.
// CJK ideographs have no narrow variant and are untouched.
func foldWidth(s string) string {
	return width.Fold.String(s)
}

func isoDate(year, month, day string) string {
	return fmt.Sprintf("%s-%s-%s", year, month, day)
}

// padClock left-pads a H:MM token to HH:MM.
func padClock(clock string) string {
	if len(clock) == len("H:MM") {
		return "0" + clock
	}
	return clock
}
