package diary

// Entry represents one diary day's structured record.
type Entry struct {
	// Date is the calendar date in ISO form (YYYY-MM-DD).
	Date string `json:"date"`
	// Weekday is the localized weekday label; empty when unparseable.
	Weekday string `json:"weekday"`
	// Time is the optional clock time (HH:MM); PDF dialect only.
	Time string `json:"time,omitempty"`
	// Weather, Temperature and Location are free-text metadata fields.
	// Temperature carries the canonical °C suffix regardless of input glyph.
	Weather     string `json:"weather,omitempty"`
	Temperature string `json:"temperature,omitempty"`
	Location    string `json:"location,omitempty"`
	// Content is the reflowed body text, paragraphs separated by a blank
	// line, trimmed of leading and trailing whitespace.
	Content string `json:"content"`
	// Attachments holds identifiers assigned by the attachment store.
	Attachments []string `json:"attachments,omitempty"`
}

// LineRange locates an entry within the source line sequence,
// 0-based and inclusive on both ends.
type LineRange struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// PageRange is an inclusive span of source pages (1-based).
type PageRange struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// ParseResult is the output of one parse pass. Entries appear in source
// order. Errors are non-fatal diagnostics; parsing always runs to the end.
// LineRanges is populated for the PDF dialect only and parallels Entries.
type ParseResult struct {
	Entries    []Entry     `json:"entries"`
	Errors     []string    `json:"errors,omitempty"`
	LineRanges []LineRange `json:"lineRanges,omitempty"`
}
