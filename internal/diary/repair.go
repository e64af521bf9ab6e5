package diary

import (
	"regexp"
	"strings"
)

// dateMarkers are the year/month/day marker glyphs, canonical and variant.
// A line containing none of them cannot hold a date and is returned as-is.
const dateMarkers = "年月日\u2f49\u2f47"

// corruptedDate locates the first digit-run + marker triple. Runs are
// unbounded on purpose: overlapping font substitution duplicates each digit,
// so a corrupted year can be 8, 12 or 16 digits long.
var corruptedDate = regexp.MustCompile(
	`(\d+)\s*年\s*(\d+)\s*` + monthClass + `\s*(\d+)\s*` + dayClass)

// RepairDateLine normalizes a line suspected of containing a date: duplicated
// digit runs are collapsed to their expected width and month/day marker glyph
// variants are replaced by the canonical markers. Lines without date markers,
// and lines where no date pattern is found, are returned unchanged. The
// repair is idempotent.
func RepairDateLine(line string) string {
	if !strings.ContainsAny(line, dateMarkers) {
		return line
	}
	m := corruptedDate.FindStringSubmatchIndex(line)
	if m == nil {
		return line
	}

	year := collapseRun(line[m[2]:m[3]], 4)
	month := collapseRun(line[m[4]:m[5]], 2)
	day := collapseRun(line[m[6]:m[7]], 2)
	token := year + "年" + month + "月" + day + "日"

	repaired := line[:m[0]] + token + line[m[1]:]
	if strings.TrimSpace(repaired) == token {
		return token
	}
	return repaired
}

// collapseRun reduces an over-long digit run to its expected width. An exact
// repetition of a width-sized prefix ("20252025" for width 4) collapses to
// one copy; anything else is truncated from the left. Runs at or under the
// expected width pass through.
func collapseRun(run string, want int) string {
	if len(run) <= want {
		return run
	}
	if len(run)%want == 0 {
		head := run[:want]
		repeated := true
		for i := want; i < len(run); i += want {
			if run[i:i+want] != head {
				repeated = false
				break
			}
		}
		if repeated {
			return head
		}
	}
	return run[:want]
}
