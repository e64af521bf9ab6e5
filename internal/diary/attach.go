package diary

// AttachStrategy names the fallback used to attribute an image-bearing page
// to an entry when no entry's page range contains it. The two heuristics are
// deliberately kept separate; neither is clearly correct.
type AttachStrategy string

const (
	// StrategyNearestDate assigns the page to the closest entry that starts
	// on or before it, or the first entry for pages preceding everything.
	StrategyNearestDate AttachStrategy = "nearest-date"
	// StrategyRoundRobin spreads unmatched pages across entries in turn.
	StrategyRoundRobin AttachStrategy = "round-robin"
)

// ParseStrategy validates a strategy name from config or flags.
func ParseStrategy(name string) (AttachStrategy, error) {
	switch AttachStrategy(name) {
	case StrategyNearestDate, StrategyRoundRobin:
		return AttachStrategy(name), nil
	}
	return "", ErrUnknownStrategy
}

// AssignPages attributes page-scoped attachments to entries. Containment in
// an entry's page range always wins; only pages outside every range fall
// back to the strategy. The result parallels pages and holds the receiving
// entry's index, or -1 when there are no entries at all.
func AssignPages(pages []int, ranges []PageRange, strategy AttachStrategy) []int {
	out := make([]int, len(pages))
	robin := 0
	for i, page := range pages {
		out[i] = -1
		if len(ranges) == 0 {
			continue
		}
		if idx := containingRange(page, ranges); idx >= 0 {
			out[i] = idx
			continue
		}
		switch strategy {
		case StrategyRoundRobin:
			out[i] = robin % len(ranges)
			robin++
		default: // StrategyNearestDate
			out[i] = nearestPreceding(page, ranges)
		}
	}
	return out
}

func containingRange(page int, ranges []PageRange) int {
	for i, r := range ranges {
		if page >= r.Start && page <= r.End {
			return i
		}
	}
	return -1
}

func nearestPreceding(page int, ranges []PageRange) int {
	best := 0
	for i, r := range ranges {
		if r.Start <= page {
			best = i
		}
	}
	return best
}
