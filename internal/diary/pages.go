package diary

// MapToPages converts entry line ranges into inclusive page ranges using
// pageOfLine, which must map every line of the synthesized full text to its
// 1-based source page in document order. When the two structures disagree
// it refuses with ErrPageMapMismatch rather than guessing.
func MapToPages(ranges []LineRange, pageOfLine []int) ([]PageRange, error) {
	out := make([]PageRange, 0, len(ranges))
	for _, r := range ranges {
		if r.Start < 0 || r.End < r.Start || r.End >= len(pageOfLine) {
			return nil, ErrPageMapMismatch
		}
		out = append(out, PageRange{Start: pageOfLine[r.Start], End: pageOfLine[r.End]})
	}
	return out, nil
}
