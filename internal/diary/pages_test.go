package diary

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMapToPages(t *testing.T) {
	// Three lines on page 1, a separator attributed to page 2, two lines on
	// page 2.
	pageOfLine := []int{1, 1, 1, 2, 2, 2}
	ranges := []LineRange{{Start: 0, End: 2}, {Start: 3, End: 5}}

	got, err := MapToPages(ranges, pageOfLine)
	require.NoError(t, err)
	require.Equal(t, []PageRange{{Start: 1, End: 1}, {Start: 2, End: 2}}, got)
}

func TestMapToPagesEntrySpanningPages(t *testing.T) {
	pageOfLine := []int{1, 1, 2, 2, 3}
	got, err := MapToPages([]LineRange{{Start: 0, End: 4}}, pageOfLine)
	require.NoError(t, err)
	require.Equal(t, []PageRange{{Start: 1, End: 3}}, got)
}

func TestMapToPagesRefusesInconsistentInput(t *testing.T) {
	pageOfLine := []int{1, 1}

	_, err := MapToPages([]LineRange{{Start: 0, End: 5}}, pageOfLine)
	require.ErrorIs(t, err, ErrPageMapMismatch)

	_, err = MapToPages([]LineRange{{Start: -1, End: 1}}, pageOfLine)
	require.ErrorIs(t, err, ErrPageMapMismatch)

	_, err = MapToPages([]LineRange{{Start: 1, End: 0}}, pageOfLine)
	require.ErrorIs(t, err, ErrPageMapMismatch)
}

func TestMapToPagesEmpty(t *testing.T) {
	got, err := MapToPages(nil, nil)
	require.NoError(t, err)
	require.Empty(t, got)
}
