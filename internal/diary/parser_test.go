package diary

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseTextSingleEntry(t *testing.T) {
	result := ParseText("2025年02月08日 周六 · 晴 · 4℃ · 苏州市\n今天天气不错\n")

	require.Len(t, result.Entries, 1)
	require.Empty(t, result.Errors)

	e := result.Entries[0]
	require.Equal(t, "2025-02-08", e.Date)
	require.Equal(t, "周六", e.Weekday)
	require.Equal(t, "晴", e.Weather)
	require.Equal(t, "4°C", e.Temperature)
	require.Equal(t, "苏州市", e.Location)
	require.Equal(t, "今天天气不错", e.Content)
	require.Empty(t, e.Time)
}

func TestParseTextMultipleEntriesKeepSourceOrder(t *testing.T) {
	input := strings.Join([]string{
		"2025年02月08日 周六 · 晴 · 4℃ · 苏州市",
		"第一天。",
		"",
		"2025年02月07日 周五 · 阴",
		"乱序导出也按原样保留。",
	}, "\n")

	result := ParseText(input)
	require.Len(t, result.Entries, 2)
	require.Equal(t, "2025-02-08", result.Entries[0].Date)
	require.Equal(t, "2025-02-07", result.Entries[1].Date)
	require.Equal(t, "乱序导出也按原样保留。", result.Entries[1].Content)
}

func TestParseTextBodyIsTrimmedNotReflowed(t *testing.T) {
	input := "2025年02月08日 周六\n\n第一行\n第二行\n\n"
	result := ParseText(input)
	require.Len(t, result.Entries, 1)
	// Plain exports carry real line breaks; they survive verbatim.
	require.Equal(t, "第一行\n第二行", result.Entries[0].Content)
}

func TestParseTextDropsEmptyBodyEntries(t *testing.T) {
	input := "2025年02月08日 周六\n有内容。\n2025年02月09日 周日\n\n"
	result := ParseText(input)
	require.Len(t, result.Entries, 1)
	require.Equal(t, "2025-02-08", result.Entries[0].Date)
}

func TestParseTextIgnoresPreamble(t *testing.T) {
	result := ParseText("导出说明\n\n2025年02月08日 周六\n正文。\n")
	require.Len(t, result.Entries, 1)
	require.Equal(t, "正文。", result.Entries[0].Content)
}

func TestParsePDFLinesFullDocument(t *testing.T) {
	lines := []string{
		"某某日记 导出",
		"",
		"2025年02月08日",
		"周六 · 20:41 · 晴 · 4℃ · 苏州市",
		"今天",
		"很好。",
		"",
		"2025202520252025年02020202⽉09090909⽇",
		"周⽇ · 08:15 · 阴 · 苏州市",
		"第一句。",
		"",
		"第二句。",
		"",
		"2025年02月10日",
	}

	result := ParsePDFLines(lines)
	require.Empty(t, result.Errors)
	require.Len(t, result.Entries, 2)
	require.Len(t, result.LineRanges, len(result.Entries))

	first := result.Entries[0]
	require.Equal(t, "2025-02-08", first.Date)
	require.Equal(t, "周六", first.Weekday)
	require.Equal(t, "20:41", first.Time)
	require.Equal(t, "晴", first.Weather)
	require.Equal(t, "4°C", first.Temperature)
	require.Equal(t, "苏州市", first.Location)
	require.Equal(t, "今天很好。", first.Content)
	require.Equal(t, LineRange{Start: 2, End: 6}, result.LineRanges[0])

	second := result.Entries[1]
	require.Equal(t, "2025-02-09", second.Date)
	require.Equal(t, "周日", second.Weekday)
	require.Empty(t, second.Temperature)
	require.Equal(t, "第一句。\n\n第二句。", second.Content)
	require.Equal(t, LineRange{Start: 7, End: 12}, result.LineRanges[1])

	// The trailing date header with no body is silently dropped.
	for _, e := range result.Entries {
		require.NotEqual(t, "2025-02-10", e.Date)
	}
}

func TestParsePDFLinesStartLinesStrictlyIncrease(t *testing.T) {
	lines := []string{
		"2025年02月08日",
		"周六 · 20:41 · 晴 · 苏州市",
		"一。",
		"2025年02月09日",
		"周日 · 09:00 · 阴 · 苏州市",
		"二。",
		"2025年02月10日",
		"周一 · 10:00 · 雨 · 苏州市",
		"三。",
	}
	result := ParsePDFLines(lines)
	require.Len(t, result.LineRanges, len(result.Entries))
	for i := 1; i < len(result.LineRanges); i++ {
		require.Greater(t, result.LineRanges[i].Start, result.LineRanges[i-1].Start)
	}
}

func TestParsePDFLinesMissingMetadata(t *testing.T) {
	lines := []string{
		"2025年02月08日",
		"直接就是正文。",
	}
	result := ParsePDFLines(lines)

	require.Len(t, result.Errors, 1)
	require.Contains(t, result.Errors[0], "2025-02-08")
	require.Len(t, result.Entries, 1)

	e := result.Entries[0]
	require.Empty(t, e.Weekday)
	// The unexpected line is not lost: it opens the body.
	require.Equal(t, "直接就是正文。", e.Content)
}

func TestParsePDFLinesBlankBetweenHeaderAndMetadata(t *testing.T) {
	lines := []string{
		"2025年02月08日",
		"",
		"周六 · 20:41 · 晴 · 苏州市",
		"正文。",
	}
	result := ParsePDFLines(lines)
	require.Empty(t, result.Errors)
	require.Len(t, result.Entries, 1)
	require.Equal(t, "周六", result.Entries[0].Weekday)
}

func TestParsePDFLinesContentInvariants(t *testing.T) {
	lines := []string{
		"2025年02月08日",
		"周六 · 20:41 · 晴 · 苏州市",
		"",
		"第一段。",
		"",
		"",
		"第二段。",
		"",
	}
	result := ParsePDFLines(lines)
	require.Len(t, result.Entries, 1)

	content := result.Entries[0].Content
	require.Equal(t, content, strings.TrimSpace(content))
	require.NotContains(t, content, "\n\n\n")
}

func TestParsePDFTextSplitsLines(t *testing.T) {
	input := "2025年02月08日\n周六 · 20:41 · 晴 · 苏州市\n正文。\n"
	result := ParsePDFText(input)
	require.Len(t, result.Entries, 1)
	require.Equal(t, "正文。", result.Entries[0].Content)
}
