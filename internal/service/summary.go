package service

import (
	"strings"
	"unicode"
)

// SummaryMaxLength is the length limit of a report's deskripsi_singkat in characters
const SummaryMaxLength = 225

const ellipsis = "…"

// MakeSummary derives deskripsi_singkat from a long description: whitespace
// runs collapse to one space and the text is trimmed. Text longer than
// SummaryMaxLength is cut to SummaryMaxLength-1 characters, trailing space is
// dropped, and an ellipsis is appended.
func MakeSummary(text string) string {
	normalized := strings.Join(strings.Fields(text), " ")

	runes := []rune(normalized)
	if len(runes) <= SummaryMaxLength {
		return normalized
	}

	cut := strings.TrimRightFunc(string(runes[:SummaryMaxLength-1]), unicode.IsSpace)
	return cut + ellipsis
}
