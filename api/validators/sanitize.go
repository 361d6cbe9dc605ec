package validators

import "strings"

// SanitizeString trims surrounding whitespace and, when maxLen is positive,
// truncates to at most maxLen runes so multibyte input is never split.
func SanitizeString(input string, maxLen int) string {
	trimmed := strings.TrimSpace(input)
	if maxLen <= 0 {
		return trimmed
	}
	runes := []rune(trimmed)
	if len(runes) <= maxLen {
		return trimmed
	}
	return string(runes[:maxLen])
}
