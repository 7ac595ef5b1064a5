package utils

import "strings"

// SanitizeText normalizes a free-text field before validation and storage.
// It trims surrounding whitespace, replaces embedded CR/LF with spaces so a
// record always stays on one line, and hard-truncates to maxLen characters.
// Input like "' OR 1=1 --" is stored as plain text; no query language is
// involved anywhere in the persistence path.
func SanitizeText(text string, maxLen int) string {
	text = strings.TrimSpace(text)
	text = strings.ReplaceAll(text, "\n", " ")
	text = strings.ReplaceAll(text, "\r", " ")

	if maxLen > 0 {
		runes := []rune(text)
		if len(runes) > maxLen {
			text = string(runes[:maxLen])
		}
	}

	return text
}
