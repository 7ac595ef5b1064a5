package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxLen   int
		expected string
	}{
		{
			name:     "trims surrounding whitespace",
			input:    "   hello world   ",
			maxLen:   100,
			expected: "hello world",
		},
		{
			name:     "collapses newlines to spaces",
			input:    "line one\nline two\rline three",
			maxLen:   100,
			expected: "line one line two line three",
		},
		{
			name:     "truncates to max length",
			input:    strings.Repeat("a", 150),
			maxLen:   100,
			expected: strings.Repeat("a", 100),
		},
		{
			name:     "keeps injection-looking text as plain text",
			input:    "' OR 1=1 --",
			maxLen:   100,
			expected: "' OR 1=1 --",
		},
		{
			name:     "empty input stays empty",
			input:    "   ",
			maxLen:   100,
			expected: "",
		},
		{
			name:     "zero max length disables truncation",
			input:    "abcdef",
			maxLen:   0,
			expected: "abcdef",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeText(tt.input, tt.maxLen))
		})
	}
}

func TestSanitizeTextCRLF(t *testing.T) {
	got := SanitizeText("a\r\nb", 10)
	assert.Equal(t, "a  b", got)
}
