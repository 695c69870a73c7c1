package services

import (
	"testing"
)

func TestNormalizeChannelID(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "bare channel name",
			input:    "project-updates",
			expected: "#project-updates",
		},
		{
			name:     "already prefixed channel",
			input:    "#project-updates",
			expected: "#project-updates",
		},
		{
			name:     "already prefixed user",
			input:    "@alice",
			expected: "@alice",
		},
		{
			name:     "email address targets the user",
			input:    "alice@example.com",
			expected: "@alice",
		},
		{
			name:     "surrounding whitespace is trimmed",
			input:    "  standup  ",
			expected: "#standup",
		},
		{
			name:     "empty stays empty",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := NormalizeChannelID(tt.input)
			if result != tt.expected {
				t.Errorf("NormalizeChannelID(%q) = %q; want %q", tt.input, result, tt.expected)
			}
		})
	}
}
