package summarize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{
			name:     "plain text untouched",
			text:     "Please review the draft by Friday.",
			expected: "Please review the draft by Friday.",
		},
		{
			name:     "signature block stripped",
			text:     "Please review the draft.\n--\nSent from my phone",
			expected: "Please review the draft.",
		},
		{
			name:     "quoted reply stripped",
			text:     "Sounds good, see you then.\n\nOn Mon, Jun 2, 2025 at 9:00 AM Alice <a@x.io> wrote:\n> are you free tomorrow?",
			expected: "Sounds good, see you then.",
		},
		{
			name:     "both stripped",
			text:     "Done.\nOn Tue Bob wrote:\n> ping\n--\nBob\nACME Corp",
			expected: "Done.",
		},
		{
			name:     "longer dash ruler",
			text:     "The numbers look fine.\n----------\nJane Doe\nAnalyst",
			expected: "The numbers look fine.",
		},
		{
			name:     "dashes inside a sentence survive",
			text:     "The range is 10 -- 20 units.",
			expected: "The range is 10 -- 20 units.",
		},
		{
			name:     "whitespace trimmed",
			text:     "  spaced out  ",
			expected: "spaced out",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Clean(tt.text))
		})
	}
}

func TestCleanRemovesSignatureContent(t *testing.T) {
	// The synopsis input must not contain signature content at all
	cleaned := Clean("Budget approved for Q3.\n--\nSent from my phone")
	assert.NotContains(t, cleaned, "phone")
	assert.NotContains(t, cleaned, "--")
}
