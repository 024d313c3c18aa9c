package analyzer

import (
	"testing"

	"mailpilot/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestMonthDayStrategy(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{
			name:     "day first form",
			text:     "please hand it in before 21st June at the latest",
			expected: "21st June",
		},
		{
			name:     "month first form with year",
			text:     "the deadline is June 21st, 2025 sharp",
			expected: "June 21st, 2025",
		},
		{
			name:     "month first form without year",
			text:     "we meet on March 3rd in the lab",
			expected: "March 3rd",
		},
		{
			name:     "case insensitive",
			text:     "due by 2nd FEBRUARY",
			expected: "2nd FEBRUARY",
		},
		{
			name:     "day first wins over later month first",
			text:     "either 5th May or May 9th, 2025 works",
			expected: "5th May",
		},
		{
			name:     "first match by scan position within a family",
			text:     "January 1st then February 2nd",
			expected: "January 1st",
		},
		{
			name:     "no ordinal suffix",
			text:     "submit by 15 August please",
			expected: "15 August",
		},
		{
			name:     "no month name",
			text:     "see you next week sometime",
			expected: models.NoDeadline,
		},
		{
			name:     "empty text",
			text:     "",
			expected: models.NoDeadline,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MonthDayStrategy{}.ExtractDeadline(tt.text))
		})
	}
}

func TestByPhraseStrategy(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{
			name:     "day name",
			text:     "please send the report by Friday evening",
			expected: "Friday",
		},
		{
			name:     "ordinal day",
			text:     "finish it by 21st or we slip",
			expected: "21st",
		},
		{
			name:     "numeric date",
			text:     "respond by 12/06 at noon",
			expected: "12/06",
		},
		{
			name:     "case insensitive day name",
			text:     "Get it done BY MONDAY",
			expected: "MONDAY",
		},
		{
			name:     "by without a date token",
			text:     "this was written by the committee",
			expected: models.NoDeadline,
		},
		{
			name:     "no by phrase at all",
			text:     "the deadline is June 21st",
			expected: models.NoDeadline,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ByPhraseStrategy{}.ExtractDeadline(tt.text))
		})
	}
}

func TestNewDateStrategy(t *testing.T) {
	assert.IsType(t, MonthDayStrategy{}, NewDateStrategy("month-day"))
	assert.IsType(t, ByPhraseStrategy{}, NewDateStrategy("by-phrase"))

	// Unknown names fall back to the default
	assert.IsType(t, MonthDayStrategy{}, NewDateStrategy("whatever"))
}
