package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBaseReplyTable(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{
			name:     "submit rule",
			text:     "Please SUBMIT the form",
			expected: "Thank you! I will submit it by the deadline.",
		},
		{
			name:     "meeting rule",
			text:     "the meeting is at noon",
			expected: "Noted. I'll be there.",
		},
		{
			name:     "submit checked before meeting",
			text:     "submit the notes after the meeting",
			expected: "Thank you! I will submit it by the deadline.",
		},
		{
			name:     "default reply",
			text:     "thanks for the update",
			expected: DefaultReply,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BaseReplyTable.Suggest(tt.text))
		})
	}
}

func TestExtendedReplyTable(t *testing.T) {
	// "let me know" is checked before the submit and meeting rules
	reply := ExtendedReplyTable.Suggest("Let's have a meeting tomorrow, let me know if that works")
	assert.Equal(t, "Sure, I will get back to you shortly. Thank you for reaching out!", reply)

	reply = ExtendedReplyTable.Suggest("please respond when you can, and submit the draft")
	assert.Equal(t, "Sure, I will get back to you shortly. Thank you for reaching out!", reply)

	// Without a follow-up trigger the base rules apply
	assert.Equal(t, "Noted. I'll be there.", ExtendedReplyTable.Suggest("meeting at 3"))
	assert.Equal(t, DefaultReply, ExtendedReplyTable.Suggest("fyi"))
}

func TestSuggestIsDeterministic(t *testing.T) {
	text := "submit the report and let me know about the meeting"
	first := ExtendedReplyTable.Suggest(text)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ExtendedReplyTable.Suggest(text))
	}
}

func TestPriorityScoring(t *testing.T) {
	tests := []struct {
		name          string
		text          string
		expectedScore int
		expectedBadge string
	}{
		{
			name:          "urgent submission with attachment for a professor",
			text:          "URGENT: professor needs the attached file, submit today",
			expectedScore: 100,
			expectedBadge: BadgeHigh,
		},
		{
			name:          "urgent and due",
			text:          "this is urgent, it is due tomorrow",
			expectedScore: 80,
			expectedBadge: BadgeHigh,
		},
		{
			name:          "deadline only",
			text:          "the deadline is Friday",
			expectedScore: 30,
			expectedBadge: BadgeLow,
		},
		{
			name:          "deadline with attachment",
			text:          "deadline attached below",
			expectedScore: 40,
			expectedBadge: BadgeMedium,
		},
		{
			name:          "each group counts once",
			text:          "urgent asap immediately important",
			expectedScore: 50,
			expectedBadge: BadgeMedium,
		},
		{
			name:          "nothing urgent",
			text:          "hello, hope you are well",
			expectedScore: 0,
			expectedBadge: BadgeLow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := ScorePriority(tt.text)
			assert.Equal(t, tt.expectedScore, score)
			assert.Equal(t, tt.expectedBadge, PriorityBadge(score))
		})
	}
}
