package analyzer

import "strings"

// Priority badges derived from the keyword score.
const (
	BadgeHigh   = "High"
	BadgeMedium = "Medium"
	BadgeLow    = "Low"
)

// priorityGroups award a fixed score when any of their words occur.
var priorityGroups = []struct {
	words []string
	score int
}{
	{words: []string{"urgent", "asap", "immediately", "important"}, score: 50},
	{words: []string{"submit", "deadline", "due"}, score: 30},
	{words: []string{"attached", "attachment"}, score: 10},
	{words: []string{"sir", "ma'am", "professor"}, score: 10},
}

// ScorePriority rates how urgent a message reads, 0 to 100. Each keyword
// group counts at most once.
func ScorePriority(text string) int {
	lower := strings.ToLower(text)

	score := 0
	for _, group := range priorityGroups {
		for _, word := range group.words {
			if strings.Contains(lower, word) {
				score += group.score
				break
			}
		}
	}

	if score > 100 {
		score = 100
	}
	return score
}

// PriorityBadge maps a score to its display badge.
func PriorityBadge(score int) string {
	switch {
	case score >= 70:
		return BadgeHigh
	case score >= 40:
		return BadgeMedium
	default:
		return BadgeLow
	}
}
