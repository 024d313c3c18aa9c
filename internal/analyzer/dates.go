package analyzer

import (
	"regexp"

	"mailpilot/internal/models"
)

// DateStrategy extracts a deadline phrase from free text. A missing date is
// a normal result, reported as the models.NoDeadline sentinel.
type DateStrategy interface {
	ExtractDeadline(text string) string
}

const monthNames = `January|February|March|April|May|June|July|August|September|October|November|December`

// monthDayPatterns are tried in order; the first family that matches wins
// and later families are not attempted.
var monthDayPatterns = []*regexp.Regexp{
	// "21st June"
	regexp.MustCompile(`(?i)\b\d{1,2}(?:st|nd|rd|th)?\s+(?:` + monthNames + `)\b`),
	// "June 21st, 2025"
	regexp.MustCompile(`(?i)\b(?:` + monthNames + `)\s+\d{1,2}(?:st|nd|rd|th)?(?:,?\s*\d{4})?\b`),
}

// MonthDayStrategy finds "<ordinal> <Month>" or "<Month> <ordinal>[, year]"
// phrases, preferring the day-first form.
type MonthDayStrategy struct{}

func (MonthDayStrategy) ExtractDeadline(text string) string {
	for _, pattern := range monthDayPatterns {
		if match := pattern.FindString(text); match != "" {
			return match
		}
	}
	return models.NoDeadline
}

// byPhrasePattern captures only the token after "by": a day name, an
// ordinal day or a numeric date.
var byPhrasePattern = regexp.MustCompile(`(?i)\bby\s+((?:mon|tues|wednes|thurs|fri|satur|sun)day|tomorrow|\d{1,2}[/.-]\d{1,2}(?:[/.-]\d{2,4})?|\d{1,2}(?:st|nd|rd|th)?\b(?:\s+(?:` + monthNames + `))?)`)

// ByPhraseStrategy finds "by <token>" deadline phrases and returns only the
// captured token (e.g. "Friday").
type ByPhraseStrategy struct{}

func (ByPhraseStrategy) ExtractDeadline(text string) string {
	if match := byPhrasePattern.FindStringSubmatch(text); match != nil {
		return match[1]
	}
	return models.NoDeadline
}

// NewDateStrategy selects a date extraction strategy by name. Unknown names
// fall back to the month-day strategy.
func NewDateStrategy(name string) DateStrategy {
	if name == "by-phrase" {
		return ByPhraseStrategy{}
	}
	return MonthDayStrategy{}
}
