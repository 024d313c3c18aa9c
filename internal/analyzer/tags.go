package analyzer

import "strings"

// TagRule maps a keyword hit to a category tag. Rules are checked in slice
// order so the output tag order is fixed by the vocabulary, not the input.
type TagRule struct {
	Keyword string
	Tag     string
}

// Vocabulary is an ordered keyword-to-tag table.
type Vocabulary []TagRule

// BaseVocabulary covers the small default tag set.
var BaseVocabulary = Vocabulary{
	{Keyword: "project", Tag: "Project"},
	{Keyword: "submit", Tag: "Submission"},
	{Keyword: "submission", Tag: "Submission"},
	{Keyword: "meeting", Tag: "Meeting"},
	{Keyword: "reminder", Tag: "Reminder"},
}

// ExtendedVocabulary widens the tag set and relabels submission hits as
// Deadline.
var ExtendedVocabulary = Vocabulary{
	{Keyword: "project", Tag: "Project"},
	{Keyword: "submit", Tag: "Deadline"},
	{Keyword: "submission", Tag: "Deadline"},
	{Keyword: "meeting", Tag: "Meeting"},
	{Keyword: "reminder", Tag: "Reminder"},
	{Keyword: "report", Tag: "Report"},
	{Keyword: "collaboration", Tag: "Collaboration"},
	{Keyword: "internship", Tag: "Internship"},
	{Keyword: "problem", Tag: "Issue"},
	{Keyword: "issue", Tag: "Issue"},
}

// Classify returns all tags whose keyword occurs in the text, in rule order
// with no duplicates. A text with no keyword hits yields ["General"].
func (v Vocabulary) Classify(text string) []string {
	lower := strings.ToLower(text)

	var tags []string
	seen := make(map[string]bool)
	for _, rule := range v {
		if !strings.Contains(lower, rule.Keyword) {
			continue
		}
		if seen[rule.Tag] {
			continue
		}
		seen[rule.Tag] = true
		tags = append(tags, rule.Tag)
	}

	if len(tags) == 0 {
		return []string{"General"}
	}
	return tags
}

// NewVocabulary selects a tag vocabulary by name. Unknown names fall back
// to the base vocabulary.
func NewVocabulary(name string) Vocabulary {
	if name == "extended" {
		return ExtendedVocabulary
	}
	return BaseVocabulary
}
