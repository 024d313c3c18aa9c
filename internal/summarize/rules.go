package summarize

import (
	"context"
	"strings"

	"mailpilot/internal/analyzer"
)

// summaryRule pairs trigger keywords with a canned descriptive sentence.
type summaryRule struct {
	keywords []string
	sentence string
}

// summaryRules are evaluated top to bottom; the first keyword hit wins.
var summaryRules = []summaryRule{
	{keywords: []string{"internship", "collaboration"}, sentence: "The sender is discussing an internship or collaboration opportunity."},
	{keywords: []string{"submit", "submission"}, sentence: "The sender is asking for a submission before a deadline."},
	{keywords: []string{"meeting"}, sentence: "The sender wants to schedule or confirm a meeting."},
	{keywords: []string{"update", "status"}, sentence: "The sender is sharing a status update."},
	{keywords: []string{"problem", "issue"}, sentence: "The sender is reporting a problem that needs attention."},
}

const genericSummary = "General correspondence with no specific request detected."

// RuleBased classifies the message into one of a few canned descriptive
// sentences by keyword precedence.
type RuleBased struct {
	dates   analyzer.DateStrategy
	tags    analyzer.Vocabulary
	replies analyzer.ReplyTable
}

// NewRuleBased builds the rule-based strategy. Its fused digest always uses
// the by-phrase date strategy and the extended vocabulary and reply table.
func NewRuleBased() RuleBased {
	return RuleBased{
		dates:   analyzer.ByPhraseStrategy{},
		tags:    analyzer.ExtendedVocabulary,
		replies: analyzer.ExtendedReplyTable,
	}
}

func (RuleBased) Summarize(_ context.Context, text string) (string, error) {
	lower := strings.ToLower(text)
	for _, rule := range summaryRules {
		for _, keyword := range rule.keywords {
			if strings.Contains(lower, keyword) {
				return rule.sentence, nil
			}
		}
	}
	return genericSummary, nil
}

// Digest bundles summary, deadline, tags and reply into one combined
// result.
type Digest struct {
	Summary  string   `json:"summary"`
	Deadline string   `json:"deadline"`
	Tags     []string `json:"tags"`
	Reply    string   `json:"reply"`
}

// Digest runs the full rule-based extraction in a single call.
func (r RuleBased) Digest(text string) Digest {
	summary, _ := r.Summarize(context.Background(), text)
	return Digest{
		Summary:  summary,
		Deadline: r.dates.ExtractDeadline(text),
		Tags:     r.tags.Classify(text),
		Reply:    r.replies.Suggest(text),
	}
}
