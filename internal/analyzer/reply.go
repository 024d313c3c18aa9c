package analyzer

import "strings"

// DefaultReply is emitted when no reply rule matches.
const DefaultReply = "Got it. Thank you!"

// ReplyRule pairs trigger keywords with a canned reply. The first rule with
// any keyword hit determines the output.
type ReplyRule struct {
	Keywords []string
	Reply    string
}

// ReplyTable is an ordered decision list evaluated top to bottom over the
// lower-cased text.
type ReplyTable []ReplyRule

// BaseReplyTable acknowledges submissions and meetings.
var BaseReplyTable = ReplyTable{
	{Keywords: []string{"submit"}, Reply: "Thank you! I will submit it by the deadline."},
	{Keywords: []string{"meeting"}, Reply: "Noted. I'll be there."},
}

// ExtendedReplyTable adds an acknowledgment-and-follow-up rule checked
// before the submission rule.
var ExtendedReplyTable = ReplyTable{
	{Keywords: []string{"let me know", "please respond"}, Reply: "Sure, I will get back to you shortly. Thank you for reaching out!"},
	{Keywords: []string{"submit"}, Reply: "Thank you! I will submit it by the deadline."},
	{Keywords: []string{"meeting"}, Reply: "Noted. I'll be there."},
}

// Suggest returns the canned reply for the first matching rule, or
// DefaultReply when nothing matches.
func (t ReplyTable) Suggest(text string) string {
	lower := strings.ToLower(text)
	for _, rule := range t {
		for _, keyword := range rule.Keywords {
			if strings.Contains(lower, keyword) {
				return rule.Reply
			}
		}
	}
	return DefaultReply
}

// NewReplyTable selects a reply table by vocabulary name so the extended
// vocabulary carries the extended reply rules as well.
func NewReplyTable(vocabulary string) ReplyTable {
	if vocabulary == "extended" {
		return ExtendedReplyTable
	}
	return BaseReplyTable
}
