package summarize

import (
	"regexp"
	"strings"
)

var (
	// quotedReplyPattern matches a quoted-reply header ("On ... wrote:")
	// and everything after it.
	quotedReplyPattern = regexp.MustCompile(`(?is)\bOn .{0,200}?wrote:.*$`)

	// signaturePattern matches a trailing signature block introduced by a
	// line of dashes.
	signaturePattern = regexp.MustCompile(`(?m)^\s*-{2,}\s*$[\s\S]*\z`)
)

// Clean strips quoted-reply history and trailing signature blocks so only
// the message itself reaches the summarization backend.
func Clean(text string) string {
	text = quotedReplyPattern.ReplaceAllString(text, "")
	text = signaturePattern.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}
