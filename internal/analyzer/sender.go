package analyzer

import (
	"regexp"
	"strings"

	"mailpilot/internal/models"
)

// senderPattern captures the text after a "From:" label up to the first
// angle bracket or end of line, then any bracketed address.
var senderPattern = regexp.MustCompile(`(?im)^.*?from:\s*([^<\r\n]*)(<[^>\r\n]*>)?`)

// SenderExtractor locates a "From:"-style header line and returns the
// sender identity on it.
type SenderExtractor struct {
	// KeepAngleBracketEmail re-joins the bracketed address after the name.
	// When false only the text before the first angle bracket is returned.
	KeepAngleBracketEmail bool
}

// ExtractSender returns the sender identity found on a From: line, or the
// models.UnknownSender sentinel.
func (e SenderExtractor) ExtractSender(text string) string {
	match := senderPattern.FindStringSubmatch(text)
	if match == nil {
		return models.UnknownSender
	}

	name := strings.TrimSpace(match[1])
	address := match[2]

	if e.KeepAngleBracketEmail && address != "" {
		if name == "" {
			return address
		}
		return name + " " + address
	}

	if name == "" {
		return models.UnknownSender
	}
	return name
}
