package models

import "strings"

// Calendar column names as written to the CSV header. The persisted subset
// is chosen at startup; Date and Tags are always present.
const (
	ColumnDate     = "Date"
	ColumnTags     = "Tags"
	ColumnFrom     = "From"
	ColumnPriority = "Priority"
	ColumnReply    = "Auto-Reply"
	ColumnSummary  = "Summary"
)

// CalendarRecord is one persisted row of the calendar log
// @Description Persisted calendar entry
type CalendarRecord struct {
	Deadline string `json:"deadline" example:"June 21st, 2025"`
	Tags     string `json:"tags" example:"Submission, Meeting"` // Comma-joined tag list
	Sender   string `json:"sender,omitempty"`
	Priority string `json:"priority,omitempty" example:"High"`
	Reply    string `json:"reply,omitempty"`
	Summary  string `json:"summary,omitempty"`
}

// NewCalendarRecord builds a record from an analysis result. The summary is
// truncated so a delegated synopsis cannot bloat the flat file.
func NewCalendarRecord(result AnalysisResult) CalendarRecord {
	summary := result.Summary
	if runes := []rune(summary); len(runes) > 200 {
		summary = string(runes[:200])
	}
	return CalendarRecord{
		Deadline: result.Deadline,
		Tags:     strings.Join(result.Tags, ", "),
		Sender:   result.Sender,
		Priority: result.Badge,
		Reply:    result.Reply,
		Summary:  summary,
	}
}

// Field returns the record value for a calendar column name. Unknown
// columns map to the empty string.
func (r CalendarRecord) Field(column string) string {
	switch column {
	case ColumnDate:
		return r.Deadline
	case ColumnTags:
		return r.Tags
	case ColumnFrom:
		return r.Sender
	case ColumnPriority:
		return r.Priority
	case ColumnReply:
		return r.Reply
	case ColumnSummary:
		return r.Summary
	}
	return ""
}
