package models

// Sentinel values returned when an extractor finds nothing. Absence is an
// expected outcome, not an error.
const (
	NoDeadline    = "No deadline found"
	UnknownSender = "Unknown Sender"
)

// AnalysisResult represents the outcome of analyzing one pasted email
// @Description Extracted email metadata
type AnalysisResult struct {
	Deadline string   `json:"deadline" example:"June 21st, 2025"`                       // Deadline phrase or sentinel
	Tags     []string `json:"tags" example:"Submission,Meeting"`                        // Topic tags, never empty
	Sender   string   `json:"sender" example:"Prof. Rao <rao@example.edu>"`             // Sender identity or sentinel
	Priority int      `json:"priority" example:"80"`                                    // Priority score 0-100
	Badge    string   `json:"badge" example:"High"`                                     // Priority badge (High/Medium/Low)
	Reply    string   `json:"reply" example:"Thank you! I will submit it by the deadline."` // Suggested auto-reply
	Summary  string   `json:"summary"`                                                  // Synopsis of the message
	// SummaryFailed is true when the summarizer degraded to an error
	// description instead of a real synopsis.
	SummaryFailed bool   `json:"summary_failed,omitempty"`
	SummaryError  string `json:"summary_error,omitempty"`
}

// HasDeadline reports whether a recognizable deadline was extracted.
// Only results with a deadline are persisted to the calendar.
func (r AnalysisResult) HasDeadline() bool {
	return r.Deadline != "" && r.Deadline != NoDeadline
}
