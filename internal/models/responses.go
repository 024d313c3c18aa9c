package models

import "time"

// HealthResponse represents a basic health check response
// @Description Health check response
type HealthResponse struct {
	Status    string    `json:"status" example:"healthy"`                 // Health status
	Timestamp time.Time `json:"timestamp" example:"2023-01-01T00:00:00Z"` // Timestamp of the check
	Version   string    `json:"version" example:"1.0.0"`                  // Application version
}

// StoreHealthResponse represents a calendar store health check response
// @Description Calendar store health check response
type StoreHealthResponse struct {
	Status    string    `json:"status" example:"healthy"`                 // Health status
	Timestamp time.Time `json:"timestamp" example:"2023-01-01T00:00:00Z"` // Timestamp of the check
	Records   int       `json:"records" example:"12"`                     // Number of persisted records
	Error     string    `json:"error,omitempty" example:""`               // Error message if any
}

// AnalyzeRequest represents the request body for the analyze endpoint
// @Description Analyze request payload
type AnalyzeRequest struct {
	Text string `json:"text"` // Raw pasted email text
}

// AnalyzeResponse represents the response from the analyze endpoint
// @Description Analyze response payload
type AnalyzeResponse struct {
	Result *AnalysisResult `json:"result,omitempty"`
	// Saved is "saved", "duplicate" or "no-deadline"
	Saved string `json:"saved,omitempty" example:"saved"`
	Error string `json:"error,omitempty" example:""`
}

// CalendarResponse represents the response from the calendar listing endpoint
// @Description Calendar listing payload
type CalendarResponse struct {
	Records []CalendarRecord `json:"records"`
	Error   string           `json:"error,omitempty" example:""`
}

// ReplyRequest represents a request to send the suggested reply
// @Description Reply delivery request payload
type ReplyRequest struct {
	Text string `json:"text"` // Raw pasted email text to suggest a reply for
	To   string `json:"to"`   // Recipient address
}

// ReplyResponse represents the response from the reply delivery endpoint
// @Description Reply delivery response payload
type ReplyResponse struct {
	Success bool   `json:"success" example:"true"`
	Reply   string `json:"reply,omitempty"` // The reply text that was sent
	Message string `json:"message,omitempty" example:"Reply sent"`
	Error   string `json:"error,omitempty" example:""`
}

// AnalyticsSnapshot represents aggregate counters over processed emails
// @Description Aggregate analysis counters
type AnalyticsSnapshot struct {
	Analyzed    int            `json:"analyzed" example:"42"`    // Total emails analyzed
	Saved       int            `json:"saved" example:"17"`       // Records appended to the calendar
	Duplicates  int            `json:"duplicates" example:"3"`   // Appends suppressed as duplicates
	NoDeadline  int            `json:"no_deadline" example:"22"` // Results without a deadline
	StoreErrors int            `json:"store_errors,omitempty"`   // Appends that failed outright
	TagCounts   map[string]int `json:"tag_counts"`               // Tag frequency across analyses
}
