// Package analytics keeps in-memory counters over processed emails.
// Counters reset on restart.
package analytics

import (
	"sync"

	"mailpilot/internal/models"
)

// Service tracks aggregate analysis activity
type Service struct {
	mu         sync.Mutex
	analyzed    int
	saved       int
	duplicates  int
	noDeadline  int
	storeErrors int
	tagCounts   map[string]int
}

// NewService creates a new analytics service
func NewService() *Service {
	return &Service{
		tagCounts: make(map[string]int),
	}
}

// TrackAnalysis records one completed analysis and its persistence outcome.
func (s *Service) TrackAnalysis(result models.AnalysisResult, saved string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.analyzed++
	switch saved {
	case "saved":
		s.saved++
	case "duplicate":
		s.duplicates++
	case "no-deadline":
		s.noDeadline++
	case "store-error":
		s.storeErrors++
	}
	for _, tag := range result.Tags {
		s.tagCounts[tag]++
	}
}

// Snapshot returns a copy of the current counters.
func (s *Service) Snapshot() models.AnalyticsSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	tags := make(map[string]int, len(s.tagCounts))
	for tag, count := range s.tagCounts {
		tags[tag] = count
	}

	return models.AnalyticsSnapshot{
		Analyzed:    s.analyzed,
		Saved:       s.saved,
		Duplicates:  s.duplicates,
		NoDeadline:  s.noDeadline,
		StoreErrors: s.storeErrors,
		TagCounts:   tags,
	}
}
