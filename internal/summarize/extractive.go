package summarize

import (
	"context"
	"fmt"
	"strings"

	"mailpilot/internal/cache"

	"github.com/didasy/tldr"
)

// extractiveSentences caps how many ranked sentences the local ranker keeps.
const extractiveSentences = 2

// Extractive ranks sentences locally instead of calling a hosted model.
// Useful when no API key is available.
type Extractive struct {
	summaries *cache.Cache
}

// NewExtractive creates the local extractive summarization adapter.
func NewExtractive(summaries *cache.Cache) *Extractive {
	return &Extractive{summaries: summaries}
}

func (e *Extractive) Summarize(_ context.Context, text string) (string, error) {
	cleaned := Clean(text)
	if cleaned == "" {
		return "", fmt.Errorf("nothing to summarize after cleaning")
	}

	key := cache.Key(cleaned)
	if summary, ok := e.summaries.Get(key); ok {
		return summary, nil
	}

	// tldr keeps internal state between runs, so a fresh bag per call.
	sentences, err := tldr.New().Summarize(cleaned, extractiveSentences)
	if err != nil {
		return "", fmt.Errorf("extractive summarization failed: %w", err)
	}
	if len(sentences) == 0 {
		return "", fmt.Errorf("extractive summarization produced no sentences")
	}

	summary := strings.TrimSpace(strings.Join(sentences, " "))
	e.summaries.Set(key, summary)
	return summary, nil
}
