// Package summarize produces a bounded synopsis of pasted email text under
// one of several interchangeable strategies.
package summarize

import (
	"context"
	"fmt"
	"time"

	"mailpilot/internal/cache"
	"mailpilot/internal/config"
)

// Summarizer turns raw email text into a short synopsis. Strategies that
// cannot produce one return an error; callers degrade the result instead
// of failing the analysis.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}

// New builds the summarizer selected by configuration. Delegated strategies
// share the summary cache; unknown names fall back to truncation.
func New(cfg *config.Config) (Summarizer, error) {
	switch cfg.SummaryStrategy {
	case "", "truncate":
		return Truncator{}, nil
	case "rules":
		return NewRuleBased(), nil
	case "openai":
		if cfg.OpenAIKey == "" {
			return nil, fmt.Errorf("SUMMARY_STRATEGY=openai requires OPENAI_API_KEY")
		}
		summaries := cache.New(time.Duration(cfg.SummaryCacheTTLMinutes) * time.Minute)
		return NewOpenAI(cfg.OpenAIKey, time.Duration(cfg.OpenAITimeout)*time.Second, summaries), nil
	case "extractive":
		summaries := cache.New(time.Duration(cfg.SummaryCacheTTLMinutes) * time.Minute)
		return NewExtractive(summaries), nil
	}
	return Truncator{}, nil
}
