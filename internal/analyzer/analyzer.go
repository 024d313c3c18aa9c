// Package analyzer holds the pure text-extraction pipeline: deadline,
// sender, tags, priority and suggested reply. Every extractor is a total
// function over the input text; absence is reported through sentinels,
// never errors.
package analyzer

import (
	"context"

	"mailpilot/internal/config"
	"mailpilot/internal/models"
)

// Summarizer is the one collaborator with externally-variable latency; it
// is injected so the hosted strategy can be swapped for a local one.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (string, error)
}

// Analyzer runs the full extraction pipeline over pasted email text.
type Analyzer struct {
	dates      DateStrategy
	sender     SenderExtractor
	vocabulary Vocabulary
	replies    ReplyTable
	summarizer Summarizer
}

// New builds an analyzer from configuration with the given summarizer.
func New(cfg *config.Config, summarizer Summarizer) *Analyzer {
	return &Analyzer{
		dates:      NewDateStrategy(cfg.DateStrategy),
		sender:     SenderExtractor{KeepAngleBracketEmail: cfg.KeepAngleBracketEmail},
		vocabulary: NewVocabulary(cfg.TagVocabulary),
		replies:    NewReplyTable(cfg.TagVocabulary),
		summarizer: summarizer,
	}
}

// Analyze extracts all metadata from the text. The extractors run
// independently; none depends on another's output. A summarizer failure
// degrades the summary field and leaves the rest of the result intact.
func (a *Analyzer) Analyze(ctx context.Context, text string) models.AnalysisResult {
	score := ScorePriority(text)

	result := models.AnalysisResult{
		Deadline: a.dates.ExtractDeadline(text),
		Tags:     a.vocabulary.Classify(text),
		Sender:   a.sender.ExtractSender(text),
		Priority: score,
		Badge:    PriorityBadge(score),
		Reply:    a.replies.Suggest(text),
	}

	summary, err := a.summarizer.Summarize(ctx, text)
	if err != nil {
		result.Summary = "Summary unavailable: " + err.Error()
		result.SummaryFailed = true
		result.SummaryError = err.Error()
	} else {
		result.Summary = summary
	}

	return result
}
