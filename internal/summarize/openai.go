package summarize

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"mailpilot/internal/cache"

	"github.com/sashabaranov/go-openai"
)

const summaryPrompt = "Summarize the following email in 2-3 short sentences. " +
	"Mention any deadline or requested action. Reply with the summary only."

// OpenAI delegates summarization to a hosted chat completion model. The
// input is cleaned of quoted replies and signatures before it is sent.
type OpenAI struct {
	client    *openai.Client
	timeout   time.Duration
	summaries *cache.Cache
}

// NewOpenAI creates the hosted summarization adapter.
func NewOpenAI(apiKey string, timeout time.Duration, summaries *cache.Cache) *OpenAI {
	return &OpenAI{
		client:    openai.NewClient(apiKey),
		timeout:   timeout,
		summaries: summaries,
	}
}

func (o *OpenAI) Summarize(ctx context.Context, text string) (string, error) {
	cleaned := Clean(text)
	if cleaned == "" {
		return "", fmt.Errorf("nothing to summarize after cleaning")
	}

	key := cache.Key(cleaned)
	if summary, ok := o.summaries.Get(key); ok {
		return summary, nil
	}

	summary, err := o.complete(ctx, cleaned)
	if err != nil && retryable(ctx, err) {
		// One retry on transient failure.
		summary, err = o.complete(ctx, cleaned)
	}
	if err != nil {
		return "", err
	}

	o.summaries.Set(key, summary)
	return summary, nil
}

// retryable reports whether a completion error is worth one more attempt.
// Cancelled contexts and client-side API rejections are not; rate limits,
// server errors and transport failures are.
func retryable(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return false
	}
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode == http.StatusTooManyRequests ||
			apiErr.HTTPStatusCode >= http.StatusInternalServerError
	}
	return true
}

func (o *OpenAI) complete(ctx context.Context, text string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, o.timeout)
	defer cancel()

	resp, err := o.client.CreateChatCompletion(
		ctx,
		openai.ChatCompletionRequest{
			Model: openai.GPT4oMini,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: summaryPrompt},
				{Role: openai.ChatMessageRoleUser, Content: text},
			},
			MaxTokens:   150,
			Temperature: 0.3,
		},
	)
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from OpenAI")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
