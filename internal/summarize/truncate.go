package summarize

import (
	"context"
	"strings"
)

// truncateLimit bounds the truncation synopsis length in characters.
const truncateLimit = 100

// Truncator returns the trimmed input, cut to the first hundred characters
// with a trailing ellipsis when longer. The cut lands on a rune boundary
// so multi-byte input stays valid UTF-8.
type Truncator struct{}

func (Truncator) Summarize(_ context.Context, text string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if runes := []rune(trimmed); len(runes) > truncateLimit {
		return string(runes[:truncateLimit]) + "...", nil
	}
	return trimmed, nil
}
