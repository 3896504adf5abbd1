package llm

import (
	"context"
)

// Client is a one-shot completion capability: no conversation memory is kept
// across calls. Temperature is per-call because the pipeline biases extraction
// low and generation high.
type Client interface {
	Generate(ctx context.Context, prompt string, temperature float32) (string, error)
}
