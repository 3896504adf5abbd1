package extraction

import (
	"context"
	"fmt"

	"github.com/vidinsights/vidgraph/internal/core/model"
	"github.com/vidinsights/vidgraph/internal/core/triple"
	"github.com/vidinsights/vidgraph/internal/llm"
)

// Extraction is a factual task, so the temperature is biased low. The inverse
// of the bias used for summary/answer generation.
const extractionTemperature = 0.3

type Extractor struct {
	LLM        llm.Client
	Prompt     string
	MaxTriples int
}

func NewExtractor(llmClient llm.Client, prompt string, maxTriples int) *Extractor {
	return &Extractor{
		LLM:        llmClient,
		Prompt:     prompt,
		MaxTriples: maxTriples,
	}
}

// Extract runs a single completion over the transcript and parses the result
// into triples. Malformed lines are dropped; an empty result with a nil error
// means the model produced nothing parseable, which is not a failure.
func (e *Extractor) Extract(ctx context.Context, text string) ([]model.Triple, error) {
	prompt := fmt.Sprintf(e.Prompt, text, e.MaxTriples)

	response, err := e.LLM.Generate(ctx, prompt, extractionTemperature)
	if err != nil {
		return nil, fmt.Errorf("failed to generate triples: %w", err)
	}

	return triple.ParseAll(response), nil
}
