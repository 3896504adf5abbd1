package extraction

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vidinsights/vidgraph/internal/config"
	"github.com/vidinsights/vidgraph/internal/core/model"
)

func TestExtract(t *testing.T) {
	mockLLM := &MockLLMClient{
		Response: "Newton|discovered|Gravity\nParis|capitalOf|France",
	}

	extractor := NewExtractor(mockLLM, config.DefaultExtractionPrompt, 10)

	triples, err := extractor.Extract(context.Background(), "Newton discovered gravity. Paris is the capital of France.")

	assert.NoError(t, err)
	assert.Equal(t, []model.Triple{
		{Subject: "Newton", Relation: "discovered", Object: "Gravity"},
		{Subject: "Paris", Relation: "capitalOf", Object: "France"},
	}, triples)

	// The transcript and the triple limit both land in the prompt.
	assert.Len(t, mockLLM.Prompts, 1)
	assert.Contains(t, mockLLM.Prompts[0], "Newton discovered gravity.")
	assert.Contains(t, mockLLM.Prompts[0], "maximum 10 relationships")
	assert.InDelta(t, 0.3, mockLLM.Temperature, 0.001)
}

func TestExtractToleratesMalformedLines(t *testing.T) {
	mockLLM := &MockLLMClient{
		Response: "Sure! Here are the triples:\nNewton|discovered|Gravity\nbroken line\na|b|c|d",
	}

	extractor := NewExtractor(mockLLM, config.DefaultExtractionPrompt, 10)

	triples, err := extractor.Extract(context.Background(), "some transcript")

	assert.NoError(t, err)
	assert.Len(t, triples, 1)
	assert.Equal(t, "Newton", triples[0].Subject)
}

func TestExtractAllMalformedIsNotAnError(t *testing.T) {
	mockLLM := &MockLLMClient{
		Response: "I could not find any relationships in this transcript.",
	}

	extractor := NewExtractor(mockLLM, config.DefaultExtractionPrompt, 10)

	triples, err := extractor.Extract(context.Background(), "some transcript")

	assert.NoError(t, err)
	assert.Empty(t, triples)
}

func TestExtractPropagatesLLMFailure(t *testing.T) {
	mockLLM := &MockLLMClient{
		Err: errors.New("quota exceeded"),
	}

	extractor := NewExtractor(mockLLM, config.DefaultExtractionPrompt, 10)

	_, err := extractor.Extract(context.Background(), "some transcript")

	assert.ErrorContains(t, err, "failed to generate triples")
}
