// Package core implements the extraction-and-grounding pipeline: it turns a
// transcript into a deduplicated entity/relationship graph, then re-reads that
// graph to ground summaries and answers.
package core

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/vidinsights/vidgraph/internal/config"
	"github.com/vidinsights/vidgraph/internal/core/extraction"
	"github.com/vidinsights/vidgraph/internal/core/language"
	"github.com/vidinsights/vidgraph/internal/driver"
	"github.com/vidinsights/vidgraph/internal/llm"
)

type Pipeline struct {
	Driver    driver.GraphDriver
	LLM       llm.Client
	Extractor *extraction.Extractor
	Enforcer  *language.Enforcer
	Prompts   config.Prompts
	Limits    config.Limits
	Log       *log.Logger
}

func NewPipeline(d driver.GraphDriver, llmClient llm.Client, cfg *config.Config) *Pipeline {
	return &Pipeline{
		Driver:    d,
		LLM:       llmClient,
		Extractor: extraction.NewExtractor(llmClient, cfg.Prompts.Extraction, cfg.Limits.MaxTriples),
		Enforcer:  language.NewEnforcer(llmClient),
		Prompts:   cfg.Prompts,
		Limits:    cfg.Limits,
		Log:       log.Default().With("component", "pipeline"),
	}
}

func (p *Pipeline) BuildIndices(ctx context.Context) error {
	return p.Driver.BuildIndices(ctx)
}
