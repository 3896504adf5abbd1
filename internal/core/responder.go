package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/vidinsights/vidgraph/internal/core/language"
)

// Generation favors fluent prose over determinism, the inverse bias from
// extraction. Answers sit between the two.
const (
	summaryTemperature float32 = 0.7
	answerTemperature  float32 = 0.5
)

// Summarize assembles the document's graph context and generates a summary in
// the requested style and approximate length. Style and word count are soft
// prompt instructions, not validated on the output. When the requested
// language is not the generation default, the result passes through the
// language enforcer before returning.
func (p *Pipeline) Summarize(ctx context.Context, documentID, style string, wordCount int, lang string) (string, error) {
	if strings.TrimSpace(documentID) == "" {
		return "", fmt.Errorf("%w: empty document id", ErrInvalidInput)
	}

	dc, err := p.assembleContext(ctx, documentID)
	if err != nil {
		return "", err
	}

	prompt := fmt.Sprintf(p.Prompts.Summary,
		style,
		wordCount,
		strings.Join(dc.Entities, ", "),
		renderRelations(dc.Relations),
		p.boundedText(dc.Text),
		style,
	)

	summary, err := p.LLM.Generate(ctx, prompt, summaryTemperature)
	if err != nil {
		return "", fmt.Errorf("generate summary: %w", err)
	}
	summary = strings.TrimSpace(summary)

	if !language.IsDefault(lang) {
		return p.Enforcer.Enforce(ctx, summary, lang)
	}
	return summary, nil
}

// Answer assembles the document's graph context and answers the question
// grounded in it, with the same language post-pass as Summarize.
func (p *Pipeline) Answer(ctx context.Context, documentID, question, lang string) (string, error) {
	if strings.TrimSpace(documentID) == "" {
		return "", fmt.Errorf("%w: empty document id", ErrInvalidInput)
	}
	if strings.TrimSpace(question) == "" {
		return "", fmt.Errorf("%w: empty question", ErrInvalidInput)
	}

	dc, err := p.assembleContext(ctx, documentID)
	if err != nil {
		return "", err
	}

	prompt := fmt.Sprintf(p.Prompts.Answer,
		question,
		renderRelations(dc.Relations),
		p.boundedText(dc.Text),
	)

	answer, err := p.LLM.Generate(ctx, prompt, answerTemperature)
	if err != nil {
		return "", fmt.Errorf("generate answer: %w", err)
	}
	answer = strings.TrimSpace(answer)

	if !language.IsDefault(lang) {
		return p.Enforcer.Enforce(ctx, answer, lang)
	}
	return answer, nil
}
