// Package language rewrites generated text into a target language as a pure
// post-processing stage, decoupled from the generation that produced it.
package language

import (
	"context"
	"fmt"
	"strings"

	"github.com/vidinsights/vidgraph/internal/llm"
)

const enforceTemperature = 0.3

// DefaultLanguage is the pipeline's generation language; responses requested
// in it skip enforcement entirely.
const DefaultLanguage = "english"

var instructions = map[string]string{
	"english":  "Translate this to English if it's not already in English: ",
	"hindi":    "Translate this to Hindi (हिंदी) using Devanagari script: ",
	"marathi":  "Translate this to Marathi (मराठी) using Marathi script. Ensure it's proper Marathi, not Hindi: ",
	"gujarati": "Translate this to Gujarati (ગુજરાતી) using Gujarati script: ",
	"bengali":  "Translate this to Bengali (বাংলা) using Bengali script: ",
	"kannada":  "Translate this to Kannada (ಕನ್ನಡ) using Kannada script: ",
}

const fallbackInstruction = "Translate to English: "

// Recognized reports whether name maps to a known translation instruction.
// Enforce does not require this: unrecognized names silently fall back to the
// English instruction, matching the upstream behavior.
func Recognized(name string) bool {
	_, ok := instructions[strings.ToLower(name)]
	return ok
}

// IsDefault reports whether the requested language is the generation default,
// compared case-insensitively.
func IsDefault(name string) bool {
	return strings.ToLower(name) == DefaultLanguage
}

type Enforcer struct {
	LLM llm.Client
}

func NewEnforcer(llmClient llm.Client) *Enforcer {
	return &Enforcer{LLM: llmClient}
}

// Enforce issues one completion rewriting text into the target language and
// returns the trimmed result verbatim. No validation of the output script is
// performed; compliance is the completion service's problem.
func (e *Enforcer) Enforce(ctx context.Context, text, targetLanguage string) (string, error) {
	instruction, ok := instructions[strings.ToLower(targetLanguage)]
	if !ok {
		instruction = fallbackInstruction
	}

	prompt := fmt.Sprintf(`%s

Text: %s

Important: If the target language is Marathi, ensure it's proper Marathi language and not Hindi.
Use appropriate grammar, vocabulary, and expressions specific to the target language.`, instruction, text)

	response, err := e.LLM.Generate(ctx, prompt, enforceTemperature)
	if err != nil {
		return "", fmt.Errorf("failed to enforce language %q: %w", targetLanguage, err)
	}

	return strings.TrimSpace(response), nil
}
