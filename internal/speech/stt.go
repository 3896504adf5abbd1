// Package speech converts question audio to text and generated text to audio.
// Both directions are external capabilities the transport consumes; the core
// pipeline only ever sees plain text.
package speech

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte) (string, error)
}

// WhisperTranscriber runs speech-to-text through the OpenAI-compatible audio
// endpoint (Groq serves the whisper models behind the same API shape).
type WhisperTranscriber struct {
	client *openai.Client
	model  string
}

func NewWhisperTranscriber(apiKey, model, baseURL string) *WhisperTranscriber {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	return &WhisperTranscriber{
		client: openai.NewClientWithConfig(config),
		model:  model,
	}
}

func (t *WhisperTranscriber) Transcribe(ctx context.Context, audio []byte) (string, error) {
	resp, err := t.client.CreateTranscription(ctx, openai.AudioRequest{
		Model:    t.model,
		Reader:   bytes.NewReader(audio),
		FilePath: "question.m4a",
	})
	if err != nil {
		return "", fmt.Errorf("transcribe audio: %w", err)
	}
	return strings.TrimSpace(resp.Text), nil
}

// DecodeAudio accepts raw base64 audio, optionally with a data-URL prefix
// ("data:audio/m4a;base64,....") as browsers produce.
func DecodeAudio(data string) ([]byte, error) {
	if i := strings.IndexByte(data, ','); i >= 0 {
		data = data[i+1:]
	}
	audio, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, fmt.Errorf("decode audio data: %w", err)
	}
	if len(audio) == 0 {
		return nil, fmt.Errorf("empty audio data")
	}
	return audio, nil
}
