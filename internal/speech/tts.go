package speech

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

type Synthesizer interface {
	Synthesize(ctx context.Context, text, lang string) ([]byte, error)
}

// TranslateSynthesizer fetches MP3 speech audio from the translate TTS
// endpoint. The endpoint caps the per-request text length, so long texts are
// synthesized in chunks and the MP3 frames concatenated.
type TranslateSynthesizer struct {
	Client  *http.Client
	BaseURL string
}

const ttsChunkLimit = 200

func NewTranslateSynthesizer(baseURL string) *TranslateSynthesizer {
	return &TranslateSynthesizer{
		Client:  http.DefaultClient,
		BaseURL: baseURL,
	}
}

func (s *TranslateSynthesizer) Synthesize(ctx context.Context, text, lang string) ([]byte, error) {
	if text == "" {
		return nil, fmt.Errorf("empty text")
	}

	var audio []byte
	for _, chunk := range chunkText(text, ttsChunkLimit) {
		part, err := s.fetchChunk(ctx, chunk, lang)
		if err != nil {
			return nil, err
		}
		audio = append(audio, part...)
	}
	return audio, nil
}

func (s *TranslateSynthesizer) fetchChunk(ctx context.Context, text, lang string) ([]byte, error) {
	q := url.Values{}
	q.Set("ie", "UTF-8")
	q.Set("client", "tw-ob")
	q.Set("q", text)
	q.Set("tl", lang)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.BaseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("synthesize speech: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("synthesize speech: unexpected status %s", resp.Status)
	}

	return io.ReadAll(resp.Body)
}

// chunkText splits on rune boundaries, preferring to break at a space within
// the limit so words stay intact.
func chunkText(text string, limit int) []string {
	runes := []rune(text)
	var chunks []string
	for len(runes) > 0 {
		if len(runes) <= limit {
			chunks = append(chunks, string(runes))
			break
		}
		cut := limit
		for i := limit; i > 0; i-- {
			if runes[i-1] == ' ' {
				cut = i
				break
			}
		}
		chunks = append(chunks, string(runes[:cut]))
		runes = runes[cut:]
	}
	return chunks
}
