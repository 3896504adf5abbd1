package transcript

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

const defaultTimedTextURL = "https://www.youtube.com/api/timedtext"

// TimedTextSource fetches captions from the public timedtext endpoint, which
// returns XML of timed <text> elements.
type TimedTextSource struct {
	Client   *http.Client
	BaseURL  string
	Language string
}

func NewTimedTextSource() *TimedTextSource {
	return &TimedTextSource{
		Client:   http.DefaultClient,
		BaseURL:  defaultTimedTextURL,
		Language: "en",
	}
}

type timedText struct {
	XMLName xml.Name        `xml:"transcript"`
	Texts   []timedTextLine `xml:"text"`
}

type timedTextLine struct {
	Start float64 `xml:"start,attr"`
	Dur   float64 `xml:"dur,attr"`
	Body  string  `xml:",chardata"`
}

func (s *TimedTextSource) Fetch(ctx context.Context, videoID string) ([]Segment, error) {
	q := url.Values{}
	q.Set("v", videoID)
	q.Set("lang", s.Language)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.BaseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch transcript for %s: %w", videoID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch transcript for %s: unexpected status %s", videoID, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read transcript body: %w", err)
	}

	segments, err := parseTimedText(body)
	if err != nil {
		return nil, err
	}
	if len(segments) == 0 {
		return nil, fmt.Errorf("no captions available for video %s", videoID)
	}
	return segments, nil
}

func parseTimedText(data []byte) ([]Segment, error) {
	var doc timedText
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse transcript XML: %w", err)
	}

	segments := make([]Segment, 0, len(doc.Texts))
	for _, line := range doc.Texts {
		segments = append(segments, Segment{
			Text:  line.Body,
			Start: line.Start,
			Dur:   line.Dur,
		})
	}
	return segments, nil
}
