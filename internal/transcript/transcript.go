// Package transcript resolves a video URL to its spoken text: id extraction,
// caption fetching and segment joining.
package transcript

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

var videoIDPattern = regexp.MustCompile(`(?:v=|/)([0-9A-Za-z_-]{11})`)

// ExtractVideoID pulls the 11-character video identifier out of a watch URL,
// short URL or embed URL.
func ExtractVideoID(url string) (string, error) {
	m := videoIDPattern.FindStringSubmatch(url)
	if m == nil {
		return "", fmt.Errorf("invalid video URL: %q", url)
	}
	return m[1], nil
}

// Segment is one timed caption entry.
type Segment struct {
	Text  string
	Start float64
	Dur   float64
}

// Source fetches the ordered caption segments for a video.
type Source interface {
	Fetch(ctx context.Context, videoID string) ([]Segment, error)
}

// Join concatenates segment texts with single spaces, producing the
// normalized transcript the pipeline stores.
func Join(segments []Segment) string {
	parts := make([]string, 0, len(segments))
	for _, s := range segments {
		if t := strings.TrimSpace(s.Text); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, " ")
}
