package core

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/pkoukk/tiktoken-go"
	"golang.org/x/sync/errgroup"

	"github.com/vidinsights/vidgraph/internal/core/model"
	"github.com/vidinsights/vidgraph/internal/driver"
)

// assembleContext re-reads the graph for one document: its text, the distinct
// entity names it mentions (name order) and the relations whose endpoints are
// both mentioned by it. The two reads are independent and run concurrently.
// Returns ErrNotFound when the document has no graph record.
func (p *Pipeline) assembleContext(ctx context.Context, documentID string) (*model.DocumentContext, error) {
	var (
		dc    model.DocumentContext
		found bool
	)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		res, err := p.Driver.ExecuteQuery(ctx, driver.DocumentEntitiesQuery, map[string]interface{}{
			"document_id": documentID,
		})
		if err != nil {
			return fmt.Errorf("read document and entities: %w", err)
		}
		if len(res.Records) == 0 {
			return nil
		}

		found = true
		rec := res.Records[0]
		if text, ok := rec.Get("text"); ok {
			if s, ok := text.(string); ok {
				dc.Text = s
			}
		}
		if raw, ok := rec.Get("entities"); ok {
			if list, ok := raw.([]interface{}); ok {
				for _, v := range list {
					if name, ok := v.(string); ok && name != "" {
						dc.Entities = append(dc.Entities, name)
					}
				}
			}
		}
		return nil
	})

	g.Go(func() error {
		res, err := p.Driver.ExecuteQuery(ctx, driver.DocumentRelationsQuery, map[string]interface{}{
			"document_id": documentID,
			"limit":       p.Limits.MaxRelations,
		})
		if err != nil {
			return fmt.Errorf("read document relations: %w", err)
		}
		for _, rec := range res.Records {
			from, _ := rec.Get("from")
			relType, _ := rec.Get("type")
			to, _ := rec.Get("to")

			fromName, ok1 := from.(string)
			typeName, ok2 := relType.(string)
			toName, ok3 := to.(string)
			if !ok1 || !ok2 || !ok3 {
				continue
			}
			dc.Relations = append(dc.Relations, model.Triple{
				Subject:  fromName,
				Relation: typeName,
				Object:   toName,
			})
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, documentID)
	}

	return &dc, nil
}

func renderRelations(relations []model.Triple) string {
	var b strings.Builder
	for _, r := range relations {
		fmt.Fprintf(&b, "- %s %s %s\n", r.Subject, r.Relation, r.Object)
	}
	return strings.TrimRight(b.String(), "\n")
}

var (
	encoderOnce sync.Once
	encoder     *tiktoken.Tiktoken
)

// boundedText truncates the transcript to the configured token budget before
// it is embedded in a generation prompt. Truncation is deterministic, so the
// same document always yields the same prompt. A zero budget disables the cap;
// if the encoding cannot be loaded the text passes through unbounded.
func (p *Pipeline) boundedText(text string) string {
	if p.Limits.ContextTokenBudget <= 0 {
		return text
	}

	encoderOnce.Do(func() {
		enc, err := tiktoken.GetEncoding("cl100k_base")
		if err != nil {
			p.Log.Warn("failed to load token encoding, context will be unbounded", "err", err)
			return
		}
		encoder = enc
	})
	if encoder == nil {
		return text
	}

	tokens := encoder.Encode(text, nil, nil)
	if len(tokens) <= p.Limits.ContextTokenBudget {
		return text
	}
	return encoder.Decode(tokens[:p.Limits.ContextTokenBudget])
}
