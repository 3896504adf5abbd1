package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/vidinsights/vidgraph/internal/driver"
)

// BuildGraph checks for a prior document, persists the document node, runs one
// extraction completion and merges the resulting triples into the graph.
//
// A second build for the same document id is an idempotent no-op. Ordering
// within a build is strict: the existence check completes before the create,
// and the create completes before any triple write.
//
// Failure semantics are at-least-attempted, not exactly-once: if extraction or
// a triple write fails after the document node was created, the whole build
// fails, and a retried build will observe the document as existing and no-op
// without re-running extraction.
func (p *Pipeline) BuildGraph(ctx context.Context, documentID, text string) error {
	if strings.TrimSpace(documentID) == "" {
		return fmt.Errorf("%w: empty document id", ErrInvalidInput)
	}
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("%w: empty document text", ErrInvalidInput)
	}

	existing, err := p.Driver.ExecuteQuery(ctx, driver.DocumentExistsQuery, map[string]interface{}{
		"document_id": documentID,
	})
	if err != nil {
		return fmt.Errorf("check document existence: %w", err)
	}
	if len(existing.Records) > 0 {
		p.Log.Debug("document already processed, skipping build", "document_id", documentID)
		return nil
	}

	_, err = p.Driver.ExecuteQuery(ctx, driver.CreateDocumentQuery, map[string]interface{}{
		"document_id": documentID,
		"text":        text,
	})
	if err != nil {
		// A concurrent builder won the create. The graph is or will be
		// populated by it, so treat this exactly like the existence check
		// having found the document.
		if driver.IsConstraintViolation(err) {
			p.Log.Debug("document created concurrently, skipping build", "document_id", documentID)
			return nil
		}
		return fmt.Errorf("create document: %w", err)
	}

	triples, err := p.Extractor.Extract(ctx, text)
	if err != nil {
		return fmt.Errorf("extract triples: %w", err)
	}

	for _, t := range triples {
		_, err := p.Driver.ExecuteQuery(ctx, driver.MergeTripleQuery, map[string]interface{}{
			"document_id": documentID,
			"subject":     t.Subject,
			"relation":    t.Relation,
			"object":      t.Object,
		})
		if err != nil {
			return fmt.Errorf("merge triple (%s, %s, %s): %w", t.Subject, t.Relation, t.Object, err)
		}
	}

	p.Log.Info("built knowledge graph", "document_id", documentID, "triples", len(triples))
	return nil
}
