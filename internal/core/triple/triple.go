// Package triple parses the pipe-delimited entity1|relationship|entity2 lines
// the extraction prompt asks the model to produce.
package triple

import (
	"strings"

	"github.com/vidinsights/vidgraph/internal/core/model"
)

const separator = "|"

// Parse attempts to read one line as a triple. A line is valid iff splitting
// on the separator yields exactly three segments that are non-empty after
// trimming. Anything else reports no triple; Parse never fails.
func Parse(line string) (model.Triple, bool) {
	parts := strings.Split(line, separator)
	if len(parts) != 3 {
		return model.Triple{}, false
	}

	subject := strings.TrimSpace(parts[0])
	relation := strings.TrimSpace(parts[1])
	object := strings.TrimSpace(parts[2])

	if subject == "" || relation == "" || object == "" {
		return model.Triple{}, false
	}

	return model.Triple{
		Subject:  subject,
		Relation: relation,
		Object:   object,
	}, true
}

// ParseAll splits a completion into lines and keeps the ones that parse.
// A malformed line never affects its siblings.
func ParseAll(completion string) []model.Triple {
	var triples []model.Triple
	for _, line := range strings.Split(completion, "\n") {
		if t, ok := Parse(line); ok {
			triples = append(triples, t)
		}
	}
	return triples
}
