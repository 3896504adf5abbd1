package model

// Document is one processed source text, unique per DocumentID. Created once
// by the graph builder and never mutated.
type Document struct {
	DocumentID string `json:"document_id"`
	Text       string `json:"text"`
}

// Triple is the (subject, relation, object) unit produced by extraction.
// Subject and Object name Entity nodes; Relation is the free-text edge type.
type Triple struct {
	Subject  string `json:"subject"`
	Relation string `json:"relation"`
	Object   string `json:"object"`
}

// DocumentContext is everything the graph knows about one document: its full
// text, the entity names it mentions (name order) and the relations whose both
// endpoints it mentions.
type DocumentContext struct {
	Text      string   `json:"text"`
	Entities  []string `json:"entities"`
	Relations []Triple `json:"relations"`
}
