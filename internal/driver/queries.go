package driver

const (
	DocumentExistsQuery = `
		MATCH (d:Document {document_id: $document_id})
		RETURN d.document_id AS document_id
		LIMIT 1
	`

	CreateDocumentQuery = `
		CREATE (d:Document {document_id: $document_id, text: $text})
	`

	// One write per triple: both entities merged by name, the relation merged
	// by (source, type, target), and both mention edges merged from the
	// document. Merge semantics keep repeated extraction convergent.
	MergeTripleQuery = `
		MATCH (d:Document {document_id: $document_id})
		MERGE (s:Entity {name: $subject})
		MERGE (o:Entity {name: $object})
		MERGE (s)-[r:RELATES_TO {type: $relation}]->(o)
		MERGE (d)-[:MENTIONS]->(s)
		MERGE (d)-[:MENTIONS]->(o)
	`

	DocumentEntitiesQuery = `
		MATCH (d:Document {document_id: $document_id})
		OPTIONAL MATCH (d)-[:MENTIONS]->(e:Entity)
		WITH d, e ORDER BY e.name
		RETURN d.text AS text, collect(DISTINCT e.name) AS entities
	`

	// Only relations whose both endpoints are mentioned by the document, so a
	// context never leaks entities introduced by a different document.
	DocumentRelationsQuery = `
		MATCH (d:Document {document_id: $document_id})-[:MENTIONS]->(s:Entity)-[r:RELATES_TO]->(o:Entity)
		WHERE (d)-[:MENTIONS]->(o)
		RETURN DISTINCT s.name AS from, r.type AS type, o.name AS to
		ORDER BY from, type, to
		LIMIT $limit
	`
)
