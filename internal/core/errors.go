package core

import "errors"

var (
	// ErrNotFound means the requested document has no graph record.
	ErrNotFound = errors.New("document not found in knowledge graph")

	// ErrInvalidInput means a caller-supplied identifier or text failed shape
	// validation before any I/O was attempted.
	ErrInvalidInput = errors.New("invalid input")
)
