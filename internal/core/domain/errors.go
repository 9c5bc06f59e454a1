package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	// Distinct from a found entity with empty fields.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates an entity already exists.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotImplemented indicates functionality is not yet available.
	ErrNotImplemented = errors.New("not implemented")

	// ErrUnsupportedType indicates an unknown entity kind or source kind.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrAnalysisUnsupported indicates the entity kind does not declare
	// the analysis capability.
	ErrAnalysisUnsupported = errors.New("analysis not supported")
)
