package domain

import "errors"

// Domain errors represent expected failure modes of graph queries.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	// During traversal this is a normal outcome (a join may point at a
	// reference that is not loaded) and is absorbed as a dead end.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input, such as a
	// negative traversal radius or a join interval without a reference.
	ErrInvalidInput = errors.New("invalid input")

	// ErrStoreUnavailable indicates the underlying topology or sequence
	// store is inaccessible. Fatal to the enclosing call.
	ErrStoreUnavailable = errors.New("store unavailable")

	// ErrMalformedTopology indicates a topology database is missing the
	// expected relations. Only returned when opening a graph.
	ErrMalformedTopology = errors.New("malformed topology database")

	// ErrTraversalBudget indicates an extraction exceeded its visit cap.
	// Extraction aborts rather than returning a truncated result.
	ErrTraversalBudget = errors.New("traversal visit budget exceeded")

	// ErrGraphClosed indicates an operation on a closed graph handle.
	ErrGraphClosed = errors.New("graph closed")
)
