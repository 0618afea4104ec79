package driving

import (
	"context"

	"github.com/graphref/sidegraph/internal/core/domain"
)

// GraphService exposes queries over one opened side graph.
type GraphService interface {
	// ID identifies this graph handle.
	ID() string

	// ReferenceNames returns all reference names known to the graph.
	ReferenceNames(ctx context.Context) ([]string, error)

	// Reference returns the metadata record for a named reference.
	// Returns domain.ErrNotFound when the name is absent.
	Reference(ctx context.Context, name string) (*domain.Reference, error)

	// Joins returns the joins matching the filter.
	Joins(ctx context.Context, filter domain.JoinFilter) ([]domain.Join, error)

	// Subgraph extracts the bounded-radius subgraph around a seed
	// position. A seed reference absent from the catalog yields an
	// empty result, not an error.
	Subgraph(ctx context.Context, seedRef string, seedPos, radius int64) (domain.Subgraph, error)

	// Bases returns the bases of the half-open window [start, end) of a
	// reference, reverse-complemented when strand is StrandReverse.
	Bases(ctx context.Context, refName string, start, end int64, strand domain.Strand) (string, error)

	// Close releases the underlying stores.
	Close() error
}
