package driven

import (
	"context"

	"github.com/graphref/sidegraph/internal/core/domain"
)

// TopologyStore provides read-only access to the reference and join
// topology of one side graph. Implementations never mutate the graph
// and must be safe for concurrent readers.
type TopologyStore interface {
	// ReferenceNames returns the names of all references in the graph.
	ReferenceNames(ctx context.Context) ([]string, error)

	// Reference returns the full metadata record for a reference,
	// including its source accessions. Returns domain.ErrNotFound when
	// the name is absent.
	Reference(ctx context.Context, name string) (*domain.Reference, error)

	// Joins returns the joins matching the filter. Ordering of the
	// returned joins is unspecified.
	Joins(ctx context.Context, filter domain.JoinFilter) ([]domain.Join, error)

	// SequenceRecord maps a reference name to its sequence record name
	// and the base name of the FASTA source file holding it.
	// Returns domain.ErrNotFound when the reference is absent.
	SequenceRecord(ctx context.Context, refName string) (record, fastaFile string, err error)

	// Close releases the underlying store handle.
	Close() error
}
