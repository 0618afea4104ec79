package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/graphref/sidegraph/internal/core/domain"
	"github.com/graphref/sidegraph/internal/core/ports/driven"
	"github.com/graphref/sidegraph/internal/core/ports/driving"
)

// Ensure Graph implements the interface.
var _ driving.GraphService = (*Graph)(nil)

// Graph is an opened side graph: the reference catalog, join index and
// subgraph extractor wired over one topology store, plus the sequence
// store for base retrieval. A Graph holds no mutable query state, so
// concurrent queries are safe as long as the stores tolerate concurrent
// readers.
type Graph struct {
	id        string
	catalog   *Catalog
	joins     *JoinIndex
	extractor *Extractor
	topology  driven.TopologyStore
	sequences driven.SequenceStore

	closeOnce sync.Once
	closed    bool
	mu        sync.RWMutex
}

// Open loads the reference catalog from the topology store and returns
// a ready graph handle. The sequence store may be nil, in which case
// base retrieval is unavailable. On failure both stores are left for
// the caller to release.
func Open(ctx context.Context, topology driven.TopologyStore, sequences driven.SequenceStore) (*Graph, error) {
	catalog, err := LoadCatalog(ctx, topology)
	if err != nil {
		return nil, fmt.Errorf("opening graph: %w", err)
	}

	joins := NewJoinIndex(topology)
	return &Graph{
		id:        uuid.NewString(),
		catalog:   catalog,
		joins:     joins,
		extractor: NewExtractor(catalog, joins),
		topology:  topology,
		sequences: sequences,
	}, nil
}

// ID identifies this graph handle.
func (g *Graph) ID() string {
	return g.id
}

// ReferenceNames returns all reference names known to the graph.
func (g *Graph) ReferenceNames(_ context.Context) ([]string, error) {
	if err := g.check(); err != nil {
		return nil, err
	}
	return g.catalog.Names(), nil
}

// Reference returns the metadata record for a named reference.
func (g *Graph) Reference(_ context.Context, name string) (*domain.Reference, error) {
	if err := g.check(); err != nil {
		return nil, err
	}
	return g.catalog.Reference(name)
}

// Joins returns the joins matching the filter.
func (g *Graph) Joins(ctx context.Context, filter domain.JoinFilter) ([]domain.Join, error) {
	if err := g.check(); err != nil {
		return nil, err
	}
	return g.joins.Joins(ctx, filter)
}

// Subgraph extracts the bounded-radius subgraph around a seed position.
func (g *Graph) Subgraph(ctx context.Context, seedRef string, seedPos, radius int64) (domain.Subgraph, error) {
	if err := g.check(); err != nil {
		return domain.Subgraph{}, err
	}
	return g.extractor.Extract(ctx, seedRef, seedPos, radius)
}

// Extract is Subgraph with per-call options (trace callback, visit cap).
func (g *Graph) Extract(ctx context.Context, seedRef string, seedPos, radius int64, opts ...ExtractOption) (domain.Subgraph, error) {
	if err := g.check(); err != nil {
		return domain.Subgraph{}, err
	}
	return g.extractor.Extract(ctx, seedRef, seedPos, radius, opts...)
}

// Bases returns the bases of the half-open window [start, end) of a
// reference, reverse-complemented when strand is StrandReverse. The
// reference's sequence record is resolved through the topology store's
// Reference->Sequence->FASTA mapping.
func (g *Graph) Bases(ctx context.Context, refName string, start, end int64, strand domain.Strand) (string, error) {
	if err := g.check(); err != nil {
		return "", err
	}
	if g.sequences == nil {
		return "", fmt.Errorf("bases for %q: %w", refName, domain.ErrStoreUnavailable)
	}

	ref, err := g.catalog.Reference(refName)
	if err != nil {
		return "", err
	}
	if start < ref.Start || end > ref.End() || start > end {
		return "", fmt.Errorf("%w: window [%d,%d) outside %s:[%d,%d)",
			domain.ErrInvalidInput, start, end, refName, ref.Start, ref.End())
	}

	record, _, err := g.topology.SequenceRecord(ctx, refName)
	if err != nil {
		return "", fmt.Errorf("resolving sequence record for %q: %w", refName, err)
	}

	bases, err := g.sequences.Bases(ctx, record, start, end)
	if err != nil {
		return "", fmt.Errorf("reading bases for %q: %w", refName, err)
	}
	if strand == domain.StrandReverse {
		bases = domain.ReverseComplement(bases)
	}
	return bases, nil
}

// Close releases the underlying stores. Safe to call more than once;
// queries after Close fail with domain.ErrGraphClosed.
func (g *Graph) Close() error {
	var err error
	g.closeOnce.Do(func() {
		g.mu.Lock()
		g.closed = true
		g.mu.Unlock()

		err = g.topology.Close()
		if g.sequences != nil {
			if serr := g.sequences.Close(); err == nil {
				err = serr
			}
		}
	})
	return err
}

func (g *Graph) check() error {
	g.mu.RLock()
	defer g.mu.RUnlock()
	if g.closed {
		return domain.ErrGraphClosed
	}
	return nil
}
