package services

import (
	"context"
	"fmt"

	"github.com/graphref/sidegraph/internal/core/domain"
	"github.com/graphref/sidegraph/internal/core/ports/driven"
)

// JoinIndex retrieves joins adjacent to a reference, optionally
// restricted to a position interval. It is a thin validation layer over
// the topology store's join query; ordering of results is whatever the
// store returns and callers must not depend on it.
type JoinIndex struct {
	store driven.TopologyStore
}

// NewJoinIndex creates a join index over a topology store.
func NewJoinIndex(store driven.TopologyStore) *JoinIndex {
	return &JoinIndex{store: store}
}

// Joins returns the joins matching the filter. An interval without a
// reference name is a caller contract violation and is rejected with
// domain.ErrInvalidInput.
func (j *JoinIndex) Joins(ctx context.Context, filter domain.JoinFilter) ([]domain.Join, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	joins, err := j.store.Joins(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("querying joins: %w", err)
	}
	return joins, nil
}

// OnInterval returns the joins with a side on refName at a position in
// [start, end] inclusive. This is the query shape the subgraph
// extractor issues for each visited segment window.
func (j *JoinIndex) OnInterval(ctx context.Context, refName string, start, end int64) ([]domain.Join, error) {
	return j.Joins(ctx, domain.JoinFilter{
		Reference: refName,
		Start:     &start,
		End:       &end,
	})
}
