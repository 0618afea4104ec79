package mcp

import (
	"context"
	"fmt"

	"github.com/graphref/sidegraph/internal/core/domain"
	"github.com/graphref/sidegraph/internal/core/ports/driving"
)

// Ensure the mock satisfies the interface.
var _ driving.GraphService = (*mockGraph)(nil)

type mockGraph struct {
	names    []string
	refs     map[string]*domain.Reference
	joins    []domain.Join
	subgraph domain.Subgraph
	bases    string
	err      error
}

func (m *mockGraph) ID() string { return "mock" }

func (m *mockGraph) ReferenceNames(_ context.Context) ([]string, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.names, nil
}

func (m *mockGraph) Reference(_ context.Context, name string) (*domain.Reference, error) {
	if m.err != nil {
		return nil, m.err
	}
	ref, ok := m.refs[name]
	if !ok {
		return nil, fmt.Errorf("reference %q: %w", name, domain.ErrNotFound)
	}
	return ref, nil
}

func (m *mockGraph) Joins(_ context.Context, filter domain.JoinFilter) ([]domain.Join, error) {
	if m.err != nil {
		return nil, m.err
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	if filter.Reference == "" {
		return m.joins, nil
	}
	//nolint:prealloc // size unknown until filtered
	var out []domain.Join
	for _, j := range m.joins {
		if j.Touches(filter.Reference) {
			out = append(out, j)
		}
	}
	return out, nil
}

func (m *mockGraph) Subgraph(_ context.Context, _ string, _, radius int64) (domain.Subgraph, error) {
	if m.err != nil {
		return domain.Subgraph{}, m.err
	}
	if radius < 0 {
		return domain.Subgraph{}, fmt.Errorf("negative radius: %w", domain.ErrInvalidInput)
	}
	return m.subgraph, nil
}

func (m *mockGraph) Bases(_ context.Context, _ string, start, end int64, strand domain.Strand) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	if start < 0 || end > int64(len(m.bases)) || start > end {
		return "", domain.ErrInvalidInput
	}
	bases := m.bases[start:end]
	if strand == domain.StrandReverse {
		bases = domain.ReverseComplement(bases)
	}
	return bases, nil
}

func (m *mockGraph) Close() error { return nil }

func twoChromMock() *mockGraph {
	div := 0.01
	taxon := int64(9606)
	return &mockGraph{
		names: []string{"chr1", "chr2"},
		refs: map[string]*domain.Reference{
			"chr1": {
				ID:               1,
				Name:             "chr1",
				SequenceID:       "seq-chr1",
				Length:           2000,
				MD5Checksum:      "5f0c2bd12d864cd3a1a2d5a86cbac2c4",
				NCBITaxonID:      &taxon,
				SourceAccessions: []string{"NC_000001.11"},
			},
			"chr2": {
				ID:               2,
				Name:             "chr2",
				SequenceID:       "seq-chr2",
				Length:           1000,
				IsDerived:        true,
				SourceDivergence: &div,
			},
		},
		joins: []domain.Join{
			{
				Side1: domain.Side{Reference: "chr1", Position: 80, Strand: domain.StrandReverse},
				Side2: domain.Side{Reference: "chr2", Position: 10, Strand: domain.StrandForward},
			},
			{
				Side1: domain.Side{Reference: "chr2", Position: 12, Strand: domain.StrandReverse},
				Side2: domain.Side{Reference: "chr1", Position: 84, Strand: domain.StrandForward},
			},
		},
		subgraph: domain.Subgraph{
			Segments: []domain.Segment{
				{Reference: "chr1", Start: 65, Length: 20},
				{Reference: "chr2", Start: 6, Length: 8},
			},
			Joins: []domain.Join{
				{
					Side1: domain.Side{Reference: "chr1", Position: 80, Strand: domain.StrandReverse},
					Side2: domain.Side{Reference: "chr2", Position: 10, Strand: domain.StrandForward},
				},
			},
		},
		bases: "ACGTACGT",
	}
}
