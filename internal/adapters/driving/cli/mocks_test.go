package cli

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/graphref/sidegraph/internal/adapters/driven/config/file"
	"github.com/graphref/sidegraph/internal/core/domain"
	"github.com/graphref/sidegraph/internal/core/ports/driving"
)

// Ensure the mock satisfies the interface.
var _ driving.GraphService = (*mockGraph)(nil)

type mockGraph struct {
	refs     map[string]*domain.Reference
	joins    []domain.Join
	subgraph domain.Subgraph
	bases    string
}

func (m *mockGraph) ID() string { return "mock" }

func (m *mockGraph) ReferenceNames(_ context.Context) ([]string, error) {
	names := make([]string, 0, len(m.refs))
	for name := range m.refs {
		names = append(names, name)
	}
	return names, nil
}

func (m *mockGraph) Reference(_ context.Context, name string) (*domain.Reference, error) {
	ref, ok := m.refs[name]
	if !ok {
		return nil, fmt.Errorf("reference %q: %w", name, domain.ErrNotFound)
	}
	return ref, nil
}

func (m *mockGraph) Joins(_ context.Context, filter domain.JoinFilter) ([]domain.Join, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	return m.joins, nil
}

func (m *mockGraph) Subgraph(_ context.Context, _ string, _, radius int64) (domain.Subgraph, error) {
	if radius < 0 {
		return domain.Subgraph{}, fmt.Errorf("negative radius: %w", domain.ErrInvalidInput)
	}
	return m.subgraph, nil
}

func (m *mockGraph) Bases(_ context.Context, _ string, _, _ int64, strand domain.Strand) (string, error) {
	if strand == domain.StrandReverse {
		return domain.ReverseComplement(m.bases), nil
	}
	return m.bases, nil
}

func (m *mockGraph) Close() error { return nil }

// setupTestGraph injects a mock graph and a throwaway config store.
func setupTestGraph(t *testing.T, g *mockGraph) func() {
	t.Helper()

	store, err := file.NewConfigStore(t.TempDir())
	require.NoError(t, err)

	configStore = store
	graphService = g
	return func() {
		configStore = nil
		graphService = nil
	}
}

func testGraph() *mockGraph {
	return &mockGraph{
		refs: map[string]*domain.Reference{
			"chr1": {
				ID:               1,
				Name:             "chr1",
				SequenceID:       "seq-chr1",
				Length:           2000,
				MD5Checksum:      "5f0c2bd12d864cd3a1a2d5a86cbac2c4",
				SourceAccessions: []string{"NC_000001.11"},
			},
		},
		joins: []domain.Join{
			{
				Side1: domain.Side{Reference: "chr1", Position: 80, Strand: domain.StrandReverse},
				Side2: domain.Side{Reference: "chr2", Position: 10, Strand: domain.StrandForward},
			},
		},
		subgraph: domain.Subgraph{
			Segments: []domain.Segment{{Reference: "chr1", Start: 65, Length: 20}},
			Joins: []domain.Join{
				{
					Side1: domain.Side{Reference: "chr1", Position: 80, Strand: domain.StrandReverse},
					Side2: domain.Side{Reference: "chr2", Position: 10, Strand: domain.StrandForward},
				},
			},
		},
		bases: "ACGT",
	}
}
