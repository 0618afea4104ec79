package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/graphref/sidegraph/internal/core/domain"
	"github.com/graphref/sidegraph/internal/core/ports/driven"
)

// --- Mock implementations ---

// mockTopology implements driven.TopologyStore over in-memory data.
type mockTopology struct {
	refs  map[string]*domain.Reference
	joins []domain.Join

	// records maps reference name to (sequence record, fasta file).
	records map[string][2]string

	// joinsErr, when set, fails Joins after joinsOK more calls.
	joinsErr error
	joinsOK  int

	// refErr, when set, fails every Reference lookup.
	refErr error

	joinCalls int
	closed    bool
}

var _ driven.TopologyStore = (*mockTopology)(nil)

func newMockTopology(refs []*domain.Reference, joins []domain.Join) *mockTopology {
	m := &mockTopology{
		refs:    make(map[string]*domain.Reference, len(refs)),
		joins:   joins,
		records: make(map[string][2]string),
	}
	for _, r := range refs {
		m.refs[r.Name] = r
	}
	return m
}

func (m *mockTopology) ReferenceNames(_ context.Context) ([]string, error) {
	names := make([]string, 0, len(m.refs))
	for name := range m.refs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (m *mockTopology) Reference(_ context.Context, name string) (*domain.Reference, error) {
	if m.refErr != nil {
		return nil, m.refErr
	}
	ref, ok := m.refs[name]
	if !ok {
		return nil, fmt.Errorf("reference %q: %w", name, domain.ErrNotFound)
	}
	return ref, nil
}

func (m *mockTopology) Joins(_ context.Context, filter domain.JoinFilter) ([]domain.Join, error) {
	m.joinCalls++
	if m.joinsErr != nil && m.joinCalls > m.joinsOK {
		return nil, m.joinsErr
	}

	if filter.Reference == "" {
		out := make([]domain.Join, len(m.joins))
		copy(out, m.joins)
		return out, nil
	}

	var out []domain.Join
	for _, j := range m.joins {
		if sideMatches(j.Side1, filter) || sideMatches(j.Side2, filter) {
			out = append(out, j)
		}
	}
	return out, nil
}

func sideMatches(s domain.Side, f domain.JoinFilter) bool {
	if s.Reference != f.Reference {
		return false
	}
	if f.Start != nil && s.Position < *f.Start {
		return false
	}
	if f.End != nil && s.Position > *f.End {
		return false
	}
	return true
}

func (m *mockTopology) SequenceRecord(_ context.Context, refName string) (string, string, error) {
	rec, ok := m.records[refName]
	if !ok {
		return "", "", fmt.Errorf("reference %q: %w", refName, domain.ErrNotFound)
	}
	return rec[0], rec[1], nil
}

func (m *mockTopology) Close() error {
	m.closed = true
	return nil
}

// mockSequences implements driven.SequenceStore over literal strings.
type mockSequences struct {
	seqs   map[string]string
	closed bool
}

var _ driven.SequenceStore = (*mockSequences)(nil)

func (m *mockSequences) Bases(_ context.Context, record string, start, end int64) (string, error) {
	seq, ok := m.seqs[record]
	if !ok {
		return "", fmt.Errorf("record %q: %w", record, domain.ErrNotFound)
	}
	if start < 0 || end > int64(len(seq)) || start > end {
		return "", fmt.Errorf("%w: window [%d,%d)", domain.ErrInvalidInput, start, end)
	}
	return seq[start:end], nil
}

func (m *mockSequences) Has(record string) bool {
	_, ok := m.seqs[record]
	return ok
}

func (m *mockSequences) Close() error {
	m.closed = true
	return nil
}

// --- Shared fixture ---

// twoChromGraph builds the topology used throughout the extractor
// tests: a 2000 base chr1 joined to a 1000 base chr2 at chr1:80, with
// a second join leading from chr2 back into the window around chr1:80.
//
//	join1: chr1:80/R -- chr2:10/F
//	join2: chr2:12/R -- chr1:84/F
func twoChromGraph() ([]*domain.Reference, []domain.Join) {
	refs := []*domain.Reference{
		{ID: 1, Name: "chr1", SequenceID: "seq1", Start: 0, Length: 2000, MD5Checksum: "c1"},
		{ID: 2, Name: "chr2", SequenceID: "seq2", Start: 0, Length: 1000, MD5Checksum: "c2"},
	}
	joins := []domain.Join{
		{
			Side1: domain.Side{Reference: "chr1", Position: 80, Strand: domain.StrandReverse},
			Side2: domain.Side{Reference: "chr2", Position: 10, Strand: domain.StrandForward},
		},
		{
			Side1: domain.Side{Reference: "chr2", Position: 12, Strand: domain.StrandReverse},
			Side2: domain.Side{Reference: "chr1", Position: 84, Strand: domain.StrandForward},
		},
	}
	return refs, joins
}

// openMock loads a catalog and builds an extractor over a mock store.
func openMock(refs []*domain.Reference, joins []domain.Join) (*mockTopology, *Catalog, *Extractor, error) {
	store := newMockTopology(refs, joins)
	catalog, err := LoadCatalog(context.Background(), store)
	if err != nil {
		return nil, nil, nil, err
	}
	index := NewJoinIndex(store)
	return store, catalog, NewExtractor(catalog, index), nil
}
