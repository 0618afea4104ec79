package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphref/sidegraph/internal/core/domain"
)

func TestLoadCatalog(t *testing.T) {
	refs, joins := twoChromGraph()
	_, catalog, _, err := openMock(refs, joins)
	require.NoError(t, err)

	assert.Equal(t, 2, catalog.Len())
	assert.Equal(t, []string{"chr1", "chr2"}, catalog.Names())
}

func TestCatalog_Reference(t *testing.T) {
	refs, joins := twoChromGraph()
	_, catalog, _, err := openMock(refs, joins)
	require.NoError(t, err)

	ref, err := catalog.Reference("chr1")
	require.NoError(t, err)
	assert.Equal(t, int64(2000), ref.Length)
	assert.Equal(t, "seq1", ref.SequenceID)

	_, err = catalog.Reference("chr9")
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.False(t, catalog.Has("chr9"))
	assert.True(t, catalog.Has("chr2"))
}

func TestCatalog_NamesIsACopy(t *testing.T) {
	refs, joins := twoChromGraph()
	_, catalog, _, err := openMock(refs, joins)
	require.NoError(t, err)

	names := catalog.Names()
	names[0] = "mutated"
	assert.Equal(t, []string{"chr1", "chr2"}, catalog.Names())
}

func TestCatalog_LoadFailure(t *testing.T) {
	refs, _ := twoChromGraph()
	store := newMockTopology(refs, nil)
	store.refErr = errors.New("db locked")

	_, err := LoadCatalog(context.Background(), store)
	require.Error(t, err)
	assert.ErrorContains(t, err, "db locked")
}
