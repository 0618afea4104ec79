package fasta

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphref/sidegraph/internal/core/domain"
)

func writeFasta(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0600))
}

func TestNewDir(t *testing.T) {
	dir := t.TempDir()
	writeFasta(t, dir, "graph.fa", ">chr1rec assembled from GRCh38\nACGT\nACGT\n>chr2rec\nTTTT\n")
	writeFasta(t, dir, "extra.fa", ">mt\nACGTACGTAC\n")
	writeFasta(t, dir, "notes.txt", "not a fasta file")

	s, err := NewDir(dir)
	require.NoError(t, err)
	defer s.Close()

	assert.ElementsMatch(t, []string{"chr1rec", "chr2rec", "mt"}, s.Records())
	assert.True(t, s.Has("chr1rec"))
	assert.False(t, s.Has("notes"))

	file, ok := s.File("mt")
	require.True(t, ok)
	assert.Equal(t, "extra.fa", file)
}

func TestStore_Bases(t *testing.T) {
	dir := t.TempDir()
	writeFasta(t, dir, "graph.fa", ">chr1rec\nACGT\nACGT\n")

	s, err := NewDir(dir)
	require.NoError(t, err)

	ctx := context.Background()

	// Multi-line records are concatenated before slicing.
	bases, err := s.Bases(ctx, "chr1rec", 2, 6)
	require.NoError(t, err)
	assert.Equal(t, "GTAC", bases)

	bases, err = s.Bases(ctx, "chr1rec", 0, 8)
	require.NoError(t, err)
	assert.Equal(t, "ACGTACGT", bases)

	bases, err = s.Bases(ctx, "chr1rec", 4, 4)
	require.NoError(t, err)
	assert.Empty(t, bases)

	_, err = s.Bases(ctx, "chr1rec", 0, 9)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = s.Bases(ctx, "chr1rec", -1, 4)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	_, err = s.Bases(ctx, "missing", 0, 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestNewDir_DuplicateRecord(t *testing.T) {
	dir := t.TempDir()
	writeFasta(t, dir, "a.fa", ">chr1rec\nAAAA\n")
	writeFasta(t, dir, "b.fa", ">chr1rec\nCCCC\n")

	_, err := NewDir(dir)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestNewDir_BasesBeforeHeader(t *testing.T) {
	dir := t.TempDir()
	writeFasta(t, dir, "bad.fa", "ACGT\n>chr1rec\nACGT\n")

	_, err := NewDir(dir)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestNewDir_EmptyDirectory(t *testing.T) {
	s, err := NewDir(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, s.Records())
}
