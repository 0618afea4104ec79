package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefsCmd_ListsNames(t *testing.T) {
	cleanup := setupTestGraph(t, testGraph())
	defer cleanup()

	out, err := execute(t, "refs")
	require.NoError(t, err)
	assert.Contains(t, out, "chr1")
}

func TestRefCmd_ShowsMetadata(t *testing.T) {
	cleanup := setupTestGraph(t, testGraph())
	defer cleanup()

	out, err := execute(t, "ref", "chr1")
	require.NoError(t, err)
	assert.Contains(t, out, "Name:       chr1")
	assert.Contains(t, out, "Length:     2000")
	assert.Contains(t, out, "NC_000001.11")
}

func TestRefCmd_UnknownReference(t *testing.T) {
	cleanup := setupTestGraph(t, testGraph())
	defer cleanup()

	_, err := execute(t, "ref", "chr9")
	assert.Error(t, err)
}

func TestJoinsCmd_ListsJoins(t *testing.T) {
	cleanup := setupTestGraph(t, testGraph())
	defer cleanup()

	out, err := execute(t, "joins", "chr1")
	require.NoError(t, err)
	assert.Contains(t, out, "chr1:80/R--chr2:10/F")
}

func TestBasesCmd_PrintsWindow(t *testing.T) {
	cleanup := setupTestGraph(t, testGraph())
	defer cleanup()

	out, err := execute(t, "bases", "chr1", "0", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "ACGT")
}

func TestBasesCmd_Reverse(t *testing.T) {
	cleanup := setupTestGraph(t, testGraph())
	defer cleanup()
	defer func() { basesReverse = false }()

	out, err := execute(t, "bases", "--reverse", "chr1", "0", "4")
	require.NoError(t, err)
	assert.Contains(t, out, "ACGT") // reverse complement of ACGT is itself
}
