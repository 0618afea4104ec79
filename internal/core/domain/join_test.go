package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStrand(t *testing.T) {
	s, err := ParseStrand("F")
	require.NoError(t, err)
	assert.Equal(t, StrandForward, s)

	s, err = ParseStrand("R")
	require.NoError(t, err)
	assert.Equal(t, StrandReverse, s)

	_, err = ParseStrand("X")
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = ParseStrand("")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestJoin_ValueEquality(t *testing.T) {
	a := Join{
		Side1: Side{Reference: "chr1", Position: 80, Strand: StrandReverse},
		Side2: Side{Reference: "chr2", Position: 10, Strand: StrandForward},
	}
	b := Join{
		Side1: Side{Reference: "chr1", Position: 80, Strand: StrandReverse},
		Side2: Side{Reference: "chr2", Position: 10, Strand: StrandForward},
	}

	// Joins are deduplicated by value, including as map keys.
	assert.Equal(t, a, b)
	set := map[Join]struct{}{a: {}}
	_, ok := set[b]
	assert.True(t, ok)
}

func TestJoin_Touches(t *testing.T) {
	j := Join{
		Side1: Side{Reference: "chr1", Position: 80, Strand: StrandReverse},
		Side2: Side{Reference: "chr2", Position: 10, Strand: StrandForward},
	}
	assert.True(t, j.Touches("chr1"))
	assert.True(t, j.Touches("chr2"))
	assert.False(t, j.Touches("chr3"))
}

func TestJoin_String(t *testing.T) {
	j := Join{
		Side1: Side{Reference: "chr1", Position: 80, Strand: StrandReverse},
		Side2: Side{Reference: "chr2", Position: 10, Strand: StrandForward},
	}
	assert.Equal(t, "chr1:80/R--chr2:10/F", j.String())
}

func TestJoinFilter_Validate(t *testing.T) {
	start, end := int64(5), int64(10)

	assert.NoError(t, JoinFilter{}.Validate())
	assert.NoError(t, JoinFilter{Reference: "chr1"}.Validate())
	assert.NoError(t, JoinFilter{Reference: "chr1", Start: &start}.Validate())
	assert.NoError(t, JoinFilter{Reference: "chr1", Start: &start, End: &end}.Validate())

	assert.ErrorIs(t, JoinFilter{End: &end}.Validate(), ErrInvalidInput)
	assert.ErrorIs(t, JoinFilter{Start: &start}.Validate(), ErrInvalidInput)
	assert.ErrorIs(t, JoinFilter{Reference: "chr1", End: &end}.Validate(), ErrInvalidInput)
}
