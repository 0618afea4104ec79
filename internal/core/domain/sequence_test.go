package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReverseComplement(t *testing.T) {
	assert.Equal(t, "", ReverseComplement(""))
	assert.Equal(t, "T", ReverseComplement("A"))
	assert.Equal(t, "ACGT", ReverseComplement("ACGT"))
	assert.Equal(t, "CATN", ReverseComplement("NATG"))
	assert.Equal(t, "acgt", ReverseComplement("acgt"))
	assert.Equal(t, "NNN", ReverseComplement("XY-"), "unknown bases complement to N")
}

func TestReverseComplement_Involution(t *testing.T) {
	seq := "ACGTTGCANNGCT"
	assert.Equal(t, seq, ReverseComplement(ReverseComplement(seq)))
}
