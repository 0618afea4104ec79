package domain

import "strings"

// complement maps each IUPAC base we store to its complement.
// Unknown characters complement to N.
var complement = map[byte]byte{
	'A': 'T', 'T': 'A', 'C': 'G', 'G': 'C', 'N': 'N',
	'a': 't', 't': 'a', 'c': 'g', 'g': 'c', 'n': 'n',
}

// ReverseComplement returns the reverse complement of a base string.
// Used when bases are requested on the reverse strand.
func ReverseComplement(seq string) string {
	var sb strings.Builder
	sb.Grow(len(seq))
	for i := len(seq) - 1; i >= 0; i-- {
		if c, ok := complement[seq[i]]; ok {
			sb.WriteByte(c)
		} else {
			sb.WriteByte('N')
		}
	}
	return sb.String()
}
