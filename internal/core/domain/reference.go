package domain

// Reference is a named, addressable span of sequence in a side graph.
// It is loaded once when a graph is opened and is immutable for the
// lifetime of the graph handle.
type Reference struct {
	// ID is the stable internal identifier from the topology store.
	ID int64

	// Name is the human-readable key, e.g. "chr1". Unique within a graph.
	Name string

	// SequenceID names the underlying raw sequence record.
	SequenceID string

	// Start is the offset of the reference within its sequence.
	// The topology store currently always populates this as 0, but it is
	// carried as a first-class field rather than assumed.
	Start int64

	// Length is the number of bases in the reference. Never negative.
	Length int64

	// MD5Checksum is the checksum of the reference bases.
	MD5Checksum string

	// IsDerived reports whether the reference is derived from another.
	IsDerived bool

	// SourceDivergence is the divergence from the source reference,
	// when known.
	SourceDivergence *float64

	// NCBITaxonID is the NCBI taxonomy identifier, when known.
	NCBITaxonID *int64

	// SourceAccessions lists accession strings for this reference,
	// in store order.
	SourceAccessions []string
}

// End returns the exclusive end coordinate of the reference extent.
func (r Reference) End() int64 {
	return r.Start + r.Length
}
