package domain

// Subgraph is the result of one bounded-radius extraction query: the
// merged segments and deduplicated joins reachable from the seed.
// It is a snapshot owned by the caller, not a live view of the graph.
type Subgraph struct {
	// Segments holds the maximal non-overlapping spans visited,
	// sorted by (reference, start).
	Segments []Segment

	// Joins holds each traversed join once, in discovery order.
	Joins []Join
}

// IsEmpty reports whether the extraction reached nothing, which is the
// normal outcome for a seed reference absent from the catalog.
func (s Subgraph) IsEmpty() bool {
	return len(s.Segments) == 0 && len(s.Joins) == 0
}
