package domain

import "fmt"

// Segment is a contiguous half-open span [Start, Start+Length) of a
// single reference, produced as a traversal result. Within one subgraph
// result no two segments on the same reference overlap.
type Segment struct {
	// Reference is the name of the reference the segment lies on.
	Reference string

	// Start is the inclusive start coordinate.
	Start int64

	// Length is the number of bases covered. Never negative.
	Length int64
}

// End returns the exclusive end coordinate.
func (s Segment) End() int64 {
	return s.Start + s.Length
}

// String renders a segment as name:[start,end).
func (s Segment) String() string {
	return fmt.Sprintf("%s:[%d,%d)", s.Reference, s.Start, s.End())
}

// Contains reports whether s fully covers other. Both segments must lie
// on the same reference for containment to hold.
func (s Segment) Contains(other Segment) bool {
	return s.Reference == other.Reference &&
		s.Start <= other.Start && s.End() >= other.End()
}

// Intersects reports whether the spans of s and other overlap or touch
// end-to-end on the same reference. Touching segments merge into one,
// so the engine treats them as intersecting.
func (s Segment) Intersects(other Segment) bool {
	if s.Reference != other.Reference {
		return false
	}
	return s.Start <= other.End() && other.Start <= s.End()
}

// Union returns the smallest segment covering both s and other.
// Only meaningful when the two intersect.
func (s Segment) Union(other Segment) Segment {
	start := s.Start
	if other.Start < start {
		start = other.Start
	}
	end := s.End()
	if other.End() > end {
		end = other.End()
	}
	return Segment{Reference: s.Reference, Start: start, Length: end - start}
}
