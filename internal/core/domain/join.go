package domain

import "fmt"

// Strand is the orientation of a join side relative to traversal direction.
type Strand string

const (
	// StrandForward faces towards lower coordinates.
	StrandForward Strand = "F"

	// StrandReverse faces towards higher coordinates.
	StrandReverse Strand = "R"
)

// ParseStrand converts a stored strand code to a Strand.
func ParseStrand(s string) (Strand, error) {
	switch Strand(s) {
	case StrandForward, StrandReverse:
		return Strand(s), nil
	default:
		return "", fmt.Errorf("%w: strand %q", ErrInvalidInput, s)
	}
}

// Side is one endpoint of a join: a position on a named reference with
// an orientation.
type Side struct {
	// Reference is the name of the reference the side sits on.
	Reference string

	// Position is the base coordinate of the side.
	Position int64

	// Strand is the orientation of the side.
	Strand Strand
}

// String renders a side as name:position/strand.
func (s Side) String() string {
	return fmt.Sprintf("%s:%d/%s", s.Reference, s.Position, s.Strand)
}

// Join connects two sides of a side graph. Storage order of the sides
// is arbitrary; traversal treats a join as a bidirectional edge usable
// from either side. Join is comparable, so value equality and map keys
// work directly, which is what join deduplication relies on.
type Join struct {
	Side1 Side
	Side2 Side
}

// String renders a join as side1--side2.
func (j Join) String() string {
	return j.Side1.String() + "--" + j.Side2.String()
}

// Touches reports whether either side of the join sits on the named
// reference.
func (j Join) Touches(refName string) bool {
	return j.Side1.Reference == refName || j.Side2.Reference == refName
}

// JoinFilter restricts a join query. A nil field means unconstrained.
// End may only be set together with Reference and Start.
type JoinFilter struct {
	// Reference restricts to joins with a side on the named reference.
	Reference string

	// Start restricts to sides at position >= Start. Requires Reference.
	Start *int64

	// End restricts to sides at position <= End, inclusive.
	// Requires Reference and Start.
	End *int64
}

// Validate checks the filter's internal consistency.
func (f JoinFilter) Validate() error {
	if f.Reference == "" {
		if f.Start != nil || f.End != nil {
			return fmt.Errorf("%w: join interval requires a reference name", ErrInvalidInput)
		}
		return nil
	}
	if f.End != nil && f.Start == nil {
		return fmt.Errorf("%w: join interval end requires a start", ErrInvalidInput)
	}
	return nil
}
