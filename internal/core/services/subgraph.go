package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/graphref/sidegraph/internal/core/domain"
)

// DefaultVisitCap bounds the number of visits one extraction may make.
// The radius already bounds traversal depth (every join crossing costs
// at least one base), but densely joined graphs can still fan out into
// a very large number of visits; the cap turns that into a hard error
// instead of an open-ended computation.
const DefaultVisitCap = 100_000

// TraceKind labels a trace event emitted during extraction.
type TraceKind string

const (
	// TraceVisit marks the start of a visit.
	TraceVisit TraceKind = "visit"

	// TraceDeadEnd marks a visit terminated by exhausted radius or an
	// unknown reference.
	TraceDeadEnd TraceKind = "dead-end"

	// TraceContained marks a visit whose window was already covered by
	// an accumulated segment.
	TraceContained TraceKind = "contained"

	// TraceFollow marks a join being followed to a new visit.
	TraceFollow TraceKind = "follow"
)

// TraceEvent is a diagnostic event emitted while extracting a subgraph.
// Events are scoped to a single extraction call.
type TraceEvent struct {
	Kind      TraceKind
	Reference string
	Anchor    int64
	Remaining int64

	// Via is the join that led to this visit, when there is one.
	Via *domain.Join
}

// TraceFunc receives trace events. It must not retain the event's Via
// pointer beyond the call.
type TraceFunc func(TraceEvent)

// ExtractOption adjusts a single extraction call.
type ExtractOption func(*extraction)

// WithTrace attaches a diagnostic callback to the extraction.
func WithTrace(fn TraceFunc) ExtractOption {
	return func(e *extraction) { e.trace = fn }
}

// WithVisitCap overrides the defensive visit cap for the extraction.
func WithVisitCap(n int) ExtractOption {
	return func(e *extraction) { e.visitCap = n }
}

// Extractor computes bounded-radius subgraphs of a side graph.
// The radius is a symmetric budget spent on bases traveled along
// references and on crossing joins (one base per crossing), so it
// approximates a radius in true graph distance rather than in
// reference coordinates.
type Extractor struct {
	catalog *Catalog
	joins   *JoinIndex
}

// NewExtractor creates an extractor over a catalog and join index.
func NewExtractor(catalog *Catalog, joins *JoinIndex) *Extractor {
	return &Extractor{catalog: catalog, joins: joins}
}

// visit is one pending traversal step: explore the window reachable
// within remaining bases around anchor on the named reference.
type visit struct {
	ref       string
	anchor    int64
	remaining int64

	// via is the join crossed to arrive here; nil for the seed visit.
	via *domain.Join
}

// extraction is the mutable state of one Extract call. It is owned by
// exactly that call; the extractor itself holds no mutable state.
type extraction struct {
	segments map[string][]domain.Segment
	joins    []domain.Join
	seen     map[domain.Join]struct{}
	stack    []visit

	visits   int
	visitCap int
	trace    TraceFunc
}

func (e *extraction) emit(ev TraceEvent) {
	if e.trace != nil {
		e.trace(ev)
	}
}

// recordJoin adds a join to the accumulator unless an identical join
// was already traversed.
func (e *extraction) recordJoin(j domain.Join) {
	if _, ok := e.seen[j]; ok {
		return
	}
	e.seen[j] = struct{}{}
	e.joins = append(e.joins, j)
}

// merge folds the candidate segment into the per-reference accumulator.
// It reports false when an existing segment already fully contains the
// candidate, which terminates the visit: containment means the window
// was explored before with at least this much budget.
func (e *extraction) merge(candidate domain.Segment) bool {
	existing := e.segments[candidate.Reference]
	for _, seg := range existing {
		if seg.Contains(candidate) {
			return false
		}
	}
	union := candidate
	kept := existing[:0]
	for _, seg := range existing {
		if seg.Intersects(candidate) {
			union = union.Union(seg)
			continue
		}
		kept = append(kept, seg)
	}
	e.segments[candidate.Reference] = append(kept, union)
	return true
}

// Extract computes the connected region reachable from the seed
// position within the given radius. A seed reference absent from the
// catalog yields an empty subgraph and no error; a negative radius is
// rejected.
func (x *Extractor) Extract(
	ctx context.Context, seedRef string, seedPos, radius int64, opts ...ExtractOption,
) (domain.Subgraph, error) {
	if radius < 0 {
		return domain.Subgraph{}, fmt.Errorf("%w: negative radius %d", domain.ErrInvalidInput, radius)
	}

	e := &extraction{
		segments: make(map[string][]domain.Segment),
		seen:     make(map[domain.Join]struct{}),
		visitCap: DefaultVisitCap,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.stack = append(e.stack, visit{ref: seedRef, anchor: seedPos, remaining: radius})

	for len(e.stack) > 0 {
		if err := ctx.Err(); err != nil {
			return domain.Subgraph{}, err
		}
		v := e.stack[len(e.stack)-1]
		e.stack = e.stack[:len(e.stack)-1]

		e.visits++
		if e.visits > e.visitCap {
			return domain.Subgraph{}, fmt.Errorf("%w: cap %d", domain.ErrTraversalBudget, e.visitCap)
		}

		if err := x.step(ctx, e, v); err != nil {
			return domain.Subgraph{}, err
		}
	}

	return e.result(), nil
}

// step performs one visit: record the incoming join, merge the
// reachable window into the segment set, and schedule follow-up visits
// through every reachable join on the window.
func (x *Extractor) step(ctx context.Context, e *extraction, v visit) error {
	e.emit(TraceEvent{Kind: TraceVisit, Reference: v.ref, Anchor: v.anchor, Remaining: v.remaining, Via: v.via})

	if v.remaining <= 0 || !x.catalog.Has(v.ref) {
		e.emit(TraceEvent{Kind: TraceDeadEnd, Reference: v.ref, Anchor: v.anchor, Remaining: v.remaining})
		return nil
	}
	if v.via != nil {
		e.recordJoin(*v.via)
	}

	ref, err := x.catalog.Reference(v.ref)
	if err != nil {
		// Has() said yes, so the catalog is inconsistent.
		return err
	}

	segStart := ref.Start
	if p := v.anchor - v.remaining; p > segStart {
		segStart = p
	}
	segEnd := ref.End()
	if p := v.anchor + v.remaining; p < segEnd {
		segEnd = p
	}

	candidate := domain.Segment{Reference: v.ref, Start: segStart, Length: segEnd - segStart}
	if !e.merge(candidate) {
		e.emit(TraceEvent{Kind: TraceContained, Reference: v.ref, Anchor: v.anchor, Remaining: v.remaining})
		return nil
	}

	// Joins are queried on the pre-merge candidate window. Anything on
	// a previously merged stretch was already explored when that
	// stretch was visited.
	found, err := x.joins.OnInterval(ctx, v.ref, segStart, segEnd)
	if err != nil {
		return err
	}

	for _, join := range found {
		x.follow(e, v, join, join.Side1, join.Side2, segStart, segEnd)
		x.follow(e, v, join, join.Side2, join.Side1, segStart, segEnd)
	}
	return nil
}

// follow schedules a traversal through one side of a join, when that
// side sits on the current reference and is reachable from the anchor.
// A reverse side is reachable walking towards higher coordinates, a
// forward side walking towards lower ones; the distance walked plus one
// base for crossing the join is charged against the remaining radius.
// A self-join is evaluated twice, once per side role.
func (x *Extractor) follow(
	e *extraction, v visit, join domain.Join, near, far domain.Side, segStart, segEnd int64,
) {
	if near.Reference != v.ref {
		return
	}

	var distance int64
	switch {
	case near.Strand == domain.StrandReverse && v.anchor <= near.Position && near.Position <= segEnd:
		distance = near.Position - v.anchor
	case near.Strand == domain.StrandForward && segStart <= near.Position && near.Position <= v.anchor:
		distance = v.anchor - near.Position
	default:
		return
	}

	j := join
	e.emit(TraceEvent{Kind: TraceFollow, Reference: far.Reference, Anchor: far.Position, Remaining: v.remaining - distance - 1, Via: &j})
	e.stack = append(e.stack, visit{
		ref:       far.Reference,
		anchor:    far.Position,
		remaining: v.remaining - distance - 1,
		via:       &j,
	})
}

// result snapshots the accumulators into a Subgraph. Segments are
// sorted by (reference, start) so output is stable; joins keep
// discovery order.
func (e *extraction) result() domain.Subgraph {
	var segs []domain.Segment
	for _, perRef := range e.segments {
		segs = append(segs, perRef...)
	}
	sort.Slice(segs, func(i, k int) bool {
		if segs[i].Reference != segs[k].Reference {
			return segs[i].Reference < segs[k].Reference
		}
		return segs[i].Start < segs[k].Start
	})

	joins := make([]domain.Join, len(e.joins))
	copy(joins, e.joins)
	return domain.Subgraph{Segments: segs, Joins: joins}
}
