// Package domain defines the core entities of the side-graph reference
// engine.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Reference: A named, addressable span of sequence
//   - Join: A bidirectional edge between two reference sides
//   - Segment: A contiguous span of a reference produced by traversal
//   - Subgraph: The segment/join set returned by an extraction query
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
