// Package services implements the driving port interfaces.
// Services contain the graph query logic - the reference catalog, the
// join index, and the subgraph extractor - and orchestrate calls to
// driven ports (storage adapters).
//
// Services are pure Go with no external dependencies beyond the handle
// identifier.
package services
