// Package sqlite implements the topology store over a SQLite database.
//
// A topology database holds the five side-graph relations (Reference,
// Sequence, FASTA, GraphJoin, ReferenceAccession). The engine only ever
// reads them; Create exists so tests and loaders can build topology
// databases from the same embedded schema.
//
// Uses modernc.org/sqlite, a pure-Go driver, so no CGO is required.
package sqlite
