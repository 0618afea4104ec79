// Package driven defines the interfaces that core calls OUT to
// infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and storage adapters
// implement them.
//
// # Required Interfaces
//
//   - TopologyStore: read-only access to reference and join topology
//   - SequenceStore: read-only access to raw base sequences
//
// # Optional Interfaces
//
//   - ConfigStore: application configuration; defaults apply without it
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
