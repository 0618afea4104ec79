package mcp

import (
	"github.com/graphref/sidegraph/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the MCP
// server. One server serves one opened graph.
type Ports struct {
	// Graph is the opened side graph to expose.
	Graph driving.GraphService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Graph == nil {
		return ErrMissingGraphService
	}
	return nil
}
