// Package tui provides the interactive terminal browser for a side
// graph, built on Bubbletea following the Elm architecture.
package tui

import (
	"errors"

	"github.com/graphref/sidegraph/internal/core/ports/driving"
)

// ErrMissingGraphService is returned when no graph service is provided.
var ErrMissingGraphService = errors.New("tui: graph service is required")

// Ports aggregates the driving port interfaces required by the browser.
type Ports struct {
	// Graph is the opened side graph to browse.
	Graph driving.GraphService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Graph == nil {
		return ErrMissingGraphService
	}
	return nil
}
