// Package mcp provides an MCP (Model Context Protocol) server adapter
// exposing one side graph's references, joins and subgraph extraction
// to AI assistants.
package mcp

import "errors"

// ErrMissingGraphService is returned when no graph service is provided.
var ErrMissingGraphService = errors.New("mcp: graph service is required")
