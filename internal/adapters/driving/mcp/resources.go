package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// uriScheme is the custom URI scheme for sidegraph resources.
const uriScheme = "sidegraph://"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for listing references.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "references",
		Name:        "references",
		Description: "List of the graph's reference names",
		MIMEType:    "application/json",
	}, s.handleReferencesResource)

	// Template for reference metadata.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "references/{name}",
		Name:        "reference",
		Description: "Metadata of a specific reference",
		MIMEType:    "application/json",
	}, s.handleReferenceResource)
}

func (s *Server) handleReferencesResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	names, err := s.ports.Graph.ReferenceNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing references: %w", err)
	}

	data, err := json.MarshalIndent(names, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling references: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func (s *Server) handleReferenceResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	// Extract the name from sidegraph://references/{name}.
	name := extractReferenceName(req.Params.URI)
	if name == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	ref, err := s.ports.Graph.Reference(ctx, name)
	if err != nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	out := ReferenceOutput{
		Name:             ref.Name,
		Start:            ref.Start,
		Length:           ref.Length,
		SequenceID:       ref.SequenceID,
		MD5Checksum:      ref.MD5Checksum,
		IsDerived:        ref.IsDerived,
		SourceDivergence: ref.SourceDivergence,
		NCBITaxonID:      ref.NCBITaxonID,
		SourceAccessions: ref.SourceAccessions,
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling reference: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

func extractReferenceName(uri string) string {
	rest, ok := strings.CutPrefix(uri, uriScheme+"references/")
	if !ok || rest == "" || strings.Contains(rest, "/") {
		return ""
	}
	return rest
}
