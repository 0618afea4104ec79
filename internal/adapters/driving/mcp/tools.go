package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/graphref/sidegraph/internal/core/domain"
)

// ListReferencesInput is the input schema for the list_references tool.
type ListReferencesInput struct{}

// ListReferencesOutput is the output schema for the list_references tool.
type ListReferencesOutput struct {
	Names []string `json:"names"`
	Count int      `json:"count"`
}

// GetReferenceInput is the input schema for the get_reference tool.
type GetReferenceInput struct {
	Name string `json:"name" jsonschema:"the reference name to look up"`
}

// ReferenceOutput describes one reference.
type ReferenceOutput struct {
	Name             string   `json:"name"`
	Start            int64    `json:"start"`
	Length           int64    `json:"length"`
	SequenceID       string   `json:"sequence_id"`
	MD5Checksum      string   `json:"md5_checksum,omitempty"`
	IsDerived        bool     `json:"is_derived"`
	SourceDivergence *float64 `json:"source_divergence,omitempty"`
	NCBITaxonID      *int64   `json:"ncbi_taxon_id,omitempty"`
	SourceAccessions []string `json:"source_accessions,omitempty"`
}

// GetJoinsInput is the input schema for the get_joins tool.
type GetJoinsInput struct {
	Reference string `json:"reference,omitempty" jsonschema:"only joins touching this reference"`
	Start     *int64 `json:"start,omitempty" jsonschema:"inclusive interval start (requires reference)"`
	End       *int64 `json:"end,omitempty" jsonschema:"inclusive interval end (requires start)"`
}

// GetJoinsOutput is the output schema for the get_joins tool.
type GetJoinsOutput struct {
	Joins []JoinOutput `json:"joins"`
	Count int          `json:"count"`
}

// SideOutput is one side of a join.
type SideOutput struct {
	Reference string `json:"reference"`
	Position  int64  `json:"position"`
	Strand    string `json:"strand"`
}

// JoinOutput is one join between two sides.
type JoinOutput struct {
	Side1 SideOutput `json:"side1"`
	Side2 SideOutput `json:"side2"`
}

// ExtractSubgraphInput is the input schema for the extract_subgraph tool.
type ExtractSubgraphInput struct {
	Reference string `json:"reference" jsonschema:"the seed reference name"`
	Position  int64  `json:"position" jsonschema:"the seed position on the reference"`
	Radius    int64  `json:"radius" jsonschema:"traversal radius in bases (joins cost one base to cross)"`
}

// SegmentOutput is one reference span of a subgraph.
type SegmentOutput struct {
	Reference string `json:"reference"`
	Start     int64  `json:"start"`
	End       int64  `json:"end"`
}

// ExtractSubgraphOutput is the output schema for the extract_subgraph tool.
type ExtractSubgraphOutput struct {
	Segments []SegmentOutput `json:"segments"`
	Joins    []JoinOutput    `json:"joins"`
}

// GetBasesInput is the input schema for the get_bases tool.
type GetBasesInput struct {
	Reference         string `json:"reference" jsonschema:"the reference name"`
	Start             int64  `json:"start" jsonschema:"window start (inclusive)"`
	End               int64  `json:"end" jsonschema:"window end (exclusive)"`
	ReverseComplement bool   `json:"reverse_complement,omitempty" jsonschema:"return the reverse complement of the window"`
}

// GetBasesOutput is the output schema for the get_bases tool.
type GetBasesOutput struct {
	Bases  string `json:"bases"`
	Length int    `json:"length"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_references",
		Description: "List the reference names in the graph",
	}, s.handleListReferences)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_reference",
		Description: "Get the metadata of one reference",
	}, s.handleGetReference)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_joins",
		Description: "List joins, optionally filtered to a reference interval",
	}, s.handleGetJoins)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "extract_subgraph",
		Description: "Extract the subgraph within a radius of a seed position",
	}, s.handleExtractSubgraph)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "get_bases",
		Description: "Read the bases of a reference window",
	}, s.handleGetBases)
}

func (s *Server) handleListReferences(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ ListReferencesInput,
) (*mcp.CallToolResult, ListReferencesOutput, error) {
	names, err := s.ports.Graph.ReferenceNames(ctx)
	if err != nil {
		return nil, ListReferencesOutput{}, err
	}
	return nil, ListReferencesOutput{Names: names, Count: len(names)}, nil
}

func (s *Server) handleGetReference(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetReferenceInput,
) (*mcp.CallToolResult, ReferenceOutput, error) {
	ref, err := s.ports.Graph.Reference(ctx, input.Name)
	if err != nil {
		return nil, ReferenceOutput{}, err
	}
	return nil, ReferenceOutput{
		Name:             ref.Name,
		Start:            ref.Start,
		Length:           ref.Length,
		SequenceID:       ref.SequenceID,
		MD5Checksum:      ref.MD5Checksum,
		IsDerived:        ref.IsDerived,
		SourceDivergence: ref.SourceDivergence,
		NCBITaxonID:      ref.NCBITaxonID,
		SourceAccessions: ref.SourceAccessions,
	}, nil
}

func (s *Server) handleGetJoins(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetJoinsInput,
) (*mcp.CallToolResult, GetJoinsOutput, error) {
	filter := domain.JoinFilter{
		Reference: input.Reference,
		Start:     input.Start,
		End:       input.End,
	}
	joins, err := s.ports.Graph.Joins(ctx, filter)
	if err != nil {
		return nil, GetJoinsOutput{}, err
	}

	output := GetJoinsOutput{
		Joins: make([]JoinOutput, len(joins)),
		Count: len(joins),
	}
	for i := range joins {
		output.Joins[i] = joinOutput(joins[i])
	}
	return nil, output, nil
}

func (s *Server) handleExtractSubgraph(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ExtractSubgraphInput,
) (*mcp.CallToolResult, ExtractSubgraphOutput, error) {
	result, err := s.ports.Graph.Subgraph(ctx, input.Reference, input.Position, input.Radius)
	if err != nil {
		return nil, ExtractSubgraphOutput{}, err
	}

	output := ExtractSubgraphOutput{
		Segments: make([]SegmentOutput, len(result.Segments)),
		Joins:    make([]JoinOutput, len(result.Joins)),
	}
	for i := range result.Segments {
		output.Segments[i] = SegmentOutput{
			Reference: result.Segments[i].Reference,
			Start:     result.Segments[i].Start,
			End:       result.Segments[i].End(),
		}
	}
	for i := range result.Joins {
		output.Joins[i] = joinOutput(result.Joins[i])
	}
	return nil, output, nil
}

func (s *Server) handleGetBases(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input GetBasesInput,
) (*mcp.CallToolResult, GetBasesOutput, error) {
	strand := domain.StrandForward
	if input.ReverseComplement {
		strand = domain.StrandReverse
	}
	bases, err := s.ports.Graph.Bases(ctx, input.Reference, input.Start, input.End, strand)
	if err != nil {
		return nil, GetBasesOutput{}, err
	}
	return nil, GetBasesOutput{Bases: bases, Length: len(bases)}, nil
}

func joinOutput(j domain.Join) JoinOutput {
	return JoinOutput{
		Side1: sideOutput(j.Side1),
		Side2: sideOutput(j.Side2),
	}
}

func sideOutput(s domain.Side) SideOutput {
	return SideOutput{
		Reference: s.Reference,
		Position:  s.Position,
		Strand:    string(s.Strand),
	}
}
