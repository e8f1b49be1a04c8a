package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/linkage-labs/idmap-cli/internal/core/domain"
)

// defaultSource is used when a tool call does not name a source database.
const defaultSource = "uniprot"

// MapInput is the input schema for the map_identifiers tool.
type MapInput struct {
	Identifiers []string `json:"identifiers" jsonschema:"the protein identifiers to resolve"`
	Source      string   `json:"source,omitempty" jsonschema:"source database to resolve against (default uniprot)"`
	BypassCache bool     `json:"bypass_cache,omitempty" jsonschema:"skip cache reads and query the registry directly"`
}

// MapOutput is the output schema for the map_identifiers tool.
type MapOutput struct {
	Results map[string]ResultOutput `json:"results"`
	Count   int                     `json:"count"`
}

// ResultOutput represents the resolution outcome for one identifier.
type ResultOutput struct {
	CanonicalIDs []string `json:"canonical_ids,omitempty"`
	State        string   `json:"state"`
}

// ReverseInput is the input schema for the reverse_map_identifiers tool.
type ReverseInput struct {
	Identifiers []string `json:"identifiers" jsonschema:"the primary accessions to look up"`
	Source      string   `json:"source,omitempty" jsonschema:"source database to resolve against (default uniprot)"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "map_identifiers",
		Description: "Resolve protein identifiers to their current primary accessions",
	}, s.handleMap)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "reverse_map_identifiers",
		Description: "List the historical accessions recorded for primary accessions",
	}, s.handleReverseMap)
}

// handleMap handles the map_identifiers tool invocation.
func (s *Server) handleMap(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input MapInput,
) (*mcp.CallToolResult, MapOutput, error) {
	source := input.Source
	if source == "" {
		source = defaultSource
	}

	opts := domain.MapOptions{BypassCache: input.BypassCache}
	results, err := s.ports.Mapping.Map(ctx, source, input.Identifiers, opts)
	if err != nil {
		return nil, MapOutput{}, err
	}

	return nil, toMapOutput(results), nil
}

// handleReverseMap handles the reverse_map_identifiers tool invocation.
func (s *Server) handleReverseMap(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ReverseInput,
) (*mcp.CallToolResult, MapOutput, error) {
	source := input.Source
	if source == "" {
		source = defaultSource
	}

	results, err := s.ports.Mapping.ReverseMap(ctx, source, input.Identifiers)
	if err != nil {
		return nil, MapOutput{}, err
	}

	return nil, toMapOutput(results), nil
}

// toMapOutput converts domain results to the wire schema.
func toMapOutput(results map[string]domain.MappingResult) MapOutput {
	output := MapOutput{
		Results: make(map[string]ResultOutput, len(results)),
		Count:   len(results),
	}
	for id, result := range results {
		output.Results[id] = ResultOutput{
			CanonicalIDs: result.CanonicalIDs,
			State:        result.State,
		}
	}
	return output
}
