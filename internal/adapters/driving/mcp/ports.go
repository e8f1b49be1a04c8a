package mcp

import (
	"github.com/linkage-labs/idmap-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Mapping provides identifier resolution.
	Mapping driving.MappingService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Mapping == nil {
		return ErrMissingMappingService
	}
	return nil
}
