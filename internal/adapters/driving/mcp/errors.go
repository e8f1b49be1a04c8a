// Package mcp provides an MCP (Model Context Protocol) server adapter for idmap.
// It enables AI assistants like Claude to resolve protein identifiers locally.
package mcp

import "errors"

// ErrMissingMappingService is returned when the mapping service is not provided.
var ErrMissingMappingService = errors.New("mcp: mapping service is required")
