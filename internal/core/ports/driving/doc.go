// Package driving defines the inbound port interfaces of the core,
// consumed by the CLI and MCP adapters.
package driving
