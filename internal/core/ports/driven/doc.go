// Package driven defines the outbound port interfaces of the core.
// Resolvers, caches, and registry transports implement these; services
// depend only on the interfaces.
package driven
