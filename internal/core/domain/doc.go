// Package domain contains the core business types for identifier mapping.
// It has no dependencies on other packages and defines the vocabulary
// shared by services, resolvers, and adapters: mapping results, resolution
// states, and domain errors.
package domain
