package driven

import (
	"context"

	"github.com/linkage-labs/idmap-cli/internal/core/domain"
)

// IdentifierMapper resolves identifiers for one source database.
// Each source type (uniprot today, siblings later) implements this interface.
// Caching is composed into implementations through a ResultCache rather than
// layered via embedding, so construction order stays unambiguous.
type IdentifierMapper interface {
	// Source returns the source database identifier, e.g. "uniprot".
	Source() string

	// RequiredConfigKeys returns the config keys the mapper needs to run.
	// Used by the CLI to fail fast on incomplete configuration.
	RequiredConfigKeys() []string

	// MapIdentifiers resolves raw identifiers to their current canonical
	// form(s). The returned map always contains exactly the input keys,
	// even under total upstream failure; failures are encoded as tagged
	// states, never returned as an error.
	MapIdentifiers(ctx context.Context, identifiers []string, opts domain.MapOptions) map[string]domain.MappingResult

	// ReverseMapIdentifiers maps current primary accessions back to the
	// historical accessions the registry lists for them.
	ReverseMapIdentifiers(ctx context.Context, identifiers []string) map[string]domain.MappingResult

	// CacheStats returns a snapshot of the mapper's result cache counters.
	CacheStats() domain.CacheStats

	// ClearCache empties the mapper's result cache.
	ClearCache()

	// Close releases resources.
	Close() error
}
