package driven

import "github.com/linkage-labs/idmap-cli/internal/core/domain"

// ResultCache stores mapping results keyed by atomic accession.
// Implementations are safe for concurrent use; the hit/miss counters are
// updated inside the same critical section as the lookup they describe.
type ResultCache interface {
	// Get returns the cached result for key, if present.
	Get(key string) (domain.MappingResult, bool)

	// Put stores a result, evicting an arbitrary entry when full.
	Put(key string, value domain.MappingResult)

	// PutMany stores a batch of results.
	PutMany(results map[string]domain.MappingResult)

	// Clear removes all entries and resets the counters.
	Clear()

	// Stats returns a snapshot of size and hit/miss counters.
	Stats() domain.CacheStats
}
