package driving

import (
	"context"

	"github.com/linkage-labs/idmap-cli/internal/core/domain"
)

// MappingService resolves identifiers against a named source database.
type MappingService interface {
	// Map resolves identifiers against the given source. The result map
	// contains exactly the input identifiers as keys. Returns
	// domain.ErrUnsupportedSource for an unknown source name.
	Map(ctx context.Context, source string, identifiers []string, opts domain.MapOptions) (map[string]domain.MappingResult, error)

	// ReverseMap maps current primary accessions back to their historical
	// accessions for the given source.
	ReverseMap(ctx context.Context, source string, identifiers []string) (map[string]domain.MappingResult, error)

	// Sources lists the configured source database names.
	Sources() []string

	// CacheStats returns cache counters for the given source.
	CacheStats(source string) (domain.CacheStats, error)

	// ClearCache empties the cache for the given source.
	ClearCache(source string) error
}
