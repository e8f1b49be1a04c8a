// Package services contains the application services wiring driving
// adapters to resolvers.
package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/linkage-labs/idmap-cli/internal/core/domain"
	"github.com/linkage-labs/idmap-cli/internal/core/ports/driven"
	"github.com/linkage-labs/idmap-cli/internal/core/ports/driving"
)

// Ensure MappingService implements the interface.
var _ driving.MappingService = (*MappingService)(nil)

// MappingService routes mapping requests to the resolver registered for a
// source database. The source table is fixed at construction; instances
// never mutate shared state, so multiple services cannot interfere with
// each other.
type MappingService struct {
	mappers map[string]driven.IdentifierMapper
}

// NewMappingService creates a service over the given mappers, keyed by
// their Source().
func NewMappingService(mappers ...driven.IdentifierMapper) *MappingService {
	table := make(map[string]driven.IdentifierMapper, len(mappers))
	for _, m := range mappers {
		table[m.Source()] = m
	}
	return &MappingService{mappers: table}
}

// Map resolves identifiers against the given source.
func (s *MappingService) Map(ctx context.Context, source string, identifiers []string, opts domain.MapOptions) (map[string]domain.MappingResult, error) {
	mapper, err := s.mapper(source)
	if err != nil {
		return nil, err
	}
	return mapper.MapIdentifiers(ctx, identifiers, opts), nil
}

// ReverseMap maps current primary accessions back to their historical
// accessions for the given source.
func (s *MappingService) ReverseMap(ctx context.Context, source string, identifiers []string) (map[string]domain.MappingResult, error) {
	mapper, err := s.mapper(source)
	if err != nil {
		return nil, err
	}
	return mapper.ReverseMapIdentifiers(ctx, identifiers), nil
}

// Sources lists the configured source database names, sorted.
func (s *MappingService) Sources() []string {
	sources := make([]string, 0, len(s.mappers))
	for source := range s.mappers {
		sources = append(sources, source)
	}
	sort.Strings(sources)
	return sources
}

// CacheStats returns cache counters for the given source.
func (s *MappingService) CacheStats(source string) (domain.CacheStats, error) {
	mapper, err := s.mapper(source)
	if err != nil {
		return domain.CacheStats{}, err
	}
	return mapper.CacheStats(), nil
}

// ClearCache empties the cache for the given source.
func (s *MappingService) ClearCache(source string) error {
	mapper, err := s.mapper(source)
	if err != nil {
		return err
	}
	mapper.ClearCache()
	return nil
}

// Close closes every registered mapper, returning the first error.
func (s *MappingService) Close() error {
	var firstErr error
	for _, mapper := range s.mappers {
		if err := mapper.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// mapper looks up the resolver for a source name.
func (s *MappingService) mapper(source string) (driven.IdentifierMapper, error) {
	mapper, ok := s.mappers[source]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedSource, source)
	}
	return mapper, nil
}
