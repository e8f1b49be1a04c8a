package mcp

import (
	"context"

	"github.com/linkage-labs/idmap-cli/internal/core/domain"
)

// mockMappingService is a mock implementation of driving.MappingService.
type mockMappingService struct {
	results map[string]domain.MappingResult
	sources []string
	stats   domain.CacheStats
	err     error

	lastSource string
	lastOpts   domain.MapOptions
}

func (m *mockMappingService) Map(
	_ context.Context,
	source string,
	_ []string,
	opts domain.MapOptions,
) (map[string]domain.MappingResult, error) {
	m.lastSource = source
	m.lastOpts = opts
	return m.results, m.err
}

func (m *mockMappingService) ReverseMap(
	_ context.Context,
	source string,
	_ []string,
) (map[string]domain.MappingResult, error) {
	m.lastSource = source
	return m.results, m.err
}

func (m *mockMappingService) Sources() []string {
	return m.sources
}

func (m *mockMappingService) CacheStats(source string) (domain.CacheStats, error) {
	m.lastSource = source
	return m.stats, m.err
}

func (m *mockMappingService) ClearCache(source string) error {
	m.lastSource = source
	return m.err
}
