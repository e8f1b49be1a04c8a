package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linkage-labs/idmap-cli/internal/core/domain"
)

func TestExtractCacheSource(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		expected string
	}{
		{
			name:     "valid cache stats URI",
			uri:      "idmap://cache/uniprot/stats",
			expected: "uniprot",
		},
		{
			name:     "invalid prefix",
			uri:      "file://cache/uniprot/stats",
			expected: "",
		},
		{
			name:     "missing stats suffix",
			uri:      "idmap://cache/uniprot",
			expected: "",
		},
		{
			name:     "empty URI",
			uri:      "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := extractCacheSource(tt.uri)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestServer_handleSourcesResource(t *testing.T) {
	ctx := context.Background()

	mockMapping := &mockMappingService{sources: []string{"uniprot"}}
	server, err := NewServer(&Ports{Mapping: mockMapping})
	require.NoError(t, err)

	req := &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{URI: "idmap://sources"},
	}
	result, err := server.handleSourcesResource(ctx, req)

	require.NoError(t, err)
	require.Len(t, result.Contents, 1)
	assert.Equal(t, "application/json", result.Contents[0].MIMEType)
	assert.Contains(t, result.Contents[0].Text, "uniprot")
}

func TestServer_handleCacheStatsResource(t *testing.T) {
	ctx := context.Background()

	t.Run("returns cache stats", func(t *testing.T) {
		mockMapping := &mockMappingService{
			stats: domain.CacheStats{Size: 12, Hits: 5, Misses: 7},
		}
		server, err := NewServer(&Ports{Mapping: mockMapping})
		require.NoError(t, err)

		req := &mcp.ReadResourceRequest{
			Params: &mcp.ReadResourceParams{URI: "idmap://cache/uniprot/stats"},
		}
		result, err := server.handleCacheStatsResource(ctx, req)

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Contains(t, result.Contents[0].Text, "\"size\": 12")
		assert.Equal(t, "uniprot", mockMapping.lastSource)
	})

	t.Run("unknown source returns not found", func(t *testing.T) {
		mockMapping := &mockMappingService{
			err: errors.New("unsupported source"),
		}
		server, err := NewServer(&Ports{Mapping: mockMapping})
		require.NoError(t, err)

		req := &mcp.ReadResourceRequest{
			Params: &mcp.ReadResourceParams{URI: "idmap://cache/kegg/stats"},
		}
		_, err = server.handleCacheStatsResource(ctx, req)

		assert.Error(t, err)
	})

	t.Run("malformed URI returns not found", func(t *testing.T) {
		server, err := NewServer(&Ports{Mapping: &mockMappingService{}})
		require.NoError(t, err)

		req := &mcp.ReadResourceRequest{
			Params: &mcp.ReadResourceParams{URI: "idmap://cache/uniprot"},
		}
		_, err = server.handleCacheStatsResource(ctx, req)

		assert.Error(t, err)
	})
}
