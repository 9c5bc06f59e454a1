package mcp

import (
	"context"
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/stratkb/internal/core/domain"
)

// Helper to create a ReadResourceRequest with the given URI.
func makeReadResourceRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{
			URI: uri,
		},
	}
}

func TestServer_handleKindsResource(t *testing.T) {
	ctx := context.Background()

	mockSearch := &mockSearcher{
		kinds: []string{"megatrends", "seeds"},
	}
	ports := &Ports{Search: mockSearch}
	server, err := NewServer(ports)
	require.NoError(t, err)

	req := makeReadResourceRequest("stratkb://kinds")
	result, err := server.handleKindsResource(ctx, req)

	require.NoError(t, err)
	require.Len(t, result.Contents, 1)
	assert.Equal(t, "stratkb://kinds", result.Contents[0].URI)
	assert.Contains(t, result.Contents[0].Text, "megatrends")
	assert.Contains(t, result.Contents[0].Text, "seeds")
}

func TestServer_handleSourcesResource(t *testing.T) {
	ctx := context.Background()

	t.Run("nil registry returns empty list", func(t *testing.T) {
		ports := &Ports{Search: &mockSearcher{}}
		server, err := NewServer(ports)
		require.NoError(t, err)

		req := makeReadResourceRequest("stratkb://sources")
		result, err := server.handleSourcesResource(ctx, req)

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "[]", result.Contents[0].Text)
	})

	t.Run("returns sources successfully", func(t *testing.T) {
		registry := &mockRegistry{
			sources: []domain.DataSourceMetadata{
				{
					ID:         "src-1",
					Name:       "Trend Research DB",
					Kind:       domain.SourceKindDatabase,
					SyncStatus: domain.SyncSuccess,
				},
			},
		}

		ports := &Ports{Search: &mockSearcher{}, Registry: registry}
		server, err := NewServer(ports)
		require.NoError(t, err)

		req := makeReadResourceRequest("stratkb://sources")
		result, err := server.handleSourcesResource(ctx, req)

		require.NoError(t, err)
		require.Len(t, result.Contents, 1)
		assert.Contains(t, result.Contents[0].Text, "src-1")
		assert.Contains(t, result.Contents[0].Text, "Trend Research DB")
		assert.Contains(t, result.Contents[0].Text, "DATABASE")
		assert.Contains(t, result.Contents[0].Text, "SUCCESS")
	})

	t.Run("returns error on list failure", func(t *testing.T) {
		registry := &mockRegistry{
			err: errors.New("database error"),
		}

		ports := &Ports{Search: &mockSearcher{}, Registry: registry}
		server, err := NewServer(ports)
		require.NoError(t, err)

		req := makeReadResourceRequest("stratkb://sources")
		_, err = server.handleSourcesResource(ctx, req)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "listing sources")
	})
}
