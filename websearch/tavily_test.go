package websearch

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/poiesic/answerit/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTavilyClient(t *testing.T) {
	t.Run("requires api key", func(t *testing.T) {
		_, err := NewTavilyClient("")
		assert.Equal(t, ErrAPIKeyRequired, err)
	})

	t.Run("valid", func(t *testing.T) {
		client, err := NewTavilyClient("tvly-test")
		require.NoError(t, err)
		assert.NotNil(t, client)
	})
}

func TestTavilySearch(t *testing.T) {
	ctx := context.Background()

	t.Run("wraps each result into its own document", func(t *testing.T) {
		var gotReq tavilyRequest
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, "/search", r.URL.Path)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

			json.NewEncoder(w).Encode(tavilyResponse{
				Results: []tavilyResult{
					{Title: "Agent memory", URL: "https://example.com/a", Content: "Agents have short and long term memory.", Score: 0.9},
					{Title: "Scratchpads", URL: "https://example.com/b", Content: "Scratchpads act as working memory.", Score: 0.7},
				},
			})
		}))
		defer server.Close()

		client, err := NewTavilyClient("tvly-test", WithBaseURL(server.URL))
		require.NoError(t, err)

		docs, err := client.Search(ctx, "what is agent memory", 3)
		require.NoError(t, err)
		require.Len(t, docs, 2)

		assert.Equal(t, "tvly-test", gotReq.APIKey)
		assert.Equal(t, "what is agent memory", gotReq.Query)
		assert.Equal(t, 3, gotReq.MaxResults)

		assert.Equal(t, "Agents have short and long term memory.", docs[0].Content)
		assert.Equal(t, "tavily", docs[0].Metadata[core.MetadataSource])
		assert.Equal(t, "https://example.com/a", docs[0].Metadata[core.MetadataURL])
		assert.Equal(t, "Agent memory", docs[0].Metadata[core.MetadataTitle])
	})

	t.Run("skips empty-content results", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(tavilyResponse{
				Results: []tavilyResult{
					{Title: "empty", URL: "https://example.com/e", Content: ""},
					{Title: "full", URL: "https://example.com/f", Content: "something"},
				},
			})
		}))
		defer server.Close()

		client, err := NewTavilyClient("tvly-test", WithBaseURL(server.URL))
		require.NoError(t, err)

		docs, err := client.Search(ctx, "q", 3)
		require.NoError(t, err)
		require.Len(t, docs, 1)
		assert.Equal(t, "something", docs[0].Content)
	})

	t.Run("no results is not an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(tavilyResponse{})
		}))
		defer server.Close()

		client, err := NewTavilyClient("tvly-test", WithBaseURL(server.URL))
		require.NoError(t, err)

		docs, err := client.Search(ctx, "q", 3)
		require.NoError(t, err)
		assert.Empty(t, docs)
	})

	t.Run("non-success status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
		}))
		defer server.Close()

		client, err := NewTavilyClient("tvly-bad", WithBaseURL(server.URL))
		require.NoError(t, err)

		_, err = client.Search(ctx, "q", 3)
		assert.ErrorIs(t, err, ErrSearchFailed)
	})
}
