package orchestrator

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTavilyClient_Search(t *testing.T) {
	var gotReq tavilyRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"results": []map[string]string{
				{"title": "Doc", "url": "https://example.com/doc", "content": "body"},
			},
		})
	}))
	defer srv.Close()

	client := NewTavilyClient("key-123")
	client.endpoint = srv.URL

	results, err := client.Search(context.Background(), "student loans")
	require.NoError(t, err)

	assert.Equal(t, "key-123", gotReq.APIKey)
	assert.Equal(t, "student loans", gotReq.Query)
	require.Len(t, results, 1)
	assert.Equal(t, "Doc", results[0].Title)
	assert.Equal(t, "https://example.com/doc", results[0].URL)
	assert.Equal(t, "body", results[0].Content)
}

func TestTavilyClient_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid api key", http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewTavilyClient("bad-key")
	client.endpoint = srv.URL

	_, err := client.Search(context.Background(), "anything")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
}
