package dashboard

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIClientDeleteArticle(t *testing.T) {
	var gotPath, gotAuth, gotMethod string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotMethod = r.Method
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"message":"Article deleted successfully"}`))
	}))
	defer server.Close()

	client := NewAPIClient(server.URL, "token-123")

	require.NoError(t, client.DeleteArticle(context.Background(), 42))
	assert.Equal(t, "/api/v1/articles/42", gotPath)
	assert.Equal(t, "Bearer token-123", gotAuth)
	assert.Equal(t, http.MethodDelete, gotMethod)
}

func TestAPIClientDeleteImage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/images/img-9", r.URL.Path)
		w.Write([]byte(`{"message":"Image deleted successfully"}`))
	}))
	defer server.Close()

	client := NewAPIClient(server.URL, "token-123")
	require.NoError(t, client.DeleteImage(context.Background(), "img-9"))
}

func TestAPIClientDeleteErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"article not found"}`, http.StatusNotFound)
	}))
	defer server.Close()

	client := NewAPIClient(server.URL, "token-123")

	err := client.DeleteArticle(context.Background(), 42)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}
