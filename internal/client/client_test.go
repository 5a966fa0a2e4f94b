package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskdeck/taskdeck/internal/api"
)

func TestClientList(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/items", r.URL.Path)
		assert.Equal(t, "pending", r.URL.Query().Get("status"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode([]api.ItemResponse{
			{ID: 1, Title: "buy milk", Priority: "medium"},
		})
	}))
	defer server.Close()

	c := New(server.URL)
	items, err := c.List(context.Background(), "pending")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "buy milk", items[0].Title)
}

func TestClientCreate(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/items", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req api.CreateItemRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "write report", req.Title)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(api.ItemResponse{ID: 1, Title: req.Title, Priority: req.Priority})
	}))
	defer server.Close()

	c := New(server.URL)
	item, err := c.Create(context.Background(), api.CreateItemRequest{Title: "write report", Priority: "high"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), item.ID)
	assert.Equal(t, "high", item.Priority)
}

func TestClientComplete(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/items/42/complete", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(api.ItemResponse{ID: 42, Completed: true})
	}))
	defer server.Close()

	c := New(server.URL)
	item, err := c.Complete(context.Background(), 42)
	require.NoError(t, err)
	assert.True(t, item.Completed)
}

func TestClientDelete(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/items/42", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	c := New(server.URL)
	assert.NoError(t, c.Delete(context.Background(), 42))
}

func TestClientTranslate(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/translate", r.URL.Path)

		var req api.TranslateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "buy milk", req.Text)
		assert.Equal(t, "Spanish", req.TargetLanguage)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(api.TranslateResponse{TranslatedText: "comprar leche"})
	}))
	defer server.Close()

	c := New(server.URL)
	translated, err := c.Translate(context.Background(), "buy milk", "Spanish")
	require.NoError(t, err)
	assert.Equal(t, "comprar leche", translated)
}

func TestClientErrorResponse(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "item not found"})
	}))
	defer server.Close()

	c := New(server.URL)
	_, err := c.Complete(context.Background(), 99)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "item not found", apiErr.Message)
}

func TestClientErrorResponseWithoutBody(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	c := New(server.URL)
	err := c.Delete(context.Background(), 1)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, "unknown error", apiErr.Message)
}
