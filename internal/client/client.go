// Package client provides the HTTP client used by the terminal UI to talk
// to the taskdeck API. It wraps the CRUD and translation endpoints and
// turns error responses into Go errors carrying the server's message.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/taskdeck/taskdeck/internal/api"
)

// defaultTimeout bounds every API call made by the client.
const defaultTimeout = 30 * time.Second

// APIError is an error response returned by the server, carrying the
// sanitized message and HTTP status code.
type APIError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface for APIError.
func (e *APIError) Error() string {
	return fmt.Sprintf("API error (%d): %s", e.StatusCode, e.Message)
}

// Client talks to the taskdeck API server.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a Client for the API at baseURL, e.g. "http://localhost:8080".
func New(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// List fetches items, optionally filtered by status
// ("pending", "completed", or "all").
func (c *Client) List(ctx context.Context, status string) ([]api.ItemResponse, error) {
	url := c.baseURL + "/api/items"
	if status != "" {
		url += "?status=" + status
	}

	var items []api.ItemResponse
	if err := c.do(ctx, http.MethodGet, url, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Create adds a new item.
func (c *Client) Create(ctx context.Context, req api.CreateItemRequest) (*api.ItemResponse, error) {
	var item api.ItemResponse
	if err := c.do(ctx, http.MethodPost, c.baseURL+"/api/items", req, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Complete marks the item with the given ID as completed.
func (c *Client) Complete(ctx context.Context, id int64) (*api.ItemResponse, error) {
	url := fmt.Sprintf("%s/api/items/%d/complete", c.baseURL, id)

	var item api.ItemResponse
	if err := c.do(ctx, http.MethodPost, url, nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Delete removes the item with the given ID.
func (c *Client) Delete(ctx context.Context, id int64) error {
	url := fmt.Sprintf("%s/api/items/%d", c.baseURL, id)
	return c.do(ctx, http.MethodDelete, url, nil, nil)
}

// Translate asks the server to translate text into the target language.
func (c *Client) Translate(ctx context.Context, text, targetLanguage string) (string, error) {
	req := api.TranslateRequest{Text: text, TargetLanguage: targetLanguage}

	var resp api.TranslateResponse
	if err := c.do(ctx, http.MethodPost, c.baseURL+"/api/translate", req, &resp); err != nil {
		return "", err
	}
	return resp.TranslatedText, nil
}

// do performs one request/response round trip. A non-2xx response is
// decoded into an APIError; a nil out skips body decoding.
func (c *Client) do(ctx context.Context, method, url string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: "unknown error"}
		var errResp struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil && errResp.Error != "" {
			apiErr.Message = errResp.Error
		}
		return apiErr
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
