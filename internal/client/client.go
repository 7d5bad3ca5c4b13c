// Package client provides a typed HTTP client for the inventory API,
// plus the view, health-monitor, and settings state consumed by UI
// front ends.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/inventory/backend/internal/domain/inventory"
	"github.com/inventory/backend/internal/interfaces/http/dto"
)

// Client is a typed HTTP client for the inventory API. Failed calls
// are reported to the caller and never retried automatically.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// APIError is an error response from the server
type APIError struct {
	StatusCode int
	Message    string
	Details    []dto.FieldDetail
}

// Error implements the error interface
func (e *APIError) Error() string {
	if len(e.Details) == 0 {
		return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
	}
	parts := make([]string, 0, len(e.Details))
	for _, d := range e.Details {
		parts = append(parts, d.Message)
	}
	return fmt.Sprintf("server returned %d: %s (%s)", e.StatusCode, e.Message, strings.Join(parts, "; "))
}

// NotFound reports whether the error is a 404
func (e *APIError) NotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// NewClient creates a new Client for the given base URL
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(baseURL, "/"),
	}, nil
}

// ListItems returns all items, newest first
func (c *Client) ListItems(ctx context.Context) ([]*inventory.Item, error) {
	var items []*inventory.Item
	if err := c.do(ctx, http.MethodGet, "/items", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// GetItem returns a single item by id
func (c *Client) GetItem(ctx context.Context, id string) (*inventory.Item, error) {
	var item inventory.Item
	if err := c.do(ctx, http.MethodGet, "/items/"+url.PathEscape(id), nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// CreateItem stores a new item and returns it with its assigned id
func (c *Client) CreateItem(ctx context.Context, draft inventory.Draft) (*inventory.Item, error) {
	var item inventory.Item
	if err := c.do(ctx, http.MethodPost, "/items", draft, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateItem merges a patch into an existing item and returns the result
func (c *Client) UpdateItem(ctx context.Context, id string, patch inventory.Patch) (*inventory.Item, error) {
	var item inventory.Item
	if err := c.do(ctx, http.MethodPut, "/items/"+url.PathEscape(id), patch, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// DeleteItem removes an item
func (c *Client) DeleteItem(ctx context.Context, id string) error {
	var ack dto.SuccessResponse
	return c.do(ctx, http.MethodDelete, "/items/"+url.PathEscape(id), nil, &ack)
}

// Health checks connectivity and returns the server-reported state
func (c *Client) Health(ctx context.Context) (*dto.HealthResponse, error) {
	var health dto.HealthResponse
	if err := c.do(ctx, http.MethodGet, "/health", nil, &health); err != nil {
		return nil, err
	}
	return &health, nil
}

// do executes one request and decodes the response into out
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("creating HTTP request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode >= 400 {
		return apiError(resp.StatusCode, data)
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decoding response body: %w", err)
		}
	}
	return nil
}

// apiError decodes the server's error envelope, falling back to a
// generic message when the body is not JSON
func apiError(statusCode int, body []byte) *APIError {
	var envelope dto.ErrorResponse
	if err := json.Unmarshal(body, &envelope); err != nil || envelope.Error == "" {
		return &APIError{
			StatusCode: statusCode,
			Message:    http.StatusText(statusCode),
		}
	}
	return &APIError{
		StatusCode: statusCode,
		Message:    envelope.Error,
		Details:    envelope.Details,
	}
}
