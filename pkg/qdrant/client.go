package qdrant

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultTimeout = 30 * time.Second

// Client is the Qdrant HTTP API client.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new Qdrant client.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// CollectionExists reports whether the collection is present.
func (c *Client) CollectionExists(ctx context.Context, name string) (bool, error) {
	err := c.do(ctx, http.MethodGet, "/collections/"+name, nil, nil)
	if err == nil {
		return true, nil
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
		return false, nil
	}
	return false, err
}

// CreateCollection creates a new collection with the given configuration.
func (c *Client) CreateCollection(ctx context.Context, req CreateCollectionRequest) error {
	return c.do(ctx, http.MethodPut, "/collections/"+req.Name, req, nil)
}

// EnsureCollection creates a cosine collection of the given size unless it already exists.
func (c *Client) EnsureCollection(ctx context.Context, name string, size int) error {
	exists, err := c.CollectionExists(ctx, name)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return c.CreateCollection(ctx, CreateCollectionRequest{
		Name:    name,
		Vectors: VectorConfig{Size: size, Distance: DistanceCosine},
	})
}

// UpsertPoints inserts or updates points and waits until they are searchable.
func (c *Client) UpsertPoints(ctx context.Context, collectionName string, req UpsertPointsRequest) error {
	return c.do(ctx, http.MethodPut, "/collections/"+collectionName+"/points?wait=true", req, nil)
}

// SearchPoints performs semantic search in a collection.
func (c *Client) SearchPoints(ctx context.Context, collectionName string, req SearchRequest) (*SearchResponse, error) {
	var result SearchResponse
	if err := c.do(ctx, http.MethodPost, "/collections/"+collectionName+"/points/search", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// Count returns the exact number of points in a collection.
func (c *Client) Count(ctx context.Context, collectionName string) (int, error) {
	var result countResponse
	if err := c.do(ctx, http.MethodPost, "/collections/"+collectionName+"/points/count", countRequest{Exact: true}, &result); err != nil {
		return 0, err
	}
	return result.Result.Count, nil
}

// DeletePoints deletes points by IDs.
func (c *Client) DeletePoints(ctx context.Context, collectionName string, ids []string) error {
	return c.do(ctx, http.MethodPost, "/collections/"+collectionName+"/points/delete", DeletePointsRequest{Points: ids}, nil)
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewReader(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call qdrant API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return &APIError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
