package huggingface

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// Client is the datasets-server HTTP client.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// New creates a client. token is optional and only needed for gated datasets.
func New(baseURL, token string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// Splits lists every split of every config of a dataset.
func (c *Client) Splits(ctx context.Context, dataset string) ([]Split, error) {
	q := url.Values{"dataset": {dataset}}

	var resp splitsResponse
	if err := c.get(ctx, "/splits", q, &resp); err != nil {
		return nil, err
	}
	return resp.Splits, nil
}

// Rows fetches one page of a split.
func (c *Client) Rows(ctx context.Context, req RowsRequest) (*RowsPage, error) {
	length := req.Length
	if length <= 0 || length > MaxPageLength {
		length = MaxPageLength
	}
	config := req.Config
	if config == "" {
		config = "default"
	}

	q := url.Values{
		"dataset": {req.Dataset},
		"config":  {config},
		"split":   {req.Split},
		"offset":  {strconv.Itoa(req.Offset)},
		"length":  {strconv.Itoa(length)},
	}

	var page RowsPage
	if err := c.get(ctx, "/rows", q, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (c *Client) get(ctx context.Context, path string, q url.Values, out any) error {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if c.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call huggingface API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errResp errorResponse
		json.NewDecoder(resp.Body).Decode(&errResp)
		return &APIError{StatusCode: resp.StatusCode, Message: errResp.Error}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
