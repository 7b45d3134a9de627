package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// GetAPIKeys lists the caller's API keys. Key material is never included.
func (c *Client) GetAPIKeys(ctx context.Context, pageSize, pageIndex int) (*APIKeysResponse, error) {
	q := url.Values{}
	q.Set("pageSize", strconv.Itoa(pageSize))
	q.Set("pageIndex", strconv.Itoa(pageIndex))

	var resp APIKeysResponse
	if err := c.do(ctx, http.MethodGet, "/api/api-keys", q, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CreateAPIKey creates a key. The response is the only time the raw key is
// exposed; it cannot be retrieved again.
func (c *Client) CreateAPIKey(ctx context.Context, req CreateAPIKeyRequest) (*CreateAPIKeyResponse, error) {
	var resp CreateAPIKeyResponse
	if err := c.do(ctx, http.MethodPost, "/api/api-keys", nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateAPIKey updates name, vault bindings, expiry, or active state.
func (c *Client) UpdateAPIKey(ctx context.Context, id int64, req UpdateAPIKeyRequest) (*APIKey, error) {
	var resp APIKey
	if err := c.do(ctx, http.MethodPatch, "/api/api-keys/"+strconv.FormatInt(id, 10), nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// DeleteAPIKey revokes and removes a key.
func (c *Client) DeleteAPIKey(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, "/api/api-keys/"+strconv.FormatInt(id, 10), nil, nil, nil)
}
