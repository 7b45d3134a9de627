package api

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

	"github.com/vaulthub/vaulthub-cli/internal/common"
	"github.com/vaulthub/vaulthub-cli/internal/logging"
)

// DefaultTimeout bounds every request. The web client left requests
// unbounded and a hung call froze its screen forever; the Go client does
// not reproduce that.
const DefaultTimeout = 30 * time.Second

// TokenProvider returns the persisted bearer token, or "" when the client
// is unauthenticated. It is consulted on every outgoing request.
type TokenProvider func(ctx context.Context) string

// Client is the VaultHub API client.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenProvider
	apiKey  string
	guard   *UnauthorizedGuard
	log     logging.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// WithTokenProvider sets the bearer-token source consulted per request.
func WithTokenProvider(tp TokenProvider) Option {
	return func(c *Client) { c.tokens = tp }
}

// WithAPIKey sets the API key used by the CLI vault surface.
func WithAPIKey(key string) Option {
	return func(c *Client) { c.apiKey = key }
}

// WithUnauthorizedGuard installs the debounced 401 handler.
func WithUnauthorizedGuard(g *UnauthorizedGuard) Option {
	return func(c *Client) { c.guard = g }
}

// WithLogger sets the client logger.
func WithLogger(l logging.Logger) Option {
	return func(c *Client) { c.log = l }
}

// New constructs a Client for the given base URL. The URL must be
// non-empty; a missing scheme defaults to https.
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("base URL cannot be empty")
	}
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	if parsed.Scheme == "" {
		parsed.Scheme = "https"
	}

	c := &Client{
		baseURL: strings.TrimSuffix(parsed.String(), "/"),
		http:    &http.Client{Timeout: DefaultTimeout},
		log:     logging.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the configured server base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// do performs an HTTP request against path, marshalling body (if non-nil)
// as JSON and decoding the response into dest (if non-nil). Every non-2xx
// response is returned as an *Error; a 401 additionally trips the
// unauthorized guard.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, dest any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set(common.APIKeyHeaderName, c.apiKey)
	}
	if c.tokens != nil {
		if token := c.tokens(ctx); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", common.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
		apiErr := &Error{Status: resp.StatusCode, Message: extractMessage(resp.StatusCode, raw)}
		if resp.StatusCode == http.StatusUnauthorized && c.guard != nil {
			c.guard.Trip()
		}
		return apiErr
	}

	if dest != nil {
		if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}
