package dock

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jamesprial/dock-status/internal/config"
)

const statusPath = "/status"

// Compile-time interface check.
var _ StatusFetcher = (*HTTPClient)(nil)

// HTTPClient fetches the status document from a dock over plain HTTP.
type HTTPClient struct {
	httpClient *http.Client
	statusURL  string
}

// NewHTTPClient constructs an HTTPClient from the provided DockConfig. It
// returns an error if cfg.URL is empty. A zero or negative cfg.Timeout leaves
// requests without a client-side timeout; they end when the transport does or
// the context is cancelled.
func NewHTTPClient(cfg config.DockConfig) (*HTTPClient, error) {
	if cfg.URL == "" {
		return nil, fmt.Errorf("dock: URL is required")
	}
	var timeout time.Duration
	if cfg.Timeout > 0 {
		timeout = time.Duration(cfg.Timeout) * time.Second
	}
	return &HTTPClient{
		httpClient: &http.Client{Timeout: timeout},
		statusURL:  normalizeURL(cfg.URL),
	}, nil
}

// normalizeURL trims any trailing slash from rawURL and appends /status if
// the path does not already end with that suffix.
func normalizeURL(rawURL string) string {
	u := strings.TrimRight(rawURL, "/")
	if !strings.HasSuffix(u, statusPath) {
		u += statusPath
	}
	return u
}

// Status sends an unauthenticated GET to the dock's status endpoint and
// decodes the response body.
//
// Every failure wraps ErrUnavailable:
//   - the request cannot be created or sent
//   - the dock responds with a non-2xx status code
//   - the body is not a JSON object (including a bare null)
func (c *HTTPClient) Status(ctx context.Context) (*Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.statusURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %w", ErrUnavailable, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: request failed: %w", ErrUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: unexpected HTTP status %d", ErrUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %w", ErrUnavailable, err)
	}

	body = bytes.TrimSpace(body)
	if len(body) == 0 || body[0] != '{' {
		return nil, fmt.Errorf("%w: response is not a JSON object", ErrUnavailable)
	}

	doc := NewDocument()
	if err := json.Unmarshal(body, doc); err != nil {
		return nil, fmt.Errorf("%w: decode response: %w", ErrUnavailable, err)
	}
	return doc, nil
}
