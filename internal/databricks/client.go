// Package databricks provides a minimal REST client for the Databricks
// workspace API. Every administrative tool funnels through Client.Do, which
// owns authentication, the request timeout, and HTTP status checking.
package databricks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/lakebot/lakebot/internal/config"
)

// requestTimeout bounds every workspace API call.
const requestTimeout = 30 * time.Second

// Client is an authenticated handle to one workspace. It is read-only after
// construction and safe to share across requests.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient creates a Client for the configured workspace.
func NewClient(cfg config.DatabricksConfig) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.Host, "/"),
		token:      cfg.Token,
		httpClient: &http.Client{Timeout: requestTimeout},
	}
}

// BaseURL returns the configured workspace base URL.
func (c *Client) BaseURL() string { return c.baseURL }

// Do issues one HTTP request against path (e.g. "/api/2.1/clusters/list")
// and returns the raw response body. body, when non-nil, is sent as JSON on
// every verb; the workspace API accepts JSON bodies on GET endpoints too.
// Non-2xx statuses are returned as errors carrying the status and a body
// snippet.
func (c *Client) Do(ctx context.Context, method, path string, body map[string]any) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, bodySnippet(raw))
	}
	return raw, nil
}

// bodySnippet trims an error body for inclusion in an error message.
func bodySnippet(raw []byte) string {
	s := strings.TrimSpace(string(raw))
	if len(s) > 300 {
		s = s[:300]
	}
	return s
}
