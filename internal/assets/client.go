package assets

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// maxImageBytes bounds a single downloaded page.
const maxImageBytes = 32 << 20

// Client fetches page images from a static host.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the host at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// request makes a GET request for a path relative to the base URL
func (c *Client) request(ctx context.Context, ref string) (*http.Response, error) {
	u, err := url.JoinPath(c.baseURL, ref)
	if err != nil {
		return nil, fmt.Errorf("build url for %s: %w", ref, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "image/webp,image/*")
	return c.httpClient.Do(req)
}

// readBody reads the response body, turning error statuses into errors
func readBody(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode == http.StatusNotFound {
		return nil, errNotOnHost
	}
	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return body, nil
}

// Fetch downloads the image at ref.
func (c *Client) Fetch(ctx context.Context, ref string) ([]byte, error) {
	resp, err := c.request(ctx, ref)
	if err != nil {
		return nil, err
	}
	return readBody(resp)
}
