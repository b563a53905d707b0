package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	apperrors "github.com/clipcat/discord-gifbot-go/internal/errors"
	"github.com/clipcat/discord-gifbot-go/internal/metrics"
)

// maxBodyBytes caps the catalog response size. The catalog is a few KB of
// JSON in practice; anything near this limit is a misbehaving upstream.
const maxBodyBytes = 8 << 20

// Client fetches the media catalog over HTTP.
// The fetch is a single best-effort attempt per invocation: no retries,
// no caching. Failures are reported as *errors.CatalogError.
type Client struct {
	httpClient *http.Client
	url        string
	metrics    *metrics.Metrics
}

// NewClient creates a catalog client for the given listing URL.
// metrics may be nil, in which case fetches are not recorded.
func NewClient(url string, timeout time.Duration, m *metrics.Metrics) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		url:     url,
		metrics: m,
	}
}

// URL returns the configured listing endpoint.
func (c *Client) URL() string {
	return c.url
}

// Fetch performs one GET against the listing endpoint and decodes the
// JSON array of items. Any transport failure or non-2xx status is
// returned as a *errors.CatalogError.
func (c *Client) Fetch(ctx context.Context) ([]Item, error) {
	start := time.Now()
	items, err := c.fetch(ctx)
	if c.metrics != nil {
		status := "success"
		if err != nil {
			status = "error"
		}
		c.metrics.RecordCatalogFetch(status, time.Since(start).Seconds())
	}
	return items, err
}

func (c *Client) fetch(ctx context.Context) ([]Item, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, apperrors.NewCatalogError(c.url, 0, fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.NewCatalogError(c.url, 0, fmt.Errorf("request failed: %w", err))
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, apperrors.NewCatalogError(c.url, resp.StatusCode, fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var items []Item
	if err := json.NewDecoder(http.MaxBytesReader(nil, resp.Body, maxBodyBytes)).Decode(&items); err != nil {
		return nil, apperrors.NewCatalogError(c.url, resp.StatusCode, fmt.Errorf("decode response: %w", err))
	}

	return items, nil
}
