package tfc

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"tfc-cost/internal/config"
	apperrors "tfc-cost/internal/errors"
	"tfc-cost/internal/logging"
)

// apiPrefix is the versioned API root all relative paths hang off
const apiPrefix = "/api/v2"

// defaultTimeout bounds a single API round-trip. An exceeded timeout
// surfaces as a transport error like any other.
const defaultTimeout = 30 * time.Second

// ErrNotFound is returned when the API answers 404 for a show request
var ErrNotFound = errors.New("not found")

// Client talks to the Terraform Cloud (or Terraform Enterprise) API v2
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	log        *zap.Logger
}

// New creates a Client from configuration. The token must be present and
// the base URL must parse as an absolute http(s) URL.
func New(cfg config.Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	base, err := url.Parse(cfg.URL)
	if err != nil {
		return nil, apperrors.APIInit(err)
	}
	if base.Scheme != "http" && base.Scheme != "https" || base.Host == "" {
		return nil, apperrors.APIInit(fmt.Errorf("invalid base URL %q", cfg.URL))
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.URL, "/"),
		token:   cfg.Token,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
		log: logging.Logger,
	}, nil
}

// Get issues a GET against an API-relative path (e.g.
// "/organizations/acme/workspaces") and decodes the JSON:API envelope.
func (c *Client) Get(ctx context.Context, path string) (*Document, error) {
	return c.do(ctx, c.baseURL+apiPrefix+path)
}

// GetLink issues a GET against a server-supplied absolute URL, verbatim.
// Pagination cursors are opaque; they are never rebuilt from page
// parameters on this side.
func (c *Client) GetLink(ctx context.Context, link string) (*Document, error) {
	return c.do(ctx, link)
}

func (c *Client) do(ctx context.Context, rawURL string) (*Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/vnd.api+json")

	c.log.Debug("GET", zap.String("url", rawURL))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("API returned status %d for %s", resp.StatusCode, rawURL)
	}

	var doc Document
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &doc, nil
}
