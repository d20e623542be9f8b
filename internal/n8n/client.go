package n8n

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"n8n-mcp/internal/config"
	"n8n-mcp/pkg/logging"
)

const apiKeyHeader = "X-N8N-API-KEY"

// Client issues requests against the n8n public REST API. It holds no state
// beyond its configuration and is safe for concurrent use.
type Client struct {
	baseURL    string
	apiPath    string
	apiKey     string
	timeout    time.Duration
	userAgent  string
	httpClient *http.Client
	transport  http.RoundTripper
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. The logging transport is not added.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTransport sets the round tripper used beneath the logging transport.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) {
		c.transport = rt
	}
}

// WithUserAgent sets the User-Agent header sent on every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// NewClient builds a client for the n8n instance described by cfg.
// It fails with a *config.ConfigurationError when the URL or API key is empty.
func NewClient(cfg config.N8NConfig, opts ...Option) (*Client, error) {
	if err := cfg.RequireComplete(); err != nil {
		return nil, err
	}
	if err := config.ValidateBaseURL(cfg.URL); err != nil {
		return nil, fmt.Errorf("invalid n8n URL: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = config.DefaultTimeout
	}

	c := &Client{
		baseURL:   strings.TrimRight(cfg.URL, "/"),
		apiPath:   normalizeAPIPath(cfg.APIPath),
		apiKey:    cfg.APIKey,
		timeout:   timeout,
		userAgent: "n8n-mcp",
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{
			Timeout:   timeout,
			Transport: newLoggingTransport(c.transport),
		}
	}
	return c, nil
}

// BaseURL returns the instance URL with trailing slashes removed.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// APIPath returns the normalised API path prefix, e.g. "/api/v1".
func (c *Client) APIPath() string {
	return c.apiPath
}

func normalizeAPIPath(p string) string {
	p = strings.TrimSpace(p)
	if p == "" {
		p = config.DefaultAPIPath
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return strings.TrimRight(p, "/")
}

// endpoint joins the base URL, API prefix and escaped path segments.
func (c *Client) endpoint(segments ...string) string {
	var b strings.Builder
	b.WriteString(c.baseURL)
	b.WriteString(c.apiPath)
	for _, s := range segments {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(s))
	}
	return b.String()
}

// do performs one request against rawURL and returns the JSON response body untouched as a
// json.RawMessage, or nil for an empty body. body is marshalled as JSON when non-nil; query
// is appended only when it has entries.
func (c *Client) do(ctx context.Context, method, rawURL string, query url.Values, body any) (any, error) {
	target := rawURL
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request body for %s %s: %w", method, rawURL, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("building request %s %s: %w", method, rawURL, err)
	}
	req.Header.Set(apiKeyHeader, c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resourcePath := strings.TrimPrefix(rawURL, c.baseURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, &BackendError{Method: method, Path: resourcePath, Timeout: true, After: c.timeout, Err: err}
		}
		return nil, fmt.Errorf("n8n request %s %s failed: %w", method, resourcePath, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		if isTimeout(err) {
			return nil, &BackendError{Method: method, Path: resourcePath, Timeout: true, After: c.timeout, Err: err}
		}
		return nil, fmt.Errorf("reading n8n response for %s %s: %w", method, resourcePath, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &BackendError{
			StatusCode: resp.StatusCode,
			Body:       string(raw),
			Method:     method,
			Path:       resourcePath,
		}
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}

	if !json.Valid(raw) {
		return nil, fmt.Errorf("decoding n8n response for %s %s: invalid JSON", method, resourcePath)
	}
	logging.Debug("N8nClient", "%s %s succeeded with status %d", method, resourcePath, resp.StatusCode)
	return json.RawMessage(raw), nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
