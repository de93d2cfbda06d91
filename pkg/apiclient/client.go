package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vantrang/shopkit/pkg/cache"
	"github.com/vantrang/shopkit/pkg/logger"
)

// Client is a typed client for the remote shop API.
// Zero value is not usable; use New to create instances.
type Client struct {
	baseURL string
	// httpClient is reused across requests for connection pooling
	httpClient *http.Client
	log        *slog.Logger
	// products holds recently fetched catalog entries; nil when caching is
	// disabled. Admin mutations invalidate affected ids.
	products *cache.LRUCache[int64, Product]
}

// Option configures the Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client, e.g. for custom
// transports or testing.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		if c != nil {
			cl.httpClient = c
		}
	}
}

// WithTimeout sets the per-request timeout on the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(cl *Client) {
		if d > 0 {
			cl.httpClient.Timeout = d
		}
	}
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(log *slog.Logger) Option {
	return func(cl *Client) {
		if log != nil {
			cl.log = log
		}
	}
}

// WithProductCache enables an in-memory LRU cache of the given capacity for
// product reads. GetProduct serves cache hits without a network round trip;
// ListProducts refreshes cached entries; admin mutations invalidate them.
func WithProductCache(capacity int) Option {
	return func(cl *Client) {
		cl.products = cache.NewLRUCache[int64, Product](capacity)
	}
}

// New creates a client for the API rooted at baseURL (including the version
// prefix, e.g. "https://shop.example.com/v1").
func New(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimRight(baseURL, "/")
	if baseURL == "" {
		return nil, errors.New("apiclient: base URL is required")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("apiclient: invalid base URL: %w", err)
	}

	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		log: slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt)})),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// validatable payloads are checked right after decoding so malformed data is
// classified at the boundary instead of leaking into in-memory state.
type validatable interface {
	validate() error
}

// do executes one API call: marshals body (if any), sets the standard
// headers, maps transport and HTTP failures to the package error taxonomy
// and decodes the response into out when out is non-nil.
func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("apiclient: marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("apiclient: build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.WarnContext(ctx, "api request failed",
			slog.String("method", method),
			slog.String("path", path),
			logger.Error(err),
		)
		return errors.Join(ErrUnreachable, err)
	}
	defer resp.Body.Close()

	c.log.DebugContext(ctx, "api request",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)),
	)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return decodeAPIError(resp)
	}

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Join(ErrInvalidPayload, err)
	}

	if v, ok := out.(validatable); ok {
		if err := v.validate(); err != nil {
			return errors.Join(ErrInvalidPayload, err)
		}
	}

	return nil
}

// decodeAPIError extracts a best-effort message from an error response body.
// Product endpoints answer {"error": ...}, user endpoints {"message": ...}.
func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{Status: resp.StatusCode}

	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, 64<<10)).Decode(&body); err == nil {
		if body.Message != "" {
			apiErr.Message = body.Message
		} else if body.Error != "" {
			apiErr.Message = body.Error
		}
	}

	return apiErr
}
