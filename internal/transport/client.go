package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"motor_seeder/internal/logger"
	"motor_seeder/internal/metrics"

	"github.com/google/uuid"
)

// Header names set on every request.
const (
	headerContentType   = "Content-Type"
	headerAuthorization = "Authorization"
	headerRequestID     = "X-Request-ID"

	contentTypeJSON = "application/json"
	bearerPrefix    = "Bearer "
)

// Doer is the subset of *http.Client used by the adapter.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client issues JSON requests against a base URL. It never retries and never caches.
type Client struct {
	baseURL string
	http    Doer
	log     *logger.Logger
	metrics *metrics.Recorder
}

// Option customizes a Client.
type Option func(*Client)

// WithDoer replaces the HTTP client, e.g. with a mock transport in tests.
func WithDoer(d Doer) Option {
	return func(c *Client) { c.http = d }
}

// WithTimeout sets a client-side timeout. Zero keeps the I/O layer default.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http = &http.Client{Timeout: d}
		}
	}
}

// WithLogger sets the request logger.
func WithLogger(l *logger.Logger) Option {
	return func(c *Client) { c.log = l }
}

// WithMetrics sets the request recorder.
func WithMetrics(m *metrics.Recorder) Option {
	return func(c *Client) { c.metrics = m }
}

// NewClient constructs a client for baseURL.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, errors.New("transport: empty base url")
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		log:     logger.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		c.log = logger.Nop()
	}
	return c, nil
}

// Request sends method path with an optional JSON body and bearer credential.
// The error is non-nil only for transport-level failures; HTTP error statuses
// come back as a KindErrorText result.
func (c *Client) Request(ctx context.Context, method, path string, body any, credential string) (Result, error) {
	var reqBody io.Reader = http.NoBody
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return Result{}, fmt.Errorf("transport: marshal %s %s: %w", method, path, err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return Result{}, fmt.Errorf("transport: build %s %s: %w", method, path, err)
	}
	requestID := uuid.NewString()
	req.Header.Set(headerContentType, contentTypeJSON)
	req.Header.Set(headerRequestID, requestID)
	if credential != "" {
		req.Header.Set(headerAuthorization, bearerPrefix+credential)
	}

	started := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.metrics.ObserveRequest(method, 0, time.Since(started))
		c.log.Debugw("api_request_failed", "method", method, "path", path, "request_id", requestID, "err", err)
		return Result{}, fmt.Errorf("transport: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	c.metrics.ObserveRequest(method, resp.StatusCode, time.Since(started))
	if err != nil {
		return Result{Status: resp.StatusCode}, fmt.Errorf("transport: read %s %s: %w", method, path, err)
	}

	res, err := normalize(resp.StatusCode, raw)
	if err != nil {
		return res, fmt.Errorf("transport: %s %s: %w", method, path, err)
	}
	c.log.Debugw("api_request",
		"method", method,
		"path", path,
		"status", res.Status,
		"kind", res.Kind.String(),
		"request_id", requestID,
	)
	return res, nil
}
