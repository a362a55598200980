package ragflow

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
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/oauth2"

	"github.com/trafflux/ragflow-mcp-go/internal/core/domain"
	"github.com/trafflux/ragflow-mcp-go/internal/core/ports/driven"
)

// Ensure Client implements the backend port.
var _ driven.Backend = (*Client)(nil)

// Client is the pooled HTTP client for a RAGFlow backend.
// The zero value is not usable; construct with NewClient.
type Client struct {
	cfg         Config
	apiURL      string
	rateLimiter *RateLimiter
	logger      *zap.Logger

	mu     sync.Mutex
	httpc  *http.Client
	pool   *http.Transport
	closed bool
}

// NewClient creates a RAGFlow client from cfg. It validates the
// configuration but opens no connections; the pool is built on first use.
func NewClient(cfg Config) (*Client, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	c := &Client{
		cfg:         cfg,
		apiURL:      cfg.BaseURL + apiPrefix,
		rateLimiter: NewRateLimiter(cfg.RateLimitRPS),
		logger:      cfg.Logger,
	}
	c.logger.Debug("ragflow client created", zap.String("base_url", cfg.BaseURL))
	return c, nil
}

// BaseURL returns the configured backend address.
func (c *Client) BaseURL() string {
	return c.cfg.BaseURL
}

// ensureClient initialises the pooled HTTP client if not already done.
// This is called lazily so constructing a Client stays free of I/O.
func (c *Client) ensureClient() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return domain.ErrClientClosed
	}
	if c.httpc != nil {
		return nil
	}

	dialer := &net.Dialer{
		Timeout:   c.cfg.ConnectTimeout,
		KeepAlive: 30 * time.Second,
	}
	c.pool = &http.Transport{
		DialContext:         dialer.DialContext,
		MaxIdleConns:        c.cfg.MaxConns,
		MaxConnsPerHost:     c.cfg.MaxConnsPerHost,
		MaxIdleConnsPerHost: c.cfg.MaxConnsPerHost,
		IdleConnTimeout:     c.cfg.IdleConnTimeout,
	}

	ts := oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: c.cfg.APIKey,
		TokenType:   "Bearer",
	})
	c.httpc = &http.Client{
		Transport: &oauth2.Transport{Source: ts, Base: c.pool},
		Timeout:   c.cfg.Timeout,
	}

	c.logger.Info("ragflow connection pool initialized",
		zap.Int("max_conns", c.cfg.MaxConns),
		zap.Int("max_conns_per_host", c.cfg.MaxConnsPerHost))
	return nil
}

// client returns the pooled HTTP client, initialising it if needed.
func (c *Client) client() (*http.Client, error) {
	if err := c.ensureClient(); err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil, domain.ErrClientClosed
	}
	return c.httpc, nil
}

// request performs one authenticated call and returns the raw JSON body.
// 2xx responses with non-JSON bodies are wrapped as {"data": <text>}.
// It never retries.
func (c *Client) request(ctx context.Context, method, path string, query url.Values, body any) (json.RawMessage, error) {
	httpc, err := c.client()
	if err != nil {
		return nil, err
	}

	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	endpoint := c.apiURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader = http.NoBody
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		reader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := httpc.Do(req)
	if err != nil {
		return nil, c.wrapTransportError(err)
	}
	defer resp.Body.Close()

	c.rateLimiter.UpdateFromResponse(resp)

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, c.wrapTransportError(err)
	}

	c.logger.Debug("ragflow request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)))

	if resp.StatusCode == http.StatusNoContent {
		return json.RawMessage("{}"), nil
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.logger.Warn("ragflow error response",
			zap.String("path", path),
			zap.Int("status", resp.StatusCode))
		return nil, &domain.BackendError{
			Status:  resp.StatusCode,
			Message: envelopeMessage(data),
			Body:    truncateBody(data),
		}
	}

	if !json.Valid(data) {
		c.logger.Warn("non-JSON response from backend", zap.String("path", path))
		wrapped, err := json.Marshal(map[string]string{"data": string(data)})
		if err != nil {
			return nil, fmt.Errorf("wrap non-JSON response: %w", err)
		}
		return wrapped, nil
	}

	return data, nil
}

// envelope is the wrapper every RAGFlow response carries.
type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// call performs a request and unwraps the response envelope into out.
// A non-zero envelope code becomes a domain.BackendError even when the
// HTTP status was 200.
func (c *Client) call(ctx context.Context, method, path string, query url.Values, body, out any) error {
	raw, err := c.request(ctx, method, path, query, body)
	if err != nil {
		return err
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("decode envelope: %w", err)
	}
	if env.Code != 0 {
		return &domain.BackendError{
			Status:  http.StatusOK,
			Message: env.Message,
			Body:    truncateBody(raw),
		}
	}

	if out == nil || len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("decode response data: %w", err)
	}
	return nil
}

// wrapTransportError classifies failures to reach the backend.
// Caller cancellation passes through untouched; everything else is a
// transient unavailability.
func (c *Client) wrapTransportError(err error) error {
	if errors.Is(err, context.Canceled) {
		return err
	}
	return &domain.BackendUnavailableError{URL: c.cfg.BaseURL, Err: err}
}

// Close releases pooled connections. It is safe to call more than once;
// requests after Close fail with domain.ErrClientClosed.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true

	if c.pool != nil {
		c.pool.CloseIdleConnections()
	}
	c.httpc = nil
	c.pool = nil

	c.logger.Info("ragflow connection pool closed")
	return nil
}
