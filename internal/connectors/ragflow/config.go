package ragflow

import (
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/trafflux/ragflow-mcp-go/internal/core/domain"
)

// Default connection parameters.
const (
	// DefaultTimeout bounds a full request, headers to body.
	DefaultTimeout = 30 * time.Second

	// DefaultConnectTimeout bounds dialing alone, so an unreachable
	// backend fails fast instead of consuming the full request budget.
	DefaultConnectTimeout = 10 * time.Second

	// DefaultMaxConns caps open connections across all hosts.
	DefaultMaxConns = 100

	// DefaultMaxConnsPerHost caps open connections to a single host.
	DefaultMaxConnsPerHost = 10

	// DefaultIdleConnTimeout is how long idle pooled connections are kept.
	DefaultIdleConnTimeout = 300 * time.Second

	// DefaultRateLimitRPS is the proactive request throttle.
	DefaultRateLimitRPS = 10
)

// apiPrefix is prepended to every endpoint path.
const apiPrefix = "/api/v1"

// Config holds the connection parameters for a RAGFlow backend.
type Config struct {
	// BaseURL is the backend address without the API prefix,
	// e.g. http://ragflow:9380. Required.
	BaseURL string

	// APIKey is the bearer credential. Required.
	APIKey string

	// Timeout bounds each request (default: 30s).
	Timeout time.Duration

	// ConnectTimeout bounds dialing (default: 10s).
	ConnectTimeout time.Duration

	// MaxConns caps total pooled connections (default: 100).
	MaxConns int

	// MaxConnsPerHost caps connections per host (default: 10).
	MaxConnsPerHost int

	// IdleConnTimeout is the idle connection lifetime (default: 300s).
	IdleConnTimeout time.Duration

	// RateLimitRPS throttles outbound requests per second
	// (default: 10, negative disables throttling).
	RateLimitRPS float64

	// Logger receives connection and request events. Optional.
	Logger *zap.Logger
}

// validate checks required fields and normalises the base URL.
func (c *Config) validate() error {
	if strings.TrimSpace(c.BaseURL) == "" {
		return domain.ErrMissingBaseURL
	}
	if strings.TrimSpace(c.APIKey) == "" {
		return domain.ErrMissingAPIKey
	}
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	return nil
}

// applyDefaults fills zero values with the package defaults.
func (c *Config) applyDefaults() {
	if c.Timeout == 0 {
		c.Timeout = DefaultTimeout
	}
	if c.ConnectTimeout == 0 {
		c.ConnectTimeout = DefaultConnectTimeout
	}
	if c.MaxConns == 0 {
		c.MaxConns = DefaultMaxConns
	}
	if c.MaxConnsPerHost == 0 {
		c.MaxConnsPerHost = DefaultMaxConnsPerHost
	}
	if c.IdleConnTimeout == 0 {
		c.IdleConnTimeout = DefaultIdleConnTimeout
	}
	if c.RateLimitRPS == 0 {
		c.RateLimitRPS = DefaultRateLimitRPS
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
}
