// ABOUTME: Configuration options for the briefs library client
// ABOUTME: Provides functional options pattern for flexible client configuration

package briefs

import (
	"strings"
	"time"

	"newsbrief-api/core/domain"
	"newsbrief-api/core/interfaces"
)

// DefaultTimeout bounds a single feed download when no HTTP client is given
const DefaultTimeout = 15 * time.Second

// Config holds the configuration for the client
type Config struct {
	Sources    []domain.Source
	HTTPClient interfaces.HTTPClient
	Logger     interfaces.Logger
	Clock      func() time.Time
	Timeout    time.Duration
	MaxItems   int
}

func defaultConfig() Config {
	return Config{
		Timeout: DefaultTimeout,
		Clock:   time.Now,
	}
}

// Option is a functional option for configuring the client
type Option func(*Config) error

// WithSources adds named sources
func WithSources(sources ...domain.Source) Option {
	return func(c *Config) error {
		for _, s := range sources {
			if err := s.Validate(); err != nil {
				return invalidOption("source %q: %v", s.Label(), err)
			}
		}
		c.Sources = append(c.Sources, sources...)
		return nil
	}
}

// WithFeedURLs adds unnamed sources; they are labelled by host
func WithFeedURLs(urls ...string) Option {
	return func(c *Config) error {
		sources := make([]domain.Source, 0, len(urls))
		for _, u := range urls {
			sources = append(sources, domain.Source{URL: strings.TrimSpace(u)})
		}
		return WithSources(sources...)(c)
	}
}

// WithHTTPClient sets a custom HTTP client; WithTimeout is then ignored
func WithHTTPClient(client interfaces.HTTPClient) Option {
	return func(c *Config) error {
		if client == nil {
			return invalidOption("HTTP client cannot be nil")
		}
		c.HTTPClient = client
		return nil
	}
}

// WithLogger sets a custom logger
func WithLogger(logger interfaces.Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

// WithClock fixes "now" for minute offsets
func WithClock(now func() time.Time) Option {
	return func(c *Config) error {
		if now == nil {
			return invalidOption("clock cannot be nil")
		}
		c.Clock = now
		return nil
	}
}

// WithTimeout sets the per-feed download timeout of the default HTTP client
func WithTimeout(d time.Duration) Option {
	return func(c *Config) error {
		if d <= 0 {
			return invalidOption("timeout must be positive, got %s", d)
		}
		c.Timeout = d
		return nil
	}
}

// WithMaxItems caps articles per feed; 0 keeps all
func WithMaxItems(n int) Option {
	return func(c *Config) error {
		if n < 0 {
			return invalidOption("max items cannot be negative, got %d", n)
		}
		c.MaxItems = n
		return nil
	}
}
