// ABOUTME: Configuration management for the application with environment variable support
// ABOUTME: Defines server, feed, rate limit, and logging settings plus the YAML sources file

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"newsbrief-api/core/domain"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig

	// Feeds contains the configured sources and fetch limits
	Feeds FeedsConfig

	// RateLimit contains per-client request limits
	RateLimit RateLimitConfig

	// Log contains logger configuration
	Log LogConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// StaticDir is served at / when it exists
	StaticDir string

	// AllowedOrigins is the CORS allow list; "*" allows any origin
	AllowedOrigins []string
}

// FeedsConfig holds feed sources and fetch settings
type FeedsConfig struct {
	// File is an optional YAML file listing sources
	File string

	// Sources are the merged sources from File and FEED_URLS
	Sources []domain.Source

	// FetchTimeout bounds a single feed download
	FetchTimeout time.Duration

	// MaxItems caps articles per feed
	MaxItems int
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	// Limit is the number of requests allowed per Window
	Limit int

	Window time.Duration
}

// LogConfig holds logger configuration
type LogConfig struct {
	Backend string
	Level   string
	File    string
}

// sourcesFile is the YAML layout of FEEDS_FILE
type sourcesFile struct {
	Sources []domain.Source `yaml:"sources"`
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:           getEnvOrDefault("PORT", "8000"),
			StaticDir:      getEnvOrDefault("STATIC_DIR", "public"),
			AllowedOrigins: splitList(getEnvOrDefault("CORS_ALLOWED_ORIGINS", "*")),
		},
		Feeds: FeedsConfig{
			File:         os.Getenv("FEEDS_FILE"),
			FetchTimeout: time.Duration(getEnvAsIntOrDefault("FETCH_TIMEOUT_SECONDS", 15)) * time.Second,
			MaxItems:     getEnvAsIntOrDefault("MAX_ITEMS", 50),
		},
		RateLimit: RateLimitConfig{
			Limit:  getEnvAsIntOrDefault("RATE_LIMIT", 100),
			Window: time.Duration(getEnvAsIntOrDefault("RATE_WINDOW_SECONDS", 60)) * time.Second,
		},
		Log: LogConfig{
			Backend: strings.ToLower(getEnvOrDefault("LOG_BACKEND", "logrus")),
			Level:   getEnvOrDefault("LOG_LEVEL", "info"),
			File:    os.Getenv("LOG_FILE"),
		},
	}

	var sources []domain.Source
	if cfg.Feeds.File != "" {
		fromFile, err := LoadSourcesFile(cfg.Feeds.File)
		if err != nil {
			return nil, err
		}
		sources = append(sources, fromFile...)
	}
	for _, u := range splitList(os.Getenv("FEED_URLS")) {
		sources = append(sources, domain.Source{URL: u})
	}
	cfg.Feeds.Sources = dedupeSources(sources)

	return cfg, nil
}

// LoadSourcesFile reads a YAML document of the form
//
//	sources:
//	  - name: lemonde
//	    url: https://www.lemonde.fr/rss/une.xml
func LoadSourcesFile(path string) ([]domain.Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading feeds file: %w", err)
	}

	var doc sourcesFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing feeds file %s: %w", path, err)
	}

	for i := range doc.Sources {
		doc.Sources[i].Name = strings.TrimSpace(doc.Sources[i].Name)
		doc.Sources[i].URL = strings.TrimSpace(doc.Sources[i].URL)
	}
	return doc.Sources, nil
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// dedupeSources keeps the first occurrence of each URL
func dedupeSources(sources []domain.Source) []domain.Source {
	seen := make(map[string]bool, len(sources))
	out := make([]domain.Source, 0, len(sources))
	for _, s := range sources {
		if seen[s.URL] {
			continue
		}
		seen[s.URL] = true
		out = append(out, s)
	}
	return out
}

// Source returns the configured source whose label matches name
func (c *Config) Source(name string) (domain.Source, bool) {
	return domain.Sources(c.Feeds.Sources).Lookup(name)
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if _, err := strconv.Atoi(c.Server.Port); err != nil {
		return fmt.Errorf("port must be numeric, got %q", c.Server.Port)
	}

	if c.Feeds.FetchTimeout < time.Second {
		return errors.New("fetch timeout must be at least 1 second")
	}

	if c.Feeds.MaxItems < 0 {
		return errors.New("max items cannot be negative")
	}

	if c.RateLimit.Limit < 1 {
		return errors.New("rate limit must be at least 1 request")
	}

	if c.RateLimit.Window < time.Second {
		return errors.New("rate window must be at least 1 second")
	}

	if backend := strings.ToLower(c.Log.Backend); backend != "logrus" && backend != "zap" {
		return errors.New("log backend must be 'logrus' or 'zap'")
	}

	for _, s := range c.Feeds.Sources {
		if err := s.Validate(); err != nil {
			return fmt.Errorf("source %q: %w", s.Label(), err)
		}
	}

	return nil
}
