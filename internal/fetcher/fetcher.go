// Package fetcher handles web page fetching for contact discovery.
package fetcher

import (
	"context"
	"fmt"
	"time"
)

// PageContent represents fetched page data.
type PageContent struct {
	URL         string // requested URL
	FinalURL    string // URL after redirects
	HTML        string
	Title       string
	StatusCode  int
	ContentType string
	FetchedAt   time.Time
}

// Config holds common fetcher configuration.
type Config struct {
	UserAgent   string
	Timeout     time.Duration
	MaxBodySize int           // response body cap in bytes (static only)
	Settle      time.Duration // extra wait for late-rendered content (dynamic only)
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		UserAgent:   "mailprobe/1.0 (+https://github.com/mailprobe/mailprobe)",
		Timeout:     30 * time.Second,
		MaxBodySize: 5 * 1024 * 1024,
		Settle:      2 * time.Second,
	}
}

// Fetcher abstracts page fetching strategies.
type Fetcher interface {
	// Fetch retrieves page content from a URL.
	Fetch(ctx context.Context, url string) (PageContent, error)

	// Close releases any resources (browser instances, etc.).
	Close() error

	// Type returns "static", "dynamic", or "auto".
	Type() string
}

// Mode determines how pages are fetched.
type Mode string

const (
	ModeAuto    Mode = "auto"
	ModeStatic  Mode = "static"
	ModeDynamic Mode = "dynamic"
)

// New creates an appropriate fetcher based on mode.
func New(mode Mode, cfg Config) (Fetcher, error) {
	switch mode {
	case ModeStatic:
		return NewStaticFetcher(cfg), nil
	case ModeDynamic:
		return NewDynamicFetcher(cfg)
	case ModeAuto:
		return NewAutoFetcher(cfg)
	default:
		return nil, fmt.Errorf("unknown fetch mode: %s", mode)
	}
}
