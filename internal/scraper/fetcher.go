// Package scraper handles menu page fetching and text extraction.
package scraper

import (
	"context"
	"fmt"
	"time"
)

// PageContent represents fetched page data.
type PageContent struct {
	URL         string
	HTML        string
	Text        string // Extracted plain text, line structure preserved
	Title       string
	StatusCode  int
	ContentType string
	FetchedAt   time.Time
}

// FetchOptions controls fetching behavior.
type FetchOptions struct {
	UserAgent    string
	Timeout      time.Duration
	WaitDuration time.Duration // Additional wait after load (dynamic only)
	Headers      map[string]string
}

// Fetcher abstracts page fetching strategies.
type Fetcher interface {
	// Fetch retrieves page content from a URL.
	Fetch(ctx context.Context, url string, opts FetchOptions) (PageContent, error)

	// Close releases any resources (browser instances, etc.).
	Close() error

	// Type returns "static", "dynamic" or "auto".
	Type() string
}

// FetcherConfig holds common fetcher configuration.
type FetcherConfig struct {
	UserAgent string
	Timeout   time.Duration
}

// DefaultFetcherConfig returns sensible defaults. The user agent
// mimics a desktop browser: menu pages are frequently behind naive
// bot filters.
func DefaultFetcherConfig() FetcherConfig {
	return FetcherConfig{
		UserAgent: "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36",
		Timeout:   15 * time.Second,
	}
}

// ErrorKind categorizes acquisition failures.
type ErrorKind string

const (
	ErrorNetwork ErrorKind = "network"
	ErrorStatus  ErrorKind = "status"
	ErrorEmpty   ErrorKind = "empty"
)

// AcquisitionError is surfaced verbatim to the caller; classification
// is never attempted on a failed acquisition.
type AcquisitionError struct {
	Kind ErrorKind
	URL  string
	Err  error
}

func (e *AcquisitionError) Error() string {
	switch e.Kind {
	case ErrorNetwork:
		return fmt.Sprintf("Error fetching menu: Network error - %v", e.Err)
	case ErrorStatus:
		return fmt.Sprintf("Error fetching menu: %v", e.Err)
	default:
		return "Error fetching menu: page contained no readable text"
	}
}

func (e *AcquisitionError) Unwrap() error {
	return e.Err
}
