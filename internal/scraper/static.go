package scraper

import (
	"context"
	"fmt"
	"time"

	"github.com/gocolly/colly/v2"

	"github.com/greenplate/greenplate/internal/logger"
)

// defaultHeaders make requests look like an ordinary browser session.
var defaultHeaders = map[string]string{
	"Accept":                    "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8",
	"Accept-Language":           "en-US,en;q=0.5",
	"Connection":                "keep-alive",
	"Upgrade-Insecure-Requests": "1",
}

// StaticFetcher uses Colly for static HTML fetching.
type StaticFetcher struct {
	config FetcherConfig
}

// NewStaticFetcher creates a new static fetcher.
func NewStaticFetcher(cfg FetcherConfig) *StaticFetcher {
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultFetcherConfig().UserAgent
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultFetcherConfig().Timeout
	}
	return &StaticFetcher{config: cfg}
}

// Fetch retrieves page content using Colly.
func (f *StaticFetcher) Fetch(ctx context.Context, targetURL string, opts FetchOptions) (PageContent, error) {
	logger.Debug("static fetch starting", "url", targetURL)

	result := PageContent{
		URL:       targetURL,
		FetchedAt: time.Now(),
	}

	// A new collector per request: no shared state between fetches.
	c := colly.NewCollector(
		colly.UserAgent(coalesce(opts.UserAgent, f.config.UserAgent)),
	)

	timeout := opts.Timeout
	if timeout == 0 {
		timeout = f.config.Timeout
	}
	c.SetRequestTimeout(timeout)

	c.OnRequest(func(r *colly.Request) {
		for k, v := range defaultHeaders {
			r.Headers.Set(k, v)
		}
		for k, v := range opts.Headers {
			r.Headers.Set(k, v)
		}
	})

	var fetchErr error

	c.OnResponse(func(r *colly.Response) {
		result.StatusCode = r.StatusCode
		result.ContentType = r.Headers.Get("Content-Type")
		result.HTML = string(r.Body)
	})

	c.OnError(func(r *colly.Response, err error) {
		kind := ErrorNetwork
		if r != nil && r.StatusCode > 0 {
			result.StatusCode = r.StatusCode
			kind = ErrorStatus
			err = fmt.Errorf("server returned status %d", r.StatusCode)
		}
		fetchErr = &AcquisitionError{Kind: kind, URL: targetURL, Err: err}
	})

	if err := c.Visit(targetURL); err != nil {
		if fetchErr != nil {
			return result, fetchErr
		}
		return result, &AcquisitionError{Kind: ErrorNetwork, URL: targetURL, Err: err}
	}

	if fetchErr != nil {
		return result, fetchErr
	}

	if err := parseContent(&result); err != nil {
		return result, &AcquisitionError{Kind: ErrorNetwork, URL: targetURL, Err: err}
	}

	logger.Debug("static fetch complete",
		"url", targetURL,
		"status", result.StatusCode,
		"text_size", len(result.Text))
	return result, nil
}

// Close releases resources.
func (f *StaticFetcher) Close() error {
	return nil
}

// Type returns the fetcher type.
func (f *StaticFetcher) Type() string {
	return "static"
}

// coalesce returns the first non-empty string.
func coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
