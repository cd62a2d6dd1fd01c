package scraper

import (
	"context"
	"fmt"
	"strings"
)

// FetchMode determines how pages are fetched.
type FetchMode string

const (
	FetchModeAuto    FetchMode = "auto"
	FetchModeStatic  FetchMode = "static"
	FetchModeDynamic FetchMode = "dynamic"
)

// NewFetcher creates an appropriate fetcher based on mode.
func NewFetcher(mode FetchMode, cfg FetcherConfig) (Fetcher, error) {
	switch mode {
	case FetchModeStatic:
		return NewStaticFetcher(cfg), nil
	case FetchModeDynamic:
		return NewDynamicFetcher(cfg)
	case FetchModeAuto:
		return NewAutoFetcher(cfg)
	default:
		return nil, fmt.Errorf("unknown fetch mode: %s", mode)
	}
}

// AutoFetcher tries a static fetch first and retries with a headless
// browser when the page looks JavaScript-rendered. Many restaurant
// sites serve their menu through an embedded SPA widget.
type AutoFetcher struct {
	static  *StaticFetcher
	dynamic *DynamicFetcher
}

// NewAutoFetcher creates a fetcher that auto-detects JS requirements.
func NewAutoFetcher(cfg FetcherConfig) (*AutoFetcher, error) {
	dynamic, err := NewDynamicFetcher(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create dynamic fetcher: %w", err)
	}

	return &AutoFetcher{
		static:  NewStaticFetcher(cfg),
		dynamic: dynamic,
	}, nil
}

// Fetch tries static first, then falls back to dynamic if needed.
func (f *AutoFetcher) Fetch(ctx context.Context, url string, opts FetchOptions) (PageContent, error) {
	content, err := f.static.Fetch(ctx, url, opts)
	if err != nil {
		return f.dynamic.Fetch(ctx, url, opts)
	}

	if needsJavaScript(content) {
		return f.dynamic.Fetch(ctx, url, opts)
	}

	return content, nil
}

// spaMarkers identify pages whose body is rendered client-side.
var spaMarkers = []string{
	`<div id="root"></div>`,   // React
	`<div id="app"></div>`,    // Vue
	`<app-root></app-root>`,   // Angular
	`<div id="__next"></div>`, // Next.js
	`<div id="__nuxt"></div>`, // Nuxt.js
	`<div data-reactroot`,     // React
	"v-cloak",                 // Vue
}

// needsJavaScript checks if a page appears to require JS rendering.
func needsJavaScript(content PageContent) bool {
	html := strings.ToLower(content.HTML)

	for _, marker := range spaMarkers {
		if strings.Contains(html, marker) {
			return true
		}
	}

	// A near-empty body with a loading hint suggests an SPA shell.
	if len(strings.TrimSpace(content.Text)) < 100 {
		text := strings.ToLower(content.Text)
		for _, indicator := range []string{"loading", "please wait", "javascript required", "enable javascript"} {
			if strings.Contains(text, indicator) {
				return true
			}
		}
	}

	return false
}

// Close releases all fetcher resources.
func (f *AutoFetcher) Close() error {
	if f.dynamic != nil {
		return f.dynamic.Close()
	}
	return nil
}

// Type returns the fetcher type.
func (f *AutoFetcher) Type() string {
	return "auto"
}
