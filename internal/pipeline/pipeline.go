// Package pipeline composes acquisition and classification into the
// two entry points the presentation layer calls: filter pasted text,
// or fetch a URL and filter the extracted page.
package pipeline

import (
	"context"
	"errors"
	"strings"

	"github.com/greenplate/greenplate/internal/classifier"
	"github.com/greenplate/greenplate/internal/logger"
	"github.com/greenplate/greenplate/internal/scraper"
)

// Empty-input errors, surfaced before any network or classification
// work begins.
var (
	ErrEmptyURL  = errors.New("Please enter a URL")
	ErrEmptyText = errors.New("Please enter menu text")
)

// Service wires a classification engine to a page fetcher.
type Service struct {
	engine  *classifier.Engine
	fetcher scraper.Fetcher
}

// New creates a pipeline service.
func New(engine *classifier.Engine, fetcher scraper.Fetcher) *Service {
	return &Service{engine: engine, fetcher: fetcher}
}

// FilterText classifies pasted menu text. Blank input is rejected up
// front; classification itself cannot fail.
func (s *Service) FilterText(ctx context.Context, text string, category classifier.Category) ([]classifier.Item, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyText
	}
	return s.engine.Filter(ctx, text, category), nil
}

// FilterURL fetches a page, reduces it to menu text, and classifies
// it. Acquisition failures are returned verbatim; classification is
// never attempted on a failed acquisition.
func (s *Service) FilterURL(ctx context.Context, url string, category classifier.Category) ([]classifier.Item, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return nil, ErrEmptyURL
	}

	content, err := s.fetcher.Fetch(ctx, url, scraper.FetchOptions{})
	if err != nil {
		logger.Warn("acquisition failed", "url", url, "error", err)
		return nil, err
	}

	menuText, err := scraper.ExtractMenuText(content)
	if err != nil {
		logger.Warn("no menu text extracted", "url", url, "error", err)
		return nil, err
	}

	logger.Debug("menu text acquired", "url", url, "size", len(menuText))
	return s.engine.Filter(ctx, menuText, category), nil
}
