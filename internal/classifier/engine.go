package classifier

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/greenplate/greenplate/internal/llm"
	"github.com/greenplate/greenplate/internal/logger"
)

// Config holds the engine's injected configuration. It is passed in at
// construction rather than read from ambient state so both paths can be
// tested deterministically.
type Config struct {
	Enabled     bool   // use the language-model path when possible
	Model       string // informational; the provider owns the default
	Temperature float64       `validate:"gte=0,lte=2"`
	MaxTokens   int           `validate:"gte=0"`
	Timeout     time.Duration `validate:"gte=0"`
}

// DefaultConfig returns sensible defaults matching the keyless case.
func DefaultConfig() Config {
	return Config{
		Enabled:     false,
		Temperature: 0.1,
		MaxTokens:   1000,
		Timeout:     30 * time.Second,
	}
}

var validate = validator.New()

// Engine is the fallback orchestrator: the single public entry point
// for classification. It decides per call whether to use the
// language-model path or the keyword path, and guarantees the former
// degrades to the latter on any failure.
type Engine struct {
	cfg      Config
	provider llm.Provider
}

// NewEngine creates an engine. The provider may be nil (no credential,
// or construction failed); the engine then always takes the keyword
// path.
func NewEngine(cfg Config, provider llm.Provider) (*Engine, error) {
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid engine config: %w", err)
	}
	return &Engine{cfg: cfg, provider: provider}, nil
}

// Filter classifies menu text for a category. It always terminates
// with a (possibly empty) slice; failures on the language-model path
// are absorbed by a one-shot fallback to the keyword path, which is
// total and cannot fail.
func (e *Engine) Filter(ctx context.Context, menuText string, category Category) []Item {
	logger.Debug("filter starting",
		"category", category,
		"menu_size", len(menuText),
		"llm_enabled", e.cfg.Enabled)

	// "Disabled" and "no provider" are distinct transitions into the
	// same terminal behavior; observability wants them apart.
	if !e.cfg.Enabled {
		logger.Debug("language-model path disabled, using keywords")
		return e.filterKeywords(menuText, category)
	}
	if e.provider == nil {
		logger.Warn("no language-model provider available, using keywords")
		return e.filterKeywords(menuText, category)
	}

	if e.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.cfg.Timeout)
		defer cancel()
	}

	items, err := classifyBulk(ctx, e.provider, e.cfg, menuText, category)
	if err != nil {
		logger.Warn("language-model classification failed, falling back to keywords",
			"provider", e.provider.Name(),
			"error", err)
		return e.filterKeywords(menuText, category)
	}

	logger.Info("classification complete",
		"path", "llm",
		"category", category,
		"items", len(items))
	return items
}

// filterKeywords is the deterministic path: segment into price-anchored
// lines, classify each against the keyword ladder, apply the category
// predicate. Pure over its inputs.
func (e *Engine) filterKeywords(menuText string, category Category) []Item {
	items := []Item{}
	for _, line := range Segment(menuText) {
		verdict := ClassifyItem(line)
		if !category.Matches(verdict) {
			continue
		}
		items = append(items, Item{
			Description: line,
			Reason:      verdict.Reason + " (Keywords)",
		})
	}

	logger.Info("classification complete",
		"path", "keywords",
		"category", category,
		"items", len(items))
	return items
}
