package classifier

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/greenplate/greenplate/internal/llm"
	"github.com/greenplate/greenplate/internal/logger"
)

// Item is the terminal output unit of the pipeline: a menu line and a
// human-readable reason ending with a tag identifying which path
// produced it, "(Keywords)" or "(LLM)".
type Item struct {
	Description string `json:"item"`
	Reason      string `json:"reason"`
}

// ErrMalformedResponse indicates the backend returned content the
// line-based parser could not use.
var ErrMalformedResponse = errors.New("malformed response from language model")

// criteria describes each category for the instruction template.
var criteria = map[Category]string{
	CategoryVegan:         "only items that are 100% vegan (no animal products whatsoever - no meat, fish, dairy, eggs, honey, etc.)",
	CategoryVegetarian:    "only items that are vegetarian (no meat or fish/seafood, but dairy and eggs are allowed)",
	CategoryNonVegetarian: "only items that contain meat, fish, or seafood",
	CategoryAll:           "every food item, unfiltered",
}

// reasonTags label each parsed line with the requested category.
var reasonTags = map[Category]string{
	CategoryVegan:         "identified as vegan (LLM)",
	CategoryVegetarian:    "identified as vegetarian (LLM)",
	CategoryNonVegetarian: "identified as non-vegetarian (LLM)",
	CategoryAll:           "menu item (LLM)",
}

// buildPrompt creates the single instruction sent alongside the full
// menu text. The backend is instructed, not guaranteed, to emit one
// item per line; parseResponse tolerates deviation.
func buildPrompt(menuText string, category Category) string {
	var sb strings.Builder
	sb.WriteString("Analyze this restaurant menu text and extract ")
	sb.WriteString(criteria[category])
	sb.WriteString(".\n\nMenu text:\n")
	sb.WriteString(menuText)
	sb.WriteString("\n\nInstructions:\n")
	sb.WriteString("- Look for food items with prices (typically end with $X.XX)\n")
	sb.WriteString("- List one matching item per line, including its name, description and price\n")
	sb.WriteString("- Do not add headings, commentary, or explanations\n")
	sb.WriteString("- Be conservative: when in doubt, exclude the item\n")
	sb.WriteString("- If no items match, return nothing\n")
	return sb.String()
}

// classifyBulk sends the entire menu to the language model in one call
// and parses the freeform response. Any failure is returned to the
// engine, which degrades to the keyword path; nothing here is fatal.
func classifyBulk(ctx context.Context, provider llm.Provider, cfg Config, menuText string, category Category) ([]Item, error) {
	logger.Debug("bulk classification starting",
		"provider", provider.Name(),
		"model", cfg.Model,
		"category", category,
		"menu_size", len(menuText))

	resp, err := provider.Complete(ctx, llm.CompletionRequest{
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildPrompt(menuText, category)},
		},
		MaxTokens:   cfg.MaxTokens,
		Temperature: cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("completion failed: %w", err)
	}

	if strings.TrimSpace(resp.Content) == "" {
		return nil, ErrMalformedResponse
	}

	items := parseResponse(resp.Content, category)
	logger.Debug("bulk classification complete", "items", len(items))
	return items, nil
}

// bulletRunes is the set stripped from the front of each line: bullet
// markers, list numbering, and their trailing punctuation.
const bulletRunes = "*-•123456789. "

// parseResponse splits a freeform response into items, one per
// surviving line, in order of appearance. Headings (lines ending with
// a colon) and meta-commentary (lines opening with "here" or "note")
// are discarded rather than treated as failures: this is a best-effort
// plain-text contract, not a structured one.
func parseResponse(content string, category Category) []Item {
	items := []Item{}
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if utf8.RuneCountInString(line) < 5 {
			continue
		}
		if strings.HasSuffix(line, ":") {
			continue
		}
		lower := strings.ToLower(line)
		if strings.HasPrefix(lower, "here") || strings.HasPrefix(lower, "note") {
			continue
		}

		line = strings.TrimLeft(line, bulletRunes)
		if line == "" {
			continue
		}

		items = append(items, Item{
			Description: line,
			Reason:      reasonTags[category],
		})
	}
	return items
}
