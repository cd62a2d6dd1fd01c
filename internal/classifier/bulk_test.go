package classifier

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/greenplate/greenplate/internal/llm"
)

// fakeProvider returns a canned response or error.
type fakeProvider struct {
	content string
	err     error
	lastReq llm.CompletionRequest
}

func (p *fakeProvider) Complete(_ context.Context, req llm.CompletionRequest) (llm.CompletionResponse, error) {
	p.lastReq = req
	if p.err != nil {
		return llm.CompletionResponse{}, p.err
	}
	return llm.CompletionResponse{Content: p.content, FinishReason: "stop"}, nil
}

func (p *fakeProvider) Name() string { return "fake" }

// --- parseResponse tests ---

func TestParseResponse_StripsHeadingsAndNumbering(t *testing.T) {
	content := "Here are the vegan items:\n" +
		"1. Vegan burger - $5.99\n" +
		"2. Tofu stir-fry - $11.00\n"

	items := parseResponse(content, CategoryVegan)

	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d: %v", len(items), items)
	}
	if items[0].Description != "Vegan burger - $5.99" {
		t.Errorf("item 0 = %q, want numbering stripped", items[0].Description)
	}
	if items[1].Description != "Tofu stir-fry - $11.00" {
		t.Errorf("item 1 = %q, want numbering stripped", items[1].Description)
	}
}

func TestParseResponse_DiscardHeuristics(t *testing.T) {
	tests := []struct {
		name string
		line string
		keep bool
	}{
		{"empty", "", false},
		{"shorter_than_5", "Tofu", false},
		// 5 bytes but 4 characters: the floor counts characters.
		{"accented_4_runes", "Tofù", false},
		{"accented_5_runes", "Crêpe", true},
		{"heading_ends_with_colon", "Vegan options available:", false},
		{"meta_here", "here is the list you asked for", false},
		{"meta_Here_case_insensitive", "HERE ARE THE RESULTS of the scan", false},
		{"meta_note", "Note that prices may vary by location", false},
		{"plain_item", "Garden salad $9.00", true},
		{"bulleted_item", "* Garden salad $9.00", true},
		{"dash_item", "- Garden salad $9.00", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := parseResponse(tt.line, CategoryAll)
			if kept := len(items) == 1; kept != tt.keep {
				t.Errorf("parseResponse(%q) kept=%v, want %v", tt.line, kept, tt.keep)
			}
		})
	}
}

func TestParseResponse_OrderPreserved(t *testing.T) {
	content := "Zucchini fries $6.00\nApple crumble $7.00\nMushroom tacos $10.00"
	items := parseResponse(content, CategoryVegan)

	want := []string{"Zucchini fries $6.00", "Apple crumble $7.00", "Mushroom tacos $10.00"}
	if len(items) != len(want) {
		t.Fatalf("expected %d items, got %d", len(want), len(items))
	}
	for i, w := range want {
		if items[i].Description != w {
			t.Errorf("item %d = %q, want %q (order must match response)", i, items[i].Description, w)
		}
	}
}

func TestParseResponse_ReasonTaggedWithSourceAndCategory(t *testing.T) {
	items := parseResponse("Vegan burger $5.99", CategoryVegan)
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}

	reason := items[0].Reason
	if !strings.HasSuffix(reason, "(LLM)") {
		t.Errorf("reason %q should end with the (LLM) source tag", reason)
	}
	if !strings.Contains(reason, "vegan") {
		t.Errorf("reason %q should mention the requested category", reason)
	}
}

// --- buildPrompt tests ---

func TestBuildPrompt_EmbedsMenuAndCriteria(t *testing.T) {
	menu := "Vegan burger $5.99\nGrilled chicken $15.99"

	for _, category := range []Category{CategoryVegan, CategoryVegetarian, CategoryNonVegetarian, CategoryAll} {
		t.Run(string(category), func(t *testing.T) {
			prompt := buildPrompt(menu, category)

			if !strings.Contains(prompt, menu) {
				t.Error("prompt should embed the full menu text")
			}
			if !strings.Contains(prompt, criteria[category]) {
				t.Errorf("prompt should contain the %s criteria", category)
			}
		})
	}
}

func TestBuildPrompt_VariantsDiffer(t *testing.T) {
	menu := "Vegan burger $5.99"
	seen := map[string]Category{}
	for _, category := range []Category{CategoryVegan, CategoryVegetarian, CategoryNonVegetarian, CategoryAll} {
		p := buildPrompt(menu, category)
		if prev, dup := seen[p]; dup {
			t.Errorf("categories %s and %s produced identical prompts", prev, category)
		}
		seen[p] = category
	}
}

// --- classifyBulk tests ---

func TestClassifyBulk_ProviderErrorPropagates(t *testing.T) {
	provider := &fakeProvider{err: errors.New("connection refused")}

	_, err := classifyBulk(context.Background(), provider, DefaultConfig(), "Vegan burger $5.99", CategoryVegan)
	if err == nil {
		t.Fatal("expected error from failing provider")
	}
}

func TestClassifyBulk_BlankResponseIsMalformed(t *testing.T) {
	provider := &fakeProvider{content: "   \n  "}

	_, err := classifyBulk(context.Background(), provider, DefaultConfig(), "Vegan burger $5.99", CategoryVegan)
	if !errors.Is(err, ErrMalformedResponse) {
		t.Fatalf("expected ErrMalformedResponse, got %v", err)
	}
}

func TestClassifyBulk_PassesConfigThrough(t *testing.T) {
	provider := &fakeProvider{content: "Vegan burger $5.99"}
	cfg := DefaultConfig()
	cfg.Temperature = 0.7
	cfg.MaxTokens = 512

	items, err := classifyBulk(context.Background(), provider, cfg, "Vegan burger $5.99", CategoryVegan)
	if err != nil {
		t.Fatalf("classifyBulk() error = %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}

	if provider.lastReq.Temperature != 0.7 {
		t.Errorf("temperature = %v, want 0.7", provider.lastReq.Temperature)
	}
	if provider.lastReq.MaxTokens != 512 {
		t.Errorf("max tokens = %v, want 512", provider.lastReq.MaxTokens)
	}
}
