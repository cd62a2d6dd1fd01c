package classifier

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Verdict is the result of classifying a single menu line.
// IsVegan implies IsVegetarian: veganism is a strict subset.
type Verdict struct {
	IsVegan      bool
	IsVegetarian bool
	Reason       string
}

// Terms that indicate an item is explicitly labeled vegan.
var veganTerms = []string{
	"vegan", "plant-based", "plant based", "no dairy", "no eggs",
	"dairy-free", "dairy free", "egg-free", "egg free",
}

// Terms that indicate an item is explicitly labeled vegetarian.
var vegetarianTerms = []string{
	"vegetarian", "veggie", "no meat", "meat-free", "meat free",
}

// Ingredients that rule out a vegan classification. Superset of
// meatTerms: also covers dairy and eggs.
var nonVeganTerms = []string{
	"beef", "pork", "chicken", "turkey", "lamb", "fish", "seafood",
	"salmon", "tuna", "shrimp", "crab", "lobster", "scallops", "clams",
	"meat", "bacon", "sausage", "ham", "steak", "burger", "cheese",
	"milk", "butter", "cream", "egg", "eggs", "yogurt", "yoghurt",
}

// Meat and fish only; dairy/egg excluded. Used to distinguish
// "contains meat" from "vegetarian but not vegan".
var meatTerms = []string{
	"beef", "pork", "chicken", "turkey", "lamb", "fish", "seafood",
	"meat", "bacon", "sausage", "ham", "steak",
}

// rule is one step of the classification ladder.
type rule struct {
	match   func(string) bool
	verdict Verdict
}

// containsAny reports whether s contains any of the terms.
func containsAny(s string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(s, term) {
			return true
		}
	}
	return false
}

// rules is the ordered decision ladder; first match wins. The ordering
// is a deliberate precedence policy: explicit self-labeling is trusted
// over ingredient inference, and absence of any non-vegan ingredient
// term is treated as evidence of absence.
var rules = []rule{
	{
		match:   func(s string) bool { return containsAny(s, veganTerms) },
		verdict: Verdict{IsVegan: true, IsVegetarian: true, Reason: "explicitly labeled vegan"},
	},
	{
		match:   func(s string) bool { return containsAny(s, vegetarianTerms) },
		verdict: Verdict{IsVegan: false, IsVegetarian: true, Reason: "explicitly labeled vegetarian"},
	},
	{
		match:   func(s string) bool { return !containsAny(s, nonVeganTerms) },
		verdict: Verdict{IsVegan: true, IsVegetarian: true, Reason: "no animal products detected"},
	},
	{
		match:   func(s string) bool { return !containsAny(s, meatTerms) },
		verdict: Verdict{IsVegan: false, IsVegetarian: true, Reason: "no meat detected, may contain dairy/eggs"},
	},
	{
		match:   func(s string) bool { return true },
		verdict: Verdict{IsVegan: false, IsVegetarian: false, Reason: "contains meat"},
	},
}

// ClassifyItem classifies a single menu line by case-insensitive
// substring matching. Total: always returns a verdict.
func ClassifyItem(item string) Verdict {
	lower := strings.ToLower(item)
	for _, r := range rules {
		if r.match(lower) {
			return r.verdict
		}
	}
	// Unreachable: the last rule always matches.
	return Verdict{Reason: "contains meat"}
}

// Lexicon holds extra terms merged into the built-in keyword lists.
type Lexicon struct {
	Vegan      []string `yaml:"vegan"`
	Vegetarian []string `yaml:"vegetarian"`
	NonVegan   []string `yaml:"non_vegan"`
	Meat       []string `yaml:"meat"`
}

// LoadLexicon reads a YAML lexicon file and merges its terms into the
// classifier's keyword lists. Terms are lowercased; meat terms are also
// added to the non-vegan list so the superset invariant holds.
func LoadLexicon(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read lexicon file: %w", err)
	}

	var lex Lexicon
	if err := yaml.Unmarshal(data, &lex); err != nil {
		return fmt.Errorf("failed to parse lexicon file: %w", err)
	}

	veganTerms = appendLower(veganTerms, lex.Vegan)
	vegetarianTerms = appendLower(vegetarianTerms, lex.Vegetarian)
	nonVeganTerms = appendLower(nonVeganTerms, lex.NonVegan)
	meatTerms = appendLower(meatTerms, lex.Meat)
	nonVeganTerms = appendLower(nonVeganTerms, lex.Meat)

	return nil
}

func appendLower(dst []string, terms []string) []string {
	for _, t := range terms {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			dst = append(dst, t)
		}
	}
	return dst
}
