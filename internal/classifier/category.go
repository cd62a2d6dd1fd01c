// Package classifier implements the two-tier menu classification engine:
// a bulk LLM pass over the whole menu with a deterministic keyword
// fallback.
package classifier

// Category selects which dietary bucket to filter for.
type Category string

const (
	CategoryVegan         Category = "vegan"
	CategoryVegetarian    Category = "vegetarian"
	CategoryNonVegetarian Category = "nonvegetarian"
	CategoryAll           Category = "all"
)

// ParseCategory normalizes a category string. Unrecognized values map
// to CategoryAll, a permissive default rather than an error.
func ParseCategory(s string) Category {
	switch Category(s) {
	case CategoryVegan, CategoryVegetarian, CategoryNonVegetarian, CategoryAll:
		return Category(s)
	default:
		return CategoryAll
	}
}

// Matches reports whether a verdict passes this category's predicate.
func (c Category) Matches(v Verdict) bool {
	switch c {
	case CategoryVegan:
		return v.IsVegan
	case CategoryVegetarian:
		return v.IsVegetarian
	case CategoryNonVegetarian:
		return !v.IsVegetarian
	default:
		return true
	}
}
