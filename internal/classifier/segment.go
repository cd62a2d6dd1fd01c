package classifier

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// priceToken matches a price-shaped substring: "$12.99", "$9", "15.00".
var priceToken = regexp.MustCompile(`\$[\d.]+|\d+\.\d{2}`)

const (
	minItemLen = 10
	maxItemLen = 200
)

// Segment splits menu text into candidate item lines: trimmed lines of
// 10-200 characters containing a price-shaped token, in source order.
//
// This is a heuristic price-anchored segmentation. It misses multi-line
// item descriptions and over-includes non-menu lines that happen to
// contain a price-shaped substring (a phone number rendered as a
// decimal, for example). That precision/recall tradeoff is accepted:
// the segmenter only feeds the keyword fallback path.
func Segment(text string) []string {
	var items []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		// Length bounds count characters, not bytes, so accented menu
		// text ("Crème brûlée") measures the same as plain ASCII.
		if n := utf8.RuneCountInString(line); n < minItemLen || n > maxItemLen {
			continue
		}
		if !priceToken.MatchString(line) {
			continue
		}
		items = append(items, line)
	}
	return items
}
