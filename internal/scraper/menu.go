package scraper

import (
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/greenplate/greenplate/internal/logger"
)

// NewPageContent builds PageContent from raw HTML, extracting the
// title and line-preserving text. Useful for callers that already have
// a page body in hand.
func NewPageContent(url, htmlBody string) (PageContent, error) {
	content := PageContent{
		URL:        url,
		HTML:       htmlBody,
		StatusCode: 200,
		FetchedAt:  time.Now(),
	}
	if err := parseContent(&content); err != nil {
		return content, err
	}
	return content, nil
}

// menuSelectors are heuristic DOM regions to try before falling back
// to whole-page text.
var menuSelectors = []string{
	"menu", ".menu", "#menu", `[class*="menu"]`,
	"restaurant-menu", ".restaurant-menu",
	"food-menu", ".food-menu",
}

// minBlockLen filters out trivially small selector matches.
const minBlockLen = 50

// parseContent extracts the title and line-preserving plain text from
// fetched HTML. Line boundaries matter downstream: the segmenter works
// on one candidate item per line.
func parseContent(content *PageContent) error {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content.HTML))
	if err != nil {
		return err
	}

	content.Title = strings.TrimSpace(doc.Find("title").First().Text())

	doc.Find("script, style, noscript, iframe, svg").Remove()

	var lines []string
	for _, node := range doc.Find("body").Nodes {
		collectLines(node, &lines)
	}
	content.Text = strings.Join(lines, "\n")

	return nil
}

// collectLines walks the DOM and emits each trimmed text node as its
// own line, mirroring text extraction with a newline separator. Blank
// nodes are dropped, which also collapses runs of blank lines.
func collectLines(n *html.Node, lines *[]string) {
	if n.Type == html.TextNode {
		if text := strings.TrimSpace(n.Data); text != "" {
			*lines = append(*lines, text)
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectLines(c, lines)
	}
}

// ExtractMenuText reduces a fetched page to menu text. It narrows to
// menu-like DOM regions first; when none match, the whole-page text is
// used. Returns an AcquisitionError of kind "empty" when nothing
// readable remains.
func ExtractMenuText(content PageContent) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content.HTML))
	if err != nil {
		return "", &AcquisitionError{Kind: ErrorNetwork, URL: content.URL, Err: err}
	}

	doc.Find("script, style, noscript, iframe, svg").Remove()

	// The selectors overlap (".menu" and `[class*="menu"]` match the
	// same element), so track nodes already collected to keep each
	// region's text from appearing twice.
	seen := make(map[*html.Node]bool)
	var blocks []string
	for _, selector := range menuSelectors {
		doc.Find(selector).Each(func(_ int, s *goquery.Selection) {
			var lines []string
			for _, node := range s.Nodes {
				if seen[node] {
					continue
				}
				seen[node] = true
				collectLines(node, &lines)
			}
			block := strings.Join(lines, "\n")
			if len(block) > minBlockLen {
				blocks = append(blocks, block)
			}
		})
	}

	var text string
	if len(blocks) > 0 {
		text = strings.Join(blocks, "\n\n")
		logger.Debug("menu sections found", "url", content.URL, "sections", len(blocks))
	} else {
		text = content.Text
		logger.Debug("no menu sections matched, using whole-page text", "url", content.URL)
	}

	if strings.TrimSpace(text) == "" {
		return "", &AcquisitionError{Kind: ErrorEmpty, URL: content.URL}
	}
	return text, nil
}
