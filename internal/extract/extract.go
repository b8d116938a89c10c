// Package extract turns HTML sources into the plain text tally counts.
// Markup is removed entirely: tags, Markdown syntax, and list markers would
// otherwise inflate letter and sentence counts.
package extract

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"
)

// LooksLikeHTML reports whether data sniffs as an HTML document.
func LooksLikeHTML(data []byte) bool {
	return strings.HasPrefix(http.DetectContentType(data), "text/html")
}

// ToText extracts countable text from HTML.
//
// Parameters:
//   - content: io.Reader containing HTML content
//   - selector: optional CSS selector to restrict the text (empty string for main content extraction)
//   - includeAll: if true, skips readability extraction and uses all body text
//   - baseURL: optional URL for context during readability extraction (can be nil)
//
// Returns the extracted text, or an error if parsing fails or the selector matches nothing.
func ToText(content io.Reader, selector string, includeAll bool, baseURL *url.URL) (string, error) {
	htmlBytes, err := io.ReadAll(content)
	if err != nil {
		return "", fmt.Errorf("failed to read HTML content: %w", err)
	}
	if len(bytes.TrimSpace(htmlBytes)) == 0 {
		return "", nil
	}

	// a selector overrides includeAll
	if selector != "" {
		return extractWithSelector(htmlBytes, selector)
	}
	if includeAll {
		return extractWithSelector(htmlBytes, "body")
	}
	return extractMainContent(htmlBytes, baseURL)
}

// extractMainContent uses go-readability to extract the main article text
func extractMainContent(htmlBytes []byte, baseURL *url.URL) (string, error) {
	if baseURL == nil {
		baseURL = &url.URL{}
	}

	article, err := readability.FromReader(bytes.NewReader(htmlBytes), baseURL)
	if err != nil {
		return "", fmt.Errorf("failed to extract main content: %w", err)
	}

	text := tidy(article.TextContent)
	slog.Debug("Main content extracted", "title", article.Title, "textLength", len(text))
	return text, nil
}

// extractWithSelector joins the text of every element matching selector
func extractWithSelector(htmlBytes []byte, selector string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(htmlBytes))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	// script and style bodies are not prose
	doc.Find("script, style, noscript").Remove()

	selection := doc.Find(selector)
	if selection.Length() == 0 {
		return "", fmt.Errorf("no elements found matching selector: %s", selector)
	}

	var parts []string
	selection.Each(func(i int, s *goquery.Selection) {
		if text := tidy(s.Text()); text != "" {
			parts = append(parts, text)
		}
	})

	slog.Debug("Selector content extracted", "selector", selector, "matches", selection.Length(), "parts", len(parts))
	return strings.Join(parts, "\n\n"), nil
}

// tidy trims each line and drops blank lines left behind by removed markup
func tidy(text string) string {
	lines := strings.Split(text, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			kept = append(kept, trimmed)
		}
	}
	return strings.Join(kept, "\n")
}
