package fetcher

import (
	"context"
	"fmt"
	"strings"
)

// AutoFetcher tries static fetching first and falls back to a headless
// browser when the page looks JavaScript-rendered.
type AutoFetcher struct {
	static  *StaticFetcher
	dynamic *DynamicFetcher
}

// NewAutoFetcher creates a fetcher that auto-detects JS requirements.
func NewAutoFetcher(cfg Config) (*AutoFetcher, error) {
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
func (f *AutoFetcher) Fetch(ctx context.Context, url string) (PageContent, error) {
	content, err := f.static.Fetch(ctx, url)
	if err != nil {
		return f.dynamic.Fetch(ctx, url)
	}

	if needsJavaScript(content.HTML) {
		return f.dynamic.Fetch(ctx, url)
	}

	return content, nil
}

// needsJavaScript checks if a page appears to require JS rendering.
func needsJavaScript(rawHTML string) bool {
	html := strings.ToLower(rawHTML)

	// SPA framework markers
	spaMarkers := []string{
		`<div id="root"></div>`,   // React
		`<div id="app"></div>`,    // Vue
		`<app-root></app-root>`,   // Angular
		`<div id="__next"></div>`, // Next.js
		`<div id="__nuxt"></div>`, // Nuxt.js
		`<div data-reactroot`,
		`ng-app`,
		`v-cloak`,
	}
	for _, marker := range spaMarkers {
		if strings.Contains(html, marker) {
			return true
		}
	}

	// A noscript warning about JavaScript being required is a strong hint.
	if strings.Contains(html, "<noscript>") {
		noscript := extractBetween(html, "<noscript>", "</noscript>")
		for _, indicator := range []string{"javascript", "enable", "required"} {
			if strings.Contains(noscript, indicator) {
				return true
			}
		}
	}

	return false
}

// extractBetween extracts content between two markers.
func extractBetween(s, start, end string) string {
	startIdx := strings.Index(s, start)
	if startIdx == -1 {
		return ""
	}
	startIdx += len(start)

	endIdx := strings.Index(s[startIdx:], end)
	if endIdx == -1 {
		return ""
	}

	return s[startIdx : startIdx+endIdx]
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
