package crawler

import (
	"context"
	"errors"
	"net/http"

	"github.com/mailprobe/mailprobe/internal/fetcher"
	"github.com/mailprobe/mailprobe/internal/logger"
)

// Result holds the outcome of crawling one site. A failed crawl is a
// value, not an error: OK is false and Err carries the last fetch failure.
type Result struct {
	Site     string // the site as given
	FinalURL string // URL that produced the markup, after redirects
	Title    string
	HTML     string
	OK       bool
	Err      error
}

// Crawler fetches a usable page for a site, trying contact-page guesses
// when the seed URL yields nothing.
type Crawler struct {
	fetcher      fetcher.Fetcher
	contactPages bool
}

// New creates a Crawler. When contactPages is false only the seed URL is
// tried.
func New(f fetcher.Fetcher, contactPages bool) *Crawler {
	return &Crawler{fetcher: f, contactPages: contactPages}
}

// Crawl tries the site's candidate URLs in order and returns the first
// page that comes back with HTTP 200 and non-empty markup. Context
// cancellation aborts between attempts.
func (c *Crawler) Crawl(ctx context.Context, site string) Result {
	result := Result{Site: site, FinalURL: NormalizeSite(site)}

	candidates := []string{NormalizeSite(site)}
	if c.contactPages {
		candidates = CandidateURLs(site)
	}
	if len(candidates) == 0 || candidates[0] == "" {
		result.Err = errors.New("empty site URL")
		return result
	}

	var lastErr error

	for _, candidate := range candidates {
		if err := ctx.Err(); err != nil {
			result.Err = err
			return result
		}

		logger.Debug("crawling candidate", "site", site, "url", candidate)

		content, err := c.fetcher.Fetch(ctx, candidate)
		if err != nil {
			lastErr = err
			continue
		}
		if content.StatusCode != http.StatusOK || content.HTML == "" {
			lastErr = errors.New("no usable page content")
			continue
		}

		result.FinalURL = content.FinalURL
		result.Title = content.Title
		result.HTML = content.HTML
		result.OK = true

		logger.Debug("crawl succeeded",
			"site", site,
			"final_url", content.FinalURL,
			"html_size", len(content.HTML))

		return result
	}

	if lastErr == nil {
		lastErr = errors.New("failed to load page")
	}
	result.Err = lastErr

	logger.Debug("crawl failed", "site", site, "error", lastErr)

	return result
}
