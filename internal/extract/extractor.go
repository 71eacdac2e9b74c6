// Package extract finds business-contact email addresses in page markup.
//
// The pipeline is a pure transform: markup goes in, a ranked list of
// cleaned addresses comes out. Text and address-bearing attributes are
// collected from a lenient HTML parse, scanned with a permissive pattern,
// then filtered (normalization, dedup, deny-list, structural validation)
// and ranked with business-contact local parts first. It performs no I/O,
// never panics on malformed input, and is safe for concurrent use.
package extract

import (
	"net/url"
	"strings"
)

// Extractor extracts and ranks contact addresses from markup. The zero
// value is usable and treats every domain as related to the site.
type Extractor struct {
	baseDomain string
}

// New returns an Extractor anchored to the given site URL. The URL is used
// only to derive the site's domain (leading "www." stripped) for relevance
// scoring; an empty or unparseable URL leaves the extractor unanchored.
func New(siteURL string) *Extractor {
	e := &Extractor{}
	if siteURL == "" {
		return e
	}

	raw := siteURL
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	if parsed, err := url.Parse(raw); err == nil {
		e.baseDomain = strings.TrimPrefix(strings.ToLower(parsed.Hostname()), "www.")
	}

	return e
}

// BaseDomain returns the relevance anchor derived at construction, or ""
// when none was set.
func (e *Extractor) BaseDomain() string {
	return e.baseDomain
}

// Extract returns every cleaned contact address found in markup, priority
// class first, first-discovery order within each class. The result is
// empty (never nil panics, no error) for empty or unparseable input.
func (e *Extractor) Extract(markup string) []string {
	if markup == "" {
		return nil
	}

	page := collectPage(markup)

	candidates := matchAddresses(page.text)
	for _, attr := range page.attrs {
		candidates = append(candidates, matchAddresses(attr)...)
	}

	return rankAddresses(cleanCandidates(candidates))
}

// Best returns the top-ranked address in markup, or "" when none is found.
func (e *Extractor) Best(markup string) string {
	emails := e.Extract(markup)
	if len(emails) == 0 {
		return ""
	}
	return emails[0]
}

// DomainRelated reports whether the address's domain is related to the
// extractor's site. It is informational: unrelated addresses are still
// included in Extract results, on the theory that a site may route its
// contact mail through a third-party domain.
func (e *Extractor) DomainRelated(email string) bool {
	return relatedDomain(email, e.baseDomain)
}
