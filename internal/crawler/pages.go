// Package crawler locates a usable page for a company site by trying the
// site root and a fixed set of likely contact-page paths.
package crawler

import (
	"net/url"
	"strings"
)

// contactPaths are tried in order after the site root. The bare "/" entry
// keeps the root as a final fallback when a path-qualified seed was given.
var contactPaths = []string{
	"/contact",
	"/contact-us",
	"/contactus",
	"/about",
	"/about-us",
	"/aboutus",
	"/support",
	"/get-in-touch",
	"/reach-us",
	"/connect",
	"/",
}

// NormalizeSite ensures the site URL has a scheme and no trailing slash.
func NormalizeSite(site string) string {
	site = strings.TrimSpace(site)
	if site == "" {
		return ""
	}
	if !strings.HasPrefix(site, "http://") && !strings.HasPrefix(site, "https://") {
		site = "https://" + site
	}
	return strings.TrimRight(site, "/")
}

// CandidateURLs returns the ordered, deduplicated list of URLs to try for
// a site: the site itself, then each contact-page guess.
func CandidateURLs(site string) []string {
	base := NormalizeSite(site)
	if base == "" {
		return nil
	}

	raw := make([]string, 0, len(contactPaths)+1)
	raw = append(raw, base)

	parsed, err := url.Parse(base)
	if err == nil {
		for _, path := range contactPaths {
			ref, refErr := url.Parse(path)
			if refErr != nil {
				continue
			}
			raw = append(raw, parsed.ResolveReference(ref).String())
		}
	}

	// Order-preserving dedup on the normalized form.
	visited := make(map[string]bool, len(raw))
	unique := make([]string, 0, len(raw))
	for _, u := range raw {
		key := normalizeURL(u)
		if key == "" || visited[key] {
			continue
		}
		visited[key] = true
		unique = append(unique, u)
	}

	return unique
}

// normalizeURL normalizes a URL for comparison: fragments dropped and the
// trailing path slash trimmed, so the site root and the bare "/" guess
// compare equal.
func normalizeURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}

	parsed.Fragment = ""
	parsed.Path = strings.TrimRight(parsed.Path, "/")

	return parsed.String()
}
