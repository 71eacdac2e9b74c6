package extract

import (
	"regexp"
	"strings"
)

// denyList contains substrings that mark an address as a placeholder or a
// non-human sender. Matching is deliberately broad: any candidate whose
// normalized form contains one of these is dropped, even at the cost of
// the occasional over-rejection.
var denyList = []string{
	"example.com", "test.com", "domain.com", "email.com",
	"yourdomain.com", "yoursite.com", "sentry.io",
	"wixpress.com", "example@", "test@", "noreply",
	"no-reply", "donotreply", "mailer-daemon",
}

const trailingPunctuation = ".,;:!?"

var localPartPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+$`)

// cleanCandidates normalizes, deduplicates, and validates raw matches.
// Survivors keep their first-discovery order.
func cleanCandidates(candidates []string) []string {
	var cleaned []string
	seen := make(map[string]bool, len(candidates))

	for _, candidate := range candidates {
		email := strings.TrimSpace(strings.ToLower(candidate))
		email = strings.TrimRight(email, trailingPunctuation)

		if seen[email] {
			continue
		}
		if denied(email) {
			continue
		}
		if !validAddress(email) {
			continue
		}

		cleaned = append(cleaned, email)
		seen[email] = true
	}

	return cleaned
}

func denied(email string) bool {
	for _, pattern := range denyList {
		if strings.Contains(email, pattern) {
			return true
		}
	}
	return false
}

// validAddress applies the structural rules: minimum length, exactly one
// "@", non-empty local part and domain, a dotted domain, and a local part
// restricted to the characters the matcher can produce.
func validAddress(email string) bool {
	if len(email) < 5 {
		return false
	}
	if strings.Count(email, "@") != 1 {
		return false
	}

	local, domain, _ := strings.Cut(email, "@")
	if local == "" || domain == "" {
		return false
	}
	if !strings.Contains(domain, ".") {
		return false
	}

	return localPartPattern.MatchString(local)
}
