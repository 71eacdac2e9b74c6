package extract

import "strings"

// relatedDomain reports whether the address's domain belongs to the site
// identified by baseDomain. It accepts an exact match, a subdomain match,
// or equal registrable domains, where "registrable" is approximated by the
// last two labels. That approximation misreads multi-label public suffixes
// ("a.co.uk" vs "b.co.uk" look related); a documented limitation kept in
// place of a full public-suffix lookup.
//
// With an empty baseDomain every address is considered related. A candidate
// with no domain part is never related.
func relatedDomain(email, baseDomain string) bool {
	if baseDomain == "" {
		return true
	}

	_, emailDomain, ok := strings.Cut(email, "@")
	if !ok || emailDomain == "" {
		return false
	}
	emailDomain = strings.TrimPrefix(emailDomain, "www.")

	if emailDomain == baseDomain {
		return true
	}
	if strings.HasSuffix(emailDomain, "."+baseDomain) {
		return true
	}

	baseParts := strings.Split(baseDomain, ".")
	emailParts := strings.Split(emailDomain, ".")
	if len(baseParts) >= 2 && len(emailParts) >= 2 {
		if baseParts[len(baseParts)-2] == emailParts[len(emailParts)-2] &&
			baseParts[len(baseParts)-1] == emailParts[len(emailParts)-1] {
			return true
		}
	}

	return false
}
