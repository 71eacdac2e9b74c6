package extract

import "strings"

// priorityPrefixes are business-contact local parts ranked ahead of
// everything else, most desirable first.
var priorityPrefixes = []string{
	"contact", "info", "support", "hello", "sales",
	"business", "inquiry", "general", "help",
}

// rankAddresses partitions addresses into the priority class and the rest,
// preserving first-discovery order within each class. The priority class
// comes first, so the head of the result is the best candidate.
func rankAddresses(emails []string) []string {
	if len(emails) == 0 {
		return emails
	}

	priority := make([]string, 0, len(emails))
	other := make([]string, 0, len(emails))

	for _, email := range emails {
		local, _, _ := strings.Cut(email, "@")
		if isPriorityLocal(strings.ToLower(local)) {
			priority = append(priority, email)
		} else {
			other = append(other, email)
		}
	}

	return append(priority, other...)
}

func isPriorityLocal(local string) bool {
	for _, prefix := range priorityPrefixes {
		if local == prefix || strings.HasPrefix(local, prefix) {
			return true
		}
	}
	return false
}
