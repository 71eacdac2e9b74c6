package extract

import (
	"reflect"
	"testing"
)

func TestCleanCandidates_NormalizesAndDedupes(t *testing.T) {
	got := cleanCandidates([]string{"Bob@Acme.io", "bob@acme.io.", " BOB@ACME.IO "})
	want := []string{"bob@acme.io"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("cleanCandidates() = %v, want %v", got, want)
	}
}

func TestCleanCandidates_DenyList(t *testing.T) {
	tests := []struct {
		name  string
		email string
	}{
		{"placeholder domain", "someone@example.com"},
		{"test domain", "ceo@test.com"},
		{"your domain", "admin@yourdomain.com"},
		{"sentry", "errors@sentry.io"},
		{"wix", "a1b2@sentry-next.wixpress.com"},
		{"noreply marker", "noreply@acme.io"},
		{"hyphenated noreply", "no-reply@acme.io"},
		{"donotreply", "donotreply@acme.io"},
		{"mailer daemon", "mailer-daemon@acme.io"},
		{"test local part", "test@acme.io"},
		{"example local part", "example@acme.io"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cleanCandidates([]string{tt.email}); len(got) != 0 {
				t.Errorf("cleanCandidates(%q) = %v, want empty", tt.email, got)
			}
		})
	}
}

func TestCleanCandidates_DenyListIsSubstringMatch(t *testing.T) {
	// Broad by design: "test@" inside a longer local part still rejects.
	if got := cleanCandidates([]string{"contest@acme.io"}); len(got) != 0 {
		t.Errorf("cleanCandidates() = %v, want empty (substring deny)", got)
	}
}

func TestValidAddress(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"bob@acme.io", true},
		{"first.last+tag@sub.acme.io", true},
		{"x@y.z", true},
		{"a@b", false}, // below minimum length, no dotted domain
		{"", false},
		{"plain-text", false},
		{"two@@acme.io", false},
		{"@acme.io", false},
		{"bob@", false},
		{"bob@localhost", false},
		{"we ird@acme.io", false},
	}

	for _, tt := range tests {
		if got := validAddress(tt.email); got != tt.want {
			t.Errorf("validAddress(%q) = %v, want %v", tt.email, got, tt.want)
		}
	}
}

func TestCleanCandidates_PreservesDiscoveryOrder(t *testing.T) {
	got := cleanCandidates([]string{"z@acme.io", "a@acme.io", "m@other.net"})
	want := []string{"z@acme.io", "a@acme.io", "m@other.net"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("cleanCandidates() = %v, want %v", got, want)
	}
}
