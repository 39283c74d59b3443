package policy_test

import (
	"strings"
	"testing"

	"github.com/autoconfigd/autoconfigd/pkg/policy"
)

func TestParseEmailAddressValid(t *testing.T) {
	testCases := []struct {
		address    string
		wantLocal  string
		wantDomain string
	}{
		{address: "alice@example.com", wantLocal: "alice", wantDomain: "example.com"},
		{address: "alice.smith@example.com", wantLocal: "alice.smith", wantDomain: "example.com"},
		{address: "alice+folder@example.com", wantLocal: "alice+folder", wantDomain: "example.com"},
		{address: "o'brian@example.com", wantLocal: "o'brian", wantDomain: "example.com"},
		{address: "Alice@EXAMPLE.COM", wantLocal: "Alice", wantDomain: "example.com"},
		{address: `"spaced name"@example.com`, wantLocal: "spaced name", wantDomain: "example.com"},
		{address: `quoted\@sign@example.com`, wantLocal: "quoted@sign", wantDomain: "example.com"},
		{address: "user@sub.example-host.com", wantLocal: "user", wantDomain: "sub.example-host.com"},
	}
	for _, tc := range testCases {
		t.Run(tc.address, func(t *testing.T) {
			local, domain, err := policy.ParseEmailAddress(tc.address)
			if err != nil {
				t.Fatalf("Got error for %q: %v", tc.address, err)
			}
			if local != tc.wantLocal {
				t.Errorf("Got local %q, want: %q", local, tc.wantLocal)
			}
			if domain != tc.wantDomain {
				t.Errorf("Got domain %q, want: %q", domain, tc.wantDomain)
			}
		})
	}
}

func TestParseEmailAddressInvalid(t *testing.T) {
	testCases := []struct {
		name    string
		address string
	}{
		{name: "empty", address: ""},
		{name: "missing domain", address: "alice"},
		{name: "leading at", address: "@example.com"},
		{name: "leading period", address: ".alice@example.com"},
		{name: "trailing period local", address: "alice.@example.com"},
		{name: "double period", address: "alice..smith@example.com"},
		{name: "unquoted space", address: "alice smith@example.com"},
		{name: "non ascii", address: "ålice@example.com"},
		{name: "domain double dot", address: "alice@example..com"},
		{name: "domain leading hyphen", address: "alice@-example.com"},
		{name: "oversize address", address: strings.Repeat("a", 310) + "@example.com"},
		{name: "oversize local part", address: strings.Repeat("a", 200) + "@x.com"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, _, err := policy.ParseEmailAddress(tc.address); err == nil {
				t.Errorf("Got nil error for %q, want parse failure", tc.address)
			}
		})
	}
}

func TestValidateDomainPart(t *testing.T) {
	testCases := []struct {
		domain string
		want   bool
	}{
		{domain: "example.com", want: true},
		{domain: "sub.example.com", want: true},
		{domain: "example-host.com", want: true},
		{domain: "xn--bcher-kva.ch", want: true},
		{domain: "", want: false},
		{domain: "example..com", want: false},
		{domain: "-example.com", want: false},
		{domain: "example-.com", want: false},
		{domain: "exam ple.com", want: false},
		{domain: strings.Repeat("a", 64) + ".com", want: false},
		{domain: strings.Repeat("a.", 130) + "com", want: false},
	}
	for _, tc := range testCases {
		t.Run(tc.domain, func(t *testing.T) {
			if got := policy.ValidateDomainPart(tc.domain); got != tc.want {
				t.Errorf("Got %v for %q, want: %v", got, tc.domain, tc.want)
			}
		})
	}
}
