package provider_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/autoconfigd/autoconfigd/pkg/provider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDefs = `
provider:
  id: example
  display_name: Example Mail
  display_short_name: Example
  domains:
    - example.com
    - EXAMPLE.NET
  incoming:
    hostname: imap.example.com
    port: 993
    socket_type: SSL
  outgoing:
    hostname: smtp.example.com
  webmail:
    login_page: https://webmail.example.com/
domains:
  corp.example.org:
    display_name: Example Corporate
    incoming:
      hostname: imap.corp.example.org
      username: corp-store
users:
  ceo@example.com:
    incoming:
      username: ceo-mailstore
  vip@corp.example.org:
    incoming:
      username: vip-store
`

func TestLookupBaseProvider(t *testing.T) {
	reg, err := provider.Parse([]byte(testDefs))
	require.NoError(t, err)

	cfg, err := reg.Lookup("alice", "example.com")
	require.NoError(t, err)
	assert.Equal(t, "example", cfg.ID)
	assert.Equal(t, "Example Mail", cfg.DisplayName)
	assert.Equal(t, "Example", cfg.DisplayShortName)
	assert.Equal(t, []string{"example.com", "example.net"}, cfg.Domains)

	// Explicit incoming settings.
	assert.Equal(t, "imap", cfg.Incoming.Type)
	assert.Equal(t, "imap.example.com", cfg.Incoming.Hostname)
	assert.Equal(t, 993, cfg.Incoming.Port)
	assert.Equal(t, provider.SocketSSL, cfg.Incoming.SocketType)

	// Outgoing falls back to documented defaults.
	assert.Equal(t, "smtp", cfg.Outgoing.Type)
	assert.Equal(t, "smtp.example.com", cfg.Outgoing.Hostname)
	assert.Equal(t, 587, cfg.Outgoing.Port)
	assert.Equal(t, provider.SocketSTARTTLS, cfg.Outgoing.SocketType)
	assert.Equal(t, "%EMAILADDRESS%", cfg.Outgoing.Username)
	assert.Equal(t, []string{"password-cleartext"}, cfg.Outgoing.Authentication)

	require.NotNil(t, cfg.WebMail)
	assert.Equal(t, "https://webmail.example.com/", cfg.WebMail.LoginPage)
}

func TestLookupCaseInsensitive(t *testing.T) {
	reg, err := provider.Parse([]byte(testDefs))
	require.NoError(t, err)

	for _, domain := range []string{"EXAMPLE.COM", "Example.Net", "example.net"} {
		t.Run(domain, func(t *testing.T) {
			_, err := reg.Lookup("alice", domain)
			assert.NoError(t, err)
		})
	}
}

func TestLookupDomainOverride(t *testing.T) {
	reg, err := provider.Parse([]byte(testDefs))
	require.NoError(t, err)

	cfg, err := reg.Lookup("bob", "corp.example.org")
	require.NoError(t, err)

	// Override match narrows the advertised domains to the one requested.
	assert.Equal(t, []string{"corp.example.org"}, cfg.Domains)
	assert.Equal(t, "Example Corporate", cfg.DisplayName)
	assert.Equal(t, "imap.corp.example.org", cfg.Incoming.Hostname)
	assert.Equal(t, "corp-store", cfg.Incoming.Username)

	// Untouched fields keep their base values.
	assert.Equal(t, 993, cfg.Incoming.Port)
	assert.Equal(t, provider.SocketSSL, cfg.Incoming.SocketType)
	assert.Equal(t, "smtp.example.com", cfg.Outgoing.Hostname)
}

func TestLookupUserBeatsDomainOverride(t *testing.T) {
	reg, err := provider.Parse([]byte(testDefs))
	require.NoError(t, err)

	cfg, err := reg.Lookup("vip", "corp.example.org")
	require.NoError(t, err)

	// The user layer wins over the domain layer.
	assert.Equal(t, "vip-store", cfg.Incoming.Username)

	// Domain override fields the user does not touch persist.
	assert.Equal(t, "imap.corp.example.org", cfg.Incoming.Hostname)
	assert.Equal(t, "Example Corporate", cfg.DisplayName)
	assert.Equal(t, []string{"corp.example.org"}, cfg.Domains)

	// Other users of the domain still get the domain layer.
	cfg, err = reg.Lookup("bob", "corp.example.org")
	require.NoError(t, err)
	assert.Equal(t, "corp-store", cfg.Incoming.Username)
}

func TestLookupUserOverride(t *testing.T) {
	reg, err := provider.Parse([]byte(testDefs))
	require.NoError(t, err)

	cfg, err := reg.Lookup("ceo", "example.com")
	require.NoError(t, err)
	assert.Equal(t, []string{"example.com"}, cfg.Domains)
	assert.Equal(t, "ceo-mailstore", cfg.Incoming.Username)

	// Other users of the domain are unaffected.
	cfg, err = reg.Lookup("alice", "example.com")
	require.NoError(t, err)
	assert.Equal(t, "%EMAILADDRESS%", cfg.Incoming.Username)
}

func TestLookupUnknownDomain(t *testing.T) {
	reg, err := provider.Parse([]byte(testDefs))
	require.NoError(t, err)

	_, err = reg.Lookup("alice", "nope.test")
	require.Error(t, err)
	assert.ErrorIs(t, err, provider.ErrUnknownDomain)
}

func TestLookupDoesNotMutateRegistry(t *testing.T) {
	reg, err := provider.Parse([]byte(testDefs))
	require.NoError(t, err)

	cfg, err := reg.Lookup("ceo", "example.com")
	require.NoError(t, err)
	cfg.Domains[0] = "mutated.test"
	cfg.Incoming.Authentication[0] = "mutated"

	cfg, err = reg.Lookup("alice", "example.com")
	require.NoError(t, err)
	assert.Equal(t, []string{"example.com", "example.net"}, cfg.Domains)
	assert.Equal(t, []string{"password-cleartext"}, cfg.Incoming.Authentication)
}

func TestParseErrors(t *testing.T) {
	testCases := []struct {
		name string
		defs string
	}{
		{name: "empty", defs: ""},
		{name: "not yaml", defs: "{{nope"},
		{name: "missing incoming hostname", defs: `
provider:
  domains: [example.com]
  outgoing:
    hostname: smtp.example.com
`},
		{name: "missing outgoing hostname", defs: `
provider:
  domains: [example.com]
  incoming:
    hostname: imap.example.com
`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := provider.Parse([]byte(tc.defs))
			assert.Error(t, err)
		})
	}
}

func TestDomainsIncludeOverrideEntries(t *testing.T) {
	reg, err := provider.Parse([]byte(testDefs))
	require.NoError(t, err)

	// Sorted union of the base domains and the override entries; the
	// user override for vip@corp.example.org adds nothing new.
	assert.Equal(t, []string{"corp.example.org", "example.com", "example.net"},
		reg.Domains())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "providers.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testDefs), 0644))

	reg, err := provider.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"corp.example.org", "example.com", "example.net"},
		reg.Domains())

	_, err = provider.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
