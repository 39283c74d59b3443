package provider

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// ErrUnknownDomain is returned when no provider matches the requested
// domain.
var ErrUnknownDomain = errors.New("no configuration for domain")

// Registry resolves domains to provider configurations. It is immutable
// after Load, making concurrent lookups safe without locking.
type Registry struct {
	base    *Config              // Provider defaults.
	domains map[string]*Override // Per-domain overrides, keyed by lowercase domain.
	users   map[string]*Override // Per-user overrides, keyed by lowercase address.
	served  map[string]struct{}  // Domains listed by the base provider.
}

// definitionsFile mirrors the YAML layout of the provider definitions file.
type definitionsFile struct {
	Provider *Config              `yaml:"provider"`
	Domains  map[string]*Override `yaml:"domains"`
	Users    map[string]*Override `yaml:"users"`
}

// Load reads and parses the YAML definitions file at path.
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read provider definitions: %w", err)
	}
	reg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %q: %w", path, err)
	}
	log.Info().Str("module", "provider").Str("path", path).
		Int("domains", len(reg.served)).Int("overrides", len(reg.domains)).
		Int("users", len(reg.users)).Msg("Loaded provider definitions")
	return reg, nil
}

// Parse builds a Registry from raw YAML definitions.
func Parse(data []byte) (*Registry, error) {
	var defs definitionsFile
	if err := yaml.Unmarshal(data, &defs); err != nil {
		return nil, err
	}
	if defs.Provider == nil {
		return nil, errors.New("definitions are missing the provider block")
	}
	base := defs.Provider.clone()
	base.applyDefaults()
	if base.Incoming.Hostname == "" {
		return nil, errors.New("provider is missing incoming hostname")
	}
	if base.Outgoing.Hostname == "" {
		return nil, errors.New("provider is missing outgoing hostname")
	}
	reg := &Registry{
		base:    base,
		domains: make(map[string]*Override, len(defs.Domains)),
		users:   make(map[string]*Override, len(defs.Users)),
		served:  make(map[string]struct{}, len(base.Domains)),
	}
	for i, d := range base.Domains {
		base.Domains[i] = strings.ToLower(d)
		reg.served[base.Domains[i]] = struct{}{}
	}
	for d, o := range defs.Domains {
		reg.domains[strings.ToLower(d)] = o
	}
	for u, o := range defs.Users {
		reg.users[strings.ToLower(u)] = o
	}
	return reg, nil
}

// Lookup resolves the configuration for localPart@domain, layering any
// user override over any domain override over the provider base. A match
// on an override narrows the advertised domains to the one requested.
// Returns ErrUnknownDomain when nothing matches.
func (r *Registry) Lookup(localPart, domain string) (*Config, error) {
	domain = strings.ToLower(domain)
	address := strings.ToLower(localPart) + "@" + domain
	_, servedBase := r.served[domain]
	dover, hasDomain := r.domains[domain]
	uover, hasUser := r.users[address]
	if !servedBase && !hasDomain && !hasUser {
		return nil, fmt.Errorf("%w: %v", ErrUnknownDomain, domain)
	}
	cfg := r.base.clone()
	if hasDomain || hasUser {
		cfg.Domains = []string{domain}
	}
	cfg.apply(dover)
	cfg.apply(uover)
	return cfg, nil
}

// Domains returns the sorted, lowercased set of domains the registry can
// answer for: the base provider's domains plus any domain or user override
// entries.
func (r *Registry) Domains() []string {
	set := make(map[string]struct{}, len(r.served)+len(r.domains)+len(r.users))
	for d := range r.served {
		set[d] = struct{}{}
	}
	for d := range r.domains {
		set[d] = struct{}{}
	}
	for u := range r.users {
		if _, domain, ok := strings.Cut(u, "@"); ok && domain != "" {
			set[domain] = struct{}{}
		}
	}
	domains := make([]string, 0, len(set))
	for d := range set {
		domains = append(domains, d)
	}
	sort.Strings(domains)
	return domains
}
