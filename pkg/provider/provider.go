// Package provider defines mail provider configurations and the registry
// used to look them up by domain.
package provider

// Socket types understood by autoconfiguring mail clients.
const (
	SocketPlain    = "plain"
	SocketSSL      = "SSL"
	SocketSTARTTLS = "STARTTLS"
)

// Server default values, applied when the definitions file omits a field.
const (
	DefaultIncomingType = "imap"
	DefaultIncomingPort = 143
	DefaultOutgoingType = "smtp"
	DefaultOutgoingPort = 587
	DefaultUsername     = "%EMAILADDRESS%"
	DefaultAuth         = "password-cleartext"
)

// Config describes the mail setup advertised for a set of domains. Values
// may contain placeholders, resolved at render time.
type Config struct {
	ID               string   `yaml:"id"`
	DisplayName      string   `yaml:"display_name"`
	DisplayShortName string   `yaml:"display_short_name"`
	Domains          []string `yaml:"domains"`
	Incoming         Server   `yaml:"incoming"`
	Outgoing         Server   `yaml:"outgoing"`
	WebMail          *WebMail `yaml:"webmail"`
}

// Server holds the client-visible settings of a single mail server.
type Server struct {
	Type           string   `yaml:"type"`
	Hostname       string   `yaml:"hostname"`
	Port           int      `yaml:"port"`
	SocketType     string   `yaml:"socket_type"`
	Username       string   `yaml:"username"`
	Authentication []string `yaml:"authentication"`
}

// WebMail describes the provider's web mail interface.
type WebMail struct {
	LoginPage string `yaml:"login_page"`
}

// Override holds a partial Config; nil fields leave the base value in place.
// Used for per-domain and per-user entries in the definitions file.
type Override struct {
	ID               *string         `yaml:"id"`
	DisplayName      *string         `yaml:"display_name"`
	DisplayShortName *string         `yaml:"display_short_name"`
	Incoming         *ServerOverride `yaml:"incoming"`
	Outgoing         *ServerOverride `yaml:"outgoing"`
	WebMail          *WebMail        `yaml:"webmail"`
}

// ServerOverride holds a partial Server.
type ServerOverride struct {
	Type           *string  `yaml:"type"`
	Hostname       *string  `yaml:"hostname"`
	Port           *int     `yaml:"port"`
	SocketType     *string  `yaml:"socket_type"`
	Username       *string  `yaml:"username"`
	Authentication []string `yaml:"authentication"`
}

// applyDefaults fills zero-valued Config fields with the documented server
// defaults.
func (c *Config) applyDefaults() {
	if c.ID == "" {
		c.ID = "provider"
	}
	c.Incoming.applyDefaults(DefaultIncomingType, DefaultIncomingPort)
	c.Outgoing.applyDefaults(DefaultOutgoingType, DefaultOutgoingPort)
}

func (s *Server) applyDefaults(stype string, port int) {
	if s.Type == "" {
		s.Type = stype
	}
	if s.Port == 0 {
		s.Port = port
	}
	if s.SocketType == "" {
		s.SocketType = SocketSTARTTLS
	}
	if s.Username == "" {
		s.Username = DefaultUsername
	}
	if len(s.Authentication) == 0 {
		s.Authentication = []string{DefaultAuth}
	}
}

// clone returns a deep copy of c, safe to mutate without affecting the
// registry.
func (c *Config) clone() *Config {
	out := *c
	out.Domains = append([]string(nil), c.Domains...)
	out.Incoming.Authentication = append([]string(nil), c.Incoming.Authentication...)
	out.Outgoing.Authentication = append([]string(nil), c.Outgoing.Authentication...)
	if c.WebMail != nil {
		wm := *c.WebMail
		out.WebMail = &wm
	}
	return &out
}

// apply layers an override onto the config.
func (c *Config) apply(o *Override) {
	if o == nil {
		return
	}
	if o.ID != nil {
		c.ID = *o.ID
	}
	if o.DisplayName != nil {
		c.DisplayName = *o.DisplayName
	}
	if o.DisplayShortName != nil {
		c.DisplayShortName = *o.DisplayShortName
	}
	c.Incoming.apply(o.Incoming)
	c.Outgoing.apply(o.Outgoing)
	if o.WebMail != nil {
		wm := *o.WebMail
		c.WebMail = &wm
	}
}

func (s *Server) apply(o *ServerOverride) {
	if o == nil {
		return
	}
	if o.Type != nil {
		s.Type = *o.Type
	}
	if o.Hostname != nil {
		s.Hostname = *o.Hostname
	}
	if o.Port != nil {
		s.Port = *o.Port
	}
	if o.SocketType != nil {
		s.SocketType = *o.SocketType
	}
	if o.Username != nil {
		s.Username = *o.Username
	}
	if len(o.Authentication) > 0 {
		s.Authentication = append([]string(nil), o.Authentication...)
	}
}
