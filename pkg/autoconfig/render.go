package autoconfig

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/autoconfigd/autoconfigd/pkg/provider"
)

// Placeholder tokens expanded at render time.
const (
	PlaceholderLocalPart = "%EMAILLOCALPART%"
	PlaceholderAddress   = "%EMAILADDRESS%"
	PlaceholderDomain    = "%EMAILDOMAIN%"
)

const version = "1.1"

// Render produces the autoconfig document for cfg, expanding placeholders
// from the requested local part and domain. When localPart is empty the
// placeholders are served literally, for clients that substitute their own
// address. Render is a pure function of its inputs; identical inputs yield
// byte-identical output. XML escaping of substituted values is handled by
// the marshaller.
func Render(cfg *provider.Config, localPart, domain string) ([]byte, error) {
	expand := newExpander(localPart, domain)
	doc := &ClientConfig{
		Version: version,
		EmailProvider: EmailProvider{
			ID:               cfg.ID,
			Domains:          cfg.Domains,
			DisplayName:      expand(cfg.DisplayName),
			DisplayShortName: expand(cfg.DisplayShortName),
			IncomingServer:   renderServer(cfg.Incoming, expand),
			OutgoingServer:   renderServer(cfg.Outgoing, expand),
		},
	}
	if cfg.WebMail != nil {
		doc.EmailProvider.WebMail = &WebMail{
			LoginPage: LoginPage{URL: expand(cfg.WebMail.LoginPage)},
		}
	}
	buf := new(bytes.Buffer)
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(buf)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("failed to marshal client config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func renderServer(s provider.Server, expand func(string) string) Server {
	auth := make([]string, len(s.Authentication))
	for i, a := range s.Authentication {
		auth[i] = expand(a)
	}
	return Server{
		Type:           s.Type,
		Hostname:       expand(s.Hostname),
		Port:           s.Port,
		SocketType:     s.SocketType,
		Username:       expand(s.Username),
		Authentication: auth,
	}
}

func newExpander(localPart, domain string) func(string) string {
	if localPart == "" {
		return func(s string) string { return s }
	}
	return strings.NewReplacer(
		PlaceholderLocalPart, localPart,
		PlaceholderAddress, localPart+"@"+domain,
		PlaceholderDomain, domain,
	).Replace
}
