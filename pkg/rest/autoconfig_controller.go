package rest

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/autoconfigd/autoconfigd/pkg/autoconfig"
	"github.com/autoconfigd/autoconfigd/pkg/config"
	"github.com/autoconfigd/autoconfigd/pkg/policy"
	"github.com/autoconfigd/autoconfigd/pkg/provider"
	"github.com/autoconfigd/autoconfigd/pkg/server/web"
	"github.com/rs/zerolog/log"
)

// ClientConfigV11 renders the autoconfiguration document for the domain
// in the emailaddress or domain query parameter. When a full address is
// given, its local part is substituted into the document placeholders;
// a bare domain serves them literally for the client to expand.
func ClientConfigV11(w http.ResponseWriter, req *http.Request, ctx *web.Context) error {
	localPart, domain, ok := requestedAddress(w, req)
	if !ok {
		return nil
	}
	cfg, err := ctx.Registry.Lookup(localPart, domain)
	if err != nil {
		if errors.Is(err, provider.ErrUnknownDomain) {
			log.Debug().Str("module", "rest").Str("domain", domain).
				Msg("No configuration for domain")
			http.NotFound(w, req)
			return nil
		}
		return fmt.Errorf("lookup for %q failed: %w", domain, err)
	}
	doc, err := autoconfig.Render(cfg, localPart, domain)
	if err != nil {
		return fmt.Errorf("render for %q failed: %w", domain, err)
	}
	return web.RenderXML(w, doc)
}

// requestedAddress extracts and validates the local part and domain from
// the request query. On failure it writes a 400 response and returns
// ok == false.
func requestedAddress(w http.ResponseWriter, req *http.Request) (localPart, domain string, ok bool) {
	q := req.URL.Query()
	if address := q.Get("emailaddress"); address != "" {
		local, domain, err := policy.ParseEmailAddress(address)
		if err != nil {
			badRequest(w, req, fmt.Sprintf("invalid emailaddress parameter: %v", err))
			return "", "", false
		}
		return local, domain, true
	}
	if domain := q.Get("domain"); domain != "" {
		if !policy.ValidateDomainPart(domain) {
			badRequest(w, req, fmt.Sprintf("invalid domain parameter %q", domain))
			return "", "", false
		}
		return "", domain, true
	}
	badRequest(w, req, "emailaddress or domain parameter is required")
	return "", "", false
}

func badRequest(w http.ResponseWriter, req *http.Request, reason string) {
	log.Debug().Str("module", "rest").Str("path", req.RequestURI).Str("reason", reason).
		Msg("Rejecting request")
	http.Error(w, reason, http.StatusBadRequest)
}

// StatusV1 renders the server status and the domains it serves.
func StatusV1(w http.ResponseWriter, req *http.Request, ctx *web.Context) error {
	return web.RenderJSON(w, &jsonServerStatus{
		Version:     config.Version,
		BuildDate:   config.BuildDate,
		WebListener: ctx.RootConfig.Web.Addr,
		Domains:     ctx.Registry.Domains(),
	})
}
