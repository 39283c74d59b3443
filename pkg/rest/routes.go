// Package rest implements the autoconfig daemon's HTTP endpoints.
package rest

import (
	"github.com/autoconfigd/autoconfigd/pkg/server/web"
	"github.com/gorilla/mux"
)

// SetupRoutes populates the routes for the autoconfig endpoints.
func SetupRoutes(r *mux.Router) {
	r.Path("/mail/config-v1.1.xml").Handler(
		web.Handler(ClientConfigV11)).Name("ClientConfigV11").Methods("GET")
	// Conventional probe location used by Thunderbird when querying the
	// mail domain directly.
	r.Path("/.well-known/autoconfig/mail/config-v1.1.xml").Handler(
		web.Handler(ClientConfigV11)).Name("ClientConfigWellKnownV11").Methods("GET")
	r.Path("/api/v1/status").Handler(
		web.Handler(StatusV1)).Name("StatusV1").Methods("GET")
}
