// Package server wires together the autoconfig daemon's services.
package server

import (
	"context"

	"github.com/autoconfigd/autoconfigd/pkg/config"
	"github.com/autoconfigd/autoconfigd/pkg/provider"
	"github.com/autoconfigd/autoconfigd/pkg/rest"
	"github.com/autoconfigd/autoconfigd/pkg/server/web"
)

// Services holds the configured and started services.
type Services struct {
	Registry *provider.Registry
}

// Prod wires up the production environment and starts the HTTP server.
func Prod(rootCtx context.Context, shutdownChan chan bool, conf *config.Root) (*Services, error) {
	registry, err := provider.Load(conf.Providers.Path)
	if err != nil {
		return nil, err
	}

	// Configure routes and start HTTP server.
	web.Initialize(conf, shutdownChan, registry)
	if conf.Web.BasePath == "" {
		rest.SetupRoutes(web.Router)
	} else {
		rest.SetupRoutes(web.Router.PathPrefix(conf.Web.BasePath).Subrouter())
	}
	go web.Start(rootCtx)

	return &Services{Registry: registry}, nil
}
