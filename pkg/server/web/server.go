// Package web provides the HTTP plumbing for the autoconfig daemon.
package web

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/autoconfigd/autoconfigd/pkg/config"
	"github.com/autoconfigd/autoconfigd/pkg/provider"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
)

var (
	// Router is shared with the rest package; it sends incoming requests to
	// the correct handler function.
	Router = mux.NewRouter()

	registry       *provider.Registry
	rootConfig     *config.Root
	server         *http.Server
	listener       net.Listener
	globalShutdown chan bool
)

// Initialize sets up things for unit tests or the Start() method.
func Initialize(conf *config.Root, shutdownChan chan bool, reg *provider.Registry) {
	rootConfig = conf
	globalShutdown = shutdownChan
	registry = reg

	Router.NotFoundHandler = noMatchHandler(http.StatusNotFound, "No route matches URI path")
	Router.MethodNotAllowedHandler = noMatchHandler(
		http.StatusMethodNotAllowed, "Method not allowed for URI path")
}

// Start begins listening for HTTP requests.
func Start(ctx context.Context) {
	slog := log.With().Str("module", "web").Logger()
	server = &http.Server{
		Addr:         rootConfig.Web.Addr,
		Handler:      requestLoggingWrapper(Router),
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	// We don't use ListenAndServe because it lacks a way to close the listener.
	slog.Info().Str("addr", rootConfig.Web.Addr).Msg("HTTP listening on tcp4")
	var err error
	listener, err = net.Listen("tcp", rootConfig.Web.Addr)
	if err != nil {
		slog.Error().Err(err).Msg("HTTP failed to start TCP4 listener")
		emergencyShutdown()
		return
	}

	// Listener go routine.
	go serve(ctx)

	// Wait for shutdown.
	<-ctx.Done()
	slog.Debug().Msg("HTTP server shutting down on request")

	// Closing the listener will cause the serve() go routine to exit.
	if err := listener.Close(); err != nil {
		slog.Error().Err(err).Msg("Failed to close HTTP listener")
	}
}

// serve begins serving HTTP requests.
func serve(ctx context.Context) {
	// server.Serve blocks until we close the listener.
	err := server.Serve(listener)

	select {
	case <-ctx.Done():
		// Nop.
	default:
		log.Error().Str("module", "web").Err(err).Msg("HTTP server failed")
		emergencyShutdown()
	}
}

func emergencyShutdown() {
	select {
	case <-globalShutdown:
	default:
		close(globalShutdown)
	}
}
