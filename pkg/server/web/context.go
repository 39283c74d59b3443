package web

import (
	"net/http"

	"github.com/autoconfigd/autoconfigd/pkg/config"
	"github.com/autoconfigd/autoconfigd/pkg/provider"
)

// Context is passed into every request handler function.
type Context struct {
	Registry   *provider.Registry
	RootConfig *config.Root
}

// NewContext returns a Context for the given HTTP request.
func NewContext(req *http.Request) (*Context, error) {
	ctx := &Context{
		Registry:   registry,
		RootConfig: rootConfig,
	}
	return ctx, nil
}

// Close the Context (currently does nothing).
func (c *Context) Close() {}
