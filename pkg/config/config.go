// Package config stores the daemon configuration, processed from the
// environment.
package config

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/kelseyhightower/envconfig"
)

const (
	prefix      = "autoconfig"
	tableFormat = `The autoconfig daemon is configured via the environment. The following
environment variables can be used:

KEY	DEFAULT	DESCRIPTION
{{range .}}{{usage_key .}}	{{usage_default .}}	{{usage_description .}}
{{end}}`
)

var (
	// Version of this build, set by main
	Version = ""

	// BuildDate for this build, set by main
	BuildDate = ""
)

// Root contains all configuration for the autoconfig daemon.
type Root struct {
	LogLevel  string `required:"true" default:"info" desc:"debug, info, warn, or error"`
	Web       Web
	Providers Providers
}

// Web contains the HTTP server configuration.
type Web struct {
	Addr     string `required:"true" default:"0.0.0.0:8000" desc:"Web server IP4 host:port"`
	BasePath string `desc:"Base path prefix for served URLs"`
}

// Providers contains the provider definitions configuration.
type Providers struct {
	Path string `required:"true" default:"providers.yaml" desc:"Provider definitions YAML file"`
}

// Process loads and parses configuration from the environment.
func Process() (*Root, error) {
	c := &Root{}
	if err := envconfig.Process(prefix, c); err != nil {
		return nil, err
	}
	c.LogLevel = strings.ToLower(c.LogLevel)
	c.Web.BasePath = strings.Trim(c.Web.BasePath, "/")
	if c.Web.BasePath != "" {
		c.Web.BasePath = "/" + c.Web.BasePath
	}
	return c, nil
}

// Usage prints out the envconfig usage to Stderr.
func Usage() {
	tabs := tabwriter.NewWriter(os.Stderr, 1, 0, 4, ' ', 0)
	if err := envconfig.Usagef(prefix, &Root{}, tabs, tableFormat); err != nil {
		fmt.Fprintf(os.Stderr, "Unable to render env config usage: %v\n", err)
		os.Exit(1)
	}
	_ = tabs.Flush()
}
