package main

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/autoconfigd/autoconfigd/pkg/rest/client"
	"github.com/google/subcommands"
)

type statusCmd struct{}

func (*statusCmd) Name() string {
	return "status"
}

func (*statusCmd) Synopsis() string {
	return "print server status"
}

func (*statusCmd) Usage() string {
	return `status:
	print server version and served domains
`
}

func (s *statusCmd) SetFlags(f *flag.FlagSet) {}

func (s *statusCmd) Execute(
	ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	c, err := client.New(baseURL())
	if err != nil {
		return fatal("Couldn't build client", err)
	}

	status, err := c.GetServerStatus(ctx)
	if err != nil {
		return fatal("REST call failed", err)
	}
	fmt.Printf("version:   %s\n", status.Version)
	fmt.Printf("built:     %s\n", status.BuildDate)
	fmt.Printf("listener:  %s\n", status.WebListener)
	fmt.Printf("domains:   %s\n", strings.Join(status.Domains, ", "))

	return subcommands.ExitSuccess
}
