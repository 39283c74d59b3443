package main

import (
	"context"
	"flag"
	"os"

	"github.com/autoconfigd/autoconfigd/pkg/rest/client"
	"github.com/google/subcommands"
)

type fetchCmd struct {
	domainOnly bool
}

func (*fetchCmd) Name() string {
	return "fetch"
}

func (*fetchCmd) Synopsis() string {
	return "fetch the autoconfig document for an address"
}

func (*fetchCmd) Usage() string {
	return `fetch [-domain] <email address | domain>:
	print the rendered autoconfig XML document
`
}

func (f *fetchCmd) SetFlags(fs *flag.FlagSet) {
	fs.BoolVar(&f.domainOnly, "domain", false, "argument is a bare domain, serve placeholders literally")
}

func (f *fetchCmd) Execute(
	ctx context.Context, fs *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	arg := fs.Arg(0)
	if arg == "" {
		return usage("email address or domain required")
	}

	c, err := client.New(baseURL())
	if err != nil {
		return fatal("Couldn't build client", err)
	}

	var doc []byte
	if f.domainOnly {
		doc, err = c.GetClientConfigForDomain(ctx, arg)
	} else {
		doc, err = c.GetClientConfig(ctx, arg)
	}
	if err != nil {
		return fatal("REST call failed", err)
	}
	_, _ = os.Stdout.Write(doc)

	return subcommands.ExitSuccess
}
