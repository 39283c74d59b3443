// Package main implements a command line client for the autoconfig daemon.
package main

import (
	"context"
	"flag"
	"fmt"
	"net"
	"os"
	"strconv"

	"github.com/google/subcommands"
)

var host = flag.String("host", "localhost", "host/IP of autoconfig server")
var port = flag.Uint("port", 8000, "HTTP port of autoconfig server")

func main() {
	// Important top-level flags.
	subcommands.ImportantFlag("host")
	subcommands.ImportantFlag("port")

	// Setup standard helpers.
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")

	// Setup my commands.
	subcommands.Register(&fetchCmd{}, "")
	subcommands.Register(&statusCmd{}, "")

	// Parse and execute.
	flag.Parse()
	ctx := context.Background()
	os.Exit(int(subcommands.Execute(ctx)))
}

func baseURL() string {
	return "http://" + net.JoinHostPort(*host, strconv.FormatUint(uint64(*port), 10))
}

func usage(msg string) subcommands.ExitStatus {
	fmt.Fprintln(os.Stderr, msg)
	return subcommands.ExitUsageError
}

func fatal(msg string, err error) subcommands.ExitStatus {
	fmt.Fprintf(os.Stderr, "%s: %v\n", msg, err)
	return subcommands.ExitFailure
}
