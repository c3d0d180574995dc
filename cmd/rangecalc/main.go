// Binary rangecalc prints the union of include ranges minus the union of
// exclude ranges.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"
	"github.com/henderiw/rangecalc/pkg/cli"
	log "github.com/sirupsen/logrus"
)

var (
	debug     = flag.Bool("debug", false, "enable debug logging")
	logFormat = flag.String("log-format", "text", "log format (text, json)")
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(cli.NewCompute(os.Stdout, os.Stderr), "")
	subcommands.Register(cli.NewMerge(os.Stdout, os.Stderr), "")
	subcommands.Register(cli.NewTable(os.Stdout, os.Stderr), "")

	// All subcommands must be registered before flag parsing.
	flag.Parse()

	log.SetOutput(os.Stderr)
	if *logFormat == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	}
	if *debug {
		log.SetLevel(log.DebugLevel)
	}

	os.Exit(int(subcommands.Execute(context.Background())))
}
