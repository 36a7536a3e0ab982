package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/vburojevic/logtally/internal/cli"
	"github.com/vburojevic/logtally/internal/config"
)

const quickStart = `logtally - count log levels in a log file

START HERE:
  logtally app.log

Flags:
  -l    Only report one level (e.g. -l ERROR)
  -o    Also write the summary to a file
  -j    Write the summary as JSON

Other useful commands:
  logtally config generate              Print a sample config file
  logtally --help                       Full usage
`

func main() {
	// Show quick start if no args provided
	if len(os.Args) == 1 {
		fmt.Print(quickStart)
		return
	}

	// Load configuration from files/environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
		cfg = config.Default()
	}

	var c cli.CLI

	ctx := kong.Parse(&c,
		kong.Name("logtally"),
		kong.Description("Count INFO/WARNING/ERROR and other uppercase levels in a log file"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}),
		cli.KongVars(cfg),
	)

	globals := cli.NewGlobalsWithConfig(&c, cfg)
	err = ctx.Run(globals)
	_ = globals.Logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}
