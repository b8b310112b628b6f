package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
)

var version = "dev"

// CLI is the top-level command structure.
type CLI struct {
	Version kong.VersionFlag `help:"Print version and exit"`

	Simulate SimulateCmd `cmd:"" default:"withargs" help:"Simulate many rounds and report aggregate statistics"`
	Play     PlayCmd     `cmd:"" help:"Play an interactive session against the dealer"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("blackjacksim"),
		kong.Description("Blackjack round simulator for evaluating playing strategies."),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{"version": version},
	)

	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

func newLogger(debug bool) *log.Logger {
	level := log.WarnLevel
	if debug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: true,
	})
}
