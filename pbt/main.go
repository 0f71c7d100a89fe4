// Command pbt is a local-first personal budget tracker: income and expense
// records in KRW, a cached KRW/USD exchange rate, and JSON import/export.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	"github.com/rotanakkosal/personal-budget-tracking/cmd"
)

func main() {
	// optional .env for PBT_HOME / PBT_RATE_URL; a missing file is fine.
	_ = godotenv.Load()

	// shell completion: this returns immediately unless the shell asked
	// for completions.
	sub := make(map[string]*complete.Command, len(cmd.Commands))
	for _, c := range cmd.Commands {
		sub[c.Name()] = &complete.Command{}
	}
	completer := &complete.Command{
		Sub: sub,
		Flags: map[string]complete.Predictor{
			"data-dir": predict.Dirs("*"),
			"rate-url": predict.Nothing,
		},
	}
	completer.Complete("pbt")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
