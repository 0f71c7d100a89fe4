package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// clearCmd holds the flags for the 'clear' subcommand.
type clearCmd struct {
	assumeYes bool
}

func (*clearCmd) Name() string     { return "clear" }
func (*clearCmd) Synopsis() string { return "delete all records and reset the categories" }
func (*clearCmd) Usage() string {
	return `pbt clear [-y]

  Deletes every income and expense record and resets the category set to
  the defaults. This cannot be undone, so it asks for confirmation unless
  -y is given. Consider 'pbt export' first.
`
}

func (c *clearCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.assumeYes, "y", false, "Do not ask for confirmation.")
}

func (c *clearCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !confirm("Delete ALL records? This cannot be undone.", c.assumeYes) {
		fmt.Fprintln(os.Stderr, "Aborted, nothing changed.")
		return subcommands.ExitSuccess
	}

	s := openSession(ctx)
	defer s.flush()

	s.ledger.Clear()
	s.save()
	s.notices.Infof("all records deleted, categories reset")
	return subcommands.ExitSuccess
}
