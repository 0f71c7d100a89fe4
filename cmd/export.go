package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	budget "github.com/rotanakkosal/personal-budget-tracking"
	"github.com/google/subcommands"
)

// exportCmd holds the flags for the 'export' subcommand.
type exportCmd struct {
	output string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "write a backup document of the whole ledger" }
func (*exportCmd) Usage() string {
	return `pbt export [-o <file>]

  Writes the versioned JSON snapshot of the ledger and the current rate.
  The default file name encodes today's date. Use '-o -' for stdout.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Output file. Defaults to a date-stamped name in the current directory.")
}

func (c *exportCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s := openSession(ctx)
	defer s.flush()

	name := c.output
	if name == "" {
		name = budget.ExportFilename(time.Now())
	}

	if name == "-" {
		if err := budget.Export(os.Stdout, s.ledger, s.rates.Rate()); err != nil {
			fmt.Fprintf(os.Stderr, "Error exporting: %v\n", err)
			return subcommands.ExitFailure
		}
		return subcommands.ExitSuccess
	}

	file, err := os.Create(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", name, err)
		return subcommands.ExitFailure
	}
	defer file.Close()

	if err := budget.Export(file, s.ledger, s.rates.Rate()); err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting to %q: %v\n", name, err)
		return subcommands.ExitFailure
	}
	s.notices.Infof("ledger exported to %s", name)
	return subcommands.ExitSuccess
}
