package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	budget "github.com/rotanakkosal/personal-budget-tracking"
	"github.com/google/subcommands"
)

// importCmd holds the flags for the 'import' subcommand.
type importCmd struct {
	input     string
	assumeYes bool
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "replace the ledger with an exported document" }
func (*importCmd) Usage() string {
	return `pbt import -i <file> [-y]

  Reads an export document and replaces the whole ledger with its contents.
  The current data is discarded, not merged, so it asks for confirmation
  unless -y is given. Entries with missing or broken fields are repaired,
  not rejected.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.input, "i", "", "Export document to read. Use '-' for stdin.")
	f.BoolVar(&c.assumeYes, "y", false, "Do not ask for confirmation.")
}

func (c *importCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.input == "" {
		fmt.Fprintln(os.Stderr, "Error: -i is required.")
		return subcommands.ExitUsageError
	}

	var in *os.File
	if c.input == "-" {
		if !c.assumeYes {
			// stdin is the document, there is nothing left to prompt on.
			fmt.Fprintln(os.Stderr, "Error: importing from stdin requires -y.")
			return subcommands.ExitUsageError
		}
		in = os.Stdin
	} else {
		file, err := os.Open(c.input)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening %q: %v\n", c.input, err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		in = file
	}

	imported, err := budget.Import(in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing %q: %v\n", c.input, err)
		return subcommands.ExitFailure
	}

	if !confirm("Importing replaces ALL current data. Continue?", c.assumeYes) {
		fmt.Fprintln(os.Stderr, "Aborted, nothing changed.")
		return subcommands.ExitSuccess
	}

	s := openSession(ctx)
	defer s.flush()

	s.ledger = imported
	s.save()
	s.notices.Infof("imported %d income and %d expense records", imported.NumIncomes(), imported.NumExpenses())
	return subcommands.ExitSuccess
}
