package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	budget "github.com/rotanakkosal/personal-budget-tracking"
	"github.com/google/subcommands"
)

// deleteCmd holds the flags for the 'delete' subcommand.
type deleteCmd struct {
	kind      string
	id        string
	assumeYes bool
}

func (*deleteCmd) Name() string     { return "delete" }
func (*deleteCmd) Synopsis() string { return "delete a single income or expense record" }
func (*deleteCmd) Usage() string {
	return `pbt delete -k <income|expense> -id <record_id> [-y]

  Deletes one record by id. Deletion is irreversible, so it asks for
  confirmation unless -y is given. Deleting an id that does not exist is a
  no-op. The record's category, if any, stays in the category set.
`
}

func (c *deleteCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "k", "", "Kind of record to delete: income or expense.")
	f.StringVar(&c.id, "id", "", "Identifier of the record, as shown by 'pbt tx'.")
	f.BoolVar(&c.assumeYes, "y", false, "Do not ask for confirmation.")
}

func (c *deleteCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	kind, err := budget.ParseRecordKind(c.kind)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if c.id == "" {
		fmt.Fprintln(os.Stderr, "Error: -id is required.")
		return subcommands.ExitUsageError
	}
	if !confirm(fmt.Sprintf("Delete %s record %s? This cannot be undone.", kind, c.id), c.assumeYes) {
		fmt.Fprintln(os.Stderr, "Aborted.")
		return subcommands.ExitSuccess
	}

	s := openSession(ctx)
	defer s.flush()

	if s.ledger.DeleteRecord(c.id, kind) {
		s.save()
		s.notices.Infof("%s record %s deleted", kind, c.id)
	} else {
		s.notices.Infof("no %s record with id %s, nothing deleted", kind, c.id)
	}
	return subcommands.ExitSuccess
}
