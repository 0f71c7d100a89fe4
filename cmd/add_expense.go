package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	budget "github.com/rotanakkosal/personal-budget-tracking"
	"github.com/google/subcommands"
)

// addExpenseCmd holds the flags for the 'add-expense' subcommand.
type addExpenseCmd struct {
	date     string
	category string
	desc     string
	amount   string
	notes    string
}

func (*addExpenseCmd) Name() string     { return "add-expense" }
func (*addExpenseCmd) Synopsis() string { return "record a new expense entry" }
func (*addExpenseCmd) Usage() string {
	return `pbt add-expense -c <category> -m <description> -a <amount> [-d <date>] [-n <notes>]

  Records an expense entry. The category must already exist in the category
  set (see 'pbt categories' and 'pbt add-category').
`
}

func (c *addExpenseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", today(), "Date of the expense, free form, defaults to today.")
	f.StringVar(&c.category, "c", "", "Category of the expense.")
	f.StringVar(&c.desc, "m", "", "Description of the expense.")
	f.StringVar(&c.amount, "a", "", "Amount in KRW.")
	f.StringVar(&c.notes, "n", "", "Optional notes.")
}

func (c *addExpenseCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s := openSession(ctx)
	defer s.flush()

	r, err := s.ledger.AddExpense(budget.RecordFields{
		Date:     c.date,
		Category: c.category,
		Desc:     c.desc,
		Amount:   c.amount,
		Notes:    c.notes,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error adding expense: %v\n", err)
		return subcommands.ExitUsageError
	}
	s.save()
	s.notices.Infof("expense %q of %s recorded in %s", r.Desc, r.KRW(), r.Category)
	return subcommands.ExitSuccess
}
