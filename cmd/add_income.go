package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	budget "github.com/rotanakkosal/personal-budget-tracking"
	"github.com/google/subcommands"
)

// addIncomeCmd holds the flags for the 'add-income' subcommand.
type addIncomeCmd struct {
	date   string
	desc   string
	amount string
	notes  string
}

func (*addIncomeCmd) Name() string     { return "add-income" }
func (*addIncomeCmd) Synopsis() string { return "record a new income entry" }
func (*addIncomeCmd) Usage() string {
	return `pbt add-income -m <description> -a <amount> [-d <date>] [-n <notes>]

  Records an income entry. The amount is a positive integer in KRW.
`
}

func (c *addIncomeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", today(), "Date of the income, free form, defaults to today.")
	f.StringVar(&c.desc, "m", "", "Description of the income.")
	f.StringVar(&c.amount, "a", "", "Amount in KRW.")
	f.StringVar(&c.notes, "n", "", "Optional notes.")
}

func (c *addIncomeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s := openSession(ctx)
	defer s.flush()

	r, err := s.ledger.AddIncome(budget.RecordFields{
		Date:   c.date,
		Desc:   c.desc,
		Amount: c.amount,
		Notes:  c.notes,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error adding income: %v\n", err)
		return subcommands.ExitUsageError
	}
	s.save()
	s.notices.Infof("income %q of %s recorded", r.Desc, r.KRW())
	return subcommands.ExitSuccess
}
