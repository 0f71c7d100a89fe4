package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	budget "github.com/rotanakkosal/personal-budget-tracking"
	"github.com/google/subcommands"
)

// txCmd holds the flags for the 'tx' subcommand.
type txCmd struct {
	kind string
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list income or expense records" }
func (*txCmd) Usage() string {
	return `pbt tx [-k <income|expenses>]

  Lists the records of one collection, in the order they were recorded.
  The listed section becomes the active tab, reopened by 'pbt show'.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "k", "", "Collection to list: income or expenses. Defaults to the active tab.")
}

func (c *txCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s := openSession(ctx)
	defer s.flush()

	tab := s.store.ActiveTab()
	if c.kind != "" {
		kind, err := budget.ParseRecordKind(c.kind)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		if kind == budget.Income {
			tab = budget.TabIncome
		} else {
			tab = budget.TabExpenses
		}
	}
	if tab == budget.TabSummary {
		tab = budget.TabIncome
	}

	// amounts are rendered in USD too, so make sure the rate is current.
	s.waitRate()

	if tab == budget.TabIncome {
		printMarkdown(incomeMarkdown(s.ledger, s.rates.Rate()))
	} else {
		printMarkdown(expenseMarkdown(s.ledger, s.rates.Rate()))
	}
	if err := s.store.SetActiveTab(tab); err != nil {
		s.notices.Errorf("could not remember active tab: %v", err)
	}
	return subcommands.ExitSuccess
}
