package cmd

import (
	"context"
	"flag"

	budget "github.com/rotanakkosal/personal-budget-tracking"
	"github.com/google/subcommands"
)

// showCmd replays the section the user looked at last.
type showCmd struct{}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "reopen the last viewed section" }
func (*showCmd) Usage() string {
	return `pbt show

  Displays the active tab: the income list, the expense list or the
  summary, whichever was viewed last.
`
}

func (c *showCmd) SetFlags(f *flag.FlagSet) {}

func (c *showCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s := openSession(ctx)
	defer s.flush()

	s.waitRate()

	switch s.store.ActiveTab() {
	case budget.TabExpenses:
		printMarkdown(expenseMarkdown(s.ledger, s.rates.Rate()))
	case budget.TabSummary:
		printMarkdown(summaryMarkdown(budget.NewSummary(s.ledger, s.rates.Rate())))
	default:
		printMarkdown(incomeMarkdown(s.ledger, s.rates.Rate()))
	}
	return subcommands.ExitSuccess
}
