package cmd

import (
	"context"
	"flag"

	budget "github.com/rotanakkosal/personal-budget-tracking"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display totals and the per-category breakdown" }
func (*summaryCmd) Usage() string {
	return `pbt summary

  Displays total income, total expense and the remaining balance, in KRW
  and USD, plus the expense breakdown over every category.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {}

func (c *summaryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s := openSession(ctx)
	defer s.flush()

	// the summary reports USD figures, wait for a stale rate to refresh.
	s.waitRate()

	printMarkdown(summaryMarkdown(budget.NewSummary(s.ledger, s.rates.Rate())))
	if err := s.store.SetActiveTab(budget.TabSummary); err != nil {
		s.notices.Errorf("could not remember active tab: %v", err)
	}
	return subcommands.ExitSuccess
}
