package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"
)

// rateCmd holds the flags for the 'rate' subcommand.
type rateCmd struct {
	refresh bool
}

func (*rateCmd) Name() string     { return "rate" }
func (*rateCmd) Synopsis() string { return "display or refresh the KRW/USD exchange rate" }
func (*rateCmd) Usage() string {
	return `pbt rate [-refresh]

  Displays the cached KRW-per-USD rate and its age. A rate older than 12
  hours is refreshed automatically; -refresh forces a fetch regardless.
`
}

func (c *rateCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.refresh, "refresh", false, "Force a fetch from the provider even if the cached rate is fresh.")
}

func (c *rateCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s := openSession(ctx)
	defer s.flush()

	if c.refresh {
		// let the startup attempt finish before forcing another fetch.
		s.waitRate()
		ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		if _, err := s.rates.Refresh(ctx); err != nil {
			fmt.Fprintf(os.Stderr, "Error refreshing rate: %v\n", err)
			return subcommands.ExitFailure
		}
	} else {
		s.waitRate()
	}

	fmt.Printf("1 USD = %.2f KRW\n", s.rates.Rate())
	if at := s.rates.FetchedAt(); at > 0 {
		fetched := time.UnixMilli(at)
		fmt.Printf("fetched %s (%s ago)\n", fetched.Format(time.RFC3339), time.Since(fetched).Round(time.Minute))
	} else {
		fmt.Println("built-in default, never fetched")
	}
	return subcommands.ExitSuccess
}
