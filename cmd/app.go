// Package cmd implements the CLI application to manage a personal budget.
package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	budget "github.com/rotanakkosal/personal-budget-tracking"
	"github.com/google/subcommands"
)

// Commands lists every subcommand of the application, for registration and
// for shell completion.
var Commands = []subcommands.Command{
	&addIncomeCmd{},
	&addExpenseCmd{},
	&addCategoryCmd{},
	&categoriesCmd{},
	&deleteCmd{},
	&txCmd{},
	&summaryCmd{},
	&showCmd{},
	&rateCmd{},
	&exportCmd{},
	&importCmd{},
	&clearCmd{},
	&topicCmd{},
}

// Register the subcommands on a commander.
func Register(c *subcommands.Commander) {
	for _, cmd := range Commands {
		c.Register(cmd, "")
	}
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataDirFlag = flag.String("data-dir", "", "Path to the data directory holding the ledger files.\n If missing it will read the environment variable \"PBT_HOME\", and default to ~/.pbt")
var rateURLFlag = flag.String("rate-url", "", "Exchange rate provider endpoint (KRW-based).\n If missing it will read the environment variable \"PBT_RATE_URL\", and default to the public provider.")

// DataDir resolves the data directory from flag, environment or default.
func DataDir() string {
	if *dataDirFlag != "" {
		return *dataDirFlag
	}
	if dir := os.Getenv("PBT_HOME"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".pbt"
	}
	return filepath.Join(home, ".pbt")
}

// RateURL resolves the rate provider endpoint from flag or environment.
// Empty selects the built-in default provider.
func RateURL() string {
	if *rateURLFlag != "" {
		return *rateURLFlag
	}
	return os.Getenv("PBT_RATE_URL")
}

// session bundles the state every data-touching command needs: the loaded
// ledger, the rate cache and the notification queue drained on exit.
type session struct {
	notices *budget.Notifier
	store   *budget.Store
	ledger  *budget.Ledger
	rates   *budget.RateCache

	rateDone   <-chan struct{}
	rateCancel context.CancelFunc
}

// openSession loads the ledger (with repair) and the persisted rate, and
// kicks the once-per-session rate refresh when the cached value is stale.
// Commands that render USD figures wait for it with waitRate; the others
// let it run for as long as they do, and flush abandons it on exit.
func openSession(ctx context.Context) *session {
	notices := budget.NewNotifier()
	store := budget.NewStore(DataDir(), notices)
	rates := budget.NewRateCache(store, notices, RateURL())
	rates.LoadPersisted()
	s := &session{
		notices: notices,
		store:   store,
		ledger:  store.LoadLedger(),
		rates:   rates,
	}
	if rates.Stale(time.Now()) {
		rctx, cancel := context.WithTimeout(ctx, 10*time.Second)
		s.rateDone = rates.RefreshAsync(rctx)
		s.rateCancel = cancel
	} else {
		done := make(chan struct{})
		close(done)
		s.rateDone = done
		s.rateCancel = func() {}
	}
	return s
}

// waitRate blocks until the startup rate refresh attempt is over.
func (s *session) waitRate() {
	<-s.rateDone
	s.rateCancel()
}

// save persists the ledger after a successful mutation. A storage failure
// is reported but the in-memory mutation stands.
func (s *session) save() {
	if err := s.store.SaveLedger(s.ledger); err != nil {
		s.notices.Errorf("could not save: %v", err)
	}
}

// flush prints the queued notifications to stderr and abandons a refresh
// that is still in flight.
func (s *session) flush() {
	// the session is over; a refresh resolving later must not commit.
	s.rates.Invalidate()
	s.rateCancel()
	for _, msg := range s.notices.Drain() {
		switch msg.Level {
		case budget.Error:
			fmt.Fprintf(os.Stderr, "⚠️  %s\n", msg.Text)
		default:
			fmt.Fprintf(os.Stderr, "✅ %s\n", msg.Text)
		}
	}
}

// confirm asks the user for an explicit yes before an irreversible action.
// The assumeYes flag (-y) skips the prompt for scripted use.
func confirm(prompt string, assumeYes bool) bool {
	if assumeYes {
		return true
	}
	fmt.Fprintf(os.Stderr, "%s [y/N]: ", prompt)
	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(scanner.Text()))
	return answer == "y" || answer == "yes"
}

// today returns the current date the way record dates are written.
func today() string {
	return time.Now().Format("2006-01-02")
}
