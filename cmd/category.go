package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
)

// addCategoryCmd holds the flags for the 'add-category' subcommand.
type addCategoryCmd struct{}

func (*addCategoryCmd) Name() string     { return "add-category" }
func (*addCategoryCmd) Synopsis() string { return "define a new expense category" }
func (*addCategoryCmd) Usage() string {
	return `pbt add-category <name>

  Adds a category to the set. Names are kept as typed, but two categories
  may not differ only by case. Categories are never removed automatically.
`
}

func (c *addCategoryCmd) SetFlags(f *flag.FlagSet) {}

func (c *addCategoryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	name := strings.TrimSpace(strings.Join(f.Args(), " "))
	if name == "" {
		fmt.Fprintln(os.Stderr, "Error: a category name is required.")
		return subcommands.ExitUsageError
	}

	s := openSession(ctx)
	defer s.flush()

	if err := s.ledger.AddCategory(name); err != nil {
		fmt.Fprintf(os.Stderr, "Error adding category: %v\n", err)
		return subcommands.ExitUsageError
	}
	s.save()
	s.notices.Infof("category %q added", name)
	return subcommands.ExitSuccess
}

// categoriesCmd lists the category set.
type categoriesCmd struct{}

func (*categoriesCmd) Name() string     { return "categories" }
func (*categoriesCmd) Synopsis() string { return "list the expense categories" }
func (*categoriesCmd) Usage() string {
	return `pbt categories

  Lists the category set, in order.
`
}

func (c *categoriesCmd) SetFlags(f *flag.FlagSet) {}

func (c *categoriesCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	s := openSession(ctx)
	defer s.flush()

	var b strings.Builder
	b.WriteString("# Categories\n\n")
	for _, category := range s.ledger.Categories() {
		fmt.Fprintf(&b, "* %s\n", category)
	}
	printMarkdown(b.String())
	return subcommands.ExitSuccess
}
