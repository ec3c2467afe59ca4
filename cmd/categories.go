package cmd

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/subcommands"

	"github.com/arjunmn/tracker"
)

// categoriesCmd holds the flags for the 'categories' subcommand.
type categoriesCmd struct{}

func (*categoriesCmd) Name() string     { return "categories" }
func (*categoriesCmd) Synopsis() string { return "list the daily expense categories" }
func (*categoriesCmd) Usage() string {
	return `mt categories

  Lists the daily expense categories with the numbers accepted by the
  -category flag of 'mt add' and 'mt edit'.

`
}

func (*categoriesCmd) SetFlags(f *flag.FlagSet) {}

func (c *categoriesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	for i, category := range tracker.ExpenseCategories {
		fmt.Printf("%2d. %s\n", i+1, category)
	}
	return subcommands.ExitSuccess
}
