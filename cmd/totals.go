package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/arjunmn/tracker/renderer"
)

// totalsCmd holds the flags for the 'totals' subcommand.
type totalsCmd struct{}

func (*totalsCmd) Name() string     { return "totals" }
func (*totalsCmd) Synopsis() string { return "display the financial summary" }
func (*totalsCmd) Usage() string {
	return `mt totals

  Displays the flat totals of the daily, credit and loan books and their
  grand total. Borrowed and lent records are money in transit and are not
  part of the grand total.

`
}

func (*totalsCmd) SetFlags(f *flag.FlagSet) {}

func (c *totalsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := loadStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.SummaryMarkdown(store.GenerateTotals()))
	return subcommands.ExitSuccess
}
