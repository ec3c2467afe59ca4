package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/arjunmn/tracker"
)

// addCmd holds the flags for the 'add' subcommand.
type addCmd struct {
	in       string
	desc     string
	amount   string
	category string
	status   string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "add a record to one of the books" }
func (*addCmd) Usage() string {
	return `mt add -in <book> -desc <description> -amount <amount> [-category <n|name>] [-status <status>]

  Adds a record dated today to the daily, credit, borrowed or lent book.
  Daily expenses require a category, given as a 1-based number into the
  category list (see 'mt categories') or as an exact name. Borrowed and lent
  records take an optional status, defaulting to "Pending".

Usage Examples:
# Add a daily grocery expense.
$ mt add -in daily -desc "Milk" -amount 50 -category 2

# Record money you borrowed.
$ mt add -in borrowed -desc "From Ravi" -amount 2000 -status Pending

`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.in, "in", "daily", "Book to add to (daily, credit, borrowed, lent)")
	f.StringVar(&c.desc, "desc", "", "Record description")
	f.StringVar(&c.amount, "amount", "", "Amount")
	f.StringVar(&c.category, "category", "", "Expense category, by number or name (daily only)")
	f.StringVar(&c.status, "status", "", "Status, e.g. Pending, Paid, Received (borrowed/lent only)")
}

func (c *addCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	kind, err := tracker.ParseKind(c.in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if kind == tracker.Loan {
		fmt.Fprintln(os.Stderr, "Error: use 'mt loan' to add a bank loan.")
		return subcommands.ExitUsageError
	}

	fields := tracker.NewRecord{Description: c.desc, Amount: c.amount, Status: c.status}
	if kind == tracker.Daily {
		category, err := resolveCategory(c.category)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		fields.Category = category
	}

	store, err := loadStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	rec, err := store.Add(kind, fields)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Added %s record %s: %s (id %s)\n", kind, rec.Amount, rec.Description, rec.ShortID())
	return subcommands.ExitSuccess
}
