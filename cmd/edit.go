package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/arjunmn/tracker"
)

// editCmd holds the flags for the 'edit' subcommand.
type editCmd struct {
	in       string
	id       string
	desc     string
	amount   string
	category string
	status   string
	bank     string
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "edit a record, keeping any field not given" }
func (*editCmd) Usage() string {
	return `mt edit -in <book> -id <id_prefix> [-desc <d>] [-amount <a>] [-category <n|name>] [-status <s>] [-bank <b>]

  Edits the record whose id starts with the given prefix. Only the fields
  actually given on the command line are changed; every other field keeps
  its current value. The record's date is never changed.
  A prefix shared by several records is rejected as ambiguous.

Usage Examples:
$ mt edit -in daily -id 3fa85f64 -amount 55
$ mt edit -in borrowed -id 3fa85f64 -status Paid

`
}

func (c *editCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.in, "in", "daily", "Book to edit in (daily, credit, borrowed, lent, loan)")
	f.StringVar(&c.id, "id", "", "Record id, or an unambiguous prefix of it")
	f.StringVar(&c.desc, "desc", "", "New description")
	f.StringVar(&c.amount, "amount", "", "New amount")
	f.StringVar(&c.category, "category", "", "New category, by number or name (daily only)")
	f.StringVar(&c.status, "status", "", "New status (borrowed/lent only)")
	f.StringVar(&c.bank, "bank", "", "New bank name (loan only)")
}

func (c *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	kind, err := tracker.ParseKind(c.in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	// Only flags the user actually set become part of the update.
	var update tracker.RecordUpdate
	var categorySet bool
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "desc":
			update.Description = &c.desc
		case "amount":
			update.Amount = &c.amount
		case "category":
			categorySet = true
		case "status":
			update.Status = &c.status
		case "bank":
			update.BankName = &c.bank
		}
	})
	if categorySet {
		category, err := resolveCategory(c.category)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		update.Category = &category
	}

	store, err := loadStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	id, err := store.ResolveID(kind, c.id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	rec, err := store.Edit(kind, id, update)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Updated %s record %s (id %s)\n", kind, rec.Description, rec.ShortID())
	return subcommands.ExitSuccess
}
