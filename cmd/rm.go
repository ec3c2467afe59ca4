package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/arjunmn/tracker"
)

// rmCmd holds the flags for the 'rm' subcommand.
type rmCmd struct {
	in string
	id string
}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "delete a record by id" }
func (*rmCmd) Usage() string {
	return `mt rm -in <book> -id <id_prefix>

  Deletes the record whose id starts with the given prefix. A prefix shared
  by several records is rejected as ambiguous; an unknown id is reported and
  leaves the book unchanged.

Usage Examples:
$ mt rm -in daily -id 3fa85f64

`
}

func (c *rmCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.in, "in", "daily", "Book to delete from (daily, credit, borrowed, lent, loan)")
	f.StringVar(&c.id, "id", "", "Record id, or an unambiguous prefix of it")
}

func (c *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	kind, err := tracker.ParseKind(c.in)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
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

	if err := store.Delete(kind, id); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Deleted %s record (id %s)\n", kind, id)
	return subcommands.ExitSuccess
}
