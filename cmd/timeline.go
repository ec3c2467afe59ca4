package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/arjunmn/tracker"
	"github.com/arjunmn/tracker/renderer"
)

// timelineCmd holds the flags for the 'timeline' subcommand.
type timelineCmd struct {
	in string
}

func (*timelineCmd) Name() string     { return "timeline" }
func (*timelineCmd) Synopsis() string { return "display a book grouped by date, most recent first" }
func (*timelineCmd) Usage() string {
	return `mt timeline -in <book>

  Displays the records of one book grouped by date, most recent day first,
  with per-day totals and the book's grand total. The short ids shown can be
  used with 'mt edit' and 'mt rm'.

Usage Examples:
$ mt timeline -in daily

`
}

func (c *timelineCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.in, "in", "daily", "Book to display (daily, credit, borrowed, lent, loan)")
}

func (c *timelineCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	report := store.BuildTimeline(kind)
	printMarkdown(renderer.TimelineMarkdown(report))
	return subcommands.ExitSuccess
}
