// Package cmd implements the CLI application to manage the money tracker.
package cmd

import (
	"flag"
	"fmt"
	"strconv"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"

	"github.com/arjunmn/tracker"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&addCmd{}, "records")
	c.Register(&loanCmd{}, "records")
	c.Register(&editCmd{}, "records")
	c.Register(&rmCmd{}, "records")

	c.Register(&timelineCmd{}, "reports")
	c.Register(&totalsCmd{}, "reports")
	c.Register(&categoriesCmd{}, "reports")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataFile = flag.String("f", "money_tracker_data.json", "Path to the data file")

// loadStore opens the app data file; the returned store flushes itself back
// to the same file after every mutation.
func loadStore() (*tracker.Store, error) {
	return tracker.LoadStore(*dataFile)
}

// resolveCategory accepts either a 1-based index into the category list or
// an exact category name.
func resolveCategory(s string) (string, error) {
	if n, err := strconv.Atoi(s); err == nil {
		return tracker.CategoryAt(n)
	}
	return tracker.ParseCategory(s)
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when the renderer cannot be set up.
func printMarkdown(text string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(0))
	if err != nil {
		fmt.Print(text)
		return
	}
	out, err := r.Render(text)
	if err != nil {
		fmt.Print(text)
		return
	}
	fmt.Print(out)
}
