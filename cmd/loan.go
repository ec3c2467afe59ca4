package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// loanCmd holds the flags for the 'loan' subcommand.
type loanCmd struct {
	desc   string
	amount string
	bank   string
}

func (*loanCmd) Name() string     { return "loan" }
func (*loanCmd) Synopsis() string { return "add a bank loan record" }
func (*loanCmd) Usage() string {
	return `mt loan -desc <description> -amount <amount> -bank <bank_name>

  Adds a bank loan record dated today.

Usage Examples:
$ mt loan -desc "Car loan installment" -amount 15000 -bank HDFC

`
}

func (c *loanCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.desc, "desc", "", "Loan description")
	f.StringVar(&c.amount, "amount", "", "Amount")
	f.StringVar(&c.bank, "bank", "", "Bank name")
}

func (c *loanCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := loadStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	rec, err := store.AddLoan(c.desc, c.amount, c.bank)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Added loan %s: %s (%s) (id %s)\n", rec.Amount, rec.Description, rec.BankName, rec.ShortID())
	return subcommands.ExitSuccess
}
