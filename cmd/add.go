package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/teecush/tracker"
	"github.com/teecush/tracker/date"
)

type addCmd struct {
	date        string
	investment  float64
	balance     float64
	accountType string
	notes       string
}

func (*addCmd) Name() string     { return "add" }
func (*addCmd) Synopsis() string { return "record a transaction" }
func (*addCmd) Usage() string {
	return `ptrack add [-d <YYYY-MM-DD>] -i <investment> -b <total balance> -a <account type> [-n <notes>]

  Records the amount invested on a day and the total balance of the portfolio
  after it. The data file is rewritten sorted by date.
`
}

func (c *addCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", date.Today().String(), "Transaction date in YYYY-MM-DD format.")
	f.Float64Var(&c.investment, "i", 0, "Amount invested on that day, 0 for a balance update.")
	f.Float64Var(&c.balance, "b", 0, "Total balance of the portfolio after the transaction.")
	f.StringVar(&c.accountType, "a", "", "Account type, for instance RRSP, TFSA or Non-Registered.")
	f.StringVar(&c.notes, "n", "", "Optional notes.")
}

func (c *addCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := settings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitFailure
	}
	e := tracker.Entry{
		Date:        c.date,
		Investment:  c.investment,
		Balance:     c.balance,
		AccountType: c.accountType,
		Notes:       c.notes,
	}
	tx, err := e.Transaction(cfg.Currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	store := openStore(cfg)
	if _, err := store.Append(tx); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving transaction: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Transaction added successfully to %s\n", store)
	return subcommands.ExitSuccess
}
