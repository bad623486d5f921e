package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/teecush/tracker"
)

type refreshCmd struct{}

func (*refreshCmd) Name() string     { return "refresh" }
func (*refreshCmd) Synopsis() string { return "download the Google Sheet into the data file" }
func (*refreshCmd) Usage() string {
	return `ptrack refresh

  Downloads the Google Sheet set by PTRACK_SHEET_ID and saves it as the data
  file. When the sheet cannot be read the data file is left untouched.
`
}

func (*refreshCmd) SetFlags(*flag.FlagSet) {}

func (*refreshCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := settings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitFailure
	}
	src := primary(cfg)
	if src == nil {
		fmt.Fprintln(os.Stderr, "Error: no Google Sheet configured, set PTRACK_SHEET_ID.")
		return subcommands.ExitUsageError
	}

	res := tracker.Load(ctx, src, openStore(cfg))
	for _, w := range res.Warnings {
		fmt.Fprintln(os.Stderr, "Warning:", w)
	}
	if res.Origin != src.String() {
		return subcommands.ExitFailure
	}
	fmt.Printf("Loaded %d transactions from %s into %s\n", len(res.Table), src, cfg.DataFile)
	return subcommands.ExitSuccess
}
