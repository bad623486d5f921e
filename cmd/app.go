// Package cmd implements the ptrack command line application.
package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/teecush/tracker"
	"github.com/teecush/tracker/agent"
	"github.com/teecush/tracker/config"
	"github.com/teecush/tracker/insight"
	"github.com/teecush/tracker/logger"
)

// Commands are all the ptrack subcommands.
var Commands = []subcommands.Command{
	&dashboardCmd{},
	&insightsCmd{},
	&logCmd{},
	&addCmd{},
	&deleteCmd{},
	&importCmd{},
	&exportCmd{},
	&refreshCmd{},
	&alertCmd{},
	&serveCmd{},
	&publishCmd{},
	&assistCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataFile = flag.String("data", "", "Path to the CSV data file. Defaults to PTRACK_DATA or investment_data.csv")
var currency = flag.String("currency", "", "Currency of the amounts. Defaults to PTRACK_CURRENCY or USD")

// settings loads the configuration, applies the global flags over it and
// initializes the logger.
func settings() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if *dataFile != "" {
		cfg.DataFile = *dataFile
	}
	if *currency != "" {
		cfg.Currency = strings.ToUpper(*currency)
	}
	logger.Init(cfg.Env)
	return cfg, nil
}

func openStore(cfg *config.Config) *tracker.Store {
	return tracker.NewStore(cfg.DataFile, cfg.Currency)
}

// primary returns the configured Google Sheet, or nil.
func primary(cfg *config.Config) tracker.Source {
	if cfg.SheetID == "" {
		return nil
	}
	return tracker.NewSheet(cfg.SheetID, cfg.Currency)
}

// loadTable loads the table through the fallback pipeline and prints its warnings.
func loadTable(ctx context.Context, cfg *config.Config) tracker.Table {
	res := tracker.Load(ctx, primary(cfg), openStore(cfg))
	for _, w := range res.Warnings {
		fmt.Fprintln(os.Stderr, "Warning:", w)
	}
	return res.Table
}

// newGenerator returns the insight generator selected by the configuration.
func newGenerator(ctx context.Context, cfg *config.Config) (insight.Generator, error) {
	if cfg.Insights != config.InsightsAI {
		return insight.NewLocal(), nil
	}
	model, err := agent.NewGemini(ctx, cfg.GeminiAPIKey, cfg.Model)
	if err != nil {
		return nil, err
	}
	return agent.NewNarrator(model), nil
}

// setup is the common prologue of commands reading the table.
func setup(ctx context.Context) (*config.Config, tracker.Table, subcommands.ExitStatus) {
	cfg, err := settings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return nil, nil, subcommands.ExitFailure
	}
	return cfg, loadTable(ctx, cfg), subcommands.ExitSuccess
}
