package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/teecush/tracker"
	"github.com/teecush/tracker/config"
	"github.com/teecush/tracker/insight"
)

type insightsCmd struct {
	ai bool
}

func (*insightsCmd) Name() string     { return "insights" }
func (*insightsCmd) Synopsis() string { return "show insights about the portfolio" }
func (*insightsCmd) Usage() string {
	return `ptrack insights [-ai]

  Shows short observations about performance, growth, account concentration,
  projection and the current month. See 'ptrack topic insights'.
`
}

func (c *insightsCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.ai, "ai", false, "Ask the Gemini model whatever PTRACK_INSIGHTS says.")
}

func (c *insightsCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, t, status := setup(ctx)
	if status != subcommands.ExitSuccess {
		return status
	}
	if len(t) == 0 {
		fmt.Fprintln(os.Stderr, "Add more transactions to see insights.")
		return subcommands.ExitSuccess
	}
	if c.ai {
		cfg.Insights = config.InsightsAI
	}
	g, err := newGenerator(ctx, cfg)
	if err != nil {
		printMarkdown(insight.Warning(err) + "\n")
		return subcommands.ExitFailure
	}
	printMarkdown(insight.Text(ctx, g, t, tracker.ComputeMetrics(t)) + "\n")
	return subcommands.ExitSuccess
}
