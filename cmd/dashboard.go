package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/teecush/tracker"
	"github.com/teecush/tracker/insight"
	"github.com/teecush/tracker/renderer"
)

type dashboardCmd struct {
	noInsights bool
}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "show the metrics, the chart, the insights and the log" }
func (*dashboardCmd) Usage() string {
	return `ptrack dashboard [-no-insights]

  Shows the full dashboard: the five metrics, the balance over time, the insights
  and the transaction log, newest first.
`
}

func (c *dashboardCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.noInsights, "no-insights", false, "Skip the insights section.")
}

func (c *dashboardCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, t, status := setup(ctx)
	if status != subcommands.ExitSuccess {
		return status
	}
	m := tracker.ComputeMetrics(t)

	text := ""
	if !c.noInsights && len(t) > 0 {
		g, err := newGenerator(ctx, cfg)
		if err != nil {
			text = insight.Warning(err)
		} else {
			text = insight.Text(ctx, g, t, m)
		}
	}
	d := renderer.NewDashboard(t, m, text)
	if len(t) == 0 {
		fmt.Fprintln(os.Stderr, "No transactions yet. Add one with 'ptrack add'.")
	}
	printMarkdown(renderer.RenderDashboard(d))
	return subcommands.ExitSuccess
}
