package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/subcommands"
	"github.com/teecush/tracker"
	"github.com/teecush/tracker/insight"
	"github.com/teecush/tracker/renderer"
)

type publishCmd struct {
	output string
	title  string
}

func (*publishCmd) Name() string { return "publish" }

func (*publishCmd) Synopsis() string { return "write the dashboard as a standalone HTML page" }

func (*publishCmd) Usage() string {
	return `ptrack publish [-o <file.html>] [-title <title>]

  Renders the dashboard, insights included, as a single HTML page that can be
  opened without ptrack.
`
}

func (c *publishCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "dashboard.html", "Output HTML file")
	f.StringVar(&c.title, "title", renderer.DefaultTitle, "Page title")
}

func (c *publishCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, t, status := setup(ctx)
	if status != subcommands.ExitSuccess {
		return status
	}
	m := tracker.ComputeMetrics(t)

	text := ""
	if len(t) > 0 {
		g, err := newGenerator(ctx, cfg)
		if err != nil {
			text = insight.Warning(err)
		} else {
			text = insight.Text(ctx, g, t, m)
		}
	}
	d := renderer.NewDashboard(t, m, text)
	d.Title = c.title

	page, err := renderer.Page(c.title, renderer.RenderDashboard(d))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to render page: %v\n", err)
		return subcommands.ExitFailure
	}
	if dir := filepath.Dir(c.output); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			fmt.Fprintf(os.Stderr, "failed to create output directory: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	if err := os.WriteFile(c.output, []byte(page), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write %s: %v\n", c.output, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Published %d transactions to %s\n", len(t), c.output)
	return subcommands.ExitSuccess
}
