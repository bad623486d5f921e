package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/teecush/tracker/renderer"
)

type logCmd struct {
	head int
}

func (*logCmd) Name() string     { return "log" }
func (*logCmd) Synopsis() string { return "list the transactions, newest first" }
func (*logCmd) Usage() string {
	return `ptrack log [-head <n>]

  Lists the transactions, newest first. The index in the first column is the one
  expected by 'ptrack delete'.
`
}

func (c *logCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.head, "head", 0, "Show only the N newest transactions.")
}

func (c *logCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	_, t, status := setup(ctx)
	if status != subcommands.ExitSuccess {
		return status
	}
	printMarkdown(renderer.Transactions(t, c.head))
	return subcommands.ExitSuccess
}
