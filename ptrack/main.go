// Command ptrack tracks the investments and the balance of a portfolio.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	"github.com/teecush/tracker/cmd"
	"github.com/teecush/tracker/docs"
	"github.com/teecush/tracker/logger"
)

func main() {
	completion().Complete("ptrack")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")

	known := map[string]bool{"help": true, "flags": true, "commands": true}
	for _, c := range cmd.Commands {
		commander.Register(c, "")
		known[c.Name()] = true
	}

	flag.Parse()
	if name := flag.Arg(0); name != "" && !known[name] {
		if found, code := cmd.RunExtension(name, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}
	status := commander.Execute(context.Background())
	logger.Sync()
	os.Exit(int(status))
}

// completion describes ptrack for shell completion, enabled with COMP_INSTALL=1 ptrack.
func completion() *complete.Command {
	accounts := predict.Set{"RRSP", "TFSA", "FHSA", "RESP", "Non-Registered"}
	topics, _ := docs.GetAllTopics()

	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"data":     predict.Files("*.csv"),
			"currency": predict.Set{"USD", "CAD", "EUR", "GBP"},
		},
		Sub: map[string]*complete.Command{
			"dashboard": {Flags: map[string]complete.Predictor{"no-insights": nil}},
			"insights":  {Flags: map[string]complete.Predictor{"ai": nil}},
			"log":       {Flags: map[string]complete.Predictor{"head": predict.Something}},
			"add": {Flags: map[string]complete.Predictor{
				"d": predict.Something,
				"i": predict.Something,
				"b": predict.Something,
				"a": accounts,
				"n": predict.Something,
			}},
			"delete":  {},
			"import":  {Args: predict.Files("*.csv")},
			"export":  {Flags: map[string]complete.Predictor{"o": predict.Files("*.csv")}},
			"refresh": {},
			"alert": {Flags: map[string]complete.Predictor{
				"to":      predict.Something,
				"dry-run": nil,
			}},
			"serve": {Flags: map[string]complete.Predictor{"addr": predict.Something}},
			"publish": {Flags: map[string]complete.Predictor{
				"o":     predict.Files("*.html"),
				"title": predict.Something,
			}},
			"assist": {},
			"topic": {
				Flags: map[string]complete.Predictor{"list": nil},
				Args:  predict.Set(append(topics, docs.All)),
			},
		},
	}
}
