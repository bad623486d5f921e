package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/teecush/tracker"
	"github.com/teecush/tracker/notify"
)

type alertCmd struct {
	to     string
	dryRun bool
}

func (*alertCmd) Name() string     { return "alert" }
func (*alertCmd) Synopsis() string { return "send the portfolio update by SMS" }
func (*alertCmd) Usage() string {
	return `ptrack alert [-to <phone number>] [-dry-run]

  Sends the five metrics by SMS through Twilio. See 'ptrack topic alerts'.
`
}

func (c *alertCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.to, "to", "", "Recipient phone number. Defaults to PTRACK_ALERT_TO.")
	f.BoolVar(&c.dryRun, "dry-run", false, "Print the message instead of sending it.")
}

func (c *alertCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, t, status := setup(ctx)
	if status != subcommands.ExitSuccess {
		return status
	}
	body := notify.UpdateMessage(tracker.ComputeMetrics(t))
	if c.dryRun {
		fmt.Println(body)
		return subcommands.ExitSuccess
	}

	to := c.to
	if to == "" {
		to = cfg.AlertTo
	}
	sms := notify.NewTwilio(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioPhoneNumber)
	sid, err := sms.Send(ctx, to, body)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Update sent to %s (%s)\n", to, sid)
	return subcommands.ExitSuccess
}
