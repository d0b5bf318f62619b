package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/trackline/trackline"
	"github.com/trackline/trackline/renderer"
)

type estimateCmd struct {
	interval int
}

func (*estimateCmd) Name() string     { return "estimate" }
func (*estimateCmd) Synopsis() string { return "estimate the realized growth rate from snapshots" }
func (*estimateCmd) Usage() string {
	return `tln estimate [-interval <business-days>]

  Estimates the realized, cash-flow-neutral growth rate from the recorded
  snapshots and reports it per business day, per interval, and annualized.
`
}

func (c *estimateCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.interval, "interval", 0, "Interval length in business days for the interval percentage. Defaults to the first scenario's interval, or 5.")
}

func (c *estimateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tracker, err := DecodeTrackerFile()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	interval := c.interval
	if interval < 1 {
		interval = 5
		if s, ok := pickScenario(tracker, ""); ok {
			interval = s.IntervalDays
		}
	}

	estimate, ok := trackline.EstimateRate(tracker.Actuals, tracker.Flows)
	if !ok {
		fmt.Fprintln(os.Stderr, "not enough data to estimate a rate: need at least two snapshots with a positive first value")
		return subcommands.ExitFailure
	}
	render(renderer.EstimateMarkdown(tracker.Name, estimate, interval))
	return subcommands.ExitSuccess
}
