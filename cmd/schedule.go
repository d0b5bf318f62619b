package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
	"github.com/trackline/trackline"
)

type scheduleCmd struct {
	frequency string
	amount    string
	start     string
	end       string
}

func (*scheduleCmd) Name() string     { return "schedule" }
func (*scheduleCmd) Synopsis() string { return "expand a recurring deposit plan into cash flows" }
func (*scheduleCmd) Usage() string {
	return `tln schedule -amount <amount> [-freq <frequency>] [-s <date>] [-d <date>]

  Expands a recurring deposit plan (daily, weekly, biweekly or monthly) into
  concrete deposit records over the tracker span, optionally narrowed by -s
  and -d, and appends them to the tracker file.
`
}

func (c *scheduleCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.frequency, "freq", "monthly", "Deposit frequency: daily, weekly, biweekly or monthly")
	f.StringVar(&c.amount, "amount", "", "Deposit amount per occurrence (required)")
	f.StringVar(&c.start, "s", "", "Optional first deposit date, narrower than the tracker span")
	f.StringVar(&c.end, "d", "", "Optional last deposit date, narrower than the tracker span")
}

func (c *scheduleCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.amount == "" {
		fmt.Fprintln(os.Stderr, "-amount is required")
		return subcommands.ExitUsageError
	}
	amount, err := decimal.NewFromString(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount: %v\n", err)
		return subcommands.ExitUsageError
	}
	frequency, err := trackline.ParseFrequency(c.frequency)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	tracker, err := DecodeTrackerFile()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	schedule := trackline.DepositSchedule{
		Enabled:   true,
		Frequency: frequency,
		Amount:    trackline.M(amount, tracker.Currency),
	}
	if c.start != "" {
		if schedule.Start, err = trackline.ParseDate(c.start); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing start date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}
	if c.end != "" {
		if schedule.End, err = trackline.ParseDate(c.end); err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing end date: %v\n", err)
			return subcommands.ExitUsageError
		}
	}

	flows := schedule.Expand(tracker.Span(), trackline.UUIDSource())
	for _, flow := range flows {
		tracker.AddFlow(flow)
	}
	if err := SaveTrackerFile(tracker); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	Logger().WithField("flows", len(flows)).Info("schedule expanded")
	return subcommands.ExitSuccess
}
