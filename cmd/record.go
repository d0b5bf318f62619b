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

type recordCmd struct {
	date   string
	amount string
	source string
}

func (*recordCmd) Name() string     { return "record" }
func (*recordCmd) Synopsis() string { return "record an actual account value snapshot" }
func (*recordCmd) Usage() string {
	return `tln record -amount <amount> [-d <date>] [-source <tag>]

  Records the realized account value on a date. Recording twice on the same
  date replaces the earlier snapshot.
`
}

func (c *recordCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "0d", "Snapshot date (defaults to today).")
	f.StringVar(&c.amount, "amount", "", "Account value (required)")
	f.StringVar(&c.source, "source", "manual", "Origin of the snapshot, e.g. manual or brokerage")
}

func (c *recordCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.amount == "" {
		fmt.Fprintln(os.Stderr, "-amount is required")
		return subcommands.ExitUsageError
	}
	amount, err := decimal.NewFromString(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount: %v\n", err)
		return subcommands.ExitUsageError
	}
	on, err := trackline.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	tracker, err := DecodeTrackerFile()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	tracker.UpsertActual(trackline.ActualPoint{
		Date:   on,
		Amount: trackline.M(amount, tracker.Currency),
		Source: c.source,
	})
	if err := SaveTrackerFile(tracker); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	Logger().WithField("date", on.String()).Info("snapshot recorded")
	return subcommands.ExitSuccess
}
