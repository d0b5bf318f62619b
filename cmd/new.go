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

type newCmd struct {
	name     string
	currency string
	start    string
	end      string
	amount   string
}

func (*newCmd) Name() string     { return "new" }
func (*newCmd) Synopsis() string { return "create a new tracker file" }
func (*newCmd) Usage() string {
	return `tln new -amount <amount> [-name <name>] [-currency <code>] [-s <date>] [-d <date>]

  Creates the tracker file with its span and starting amount. Fails if the
  file already exists.
`
}

func (c *newCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Tracker name")
	f.StringVar(&c.currency, "currency", "USD", "Reporting currency code")
	f.StringVar(&c.start, "s", "0d", "Tracker start date. See the user manual for supported date formats.")
	f.StringVar(&c.end, "d", "+1y", "Tracker end date (inclusive).")
	f.StringVar(&c.amount, "amount", "", "Starting amount (required)")
}

func (c *newCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.amount == "" {
		fmt.Fprintln(os.Stderr, "-amount is required")
		return subcommands.ExitUsageError
	}
	amount, err := decimal.NewFromString(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount: %v\n", err)
		return subcommands.ExitUsageError
	}
	start, err := trackline.ParseDate(c.start)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing start date: %v\n", err)
		return subcommands.ExitUsageError
	}
	end, err := trackline.ParseDate(c.end)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing end date: %v\n", err)
		return subcommands.ExitUsageError
	}

	if _, err := os.Stat(*trackerFile); err == nil {
		fmt.Fprintf(os.Stderr, "tracker file %q already exists\n", *trackerFile)
		return subcommands.ExitFailure
	}

	tracker := &trackline.Tracker{
		Name:           c.name,
		Currency:       c.currency,
		Start:          start,
		End:            end,
		StartingAmount: trackline.M(amount, c.currency),
		Actuals:        []trackline.ActualPoint{},
		Flows:          []trackline.CashFlow{},
	}
	if err := trackline.Validate(tracker); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	if err := SaveTrackerFile(tracker); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	Logger().WithField("file", *trackerFile).Info("tracker created")
	return subcommands.ExitSuccess
}
