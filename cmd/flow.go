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

// flowCmd is the shared implementation behind deposit and withdraw.
type flowCmd struct {
	flowType trackline.FlowType
	date     string
	amount   string
	source   string
}

func (c *flowCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "0d", "Flow date (defaults to today).")
	f.StringVar(&c.amount, "amount", "", "Flow amount, a non-negative magnitude (required)")
	f.StringVar(&c.source, "source", "manual", "Origin of the flow")
}

func (c *flowCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.amount == "" {
		fmt.Fprintln(os.Stderr, "-amount is required")
		return subcommands.ExitUsageError
	}
	amount, err := decimal.NewFromString(c.amount)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing amount: %v\n", err)
		return subcommands.ExitUsageError
	}
	if amount.IsNegative() {
		fmt.Fprintln(os.Stderr, "amount must be a non-negative magnitude; use withdraw for outflows")
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
	ids := trackline.UUIDSource()
	tracker.AddFlow(trackline.CashFlow{
		ID:     ids(),
		Date:   on,
		Amount: trackline.M(amount, tracker.Currency),
		Type:   c.flowType,
		Source: c.source,
	})
	if err := SaveTrackerFile(tracker); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	Logger().WithField("date", on.String()).Info(c.flowType.String() + " recorded")
	return subcommands.ExitSuccess
}

type depositCmd struct{ flowCmd }

func (*depositCmd) Name() string     { return "deposit" }
func (*depositCmd) Synopsis() string { return "record a deposit into the account" }
func (*depositCmd) Usage() string {
	return `tln deposit -amount <amount> [-d <date>] [-source <tag>]

  Records money moved into the account. Deposits are capital movement, not
  performance: the analytics neutralize them.
`
}
func (c *depositCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	c.flowType = trackline.Deposit
	return c.flowCmd.Execute(ctx, f, args...)
}

type withdrawCmd struct{ flowCmd }

func (*withdrawCmd) Name() string     { return "withdraw" }
func (*withdrawCmd) Synopsis() string { return "record a withdrawal from the account" }
func (*withdrawCmd) Usage() string {
	return `tln withdraw -amount <amount> [-d <date>] [-source <tag>]

  Records money taken out of the account. Withdrawals are capital movement,
  not performance: the analytics neutralize them.
`
}
func (c *withdrawCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	c.flowType = trackline.Withdrawal
	return c.flowCmd.Execute(ctx, f, args...)
}
