package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/trackline/trackline"
)

type scenarioCmd struct {
	name     string
	rate     float64
	interval int
	hidden   bool
}

func (*scenarioCmd) Name() string     { return "scenario" }
func (*scenarioCmd) Synopsis() string { return "add a growth scenario to the tracker" }
func (*scenarioCmd) Usage() string {
	return `tln scenario -rate <percent> -interval <business-days> [-name <name>] [-hidden]

  Adds a projection scenario: the account is assumed to grow by the given
  (signed) percentage once every interval of business days.
`
}

func (c *scenarioCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Optional scenario name")
	f.Float64Var(&c.rate, "rate", 0, "Growth percentage per interval, may be negative")
	f.IntVar(&c.interval, "interval", 5, "Compounding interval in business days (>= 1)")
	f.BoolVar(&c.hidden, "hidden", false, "Create the scenario hidden from charts")
}

func (c *scenarioCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.interval < 1 {
		fmt.Fprintln(os.Stderr, "-interval must be at least 1 business day")
		return subcommands.ExitUsageError
	}
	tracker, err := DecodeTrackerFile()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	ids := trackline.UUIDSource()
	scenario := trackline.Scenario{
		ID:              ids(),
		Name:            c.name,
		IncreasePercent: c.rate,
		IntervalDays:    c.interval,
		Visible:         !c.hidden,
	}
	tracker.AddScenario(scenario)

	if err := SaveTrackerFile(tracker); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	Logger().WithField("id", scenario.ID).Info("scenario added")
	return subcommands.ExitSuccess
}
