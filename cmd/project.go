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

type projectCmd struct {
	scenario string
	every    int
	flows    bool
}

func (*projectCmd) Name() string     { return "project" }
func (*projectCmd) Synopsis() string { return "print the projected value curve for a scenario" }
func (*projectCmd) Usage() string {
	return `tln project [-scenario <id|name>] [-every <days>] [-flows]

  Prints the dense projected curve for a scenario, one row every few days.
  With -flows, cash flows are composed onto the curve.
`
}

func (c *projectCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.scenario, "scenario", "", "Scenario id or name. Defaults to the first visible scenario.")
	f.IntVar(&c.every, "every", 7, "Print one row every N days")
	f.BoolVar(&c.flows, "flows", false, "Compose cash flows onto the projected curve")
}

func (c *projectCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tracker, err := DecodeTrackerFile()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	scenario, ok := pickScenario(tracker, c.scenario)
	if !ok {
		fmt.Fprintln(os.Stderr, "no scenario found; run 'tln scenario' first")
		return subcommands.ExitFailure
	}

	curve := trackline.ProjectCurve(scenario, tracker.Start, tracker.StartingAmount.AsFloat(), tracker.End)
	if c.flows {
		composed := trackline.ComposeCurve(curve, scenario, tracker.StartingAmount.AsFloat(), tracker.Flows)
		for i := range curve {
			curve[i].Amount = composed[i].Value
		}
	}
	render(renderer.ProjectionMarkdown(tracker.Name, tracker.Currency, scenario, curve, c.every))
	return subcommands.ExitSuccess
}

// pickScenario resolves a scenario by id or name, falling back to the first
// visible one, then to the first one.
func pickScenario(t *trackline.Tracker, key string) (trackline.Scenario, bool) {
	if key != "" {
		return t.FindScenario(key)
	}
	for _, s := range t.Scenarios {
		if s.Visible {
			return s, true
		}
	}
	if len(t.Scenarios) > 0 {
		return t.Scenarios[0], true
	}
	return trackline.Scenario{}, false
}
