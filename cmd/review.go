package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/google/subcommands"
	"github.com/trackline/trackline"
	"github.com/trackline/trackline/renderer"
)

type reviewCmd struct {
	scenario string
	riskFree float64
	topN     int
	period   string
	windows  string
	lastN    int
}

func (*reviewCmd) Name() string     { return "review" }
func (*reviewCmd) Synopsis() string { return "full performance and risk review of the tracker" }
func (*reviewCmd) Usage() string {
	return `tln review [-scenario <id|name>] [-riskfree <rate>] [-top <n>] [-period <period>] [-windows <days,...>] [-last <n>]

  Computes the full analytics bundle for one scenario: variance against the
  projection, drawdowns, volatility, Sharpe ratio, rolling returns, and
  best/worst period attribution.
`
}

func (c *reviewCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.scenario, "scenario", "", "Scenario id or name. Defaults to the first visible scenario.")
	f.Float64Var(&c.riskFree, "riskfree", 0, "Annual risk-free rate as a fraction, e.g. 0.03")
	f.IntVar(&c.topN, "top", 3, "Number of best/worst periods to report")
	f.StringVar(&c.period, "period", trackline.Monthly.String(), "Attribution period (week, month, quarter, year)")
	f.StringVar(&c.windows, "windows", "", "Rolling windows in calendar days, comma separated (default 30,60,90)")
	f.IntVar(&c.lastN, "last", 0, "Trim volatility and Sharpe to the most recent N steps (0 keeps all)")
}

func (c *reviewCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	period, err := trackline.ParsePeriod(c.period)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	windows, err := parseWindows(c.windows)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	review, err := trackline.NewReview(tracker, scenario, trackline.ReviewOptions{
		Windows:           windows,
		RiskFreeRate:      c.riskFree,
		LastNSteps:        c.lastN,
		TopN:              c.topN,
		AttributionPeriod: period,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	render(renderer.ReviewMarkdown(review))
	return subcommands.ExitSuccess
}

func parseWindows(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	var windows []int
	for _, part := range strings.Split(s, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 1 {
			return nil, fmt.Errorf("invalid rolling window %q", part)
		}
		windows = append(windows, n)
	}
	return windows, nil
}
