// Package renderer turns trackline reports into markdown for terminal or
// plain-text display.
package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/trackline/trackline"
)

// ReviewMarkdown renders the full analytics review to a markdown string.
func ReviewMarkdown(r *trackline.Review) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	title := r.Tracker
	if title == "" {
		title = "Tracker"
	}
	doc.H1(fmt.Sprintf("%s: review %s to %s", title, r.Span.From, r.Span.To))
	doc.PlainText(fmt.Sprintf("Scenario: %s (%+.2f%% every %d business days)",
		scenarioLabel(r.Scenario), r.Scenario.IncreasePercent, r.Scenario.IntervalDays))

	doc.H2("Summary")
	summary := md.TableSet{
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Total return", r.TotalReturn.SignedString()},
			{"Annualized return", r.AnnualizedReturn.SignedString()},
			{"Volatility (annualized)", r.Volatility.String()},
			{"Sharpe ratio", fmt.Sprintf("%.2f", r.Sharpe)},
			{"Max drawdown", r.MaxDrawdown.String()},
			{"Current drawdown", r.CurrentDrawdown.String()},
			{"Win rate", r.WinRate.String()},
		},
	}
	doc.Table(summary)

	if r.HasEstimate {
		doc.H2("Realized rate")
		doc.PlainText(fmt.Sprintf(
			"Over %d observed business days the account grew %s in total, i.e. %s per %d-business-day interval (%s per day).",
			r.Estimate.BusinessDays,
			r.Estimate.CumulativePercent().SignedString(),
			r.Estimate.IntervalPercent(r.Scenario.IntervalDays).SignedString(),
			r.Scenario.IntervalDays,
			trackline.Percent(r.Estimate.DailyRate*100).SignedString(),
		))
	} else {
		doc.PlainText("Not enough data yet to estimate a realized rate (need at least two snapshots).")
	}

	if len(r.Drawdowns.Periods) > 0 {
		doc.H2("Drawdown periods")
		rows := make([][]string, 0, len(r.Drawdowns.Periods))
		for _, p := range r.Drawdowns.Periods {
			end := "ongoing"
			if p.Recovered {
				end = p.End.String()
			}
			rows = append(rows, []string{p.Start.String(), end, p.Trough.String(), p.Depth.String(), yesNo(p.Recovered)})
		}
		doc.Table(md.TableSet{
			Header: []string{"Peak", "End", "Trough", "Depth", "Recovered"},
			Rows:   rows,
		})
	}

	if len(r.Rolling) > 0 {
		doc.H2("Rolling returns")
		rows := make([][]string, 0, len(r.Rolling))
		for _, series := range r.Rolling {
			latest := "-"
			if n := len(series.Points); n > 0 {
				p := series.Points[n-1]
				latest = fmt.Sprintf("%s on %s", p.Return.SignedString(), p.Date)
			}
			rows = append(rows, []string{fmt.Sprintf("%dd", series.WindowDays), fmt.Sprintf("%d", len(series.Points)), latest})
		}
		doc.Table(md.TableSet{
			Header: []string{"Window", "Points", "Latest"},
			Rows:   rows,
		})
	}

	if len(r.Best) > 0 {
		doc.H2("Best and worst periods")
		rows := make([][]string, 0, len(r.Best)+len(r.Worst))
		for _, p := range r.Best {
			rows = append(rows, periodRow("best", p))
		}
		for _, p := range r.Worst {
			rows = append(rows, periodRow("worst", p))
		}
		doc.Table(md.TableSet{
			Header: []string{"", "From", "To", "Return", "Days"},
			Rows:   rows,
		})
	}

	return doc.String()
}

// ProjectionMarkdown renders a projected curve as a table, sampling one row
// every 'every' days (every row when <= 1). The final day is always kept.
func ProjectionMarkdown(name, currency string, s trackline.Scenario, curve []trackline.ProjectedPoint, every int) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Projection: %s", scenarioLabel(s)))
	if name != "" {
		doc.PlainText(fmt.Sprintf("Tracker: %s", name))
	}

	if every < 1 {
		every = 1
	}
	var rows [][]string
	for i, p := range curve {
		if i%every != 0 && i != len(curve)-1 {
			continue
		}
		rows = append(rows, []string{
			p.Date.String(),
			fmt.Sprintf("%d", p.DayOffset),
			trackline.M(p.Amount, currency).String(),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Date", "Day", "Projected"},
		Rows:   rows,
	})

	return doc.String()
}

// EstimateMarkdown renders a realized-rate estimate.
func EstimateMarkdown(name string, e trackline.RateEstimate, intervalDays int) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Realized rate: %s", name))
	doc.Table(md.TableSet{
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Observed business days", fmt.Sprintf("%d", e.BusinessDays)},
			{"Cumulative return", e.CumulativePercent().SignedString()},
			{fmt.Sprintf("Per %d-business-day interval", intervalDays), e.IntervalPercent(intervalDays).SignedString()},
			{"Per business day", trackline.Percent(e.DailyRate * 100).SignedString()},
			{"Annualized", e.AnnualizedPercent().SignedString()},
		},
	})

	return doc.String()
}

func scenarioLabel(s trackline.Scenario) string {
	if s.Name != "" {
		return s.Name
	}
	if s.ID != "" {
		return s.ID
	}
	return "scenario"
}

func periodRow(kind string, p trackline.PerformancePeriod) []string {
	return []string{kind, p.Start.String(), p.End.String(), p.Return.SignedString(), fmt.Sprintf("%d", p.Days)}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
