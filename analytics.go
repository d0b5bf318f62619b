package trackline

import (
	"math"
	"slices"
)

// tradingDaysPerYear is the conventional annualization factor.
const tradingDaysPerYear = 252

// DefaultRollingWindows are the lookback windows, in calendar days, used when
// the caller does not choose their own.
var DefaultRollingWindows = []int{30, 60, 90}

// AdjustedReturn computes the cash-flow-adjusted return between two dated
// values: the net flow effective between them is added to the starting value
// before comparing, so capital movement is not read as performance. It is 0
// when the adjusted start is not positive.
func AdjustedReturn(startValue, endValue, netFlow float64) Percent {
	adjustedStart := startValue + netFlow
	if adjustedStart <= 0 {
		return 0
	}
	return Percent((endValue - adjustedStart) / adjustedStart * 100)
}

// VariancePoint compares one actual snapshot against the projection on the
// same date, after adding the cumulative net cash flow to the projected base.
type VariancePoint struct {
	Date               Date
	Projected          float64 // projected base value
	ProjectedWithFlows float64 // base plus cumulative net cash flow
	Actual             float64
	Absolute           float64
	Percent            Percent // 0 when the adjusted projection is not positive
}

// Variance computes one point per actual snapshot whose date exists in the
// projected curve.
func Variance(points []ActualPoint, curve []ProjectedPoint, flows []CashFlow) []VariancePoint {
	byDate := make(map[Date]float64, len(curve))
	for _, p := range curve {
		byDate[p.Date] = p.Amount
	}
	cumulative := CumulativeFlows(NormalizeFlows(flows))

	var out []VariancePoint
	for _, a := range points {
		base, ok := byDate[a.Date]
		if !ok {
			continue
		}
		flow, _ := cumulative.ValueAsOf(a.Date)
		withFlows := base + flow
		actual := a.Amount.AsFloat()
		v := VariancePoint{
			Date:               a.Date,
			Projected:          base,
			ProjectedWithFlows: withFlows,
			Actual:             actual,
			Absolute:           actual - withFlows,
		}
		if withFlows > 0 {
			v.Percent = Percent(v.Absolute / withFlows * 100)
		}
		out = append(out, v)
	}
	return out
}

// WinRate is the fraction (0..1) of actual dates with a matching projected
// date where the actual value meets or beats the flow-adjusted projection.
func WinRate(points []ActualPoint, curve []ProjectedPoint, flows []CashFlow) float64 {
	variance := Variance(points, curve, flows)
	if len(variance) == 0 {
		return 0
	}
	wins := 0
	for _, v := range variance {
		if v.Actual >= v.ProjectedWithFlows {
			wins++
		}
	}
	return float64(wins) / float64(len(variance))
}

// DrawdownPoint is the drawdown, at one snapshot date, of the cash-flow
// neutralized value below its running peak.
type DrawdownPoint struct {
	Date     Date
	Drawdown Percent
}

// DrawdownPeriod is one decline from a peak. End is the zero Date while the
// decline is ongoing.
type DrawdownPeriod struct {
	Start     Date // date the peak was set
	End       Date // date a new peak recovered the decline; zero while ongoing
	Trough    Date // date of the deepest point
	Depth     Percent
	Recovered bool
}

// DrawdownReport holds the per-point drawdown series, the decline periods,
// and the headline max/current figures.
type DrawdownReport struct {
	Points   []DrawdownPoint
	Periods  []DrawdownPeriod
	Max      Percent
	MaxStart Date // peak date of the deepest decline
	MaxEnd   Date // trough date of the deepest decline
	Current  Percent
}

// Drawdowns computes declines on the cash-flow-neutralized series: each
// actual value has the cumulative net cash flow as of its date subtracted
// before being compared to the running peak, so deposits are never misread as
// gains and withdrawals never as losses.
func Drawdowns(points []ActualPoint, flows []CashFlow) *DrawdownReport {
	report := &DrawdownReport{}
	if len(points) == 0 {
		return report
	}
	sorted := slices.Clone(points)
	sortActuals(sorted)
	cumulative := CumulativeFlows(NormalizeFlows(flows))

	neutralize := func(a ActualPoint) float64 {
		flow, _ := cumulative.ValueAsOf(a.Date)
		return a.Amount.AsFloat() - flow
	}

	peak := neutralize(sorted[0])
	peakDate := sorted[0].Date
	var open *DrawdownPeriod

	for _, a := range sorted {
		neut := neutralize(a)
		if neut > peak {
			// New peak: any open decline is recovered.
			if open != nil {
				open.End = a.Date
				open.Recovered = true
				report.Periods = append(report.Periods, *open)
				open = nil
			}
			peak, peakDate = neut, a.Date
		}
		var dd Percent
		if peak > 0 && neut < peak {
			dd = Percent((peak - neut) / peak * 100)
		}
		if dd > 0 && open == nil {
			open = &DrawdownPeriod{Start: peakDate, Trough: a.Date, Depth: dd}
		}
		if open != nil && dd > open.Depth {
			open.Depth, open.Trough = dd, a.Date
		}
		report.Points = append(report.Points, DrawdownPoint{Date: a.Date, Drawdown: dd})
	}
	if open != nil {
		report.Periods = append(report.Periods, *open)
	}

	report.Current = report.Points[len(report.Points)-1].Drawdown
	for _, p := range report.Periods {
		if p.Depth > report.Max {
			report.Max = p.Depth
			report.MaxStart, report.MaxEnd = p.Start, p.Trough
		}
	}
	return report
}

// RollingReturn is the cash-flow-adjusted return over a fixed trailing
// window, recorded against the window's end date.
type RollingReturn struct {
	Date   Date
	Return Percent
}

// RollingSeries is the sparse rolling-return series for one window length.
type RollingSeries struct {
	WindowDays int
	Points     []RollingReturn
}

// RollingReturns computes, for each actual point, the adjusted return since
// the latest earlier point at or before (date - windowDays). Points without
// such a base are skipped, so the series is sparse.
func RollingReturns(points []ActualPoint, flows []CashFlow, windowDays int) []RollingReturn {
	sorted := slices.Clone(points)
	sortActuals(sorted)
	flows = NormalizeFlows(flows)

	var out []RollingReturn
	for i, a := range sorted {
		target := a.Date.Add(-windowDays)
		// Latest point at or before the target date.
		j, found := slices.BinarySearchFunc(sorted[:i], target, func(p ActualPoint, t Date) int {
			return p.Date.Compare(t)
		})
		if !found {
			j--
		}
		if j < 0 {
			continue
		}
		base := sorted[j]
		ret := AdjustedReturn(base.Amount.AsFloat(), a.Amount.AsFloat(), NetFlow(flows, base.Date, a.Date))
		out = append(out, RollingReturn{Date: a.Date, Return: ret})
	}
	return out
}

// RollingWindows computes one rolling series per window length.
func RollingWindows(points []ActualPoint, flows []CashFlow, windows []int) []RollingSeries {
	if len(windows) == 0 {
		windows = DefaultRollingWindows
	}
	out := make([]RollingSeries, 0, len(windows))
	for _, w := range windows {
		out = append(out, RollingSeries{WindowDays: w, Points: RollingReturns(points, flows, w)})
	}
	return out
}

// StepReturns computes the cash-flow-adjusted fractional returns between
// consecutive actual points.
func StepReturns(points []ActualPoint, flows []CashFlow) []float64 {
	sorted := slices.Clone(points)
	sortActuals(sorted)
	flows = NormalizeFlows(flows)

	var steps []float64
	for i := 1; i < len(sorted); i++ {
		p, q := sorted[i-1], sorted[i]
		ret := AdjustedReturn(p.Amount.AsFloat(), q.Amount.AsFloat(), NetFlow(flows, p.Date, q.Date))
		steps = append(steps, ret.Ratio())
	}
	return steps
}

// Volatility is the sample standard deviation of step-wise returns,
// optionally trimmed to the most recent lastN steps, annualized by the square
// root of 252. Simple sample statistics, not a model.
func Volatility(steps []float64, lastN int) float64 {
	if lastN > 0 && len(steps) > lastN {
		steps = steps[len(steps)-lastN:]
	}
	if len(steps) < 2 {
		return 0
	}
	var sum float64
	for _, r := range steps {
		sum += r
	}
	mean := sum / float64(len(steps))
	var squares float64
	for _, r := range steps {
		squares += (r - mean) * (r - mean)
	}
	std := math.Sqrt(squares / float64(len(steps)-1))
	return std * math.Sqrt(tradingDaysPerYear)
}

// SharpeRatio is the annualized mean step return in excess of the risk-free
// rate, divided by the annualized volatility. It is 0 when volatility is 0.
func SharpeRatio(steps []float64, riskFreeRate float64, lastN int) float64 {
	vol := Volatility(steps, lastN)
	if vol == 0 {
		return 0
	}
	if lastN > 0 && len(steps) > lastN {
		steps = steps[len(steps)-lastN:]
	}
	var sum float64
	for _, r := range steps {
		sum += r
	}
	mean := sum / float64(len(steps))
	return (mean*tradingDaysPerYear - riskFreeRate) / vol
}

// PerformancePeriod is the cash-flow-adjusted return realized between two
// snapshots bracketing one calendar period.
type PerformancePeriod struct {
	Start  Date
	End    Date
	Return Percent
	Days   int // calendar days between the bracketing snapshots
}

// PeriodReturns partitions the observed span into calendar periods (months by
// default) and computes the adjusted return realized in each. A period
// contributes only when both a starting snapshot (the last at or before the
// period start, or the first after it) and an ending snapshot (the last at or
// before the period end) exist and differ.
func PeriodReturns(points []ActualPoint, flows []CashFlow, period Period) []PerformancePeriod {
	if len(points) < 2 {
		return nil
	}
	sorted := slices.Clone(points)
	sortActuals(sorted)
	flows = NormalizeFlows(flows)

	first, last := sorted[0].Date, sorted[len(sorted)-1].Date

	// Latest point at or before 'on', or nil.
	asOf := func(on Date) *ActualPoint {
		i, found := slices.BinarySearchFunc(sorted, on, func(p ActualPoint, t Date) int {
			return p.Date.Compare(t)
		})
		if !found {
			i--
		}
		if i < 0 {
			return nil
		}
		return &sorted[i]
	}

	var out []PerformancePeriod
	for cursor := first.StartOf(period); !cursor.After(last); cursor = cursor.EndOf(period).Add(1) {
		rng := period.Range(cursor)
		start := asOf(rng.From)
		if start == nil {
			// Fall back to the first snapshot inside the period.
			for i := range sorted {
				if !sorted[i].Date.Before(rng.From) {
					start = &sorted[i]
					break
				}
			}
		}
		end := asOf(rng.To)
		if start == nil || end == nil || !end.Date.After(start.Date) {
			continue
		}
		ret := AdjustedReturn(start.Amount.AsFloat(), end.Amount.AsFloat(), NetFlow(flows, start.Date, end.Date))
		out = append(out, PerformancePeriod{
			Start:  start.Date,
			End:    end.Date,
			Return: ret,
			Days:   end.Date.Days(start.Date),
		})
	}
	return out
}

// BestWorst returns the n periods with the highest returns (best first) and
// the n with the lowest (worst first).
func BestWorst(periods []PerformancePeriod, n int) (best, worst []PerformancePeriod) {
	if n <= 0 || len(periods) == 0 {
		return nil, nil
	}
	sorted := slices.Clone(periods)
	slices.SortStableFunc(sorted, func(a, b PerformancePeriod) int {
		switch {
		case a.Return > b.Return:
			return -1
		case a.Return < b.Return:
			return 1
		default:
			return 0
		}
	})
	if n > len(sorted) {
		n = len(sorted)
	}
	best = slices.Clone(sorted[:n])
	worst = slices.Clone(sorted[len(sorted)-n:])
	slices.Reverse(worst)
	return best, worst
}
