package trackline

import (
	"math"
	"slices"
)

// RateEstimate is a realized, cash-flow-neutral growth rate inferred from
// sparse actual snapshots.
type RateEstimate struct {
	DailyRate        float64 // per-business-day rate
	BusinessDays     int     // total elapsed business days observed
	CumulativeReturn float64 // multiplicative return over the whole observed span
}

// IntervalPercent reports the estimated growth over an interval of the given
// length, by re-compounding the per-business-day rate over exactly
// intervalDays. Unlike the raw cumulative percentage, this is comparable
// across trackers with different observation spans.
func (e RateEstimate) IntervalPercent(intervalDays int) Percent {
	return Percent((math.Pow(1+e.DailyRate, float64(intervalDays)) - 1) * 100)
}

// CumulativePercent reports the raw percentage over the whole observed span.
func (e RateEstimate) CumulativePercent() Percent {
	return Percent((e.CumulativeReturn - 1) * 100)
}

// AnnualizedPercent re-compounds the daily rate over a 252 business-day year.
func (e RateEstimate) AnnualizedPercent() Percent {
	return e.IntervalPercent(252)
}

// EstimateRate infers the per-business-day growth rate from actual snapshots,
// neutralizing cash flows segment by segment: for each consecutive pair the
// net flow dated in (p, q] is subtracted from q before computing the
// segment's multiplicative return.
//
// It reports ok=false when there is nothing to estimate: fewer than two
// points, a non-positive first amount, zero elapsed business days (duplicate
// dates), or a non-positive cumulative return. These are normal states for a
// young tracker, not errors.
func EstimateRate(points []ActualPoint, flows []CashFlow) (RateEstimate, bool) {
	if len(points) < 2 {
		return RateEstimate{}, false
	}
	sorted := slices.Clone(points)
	sortActuals(sorted)
	if sorted[0].Amount.AsFloat() <= 0 {
		return RateEstimate{}, false
	}
	flows = NormalizeFlows(flows)

	// Fold over consecutive pairs accumulating (cumulative return, business days).
	type acc struct {
		ret  float64
		days int
	}
	a := acc{ret: 1}
	for i := 1; i < len(sorted); i++ {
		p, q := sorted[i-1], sorted[i]
		start := p.Amount.AsFloat()
		if start <= 0 {
			return RateEstimate{}, false
		}
		adjustedEnd := q.Amount.AsFloat() - NetFlow(flows, p.Date, q.Date)
		a = acc{
			ret:  a.ret * (adjustedEnd / start),
			days: a.days + CountBusinessDays(p.Date, q.Date),
		}
	}

	if a.days <= 0 || a.ret <= 0 {
		return RateEstimate{}, false
	}
	return RateEstimate{
		DailyRate:        math.Pow(a.ret, 1/float64(a.days)) - 1,
		BusinessDays:     a.days,
		CumulativeReturn: a.ret,
	}, true
}

// ActualTrend extrapolates an actual-trend curve forward from the latest
// known snapshot to 'end', compounding at the estimated daily rate and
// applying any flows dated after the snapshot. It returns nil when the
// snapshot list is empty or 'end' is not after the latest snapshot.
func ActualTrend(points []ActualPoint, flows []CashFlow, estimate RateEstimate, end Date) []SeriesPoint {
	if len(points) == 0 {
		return nil
	}
	sorted := slices.Clone(points)
	sortActuals(sorted)
	latest := sorted[len(sorted)-1]
	if !end.After(latest.Date) {
		return nil
	}

	// Only flows strictly after the anchor participate; the anchor value
	// already reflects everything before it.
	var future []CashFlow
	for _, f := range NormalizeFlows(flows) {
		if f.Date.After(latest.Date) {
			future = append(future, f)
		}
	}
	return Compose(DateGrid(latest.Date, end), latest.Amount.AsFloat(), estimate.DailyRate, future)
}
