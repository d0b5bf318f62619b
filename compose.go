package trackline

import "math"

// SeriesPoint is one dated value of a computed series.
type SeriesPoint struct {
	Date  Date
	Value float64
}

// DateGrid returns one date per calendar day from start to end inclusive.
func DateGrid(start, end Date) []Date {
	var dates []Date
	for day := range NewRange(start, end).Days() {
		dates = append(dates, day)
	}
	return dates
}

// CurveDates extracts the date grid of a projected curve.
func CurveDates(curve []ProjectedPoint) []Date {
	dates := make([]Date, len(curve))
	for i, p := range curve {
		dates[i] = p.Date
	}
	return dates
}

// Compose applies a per-business-day compounding rate plus discrete cash-flow
// deltas to a base date series, strictly left to right:
//
//   - the first point is startingAmount plus all signed flows dated on or
//     before the first date;
//   - each next point is the prior value compounded over the business days
//     between the two dates, plus the flows newly effective strictly after
//     the prior date up to and including the current one.
//
// The output has one value per input date. Values are never clamped; a
// cumulative value may go negative and that is a valid, unflagged result.
func Compose(dates []Date, startingAmount, dailyRate float64, flows []CashFlow) []SeriesPoint {
	if len(dates) == 0 {
		return nil
	}
	flows = NormalizeFlows(flows)

	out := make([]SeriesPoint, len(dates))
	value := startingAmount + NetFlowThrough(flows, dates[0])
	out[0] = SeriesPoint{Date: dates[0], Value: value}

	for i := 1; i < len(dates); i++ {
		growth := math.Pow(1+dailyRate, float64(CountBusinessDays(dates[i-1], dates[i])))
		value = value*growth + NetFlow(flows, dates[i-1], dates[i])
		out[i] = SeriesPoint{Date: dates[i], Value: value}
	}
	return out
}

// ComposeCurve is a convenience that overlays a scenario's cash flows on its
// projected curve: the projected base provides the date grid, the scenario
// provides the compounding rate.
func ComposeCurve(curve []ProjectedPoint, s Scenario, startingAmount float64, flows []CashFlow) []SeriesPoint {
	return Compose(CurveDates(curve), startingAmount, s.DailyRate(), flows)
}
