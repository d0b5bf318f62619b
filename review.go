package trackline

import "fmt"

// ReviewOptions tunes the analytics bundled into a Review. The zero value
// selects the defaults.
type ReviewOptions struct {
	Windows           []int   // rolling lookback windows in calendar days; DefaultRollingWindows if empty
	RiskFreeRate      float64 // annual risk-free rate as a fraction, e.g. 0.03
	LastNSteps        int     // trim volatility/Sharpe to the most recent N steps; 0 keeps all
	TopN              int     // best/worst period count; 3 if 0
	AttributionPeriod Period  // Monthly if unset
}

// Review bundles every comparison and risk metric for one tracker and one
// scenario, recomputed on demand from the inputs.
type Review struct {
	Tracker  string
	Currency string
	Span     Range
	Scenario Scenario

	Estimate    RateEstimate
	HasEstimate bool // false while there is not enough data to estimate

	TotalReturn      Percent // cash-flow-adjusted, first to last snapshot
	AnnualizedReturn Percent
	Volatility       Percent // annualized
	Sharpe           float64
	MaxDrawdown      Percent
	CurrentDrawdown  Percent
	WinRate          Percent

	Curve       []ProjectedPoint
	WithFlows   []SeriesPoint
	Trend       []SeriesPoint // actual-trend extrapolation; nil without an estimate
	Variance    []VariancePoint
	Drawdowns   *DrawdownReport
	Rolling     []RollingSeries
	Periods     []PerformancePeriod
	Best, Worst []PerformancePeriod
}

// NewReview computes the full analytics bundle for a tracker and scenario.
// Missing data shows up as absences inside the review (HasEstimate false,
// empty series), never as an error; the error covers only malformed inputs.
func NewReview(t *Tracker, s Scenario, opts ReviewOptions) (*Review, error) {
	if err := Validate(t); err != nil {
		return nil, fmt.Errorf("invalid tracker %q: %w", t.Name, err)
	}
	if s.IntervalDays < 1 {
		return nil, fmt.Errorf("scenario %q: interval must be at least 1 business day", s.ID)
	}
	if opts.TopN == 0 {
		opts.TopN = 3
	}
	if opts.AttributionPeriod == Daily {
		opts.AttributionPeriod = Monthly
	}

	flows := NormalizeFlows(t.Flows)
	starting := t.StartingAmount.AsFloat()

	review := &Review{
		Tracker:  t.Name,
		Currency: t.Currency,
		Span:     t.Span(),
		Scenario: s,
	}

	review.Curve = ProjectCurve(s, t.Start, starting, t.End)
	review.WithFlows = ComposeCurve(review.Curve, s, starting, flows)
	review.Variance = Variance(t.Actuals, review.Curve, flows)
	review.WinRate = Percent(WinRate(t.Actuals, review.Curve, flows) * 100)

	review.Estimate, review.HasEstimate = EstimateRate(t.Actuals, flows)
	if review.HasEstimate {
		review.AnnualizedReturn = review.Estimate.AnnualizedPercent()
		review.Trend = ActualTrend(t.Actuals, flows, review.Estimate, t.End)
	}

	if len(t.Actuals) >= 2 {
		first, last := t.Actuals[0], t.Actuals[len(t.Actuals)-1]
		review.TotalReturn = AdjustedReturn(first.Amount.AsFloat(), last.Amount.AsFloat(),
			NetFlow(flows, first.Date, last.Date))
	}

	steps := StepReturns(t.Actuals, flows)
	review.Volatility = Percent(Volatility(steps, opts.LastNSteps) * 100)
	review.Sharpe = SharpeRatio(steps, opts.RiskFreeRate, opts.LastNSteps)

	review.Drawdowns = Drawdowns(t.Actuals, flows)
	review.MaxDrawdown = review.Drawdowns.Max
	review.CurrentDrawdown = review.Drawdowns.Current

	review.Rolling = RollingWindows(t.Actuals, flows, opts.Windows)
	review.Periods = PeriodReturns(t.Actuals, flows, opts.AttributionPeriod)
	review.Best, review.Worst = BestWorst(review.Periods, opts.TopN)

	return review, nil
}
