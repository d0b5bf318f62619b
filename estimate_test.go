package trackline

import "testing"

func TestEstimateRate_CleanGrowth(t *testing.T) {
	points := []ActualPoint{
		snapshot("2025-08-04", 10000),
		snapshot("2025-08-11", 11000), // 5 business days later
	}
	got, ok := EstimateRate(points, nil)
	if !ok {
		t.Fatal("EstimateRate reported nothing to estimate")
	}
	if got.BusinessDays != 5 {
		t.Errorf("BusinessDays = %d, want 5", got.BusinessDays)
	}
	if !within(got.DailyRate, 0.019245, 1e-5) {
		t.Errorf("DailyRate = %v, want about 0.019245 (1.1^(1/5) - 1)", got.DailyRate)
	}
	if !got.IntervalPercent(5).Equal(Percent(10)) {
		t.Errorf("IntervalPercent(5) = %s, want 10.00%%", got.IntervalPercent(5))
	}
	if !got.CumulativePercent().Equal(Percent(10)) {
		t.Errorf("CumulativePercent() = %s, want 10.00%%", got.CumulativePercent())
	}
}

func TestEstimateRate_NeutralizesDeposits(t *testing.T) {
	// The entire increase is a deposit, so the realized rate is zero.
	points := []ActualPoint{
		snapshot("2025-08-04", 10000),
		snapshot("2025-08-11", 11000),
	}
	flows := []CashFlow{depositOn("d", "2025-08-06", 1000)}
	got, ok := EstimateRate(points, flows)
	if !ok {
		t.Fatal("EstimateRate reported nothing to estimate")
	}
	if !within(got.DailyRate, 0, 1e-12) {
		t.Errorf("DailyRate = %v, want 0 once the deposit is neutralized", got.DailyRate)
	}
	if !got.CumulativePercent().Equal(Percent(0)) {
		t.Errorf("CumulativePercent() = %s, want 0.00%%", got.CumulativePercent())
	}
}

func TestEstimateRate_UnsortedInputIsFine(t *testing.T) {
	points := []ActualPoint{
		snapshot("2025-08-11", 11000),
		snapshot("2025-08-04", 10000),
	}
	got, ok := EstimateRate(points, nil)
	if !ok || got.BusinessDays != 5 {
		t.Errorf("EstimateRate on unsorted input = (%+v, %v), want the sorted result", got, ok)
	}
}

func TestEstimateRate_Absences(t *testing.T) {
	tests := []struct {
		name   string
		points []ActualPoint
		flows  []CashFlow
	}{
		{"no points", nil, nil},
		{"one point", []ActualPoint{snapshot("2025-08-04", 10000)}, nil},
		{"non-positive first amount", []ActualPoint{
			snapshot("2025-08-04", 0),
			snapshot("2025-08-11", 11000),
		}, nil},
		{"zero elapsed business days", []ActualPoint{
			snapshot("2025-08-09", 10000), // Saturday
			snapshot("2025-08-10", 10100), // Sunday
		}, nil},
		{"non-positive cumulative return", []ActualPoint{
			snapshot("2025-08-04", 10000),
			snapshot("2025-08-11", 500),
		}, []CashFlow{depositOn("d", "2025-08-06", 2000)}},
	}
	for _, tc := range tests {
		if _, ok := EstimateRate(tc.points, tc.flows); ok {
			t.Errorf("%s: EstimateRate reported an estimate, want none", tc.name)
		}
	}
}

func TestActualTrend(t *testing.T) {
	points := []ActualPoint{
		snapshot("2025-08-04", 10000),
		snapshot("2025-08-11", 11000),
	}
	estimate, ok := EstimateRate(points, nil)
	if !ok {
		t.Fatal("EstimateRate reported nothing to estimate")
	}

	trend := ActualTrend(points, nil, estimate, day("2025-08-18"))
	if len(trend) == 0 {
		t.Fatal("ActualTrend returned no points")
	}
	if trend[0].Date != day("2025-08-11") || !within(trend[0].Value, 11000, 1e-9) {
		t.Errorf("trend anchors at %+v, want the latest snapshot", trend[0])
	}
	// 5 more business days at the realized rate compounds another 10%.
	last := trend[len(trend)-1]
	if last.Date != day("2025-08-18") || !within(last.Value, 12100, 1e-6) {
		t.Errorf("trend ends at %+v, want 12100 on 2025-08-18", last)
	}

	if got := ActualTrend(points, nil, estimate, day("2025-08-11")); got != nil {
		t.Error("ActualTrend should be nil when the end is not after the latest snapshot")
	}
	if got := ActualTrend(nil, nil, estimate, day("2025-08-18")); got != nil {
		t.Error("ActualTrend should be nil without snapshots")
	}
}

func TestActualTrend_AppliesFutureFlowsOnly(t *testing.T) {
	points := []ActualPoint{
		snapshot("2025-08-04", 10000),
		snapshot("2025-08-11", 10000),
	}
	flows := []CashFlow{
		depositOn("past", "2025-08-06", 500),   // already inside the snapshot
		depositOn("future", "2025-08-13", 300), // applies to the trend
	}
	trend := ActualTrend(points, flows, RateEstimate{}, day("2025-08-15"))
	if !within(trend[0].Value, 10000, 1e-9) {
		t.Errorf("anchor value = %v, want 10000; past flows must not be re-applied", trend[0].Value)
	}
	last := trend[len(trend)-1]
	if !within(last.Value, 10300, 1e-9) {
		t.Errorf("final value = %v, want 10300 after the future deposit", last.Value)
	}
}
