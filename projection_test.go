package trackline

import (
	"slices"
	"testing"
)

func TestMilestones_CompoundEveryInterval(t *testing.T) {
	s := Scenario{ID: "g", IncreasePercent: 10, IntervalDays: 5}
	start := day("2025-08-04") // a Monday
	got := Milestones(s, start, 10000, day("2025-09-03"))

	if len(got) < 3 {
		t.Fatalf("got %d milestones, want at least 3", len(got))
	}
	first := got[0]
	if first.Date != start || first.Amount != 10000 || first.BusinessDays != 0 {
		t.Errorf("first milestone = %+v, want start at 10000 with 0 business days", first)
	}
	second := got[1]
	if second.Date != day("2025-08-11") {
		t.Errorf("second milestone on %s, want 2025-08-11 (5 business days later)", second.Date)
	}
	if !within(second.Amount, 11000, 1e-9) || second.BusinessDays != 5 {
		t.Errorf("second milestone = %+v, want 11000 after 5 business days", second)
	}
	third := got[2]
	if !within(third.Amount, 12100, 1e-9) || third.BusinessDays != 10 {
		t.Errorf("third milestone = %+v, want 12100 after 10 business days", third)
	}
}

func TestProjectCurve_StartsAtStartingAmount(t *testing.T) {
	s := Scenario{IncreasePercent: 7, IntervalDays: 10}
	curve := ProjectCurve(s, day("2025-08-04"), 5000, day("2025-09-04"))
	if curve[0].Date != day("2025-08-04") || curve[0].Amount != 5000 {
		t.Errorf("curve[0] = %+v, want the starting amount on the start date", curve[0])
	}
}

func TestProjectCurve_DenseWithDayOffsets(t *testing.T) {
	s := Scenario{IncreasePercent: 10, IntervalDays: 5}
	start, end := day("2025-08-04"), day("2025-08-20")
	curve := ProjectCurve(s, start, 10000, end)

	if want := end.Days(start) + 1; len(curve) != want {
		t.Fatalf("got %d points, want %d (one per calendar day)", len(curve), want)
	}
	for i, p := range curve {
		if p.DayOffset != i {
			t.Fatalf("curve[%d].DayOffset = %d, want %d", i, p.DayOffset, i)
		}
		if p.Date != start.Add(i) {
			t.Fatalf("curve[%d].Date = %s, want %s", i, p.Date, start.Add(i))
		}
	}
}

func TestProjectCurve_InterpolatesByBusinessDays(t *testing.T) {
	s := Scenario{IncreasePercent: 10, IntervalDays: 5}
	curve := ProjectCurve(s, day("2025-08-04"), 10000, day("2025-08-20"))
	at := func(on string) float64 {
		for _, p := range curve {
			if p.Date == day(on) {
				return p.Amount
			}
		}
		t.Fatalf("no point on %s", on)
		return 0
	}

	// 4 of the 5 business days to the 2025-08-11 milestone have elapsed by
	// Friday the 8th; the weekend stays flat at the same ratio.
	for _, on := range []string{"2025-08-08", "2025-08-09", "2025-08-10"} {
		if got := at(on); !within(got, 10800, 1e-9) {
			t.Errorf("value on %s = %v, want 10800", on, got)
		}
	}
	if got := at("2025-08-11"); !within(got, 11000, 1e-9) {
		t.Errorf("value on the milestone = %v, want exactly 11000", got)
	}
	if got := at("2025-08-18"); !within(got, 12100, 1e-9) {
		t.Errorf("value on the second milestone = %v, want 12100", got)
	}
}

func TestProjectCurve_IntervalLongerThanSpanIsFlat(t *testing.T) {
	s := Scenario{IncreasePercent: 25, IntervalDays: 90}
	curve := ProjectCurve(s, day("2025-08-04"), 10000, day("2025-08-31"))
	for _, p := range curve {
		if p.Amount != 10000 {
			t.Fatalf("value on %s = %v, want a flat 10000", p.Date, p.Amount)
		}
	}
}

func TestProjectCurve_ZeroRateIsFlat(t *testing.T) {
	s := Scenario{IncreasePercent: 0, IntervalDays: 5}
	curve := ProjectCurve(s, day("2025-08-04"), 10000, day("2025-10-31"))
	for _, p := range curve {
		if !within(p.Amount, 10000, 1e-9) {
			t.Fatalf("value on %s = %v, want 10000 for a zero-rate scenario", p.Date, p.Amount)
		}
	}
}

func TestProjectCurve_NegativeRateDecays(t *testing.T) {
	s := Scenario{IncreasePercent: -5, IntervalDays: 5}
	curve := ProjectCurve(s, day("2025-08-04"), 10000, day("2025-09-30"))
	for i := 1; i < len(curve); i++ {
		if curve[i].Amount > curve[i-1].Amount+1e-9 {
			t.Fatalf("value rose from %v to %v on %s under a negative rate",
				curve[i-1].Amount, curve[i].Amount, curve[i].Date)
		}
	}
	if last := curve[len(curve)-1].Amount; last >= 10000 {
		t.Errorf("final value = %v, want decay below the starting amount", last)
	}
}

func TestProjectCurve_Idempotent(t *testing.T) {
	s := Scenario{IncreasePercent: 10, IntervalDays: 5}
	a := ProjectCurve(s, day("2025-08-04"), 10000, day("2025-09-30"))
	b := ProjectCurve(s, day("2025-08-04"), 10000, day("2025-09-30"))
	if !slices.Equal(a, b) {
		t.Error("two identical invocations must yield identical curves")
	}
}
