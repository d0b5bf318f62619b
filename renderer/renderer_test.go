package renderer

import (
	"strings"
	"testing"

	"github.com/trackline/trackline"
)

func testReview(t *testing.T) *trackline.Review {
	t.Helper()
	tracker := &trackline.Tracker{
		Name:           "retirement",
		Currency:       "USD",
		Start:          trackline.MustParse("2025-08-04"),
		End:            trackline.MustParse("2025-12-31"),
		StartingAmount: trackline.M(10000, "USD"),
	}
	s := trackline.Scenario{ID: "base", Name: "Base case", IncreasePercent: 10, IntervalDays: 5}
	tracker.AddScenario(s)
	tracker.UpsertActual(trackline.ActualPoint{
		Date: trackline.MustParse("2025-08-04"), Amount: trackline.M(10000, "USD"),
	})
	tracker.UpsertActual(trackline.ActualPoint{
		Date: trackline.MustParse("2025-08-11"), Amount: trackline.M(11000, "USD"),
	})

	review, err := trackline.NewReview(tracker, s, trackline.ReviewOptions{})
	if err != nil {
		t.Fatalf("NewReview() error = %v", err)
	}
	return review
}

func TestReviewMarkdown(t *testing.T) {
	got := ReviewMarkdown(testReview(t))

	for _, want := range []string{
		"# retirement: review 2025-08-04 to 2025-12-31",
		"Scenario: Base case (+10.00% every 5 business days)",
		"## Summary",
		"Total return",
		"+10.00%",
		"Win rate",
		"## Realized rate",
		"5 observed business days",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("review markdown missing %q:\n%s", want, got)
		}
	}
}

func TestReviewMarkdown_WithoutEstimate(t *testing.T) {
	tracker := &trackline.Tracker{
		Name:           "fresh",
		Currency:       "USD",
		Start:          trackline.MustParse("2025-08-04"),
		End:            trackline.MustParse("2025-12-31"),
		StartingAmount: trackline.M(10000, "USD"),
	}
	review, err := trackline.NewReview(tracker,
		trackline.Scenario{ID: "s", IncreasePercent: 8, IntervalDays: 5}, trackline.ReviewOptions{})
	if err != nil {
		t.Fatalf("NewReview() error = %v", err)
	}

	got := ReviewMarkdown(review)
	if !strings.Contains(got, "Not enough data yet") {
		t.Errorf("review without an estimate should say so:\n%s", got)
	}
	if strings.Contains(got, "## Realized rate") {
		t.Error("review without an estimate should not render the realized-rate section")
	}
}

func TestProjectionMarkdown_Samples(t *testing.T) {
	s := trackline.Scenario{Name: "Base case", IncreasePercent: 10, IntervalDays: 5}
	start := trackline.MustParse("2025-08-04")
	curve := trackline.ProjectCurve(s, start, 10000, trackline.MustParse("2025-08-20"))

	got := ProjectionMarkdown("retirement", "USD", s, curve, 7)
	for _, want := range []string{
		"# Projection: Base case",
		"Tracker: retirement",
		"2025-08-04",
		"2025-08-11",
		"2025-08-18",
		"2025-08-20", // final day always kept
		"$10,000.00",
		"$11,000.00",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("projection markdown missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "2025-08-05") {
		t.Error("sampling every 7 days should skip intermediate dates")
	}
}

func TestEstimateMarkdown(t *testing.T) {
	e := trackline.RateEstimate{DailyRate: 0.019245, BusinessDays: 5, CumulativeReturn: 1.10}
	got := EstimateMarkdown("retirement", e, 5)
	for _, want := range []string{
		"# Realized rate: retirement",
		"Observed business days",
		"+10.00%",
		"Annualized",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("estimate markdown missing %q:\n%s", want, got)
		}
	}
}
