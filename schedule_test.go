package trackline

import "testing"

func TestParseFrequency(t *testing.T) {
	tests := []struct {
		in   string
		want Frequency
	}{
		{"daily", EveryDay},
		{"Weekly", EveryWeek},
		{"biweekly", EveryTwoWeeks},
		{"fortnightly", EveryTwoWeeks},
		{" monthly ", EveryMonth},
		{"month", EveryMonth},
	}
	for _, tc := range tests {
		got, err := ParseFrequency(tc.in)
		if err != nil {
			t.Errorf("ParseFrequency(%q) error = %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseFrequency(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
	if _, err := ParseFrequency("hourly"); err == nil {
		t.Error("ParseFrequency(\"hourly\") expected an error")
	}
}

func TestExpand_Monthly(t *testing.T) {
	schedule := DepositSchedule{
		Enabled:   true,
		Frequency: EveryMonth,
		Amount:    USD(500),
		Start:     day("2025-01-15"),
		End:       day("2025-04-20"),
	}
	span := NewRange(day("2025-01-01"), day("2025-12-31"))
	flows := schedule.Expand(span, SequenceSource("dep"))

	want := []string{"2025-01-15", "2025-02-15", "2025-03-15", "2025-04-15"}
	if len(flows) != len(want) {
		t.Fatalf("got %d flows, want %d", len(flows), len(want))
	}
	for i, f := range flows {
		if f.Date != day(want[i]) {
			t.Errorf("flow %d on %s, want %s", i, f.Date, want[i])
		}
		if f.Type != Deposit || !f.Amount.Equal(USD(500)) || f.Source != "schedule" {
			t.Errorf("flow %d = %+v, want a $500.00 scheduled deposit", i, f)
		}
	}
	if flows[0].ID != "dep-1" || flows[3].ID != "dep-4" {
		t.Errorf("sequence ids = %q..%q, want dep-1..dep-4", flows[0].ID, flows[3].ID)
	}
}

func TestExpand_BiweeklyStepsFourteenDays(t *testing.T) {
	schedule := DepositSchedule{Enabled: true, Frequency: EveryTwoWeeks, Amount: USD(100)}
	span := NewRange(day("2025-08-01"), day("2025-08-31"))
	flows := schedule.Expand(span, SequenceSource("dep"))

	want := []string{"2025-08-01", "2025-08-15", "2025-08-29"}
	if len(flows) != len(want) {
		t.Fatalf("got %d flows, want %d", len(flows), len(want))
	}
	for i, f := range flows {
		if f.Date != day(want[i]) {
			t.Errorf("flow %d on %s, want %s", i, f.Date, want[i])
		}
	}
}

func TestExpand_BoundsIntersectWithSpan(t *testing.T) {
	// The schedule's own window starts before and ends after the span; the
	// span clips it.
	schedule := DepositSchedule{
		Enabled:   true,
		Frequency: EveryWeek,
		Amount:    USD(50),
		Start:     day("2024-01-01"),
		End:       day("2026-12-31"),
	}
	span := NewRange(day("2025-08-04"), day("2025-08-18"))
	flows := schedule.Expand(span, SequenceSource("dep"))
	if len(flows) != 3 {
		t.Fatalf("got %d flows, want 3 weekly deposits inside the span", len(flows))
	}
	if flows[0].Date != day("2025-08-04") || flows[2].Date != day("2025-08-18") {
		t.Errorf("flows run %s..%s, want clipped to the span", flows[0].Date, flows[2].Date)
	}
}

func TestExpand_Nothing(t *testing.T) {
	span := NewRange(day("2025-01-01"), day("2025-12-31"))
	tests := []struct {
		name     string
		schedule DepositSchedule
	}{
		{"disabled", DepositSchedule{Enabled: false, Frequency: EveryMonth, Amount: USD(500)}},
		{"zero amount", DepositSchedule{Enabled: true, Frequency: EveryMonth}},
	}
	for _, tc := range tests {
		if got := tc.schedule.Expand(span, SequenceSource("dep")); got != nil {
			t.Errorf("%s: Expand() = %v, want nil", tc.name, got)
		}
	}
}

func TestSequenceSource(t *testing.T) {
	ids := SequenceSource("x")
	if a, b := ids(), ids(); a != "x-1" || b != "x-2" {
		t.Errorf("SequenceSource produced %q, %q", a, b)
	}
}

func TestUUIDSource(t *testing.T) {
	ids := UUIDSource()
	if a, b := ids(), ids(); a == b || a == "" {
		t.Errorf("UUIDSource produced %q, %q, want distinct non-empty ids", a, b)
	}
}
