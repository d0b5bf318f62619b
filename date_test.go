package trackline

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		want Date
	}{
		{"2025-08-04", NewDate(2025, time.August, 4)},
		{"2025-8-4", NewDate(2025, time.August, 4)},
		{" 2025-01-31 ", NewDate(2025, time.January, 31)},
	}
	for _, tc := range tests {
		got, err := ParseDate(tc.in)
		if err != nil {
			t.Errorf("ParseDate(%q) error = %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseDate(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
	if _, err := ParseDate("not-a-date"); err == nil {
		t.Error("ParseDate(\"not-a-date\") expected an error")
	}
}

func TestParseDate_Relative(t *testing.T) {
	today := Today()
	tests := []struct {
		in   string
		want Date
	}{
		{"0d", today},
		{"+1d", today.Add(1)},
		{"-2w", today.Add(-14)},
		{"+1m", today.AddMonth(1)},
	}
	for _, tc := range tests {
		got, err := ParseDate(tc.in)
		if err != nil {
			t.Errorf("ParseDate(%q) error = %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseDate(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestDate_JSONRoundTrip(t *testing.T) {
	want := day("2025-08-04")
	raw, err := json.Marshal(want)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(raw) != `"2025-08-04"` {
		t.Errorf("Marshal() = %s, want %q", raw, `"2025-08-04"`)
	}
	var got Date
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if got != want {
		t.Errorf("round trip = %s, want %s", got, want)
	}
}

func TestStartOfEndOf(t *testing.T) {
	on := day("2025-08-13") // a Wednesday
	tests := []struct {
		period     Period
		start, end string
	}{
		{Daily, "2025-08-13", "2025-08-13"},
		{Weekly, "2025-08-11", "2025-08-17"},
		{Monthly, "2025-08-01", "2025-08-31"},
		{Quarterly, "2025-07-01", "2025-09-30"},
		{Yearly, "2025-01-01", "2025-12-31"},
	}
	for _, tc := range tests {
		if got := on.StartOf(tc.period); got != day(tc.start) {
			t.Errorf("StartOf(%s) = %s, want %s", tc.period, got, tc.start)
		}
		if got := on.EndOf(tc.period); got != day(tc.end) {
			t.Errorf("EndOf(%s) = %s, want %s", tc.period, got, tc.end)
		}
	}
}

func TestRange(t *testing.T) {
	r := NewRange(day("2025-08-10"), day("2025-08-01")) // swapped on purpose
	if r.From != day("2025-08-01") || r.To != day("2025-08-10") {
		t.Fatalf("NewRange did not swap: %v", r)
	}
	if !r.Contains(day("2025-08-01")) || !r.Contains(day("2025-08-10")) {
		t.Error("Contains should include both boundaries")
	}
	if r.Contains(day("2025-08-11")) {
		t.Error("Contains should exclude dates after To")
	}
	count := 0
	for range r.Days() {
		count++
	}
	if count != 10 {
		t.Errorf("Days() yielded %d days, want 10", count)
	}
}

func TestHistory(t *testing.T) {
	h := &History[float64]{}
	h.Append(day("2025-08-05"), 20)
	h.Append(day("2025-08-01"), 10)
	h.Append(day("2025-08-05"), 25) // overwrite

	if h.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", h.Len())
	}
	if v, ok := h.Get(day("2025-08-05")); !ok || v != 25 {
		t.Errorf("Get() = %v, %v; want 25, true", v, ok)
	}
	if v, ok := h.ValueAsOf(day("2025-08-03")); !ok || v != 10 {
		t.Errorf("ValueAsOf(2025-08-03) = %v, %v; want 10, true", v, ok)
	}
	if _, ok := h.ValueAsOf(day("2025-07-31")); ok {
		t.Error("ValueAsOf before the first date should report false")
	}
	if on, v := h.Latest(); on != day("2025-08-05") || v != 25 {
		t.Errorf("Latest() = %s, %v; want 2025-08-05, 25", on, v)
	}

	h.AppendAdd(day("2025-08-01"), 5)
	if v, _ := h.Get(day("2025-08-01")); v != 15 {
		t.Errorf("AppendAdd should accumulate, got %v want 15", v)
	}
}
