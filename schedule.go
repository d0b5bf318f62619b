package trackline

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Frequency is how often a deposit schedule produces a cash flow.
type Frequency int

const (
	EveryDay Frequency = iota
	EveryWeek
	EveryTwoWeeks
	EveryMonth
)

func (f Frequency) String() string {
	switch f {
	case EveryDay:
		return "daily"
	case EveryWeek:
		return "weekly"
	case EveryTwoWeeks:
		return "biweekly"
	case EveryMonth:
		return "monthly"
	default:
		panic(fmt.Sprintf("unknown frequency %d", f))
	}
}

// ParseFrequency parses a schedule frequency name.
func ParseFrequency(s string) (Frequency, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "daily", "day":
		return EveryDay, nil
	case "weekly", "week":
		return EveryWeek, nil
	case "biweekly", "fortnightly":
		return EveryTwoWeeks, nil
	case "monthly", "month":
		return EveryMonth, nil
	default:
		return EveryDay, fmt.Errorf("unknown frequency %q", s)
	}
}

// next returns the schedule date following 'on'.
func (f Frequency) next(on Date) Date {
	switch f {
	case EveryDay:
		return on.Add(1)
	case EveryWeek:
		return on.Add(7)
	case EveryTwoWeeks:
		return on.Add(14)
	case EveryMonth:
		return on.AddMonth(1)
	default:
		panic(fmt.Sprintf("unknown frequency %d", f))
	}
}

// DepositSchedule generates recurring deposits. Start and End optionally
// narrow the schedule within the tracker span; zero dates leave it unbounded.
type DepositSchedule struct {
	Enabled   bool
	Frequency Frequency
	Amount    Money
	Start     Date
	End       Date
}

// IDSource produces identifiers for generated records. Injecting it keeps the
// expansion deterministic under test.
type IDSource func() string

// UUIDSource returns an IDSource backed by random UUIDs.
func UUIDSource() IDSource { return uuid.NewString }

// SequenceSource returns an IDSource producing "prefix-1", "prefix-2", ...
func SequenceSource(prefix string) IDSource {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

// Expand turns the schedule into concrete deposit records over a date range.
// The engine only ever consumes the resulting flat list; a disabled schedule
// expands to nothing.
func (s DepositSchedule) Expand(span Range, ids IDSource) []CashFlow {
	if !s.Enabled || s.Amount.IsZero() || s.Amount.IsNegative() {
		return nil
	}
	from, to := span.From, span.To
	if !s.Start.IsZero() && s.Start.After(from) {
		from = s.Start
	}
	if !s.End.IsZero() && s.End.Before(to) {
		to = s.End
	}

	var flows []CashFlow
	for on := from; !on.After(to); on = s.Frequency.next(on) {
		flows = append(flows, CashFlow{
			ID:     ids(),
			Date:   on,
			Amount: s.Amount,
			Type:   Deposit,
			Source: "schedule",
		})
	}
	return flows
}
