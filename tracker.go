package trackline

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// FlowType distinguishes money moved into the account from money taken out.
// The sign of a cash flow is derived from its type; amounts are stored as
// non-negative magnitudes.
type FlowType int

const (
	Deposit FlowType = iota
	Withdrawal
)

func (t FlowType) String() string {
	switch t {
	case Deposit:
		return "deposit"
	case Withdrawal:
		return "withdrawal"
	default:
		panic(fmt.Sprintf("unknown flow type %d", t))
	}
}

// ParseFlowType parses a flow type name.
func ParseFlowType(s string) (FlowType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "deposit":
		return Deposit, nil
	case "withdrawal", "withdraw":
		return Withdrawal, nil
	default:
		return Deposit, fmt.Errorf("unknown flow type %q", s)
	}
}

// Scenario is a hand-modeled growth assumption: the account is assumed to
// grow by IncreasePercent once every IntervalDays business days.
type Scenario struct {
	ID              string
	Name            string
	IncreasePercent float64 // signed; negative models decay
	IntervalDays    int     // business days per compounding step, >= 1
	Visible         bool
}

// DailyRate derives the equivalent per-business-day compounding rate, so that
// compounding for exactly IntervalDays business days reproduces the
// configured interval return.
func (s Scenario) DailyRate() float64 {
	return DailyRate(s.IncreasePercent, s.IntervalDays)
}

// DailyRate converts a per-interval percentage into a per-business-day rate.
func DailyRate(intervalRatePercent float64, intervalDays int) float64 {
	if intervalDays < 1 {
		return 0
	}
	return math.Pow(1+intervalRatePercent/100, 1/float64(intervalDays)) - 1
}

// ActualPoint is a realized account value snapshot. A tracker holds at most
// one point per date; later writes replace earlier ones.
type ActualPoint struct {
	Date   Date
	Amount Money
	Source string // optional tag, e.g. "manual" or "brokerage"
}

// CashFlow is a deposit into or withdrawal out of the account. Several flows
// may share a date.
type CashFlow struct {
	ID     string
	Date   Date
	Amount Money // non-negative magnitude
	Type   FlowType
	Source string
}

// Signed returns the flow amount with its sign derived from the type:
// positive for deposits, negative for withdrawals.
func (c CashFlow) Signed() float64 {
	if c.Type == Withdrawal {
		return -c.Amount.AsFloat()
	}
	return c.Amount.AsFloat()
}

// Tracker is the immutable input bundle for one tracked account: its span,
// starting amount, modeled scenarios, realized snapshots, and cash flows.
type Tracker struct {
	Name           string
	Currency       string
	Start, End     Date
	StartingAmount Money
	Scenarios      []Scenario
	Actuals        []ActualPoint
	Flows          []CashFlow
}

// Span returns the tracker's full date range.
func (t *Tracker) Span() Range { return Range{From: t.Start, To: t.End} }

// UpsertActual records a snapshot, replacing any existing point on the same
// date, and keeps the series sorted.
func (t *Tracker) UpsertActual(p ActualPoint) {
	for i := range t.Actuals {
		if t.Actuals[i].Date == p.Date {
			t.Actuals[i] = p
			return
		}
	}
	t.Actuals = append(t.Actuals, p)
	sortActuals(t.Actuals)
}

// AddFlow appends a cash flow and keeps the list sorted by date.
func (t *Tracker) AddFlow(f CashFlow) {
	t.Flows = append(t.Flows, f)
	sortFlows(t.Flows)
}

// AddScenario appends a scenario.
func (t *Tracker) AddScenario(s Scenario) {
	t.Scenarios = append(t.Scenarios, s)
}

// FindScenario returns the scenario with the given ID or name.
func (t *Tracker) FindScenario(key string) (Scenario, bool) {
	for _, s := range t.Scenarios {
		if s.ID == key || (s.Name != "" && s.Name == key) {
			return s, true
		}
	}
	return Scenario{}, false
}

func sortActuals(points []ActualPoint) {
	slices.SortStableFunc(points, func(a, b ActualPoint) int { return a.Date.Compare(b.Date) })
}

func sortFlows(flows []CashFlow) {
	slices.SortStableFunc(flows, func(a, b CashFlow) int { return a.Date.Compare(b.Date) })
}

// NormalizeFlows turns an absent flow list into an empty one and sorts it by
// date. Legacy trackers have no flow list at all; normalizing once at the
// boundary keeps nil-checks out of the calculations.
func NormalizeFlows(flows []CashFlow) []CashFlow {
	if flows == nil {
		return []CashFlow{}
	}
	out := slices.Clone(flows)
	sortFlows(out)
	return out
}

// NetFlow sums the signed flow amounts dated strictly after 'after' and up to
// and including 'through'.
func NetFlow(flows []CashFlow, after, through Date) float64 {
	var net float64
	for _, f := range flows {
		if f.Date.After(after) && !f.Date.After(through) {
			net += f.Signed()
		}
	}
	return net
}

// NetFlowThrough sums the signed flow amounts dated on or before 'through'.
func NetFlowThrough(flows []CashFlow, through Date) float64 {
	var net float64
	for _, f := range flows {
		if !f.Date.After(through) {
			net += f.Signed()
		}
	}
	return net
}

// CumulativeFlows builds a history of the cumulative net cash flow keyed by
// flow date; ValueAsOf then answers "net capital moved as of this date".
func CumulativeFlows(flows []CashFlow) *History[float64] {
	perDay := &History[float64]{}
	for _, f := range flows {
		perDay.AppendAdd(f.Date, f.Signed())
	}
	cumulative := &History[float64]{}
	var running float64
	for on, v := range perDay.Values() {
		running += v
		cumulative.Append(on, running)
	}
	return cumulative
}
