package trackline

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// A tracker file is JSONL: one entry per line, identified by an "entry"
// discriminator. The first entry must be the tracker header; scenario,
// actual, deposit and withdrawal entries follow in any order. Actual entries
// sharing a date upsert: the last line wins.

type entryType string

const (
	entryTracker    entryType = "tracker"
	entryScenario   entryType = "scenario"
	entryActual     entryType = "actual"
	entryDeposit    entryType = "deposit"
	entryWithdrawal entryType = "withdrawal"
)

type trackerEntry struct {
	Entry          entryType       `json:"entry"`
	Name           string          `json:"name,omitempty"`
	Currency       string          `json:"currency,omitempty"`
	Start          Date            `json:"start"`
	End            Date            `json:"end"`
	StartingAmount decimal.Decimal `json:"startingAmount"`
}

type scenarioEntry struct {
	Entry           entryType `json:"entry"`
	ID              string    `json:"id"`
	Name            string    `json:"name,omitempty"`
	IncreasePercent float64   `json:"increasePercent"`
	IntervalDays    int       `json:"intervalDays"`
	Visible         bool      `json:"visible"`
}

type actualEntry struct {
	Entry  entryType       `json:"entry"`
	Date   Date            `json:"date"`
	Amount decimal.Decimal `json:"amount"`
	Source string          `json:"source,omitempty"`
}

type flowEntry struct {
	Entry  entryType       `json:"entry"`
	ID     string          `json:"id"`
	Date   Date            `json:"date"`
	Amount decimal.Decimal `json:"amount"`
	Source string          `json:"source,omitempty"`
}

// DecodeTracker reads a JSONL stream into a Tracker, normalizing as it goes:
// actual points upsert by date, flow and actual lists come out sorted and
// never nil.
func DecodeTracker(r io.Reader) (*Tracker, error) {
	var tracker *Tracker
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		raw := scanner.Bytes()
		if len(raw) == 0 {
			continue
		}

		var identifier struct {
			Entry entryType `json:"entry"`
		}
		if err := json.Unmarshal(raw, &identifier); err != nil {
			return nil, fmt.Errorf("line %d: could not identify entry in %q: %w", line, string(raw), err)
		}

		if identifier.Entry == entryTracker {
			if tracker != nil {
				return nil, fmt.Errorf("line %d: duplicate tracker header", line)
			}
			var e trackerEntry
			if err := json.Unmarshal(raw, &e); err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			tracker = &Tracker{
				Name:           e.Name,
				Currency:       e.Currency,
				Start:          e.Start,
				End:            e.End,
				StartingAmount: M(e.StartingAmount, e.Currency),
				Actuals:        []ActualPoint{},
				Flows:          []CashFlow{},
			}
			continue
		}

		if tracker == nil {
			return nil, fmt.Errorf("line %d: %q entry before the tracker header", line, identifier.Entry)
		}

		switch identifier.Entry {
		case entryScenario:
			var e scenarioEntry
			if err := json.Unmarshal(raw, &e); err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			tracker.AddScenario(Scenario{
				ID:              e.ID,
				Name:            e.Name,
				IncreasePercent: e.IncreasePercent,
				IntervalDays:    e.IntervalDays,
				Visible:         e.Visible,
			})
		case entryActual:
			var e actualEntry
			if err := json.Unmarshal(raw, &e); err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			tracker.UpsertActual(ActualPoint{Date: e.Date, Amount: M(e.Amount, tracker.Currency), Source: e.Source})
		case entryDeposit, entryWithdrawal:
			var e flowEntry
			if err := json.Unmarshal(raw, &e); err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			flowType := Deposit
			if identifier.Entry == entryWithdrawal {
				flowType = Withdrawal
			}
			tracker.AddFlow(CashFlow{
				ID:     e.ID,
				Date:   e.Date,
				Amount: M(e.Amount, tracker.Currency),
				Type:   flowType,
				Source: e.Source,
			})
		default:
			return nil, fmt.Errorf("line %d: unknown entry type %q", line, identifier.Entry)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read tracker file: %w", err)
	}
	if tracker == nil {
		return nil, fmt.Errorf("tracker file has no tracker header")
	}
	if err := Validate(tracker); err != nil {
		return nil, fmt.Errorf("invalid tracker %q: %w", tracker.Name, err)
	}
	return tracker, nil
}

// EncodeTracker writes a tracker in canonical form: header first, then
// scenarios, then actual points and flows each sorted by date.
func EncodeTracker(w io.Writer, t *Tracker) error {
	writeLine := func(v any) error {
		raw, err := json.Marshal(v)
		if err != nil {
			return err
		}
		if _, err := w.Write(raw); err != nil {
			return err
		}
		_, err = io.WriteString(w, "\n")
		return err
	}

	header := trackerEntry{
		Entry:          entryTracker,
		Name:           t.Name,
		Currency:       t.Currency,
		Start:          t.Start,
		End:            t.End,
		StartingAmount: t.StartingAmount.Decimal(),
	}
	if err := writeLine(header); err != nil {
		return fmt.Errorf("could not encode tracker header: %w", err)
	}
	for _, s := range t.Scenarios {
		e := scenarioEntry{
			Entry:           entryScenario,
			ID:              s.ID,
			Name:            s.Name,
			IncreasePercent: s.IncreasePercent,
			IntervalDays:    s.IntervalDays,
			Visible:         s.Visible,
		}
		if err := writeLine(e); err != nil {
			return fmt.Errorf("could not encode scenario %q: %w", s.ID, err)
		}
	}
	actuals := append([]ActualPoint(nil), t.Actuals...)
	sortActuals(actuals)
	for _, a := range actuals {
		e := actualEntry{Entry: entryActual, Date: a.Date, Amount: a.Amount.Decimal(), Source: a.Source}
		if err := writeLine(e); err != nil {
			return fmt.Errorf("could not encode actual point on %s: %w", a.Date, err)
		}
	}
	flows := NormalizeFlows(t.Flows)
	for _, f := range flows {
		kind := entryDeposit
		if f.Type == Withdrawal {
			kind = entryWithdrawal
		}
		e := flowEntry{Entry: kind, ID: f.ID, Date: f.Date, Amount: f.Amount.Decimal(), Source: f.Source}
		if err := writeLine(e); err != nil {
			return fmt.Errorf("could not encode cash flow %q: %w", f.ID, err)
		}
	}
	return nil
}
