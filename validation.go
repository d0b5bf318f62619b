package trackline

import (
	"errors"
	"fmt"
)

// Validate checks a tracker for caller contract violations: malformed spans,
// non-positive intervals, or negative magnitudes. Missing data is not a
// violation; a brand-new tracker with no snapshots is valid.
func Validate(t *Tracker) error {
	var errs []error
	if t.Start.IsZero() || t.End.IsZero() {
		errs = append(errs, errors.New("tracker span is not set"))
	} else if t.End.Before(t.Start) {
		errs = append(errs, fmt.Errorf("tracker ends (%s) before it starts (%s)", t.End, t.Start))
	}
	if t.StartingAmount.IsNegative() {
		errs = append(errs, errors.New("starting amount is negative"))
	}
	for _, s := range t.Scenarios {
		if s.IntervalDays < 1 {
			errs = append(errs, fmt.Errorf("scenario %q: interval must be at least 1 business day", s.ID))
		}
	}
	for _, f := range t.Flows {
		if f.Amount.IsNegative() {
			errs = append(errs, fmt.Errorf("cash flow %q on %s: amount must be a non-negative magnitude", f.ID, f.Date))
		}
	}
	return errors.Join(errs...)
}
