package trackline

// Milestone is a date at which a scenario's compounding actually occurs.
// Between milestones, projected values are interpolated. Milestones are
// derived on every call and never persisted.
type Milestone struct {
	Date         Date
	Amount       float64 // value after compounding at this milestone
	BusinessDays int     // cumulative business days since the scenario start
}

// ProjectedPoint is one day of a dense projected value curve.
type ProjectedPoint struct {
	Date      Date
	Amount    float64
	DayOffset int // calendar days since the scenario start
}

// Milestones builds the compounding schedule for a scenario: starting at
// (start, startingAmount), each next milestone is IntervalDays business days
// later with the amount compounded once, while the date stays within end.
func Milestones(s Scenario, start Date, startingAmount float64, end Date) []Milestone {
	milestones := []Milestone{{Date: start, Amount: startingAmount, BusinessDays: 0}}
	step := 1 + s.IncreasePercent/100
	for {
		prior := milestones[len(milestones)-1]
		next := AddBusinessDays(prior.Date, s.IntervalDays)
		if next.After(end) {
			return milestones
		}
		milestones = append(milestones, Milestone{
			Date:         next,
			Amount:       prior.Amount * step,
			BusinessDays: prior.BusinessDays + s.IntervalDays,
		})
	}
}

// ProjectCurve produces one ProjectedPoint per calendar day from start to end
// inclusive. Days on a milestone take its exact amount; days past the final
// milestone stay flat at its amount; days between two milestones are linearly
// interpolated by the ratio of elapsed business days.
//
// A scenario whose interval exceeds the whole span yields a flat line at
// startingAmount.
func ProjectCurve(s Scenario, start Date, startingAmount float64, end Date) []ProjectedPoint {
	milestones := Milestones(s, start, startingAmount, end)

	var points []ProjectedPoint
	left := 0
	offset := 0
	for day := range NewRange(start, end).Days() {
		// Advance to the last milestone at or before this day.
		for left+1 < len(milestones) && !milestones[left+1].Date.After(day) {
			left++
		}
		points = append(points, ProjectedPoint{
			Date:      day,
			Amount:    interpolate(milestones, left, day),
			DayOffset: offset,
		})
		offset++
	}
	return points
}

// interpolate computes the value at 'day', given the index of the last
// milestone at or before it.
func interpolate(milestones []Milestone, left int, day Date) float64 {
	lo := milestones[left]
	if day == lo.Date || left+1 >= len(milestones) {
		// Exactly on a milestone, or past the final one: flat.
		return lo.Amount
	}
	hi := milestones[left+1]
	span := hi.BusinessDays - lo.BusinessDays
	if span <= 0 {
		return lo.Amount
	}
	elapsed := CountBusinessDays(lo.Date, day)
	return lo.Amount + (hi.Amount-lo.Amount)*float64(elapsed)/float64(span)
}
