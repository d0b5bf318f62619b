package trackline

// USD is a helper for tests to create dollar money from a const.
func USD(v float64) Money { return M(v, "USD") }

// day is a shorthand to build dates in tests.
func day(s string) Date { return MustParse(s) }

// snapshot builds an actual point in USD.
func snapshot(on string, amount float64) ActualPoint {
	return ActualPoint{Date: day(on), Amount: USD(amount)}
}

// depositOn and withdrawalOn build cash flows in USD.
func depositOn(id, on string, amount float64) CashFlow {
	return CashFlow{ID: id, Date: day(on), Amount: USD(amount), Type: Deposit}
}

func withdrawalOn(id, on string, amount float64) CashFlow {
	return CashFlow{ID: id, Date: day(on), Amount: USD(amount), Type: Withdrawal}
}

// within reports whether got is within eps of want.
func within(got, want, eps float64) bool {
	diff := got - want
	if diff < 0 {
		diff = -diff
	}
	return diff <= eps
}
