package budget

// Summary provides an at-a-glance overview of the ledger: totals in both
// currencies and a per-category expense breakdown.
//
// It is a pure projection of a ledger snapshot and a rate: it holds no
// state of its own and is recomputed on demand.
type Summary struct {
	TotalIncome  Money // sum of income amounts, KRW
	TotalExpense Money // sum of expense amounts, KRW
	Remaining    Money // income minus expense, may be negative

	TotalIncomeUSD  Money
	TotalExpenseUSD Money
	RemainingUSD    Money

	Rate      float64 // KRW per 1 USD used for the USD figures
	Breakdown []CategoryTotal
}

// CategoryTotal is one line of the per-category breakdown.
type CategoryTotal struct {
	Category string
	Amount   Money   // sum of matching expense amounts, KRW
	Share    Percent // of the total expense
}

// NewSummary derives the summary of a ledger at the given KRW-per-USD rate.
//
// Every category of the set gets a breakdown line, including those with no
// matching expense. A zero expense total is treated as 1 when computing
// shares, so empty categories report 0% instead of dividing by zero.
func NewSummary(l *Ledger, rate float64) *Summary {
	var totalIncome, totalExpense int64
	for r := range l.Incomes() {
		totalIncome += r.Amount
	}
	perCategory := make(map[string]int64)
	for r := range l.Expenses() {
		totalExpense += r.Amount
		perCategory[r.Category] += r.Amount
	}
	remaining := totalIncome - totalExpense

	divisor := totalExpense
	if divisor == 0 {
		divisor = 1
	}

	s := &Summary{
		TotalIncome:     KRWAmount(totalIncome),
		TotalExpense:    KRWAmount(totalExpense),
		Remaining:       KRWAmount(remaining),
		TotalIncomeUSD:  ToUSD(totalIncome, rate),
		TotalExpenseUSD: ToUSD(totalExpense, rate),
		RemainingUSD:    ToUSD(remaining, rate),
		Rate:            rate,
	}
	for _, category := range l.Categories() {
		amount := perCategory[category]
		s.Breakdown = append(s.Breakdown, CategoryTotal{
			Category: category,
			Amount:   KRWAmount(amount),
			Share:    Percent(float64(amount) / float64(divisor) * 100),
		})
	}
	return s
}
