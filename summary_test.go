package budget

import (
	"math"
	"testing"
)

func TestNewSummary_Totals(t *testing.T) {
	l := NewLedger()
	l.AddIncome(RecordFields{Date: "2024-01-01", Desc: "Salary", Amount: "3000000"})
	l.AddIncome(RecordFields{Date: "2024-01-15", Desc: "Bonus", Amount: "500000"})
	l.AddExpense(RecordFields{Date: "2024-01-02", Category: "Food", Desc: "Groceries", Amount: "45000"})
	l.AddExpense(RecordFields{Date: "2024-01-03", Category: "Transport", Desc: "Subway", Amount: "55000"})

	s := NewSummary(l, 1000)

	if !s.TotalIncome.Equal(KRWAmount(3500000)) {
		t.Errorf("TotalIncome = %v, want ₩3,500,000", s.TotalIncome)
	}
	if !s.TotalExpense.Equal(KRWAmount(100000)) {
		t.Errorf("TotalExpense = %v, want ₩100,000", s.TotalExpense)
	}
	if !s.Remaining.Equal(KRWAmount(3400000)) {
		t.Errorf("Remaining = %v, want ₩3,400,000", s.Remaining)
	}
	if !s.TotalIncomeUSD.Equal(M(3500, USD)) {
		t.Errorf("TotalIncomeUSD = %v, want $3,500.00", s.TotalIncomeUSD)
	}
	if !s.RemainingUSD.Equal(M(3400, USD)) {
		t.Errorf("RemainingUSD = %v, want $3,400.00", s.RemainingUSD)
	}
}

func TestNewSummary_RemainingMayBeNegative(t *testing.T) {
	l := NewLedger()
	l.AddIncome(RecordFields{Date: "2024-01-01", Desc: "Salary", Amount: "1000"})
	l.AddExpense(RecordFields{Date: "2024-01-02", Category: "Food", Desc: "Feast", Amount: "5000"})

	s := NewSummary(l, 1000)
	if !s.Remaining.Equal(KRWAmount(-4000)) {
		t.Errorf("Remaining = %v, want ₩-4,000", s.Remaining)
	}
	if !s.RemainingUSD.Equal(M(-4, USD)) {
		t.Errorf("RemainingUSD = %v, want -$4.00", s.RemainingUSD)
	}
}

func TestNewSummary_Breakdown(t *testing.T) {
	l := NewLedger()
	l.AddExpense(RecordFields{Date: "2024-01-01", Category: "Food", Desc: "A", Amount: "75000"})
	l.AddExpense(RecordFields{Date: "2024-01-02", Category: "Transport", Desc: "B", Amount: "25000"})

	s := NewSummary(l, DefaultRate)

	// one line per category of the set, even without expenses.
	if len(s.Breakdown) != len(l.Categories()) {
		t.Fatalf("Breakdown has %d lines, want %d", len(s.Breakdown), len(l.Categories()))
	}

	var sum Percent
	byName := make(map[string]CategoryTotal)
	for _, line := range s.Breakdown {
		sum += line.Share
		byName[line.Category] = line
	}
	if !sum.Equal(100) {
		t.Errorf("shares sum to %v, want 100%%", sum)
	}
	if !byName["Food"].Share.Equal(75) {
		t.Errorf("Food share = %v, want 75%%", byName["Food"].Share)
	}
	if !byName["Transport"].Share.Equal(25) {
		t.Errorf("Transport share = %v, want 25%%", byName["Transport"].Share)
	}
	// categories with no expense report 0%, not NaN.
	if !byName["Housing"].Share.Equal(0) {
		t.Errorf("Housing share = %v, want 0%%", byName["Housing"].Share)
	}
}

func TestNewSummary_EmptyLedger(t *testing.T) {
	s := NewSummary(NewLedger(), DefaultRate)
	for _, line := range s.Breakdown {
		if math.IsNaN(float64(line.Share)) {
			t.Fatalf("share of %q is NaN on an empty ledger", line.Category)
		}
		if !line.Share.Equal(0) {
			t.Errorf("share of %q = %v, want 0%%", line.Category, line.Share)
		}
	}
}

func TestNewSummary_BadRateYieldsZeroUSD(t *testing.T) {
	l := NewLedger()
	l.AddIncome(RecordFields{Date: "2024-01-01", Desc: "Salary", Amount: "3000000"})

	s := NewSummary(l, 0)
	if !s.TotalIncomeUSD.IsZero() {
		t.Errorf("TotalIncomeUSD = %v with a zero rate, want zero", s.TotalIncomeUSD)
	}
}
