package cmd

import (
	"fmt"
	"strings"

	budget "github.com/rotanakkosal/personal-budget-tracking"
)

// markdown table builders shared by the tx, summary and show commands.

func incomeMarkdown(l *budget.Ledger, rate float64) string {
	var b strings.Builder
	b.WriteString("# Income\n\n")
	if l.NumIncomes() == 0 {
		b.WriteString("No income recorded yet.\n")
		return b.String()
	}
	b.WriteString("| Date | Description | Amount | USD | Notes | ID |\n")
	b.WriteString("|---|---|--:|--:|---|---|\n")
	for r := range l.Incomes() {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n",
			r.Date, r.Desc, r.KRW(), budget.ToUSD(r.Amount, rate), r.Notes, r.ID)
	}
	return b.String()
}

func expenseMarkdown(l *budget.Ledger, rate float64) string {
	var b strings.Builder
	b.WriteString("# Expenses\n\n")
	if l.NumExpenses() == 0 {
		b.WriteString("No expenses recorded yet.\n")
		return b.String()
	}
	b.WriteString("| Date | Category | Description | Amount | USD | Notes | ID |\n")
	b.WriteString("|---|---|---|--:|--:|---|---|\n")
	for r := range l.Expenses() {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s |\n",
			r.Date, r.Category, r.Desc, r.KRW(), budget.ToUSD(r.Amount, rate), r.Notes, r.ID)
	}
	return b.String()
}

func summaryMarkdown(s *budget.Summary) string {
	var b strings.Builder
	b.WriteString("# Summary\n\n")
	fmt.Fprintf(&b, "Exchange rate: %.2f KRW per USD\n\n", s.Rate)
	b.WriteString("| | KRW | USD |\n")
	b.WriteString("|---|--:|--:|\n")
	fmt.Fprintf(&b, "| Total income | %s | %s |\n", s.TotalIncome, s.TotalIncomeUSD)
	fmt.Fprintf(&b, "| Total expense | %s | %s |\n", s.TotalExpense, s.TotalExpenseUSD)
	fmt.Fprintf(&b, "| Remaining | %s | %s |\n", s.Remaining, s.RemainingUSD)
	b.WriteString("\n## By category\n\n")
	b.WriteString("| Category | Amount | Share |\n")
	b.WriteString("|---|--:|--:|\n")
	for _, line := range s.Breakdown {
		fmt.Fprintf(&b, "| %s | %s | %s |\n", line.Category, line.Amount, line.Share)
	}
	return b.String()
}
