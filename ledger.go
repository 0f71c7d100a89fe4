package budget

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// DefaultCategories seeds the category set of a new (or cleared) ledger.
func DefaultCategories() []string {
	return []string{
		"Food",
		"Transport",
		"Housing",
		"Utilities",
		"Healthcare",
		"Entertainment",
		"Shopping",
		"Other",
	}
}

// Ledger is the aggregate root: the income records, the expense records and
// the category set of one user.
//
// Collections keep their insertion order; deleting records never reorders
// the survivors, and categories grow but are never removed automatically.
type Ledger struct {
	income     []IncomeRecord
	expenses   []ExpenseRecord
	categories []string // ordered, case-sensitive storage, unique ignoring case
}

// NewLedger creates an empty ledger seeded with the default categories.
func NewLedger() *Ledger {
	return &Ledger{categories: DefaultCategories()}
}

// Incomes returns an iterator over income records in insertion order.
func (l *Ledger) Incomes() iter.Seq[IncomeRecord] {
	return func(yield func(IncomeRecord) bool) {
		for _, r := range l.income {
			if !yield(r) {
				return
			}
		}
	}
}

// Expenses returns an iterator over expense records in insertion order.
func (l *Ledger) Expenses() iter.Seq[ExpenseRecord] {
	return func(yield func(ExpenseRecord) bool) {
		for _, r := range l.expenses {
			if !yield(r) {
				return
			}
		}
	}
}

// Categories returns a copy of the category set, in order.
func (l *Ledger) Categories() []string {
	return slices.Clone(l.categories)
}

func (l *Ledger) NumIncomes() int  { return len(l.income) }
func (l *Ledger) NumExpenses() int { return len(l.expenses) }

// resolveCategory finds the stored spelling of a category name, ignoring
// case.
func (l *Ledger) resolveCategory(name string) (string, bool) {
	for _, c := range l.categories {
		if strings.EqualFold(c, name) {
			return c, true
		}
	}
	return "", false
}

// HasCategory reports whether the category exists, ignoring case.
func (l *Ledger) HasCategory(name string) bool {
	_, ok := l.resolveCategory(name)
	return ok
}

// AddIncome validates the fields and appends a new income record.
// On failure the ledger is left untouched.
func (l *Ledger) AddIncome(f RecordFields) (IncomeRecord, error) {
	date := strings.TrimSpace(f.Date)
	desc := strings.TrimSpace(f.Desc)
	if date == "" {
		return IncomeRecord{}, fmt.Errorf("%w: date is required", ErrValidation)
	}
	if desc == "" {
		return IncomeRecord{}, fmt.Errorf("%w: description is required", ErrValidation)
	}
	amount, err := parseAmount(f.Amount)
	if err != nil {
		return IncomeRecord{}, err
	}
	r := IncomeRecord{
		ID:     newID(),
		Date:   date,
		Desc:   desc,
		Amount: amount,
		Notes:  strings.TrimSpace(f.Notes),
	}
	l.income = append(l.income, r)
	return r, nil
}

// AddExpense validates the fields and appends a new expense record. The
// category must reference an entry of the category set; it is stored with
// the set's spelling. On failure the ledger is left untouched.
func (l *Ledger) AddExpense(f RecordFields) (ExpenseRecord, error) {
	date := strings.TrimSpace(f.Date)
	desc := strings.TrimSpace(f.Desc)
	category := strings.TrimSpace(f.Category)
	if date == "" {
		return ExpenseRecord{}, fmt.Errorf("%w: date is required", ErrValidation)
	}
	if desc == "" {
		return ExpenseRecord{}, fmt.Errorf("%w: description is required", ErrValidation)
	}
	if category == "" {
		return ExpenseRecord{}, fmt.Errorf("%w: category is required", ErrValidation)
	}
	stored, ok := l.resolveCategory(category)
	if !ok {
		return ExpenseRecord{}, fmt.Errorf("%w: unknown category %q, add it first", ErrValidation, category)
	}
	amount, err := parseAmount(f.Amount)
	if err != nil {
		return ExpenseRecord{}, err
	}
	r := ExpenseRecord{
		ID:       newID(),
		Date:     date,
		Category: stored,
		Desc:     desc,
		Amount:   amount,
		Notes:    strings.TrimSpace(f.Notes),
	}
	l.expenses = append(l.expenses, r)
	return r, nil
}

// AddCategory appends a new category name. Duplicates are rejected ignoring
// case, but the name is stored as given.
func (l *Ledger) AddCategory(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: category name is required", ErrValidation)
	}
	if existing, ok := l.resolveCategory(name); ok {
		return fmt.Errorf("%w: %q already exists", ErrDuplicate, existing)
	}
	l.categories = append(l.categories, name)
	return nil
}

// DeleteRecord removes the record with the given id from the income or
// expense collection. Deleting an unknown id is a no-op: it reports false
// and the collection is unchanged.
func (l *Ledger) DeleteRecord(id string, kind RecordKind) bool {
	switch kind {
	case Income:
		for i, r := range l.income {
			if r.ID == id {
				l.income = slices.Delete(l.income, i, i+1)
				return true
			}
		}
	case Expense:
		for i, r := range l.expenses {
			if r.ID == id {
				l.expenses = slices.Delete(l.expenses, i, i+1)
				return true
			}
		}
	}
	return false
}

// ReplaceAll swaps all three collections at once. It is the primitive
// behind import and clear-all; no merge with the previous contents is
// attempted. Categories referenced by the new expenses are appended to the
// set if missing.
func (l *Ledger) ReplaceAll(income []IncomeRecord, expenses []ExpenseRecord, categories []string) {
	l.income = slices.Clone(income)
	l.expenses = slices.Clone(expenses)
	l.categories = nil
	for _, c := range categories {
		if c = strings.TrimSpace(c); c == "" {
			continue
		}
		if !l.HasCategory(c) {
			l.categories = append(l.categories, c)
		}
	}
	l.healCategories()
}

// Clear resets the ledger to empty collections and the default categories.
func (l *Ledger) Clear() {
	l.ReplaceAll(nil, nil, DefaultCategories())
}

// healCategories appends every category referenced by an expense but absent
// from the set. Loaded and imported data may reference categories the set
// never recorded; the set is the union of both.
func (l *Ledger) healCategories() (added []string) {
	for _, r := range l.expenses {
		if r.Category == "" {
			continue
		}
		if !l.HasCategory(r.Category) {
			l.categories = append(l.categories, r.Category)
			added = append(added, r.Category)
		}
	}
	return added
}

// ExpensesIn returns an iterator over the expenses recorded in a category.
func (l *Ledger) ExpensesIn(category string) iter.Seq[ExpenseRecord] {
	return func(yield func(ExpenseRecord) bool) {
		for _, r := range l.expenses {
			if r.Category == category {
				if !yield(r) {
					return
				}
			}
		}
	}
}
