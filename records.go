package budget

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RecordKind identifies which collection a record belongs to.
type RecordKind string

const (
	Income  RecordKind = "income"
	Expense RecordKind = "expense"
)

// ParseRecordKind parses a string into a RecordKind.
func ParseRecordKind(s string) (RecordKind, error) {
	switch s {
	case "income":
		return Income, nil
	case "expense", "expenses":
		return Expense, nil
	default:
		return "", fmt.Errorf("unknown record kind: %q", s)
	}
}

// IncomeRecord is a single income entry. Records are immutable once
// created: they are only ever deleted or replaced in bulk.
type IncomeRecord struct {
	ID     string `json:"id"`     // unique within the income collection
	Date   string `json:"date"`   // calendar date, kept as the user typed it
	Desc   string `json:"desc"`   // non-empty description
	Amount int64  `json:"amount"` // positive integer amount in KRW
	Notes  string `json:"notes,omitempty"`
}

// ExpenseRecord is a single expense entry. The category references the
// ledger's category set at creation time but is stored as free text.
type ExpenseRecord struct {
	ID       string `json:"id"`
	Date     string `json:"date"`
	Category string `json:"category"`
	Desc     string `json:"desc"`
	Amount   int64  `json:"amount"`
	Notes    string `json:"notes,omitempty"`
}

// MarshalJSON implements json.Marshaler with a canonical field order.
func (r IncomeRecord) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", r.ID)
	w.Append("date", r.Date)
	w.Append("desc", r.Desc)
	w.Append("amount", r.Amount)
	w.Optional("notes", r.Notes)
	return w.MarshalJSON()
}

// MarshalJSON implements json.Marshaler with a canonical field order.
func (r ExpenseRecord) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", r.ID)
	w.Append("date", r.Date)
	w.Append("category", r.Category)
	w.Append("desc", r.Desc)
	w.Append("amount", r.Amount)
	w.Optional("notes", r.Notes)
	return w.MarshalJSON()
}

// KRW returns the record amount as Money.
func (r IncomeRecord) KRW() Money  { return KRWAmount(r.Amount) }
func (r ExpenseRecord) KRW() Money { return KRWAmount(r.Amount) }

// RecordFields carries raw user input for a new record, before validation.
type RecordFields struct {
	Date     string
	Desc     string
	Amount   string
	Category string // expenses only
	Notes    string
}

// newID returns a fresh unique record identifier.
func newID() string { return uuid.NewString() }

// parseAmount validates a raw amount: it must parse as a number that rounds
// to a strictly positive integer.
func parseAmount(raw string) (int64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: amount %q is not a number", ErrValidation, raw)
	}
	amount := d.Round(0).IntPart()
	if amount <= 0 {
		return 0, fmt.Errorf("%w: amount must be a positive number, got %q", ErrValidation, raw)
	}
	return amount, nil
}
