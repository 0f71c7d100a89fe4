package budget

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"time"
)

// this file contains functions to handle the import/export format.
// It should remain human readable, single file and easy to move between
// devices; it is the one format other tools are expected to produce.

// ExportVersion tags the export document schema.
const ExportVersion = 1

// Export writes the versioned snapshot of the ledger plus the current rate
// to 'w' as a single indented JSON document.
func Export(w io.Writer, l *Ledger, rate float64) error {
	// the readable version of the format can be summarized by one type.
	type jdocument struct {
		Version    int             `json:"version"`
		Rate       float64         `json:"rate"`
		ExportedAt string          `json:"exportedAt"`
		Income     []IncomeRecord  `json:"income"`
		Expenses   []ExpenseRecord `json:"expenses"`
		Categories []string        `json:"categories"`
	}

	doc := jdocument{
		Version:    ExportVersion,
		Rate:       rate,
		ExportedAt: time.Now().Format(time.RFC3339),
		Income:     append([]IncomeRecord{}, l.income...),
		Expenses:   append([]ExpenseRecord{}, l.expenses...),
		Categories: append([]string{}, l.categories...),
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot marshal export document: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("cannot write export document: %w", err)
	}
	return nil
}

// ExportFilename returns the default name for an export produced on the
// given day.
func ExportFilename(now time.Time) string {
	return "budget-export-" + now.Format("2006-01-02") + ".json"
}

// Import parses 'r' as the export document format and builds a fresh
// ledger out of it.
//
// Input that is not parseable at all fails with ErrParse. Input whose
// top-level income or expenses fields are not present as arrays fails with
// ErrMalformed. On structural success each entry is individually repaired
// rather than rejected: a missing identifier is generated, missing date or
// description become empty strings, the amount is coerced to a non-negative
// integer (negative, non-numeric or out-of-range becomes 0), and a missing
// expense category becomes "Other". The category set is the union of the imported
// list (or the defaults when empty or absent) and every category referenced
// by an imported expense.
//
// Replacing the current ledger with the result is the caller's decision;
// nothing is merged or persisted here.
func Import(r io.Reader) (*Ledger, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	var raw struct {
		Income     json.RawMessage `json:"income"`
		Expenses   json.RawMessage `json:"expenses"`
		Categories json.RawMessage `json:"categories"`
	}
	if err := json.Unmarshal(content, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	jincome, err := asEntryList("income", raw.Income)
	if err != nil {
		return nil, err
	}
	jexpenses, err := asEntryList("expenses", raw.Expenses)
	if err != nil {
		return nil, err
	}

	income := make([]IncomeRecord, 0, len(jincome))
	for _, entry := range jincome {
		income = append(income, IncomeRecord{
			ID:     repairID(entry["id"]),
			Date:   asString(entry["date"]),
			Desc:   asString(entry["desc"]),
			Amount: coerceAmount(entry["amount"]),
			Notes:  asString(entry["notes"]),
		})
	}

	expenses := make([]ExpenseRecord, 0, len(jexpenses))
	for _, entry := range jexpenses {
		// trimmed before the category set union, so a padded spelling
		// cannot sneak in as a distinct category.
		category := strings.TrimSpace(asString(entry["category"]))
		if category == "" {
			category = "Other"
		}
		expenses = append(expenses, ExpenseRecord{
			ID:       repairID(entry["id"]),
			Date:     asString(entry["date"]),
			Category: category,
			Desc:     asString(entry["desc"]),
			Amount:   coerceAmount(entry["amount"]),
			Notes:    asString(entry["notes"]),
		})
	}

	categories := importedCategories(raw.Categories)
	if len(categories) == 0 {
		categories = DefaultCategories()
	}

	l := &Ledger{}
	l.ReplaceAll(income, expenses, categories)
	return l, nil
}

// asEntryList checks that a top-level field is present as an array and
// returns its entries as generic objects. A non-object entry degrades to an
// empty object, so it is repaired into an empty record instead of aborting
// the import.
func asEntryList(field string, raw json.RawMessage) ([]map[string]any, error) {
	if raw == nil || string(raw) == "null" {
		return nil, fmt.Errorf("%w: missing %q array", ErrMalformed, field)
	}
	var items []any
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("%w: %q is not an array", ErrMalformed, field)
	}
	entries := make([]map[string]any, 0, len(items))
	for _, item := range items {
		entry, ok := item.(map[string]any)
		if !ok {
			entry = map[string]any{}
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// importedCategories keeps the string entries of the categories field, in
// order. Anything else (absent field, wrong type, non-string entries) is
// dropped silently.
func importedCategories(raw json.RawMessage) []string {
	if raw == nil {
		return nil
	}
	var items []any
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}
	var categories []string
	for _, item := range items {
		if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
			categories = append(categories, s)
		}
	}
	return categories
}

// repairID keeps a non-empty string identifier and generates one otherwise.
func repairID(v any) string {
	if s, ok := v.(string); ok && s != "" {
		return s
	}
	return newID()
}

// asString keeps a string value and repairs anything else to "".
func asString(v any) string {
	s, _ := v.(string)
	return s
}

// coerceAmount coerces an arbitrary JSON value to a non-negative integer
// amount. Negative, non-numeric or out-of-range values become 0.
func coerceAmount(v any) int64 {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0
		}
		f = parsed
	default:
		return 0
	}
	// values at or beyond 2^63 would overflow the int64 conversion and
	// come out negative.
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 || f >= math.MaxInt64 {
		return 0
	}
	return int64(math.Round(f))
}
