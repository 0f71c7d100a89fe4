package budget

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Tab identifies the section of the ledger the user looked at last. It is
// persisted so the next session can reopen on the same view.
type Tab string

const (
	TabIncome   Tab = "income"
	TabExpenses Tab = "expenses"
	TabSummary  Tab = "summary"
)

// ParseTab parses a string into a Tab.
func ParseTab(s string) (Tab, error) {
	switch Tab(s) {
	case TabIncome, TabExpenses, TabSummary:
		return Tab(s), nil
	default:
		return "", fmt.Errorf("unknown tab: %q", s)
	}
}

// Storage slot names. Each slot is an independent JSON document in the data
// directory, one file per key.
const (
	slotIncome        = "income"
	slotExpenses      = "expenses"
	slotCategories    = "categories"
	slotRate          = "rate"
	slotRateFetchedAt = "rate_fetched_at"
	slotTab           = "tab"
)

// Store persists the ledger, the cached rate and the active tab as per-key
// JSON files under a single data directory.
type Store struct {
	dir     string
	notices *Notifier
}

// NewStore creates a store rooted at dir. Outcomes worth telling the user
// about (corrupt slots, failed writes) are pushed to the notifier.
func NewStore(dir string, notices *Notifier) *Store {
	return &Store{dir: dir, notices: notices}
}

// Dir returns the data directory of the store.
func (s *Store) Dir() string { return s.dir }

func (s *Store) slotPath(name string) string {
	return filepath.Join(s.dir, name+".json")
}

// readSlot decodes a slot into v. It reports found=false when the slot file
// does not exist, and an error when the content cannot be decoded.
func (s *Store) readSlot(name string, v any) (found bool, err error) {
	content, err := os.ReadFile(s.slotPath(name))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("cannot read slot %q: %w", name, err)
	}
	if err := json.Unmarshal(content, v); err != nil {
		return false, fmt.Errorf("cannot decode slot %q: %w", name, err)
	}
	return true, nil
}

// writeSlot encodes v into a slot, creating the data directory on first use.
func (s *Store) writeSlot(name string, v any) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("%w: cannot create data directory %q: %v", ErrStorage, s.dir, err)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: cannot encode slot %q: %v", ErrStorage, name, err)
	}
	if err := os.WriteFile(s.slotPath(name), append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("%w: cannot write slot %q: %v", ErrStorage, name, err)
	}
	return nil
}

// LoadLedger reads the three ledger slots and assembles a ledger. It never
// fails: a missing slot yields its default, a corrupt slot is reset to its
// default with a notification, and categories referenced by loaded expenses
// are appended to the set.
func (s *Store) LoadLedger() *Ledger {
	l := &Ledger{}

	var income []IncomeRecord
	if _, err := s.readSlot(slotIncome, &income); err != nil {
		s.notices.Errorf("income data was unreadable and has been reset")
		income = nil
	}
	var expenses []ExpenseRecord
	if _, err := s.readSlot(slotExpenses, &expenses); err != nil {
		s.notices.Errorf("expense data was unreadable and has been reset")
		expenses = nil
	}
	var categories []string
	found, err := s.readSlot(slotCategories, &categories)
	if err != nil {
		s.notices.Errorf("category data was unreadable and has been reset")
		found = false
	}
	if !found || len(categories) == 0 {
		categories = DefaultCategories()
	}

	// Records persisted by older tools may lack an id; give them one so
	// deletion by id keeps working.
	for i := range income {
		if income[i].ID == "" {
			income[i].ID = newID()
		}
	}
	for i := range expenses {
		if expenses[i].ID == "" {
			expenses[i].ID = newID()
		}
	}

	l.income = income
	l.expenses = expenses
	for _, c := range categories {
		if !l.HasCategory(c) {
			l.categories = append(l.categories, c)
		}
	}
	l.healCategories()
	return l
}

// SaveLedger writes the three ledger slots. Collections are persisted as
// JSON arrays, never null, so that a reload round-trips cleanly.
func (s *Store) SaveLedger(l *Ledger) error {
	income := l.income
	if income == nil {
		income = []IncomeRecord{}
	}
	expenses := l.expenses
	if expenses == nil {
		expenses = []ExpenseRecord{}
	}
	categories := l.categories
	if categories == nil {
		categories = []string{}
	}
	if err := s.writeSlot(slotIncome, income); err != nil {
		return err
	}
	if err := s.writeSlot(slotExpenses, expenses); err != nil {
		return err
	}
	return s.writeSlot(slotCategories, categories)
}

// LoadRate reads the persisted rate and its fetch timestamp. ok is false
// when either slot is missing or unreadable; validation of the value itself
// is the rate cache's business.
func (s *Store) LoadRate() (rate float64, fetchedAt int64, ok bool) {
	if found, err := s.readSlot(slotRate, &rate); err != nil || !found {
		return 0, 0, false
	}
	// a missing timestamp still counts: the value is usable, only stale.
	if found, err := s.readSlot(slotRateFetchedAt, &fetchedAt); err != nil || !found {
		fetchedAt = 0
	}
	return rate, fetchedAt, true
}

// SaveRate persists the rate value and its fetch timestamp (epoch ms).
func (s *Store) SaveRate(rate float64, fetchedAt int64) error {
	if err := s.writeSlot(slotRate, rate); err != nil {
		return err
	}
	return s.writeSlot(slotRateFetchedAt, fetchedAt)
}

// ActiveTab returns the persisted active tab, defaulting to income.
func (s *Store) ActiveTab() Tab {
	var raw string
	if found, err := s.readSlot(slotTab, &raw); err != nil || !found {
		return TabIncome
	}
	tab, err := ParseTab(raw)
	if err != nil {
		return TabIncome
	}
	return tab
}

// SetActiveTab persists the active tab.
func (s *Store) SetActiveTab(tab Tab) error {
	return s.writeSlot(slotTab, string(tab))
}
