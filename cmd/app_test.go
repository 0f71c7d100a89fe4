package cmd

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	budget "github.com/rotanakkosal/personal-budget-tracking"
)

func TestOpenSession_RefreshesStaleRate(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte(`{"rates":{"USD":0.0008}}`))
	}))
	defer server.Close()

	t.Setenv("PBT_HOME", t.TempDir())
	t.Setenv("PBT_RATE_URL", server.URL)

	// no persisted rate: every session, even a mutating one, attempts the
	// one-shot refresh at open.
	s := openSession(context.Background())
	s.waitRate()

	if got := hits.Load(); got != 1 {
		t.Fatalf("provider was hit %d times, want 1", got)
	}
	if s.rates.Rate() == budget.DefaultRate {
		t.Errorf("Rate() = %v, want the fetched value committed", s.rates.Rate())
	}
	if _, _, ok := s.store.LoadRate(); !ok {
		t.Error("the refreshed rate must be persisted for the next session")
	}
}

func TestOpenSession_FreshRateSkipsRefresh(t *testing.T) {
	var hits atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write([]byte(`{"rates":{"USD":0.0008}}`))
	}))
	defer server.Close()

	dir := t.TempDir()
	t.Setenv("PBT_HOME", dir)
	t.Setenv("PBT_RATE_URL", server.URL)

	seed := budget.NewStore(dir, budget.NewNotifier())
	if err := seed.SaveRate(1302.5, time.Now().UnixMilli()); err != nil {
		t.Fatal(err)
	}

	s := openSession(context.Background())
	s.waitRate()

	if got := hits.Load(); got != 0 {
		t.Fatalf("provider was hit %d times for a fresh rate, want 0", got)
	}
	if s.rates.Rate() != 1302.5 {
		t.Errorf("Rate() = %v, want the persisted 1302.5", s.rates.Rate())
	}
}
