package budget

import (
	"context"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestShouldRefresh(t *testing.T) {
	const now = int64(1_700_000_000_000)
	maxAge := MaxRateAge.Milliseconds()

	tests := []struct {
		name          string
		lastFetchedAt int64
		want          bool
	}{
		{"never fetched", 0, true},
		{"negative timestamp", -42, true},
		{"just fetched", now, false},
		{"one millisecond before the boundary", now - maxAge + 1, false},
		{"exactly at the boundary", now - maxAge, false},
		{"one millisecond past the boundary", now - maxAge - 1, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ShouldRefresh(now, tc.lastFetchedAt, MaxRateAge); got != tc.want {
				t.Errorf("ShouldRefresh(now, %d) = %v, want %v", tc.lastFetchedAt, got, tc.want)
			}
		})
	}
}

func TestRateCache_LoadPersisted(t *testing.T) {
	tests := []struct {
		name     string
		rate     float64
		accepted bool
	}{
		{"positive rate", 1302.5, true},
		{"zero rate", 0, false},
		{"negative rate", -10, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			notices := NewNotifier()
			store := NewStore(t.TempDir(), notices)
			if err := store.SaveRate(tc.rate, 12345); err != nil {
				t.Fatalf("SaveRate() returned an unexpected error: %v", err)
			}

			c := NewRateCache(store, notices, "")
			if got := c.LoadPersisted(); got != tc.accepted {
				t.Fatalf("LoadPersisted() = %v, want %v", got, tc.accepted)
			}
			if tc.accepted {
				if c.Rate() != tc.rate || c.FetchedAt() != 12345 {
					t.Errorf("cache = (%v, %d), want (%v, 12345)", c.Rate(), c.FetchedAt(), tc.rate)
				}
			} else if c.Rate() != DefaultRate {
				t.Errorf("rejected value must leave the default, got %v", c.Rate())
			}
		})
	}
}

func TestRateCache_LoadPersisted_Missing(t *testing.T) {
	notices := NewNotifier()
	c := NewRateCache(NewStore(t.TempDir(), notices), notices, "")
	if c.LoadPersisted() {
		t.Error("LoadPersisted() accepted a value from an empty store")
	}
	if c.Rate() != DefaultRate {
		t.Errorf("Rate() = %v, want the built-in default %v", c.Rate(), DefaultRate)
	}
}

func TestRateCache_Refresh(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result":"success","base_code":"KRW","rates":{"USD":0.00072,"EUR":0.00066}}`))
	}))
	defer server.Close()

	notices := NewNotifier()
	store := NewStore(t.TempDir(), notices)
	c := NewRateCache(store, notices, server.URL)

	rate, err := c.Refresh(context.Background())
	if err != nil {
		t.Fatalf("Refresh() returned an unexpected error: %v", err)
	}
	want := 1 / 0.00072
	if math.Abs(rate-want) > 1e-9 {
		t.Errorf("Refresh() = %v, want %v", rate, want)
	}
	if c.Rate() != rate {
		t.Errorf("Rate() = %v, want the refreshed value %v", c.Rate(), rate)
	}

	// the value and a fresh timestamp are persisted.
	persisted, fetchedAt, ok := store.LoadRate()
	if !ok || persisted != rate {
		t.Errorf("persisted rate = (%v, %v), want (%v, true)", persisted, ok, rate)
	}
	if fetchedAt <= 0 {
		t.Errorf("persisted timestamp = %d, want a fresh epoch-ms value", fetchedAt)
	}
}

func TestRateCache_Refresh_Failures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"http error", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "boom", http.StatusInternalServerError)
		}},
		{"invalid json", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{broken`))
		}},
		{"missing usd field", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"rates":{"EUR":0.00066}}`))
		}},
		{"usd not a number", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"rates":{"USD":"0.00072"}}`))
		}},
		{"usd not positive", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"rates":{"USD":0}}`))
		}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(tc.handler)
			defer server.Close()

			notices := NewNotifier()
			store := NewStore(t.TempDir(), notices)
			c := NewRateCache(store, notices, server.URL)

			_, err := c.Refresh(context.Background())
			if !errors.Is(err, ErrFetch) {
				t.Fatalf("Refresh() error = %v, want ErrFetch", err)
			}
			// the last known value is retained and nothing is persisted.
			if c.Rate() != DefaultRate {
				t.Errorf("Rate() = %v, want %v retained", c.Rate(), DefaultRate)
			}
			if _, _, ok := store.LoadRate(); ok {
				t.Error("a failed refresh must not persist anything")
			}
		})
	}
}

func TestRateCache_Refresh_Unreachable(t *testing.T) {
	notices := NewNotifier()
	store := NewStore(t.TempDir(), notices)
	c := NewRateCache(store, notices, "http://127.0.0.1:1/nothing-here")

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if _, err := c.Refresh(ctx); !errors.Is(err, ErrFetch) {
		t.Fatalf("Refresh() error = %v, want ErrFetch", err)
	}
}

func TestRateCache_RefreshAsync_Commits(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"rates":{"USD":0.0008}}`))
	}))
	defer server.Close()

	notices := NewNotifier()
	store := NewStore(t.TempDir(), notices)
	c := NewRateCache(store, notices, server.URL)

	<-c.RefreshAsync(context.Background())

	want := 1 / 0.0008
	if math.Abs(c.Rate()-want) > 1e-9 {
		t.Fatalf("Rate() = %v, want %v committed", c.Rate(), want)
	}
	if _, _, ok := store.LoadRate(); !ok {
		t.Error("a completed refresh must persist its result")
	}

	// invalidating after completion must not undo the commit.
	c.Invalidate()
	if math.Abs(c.Rate()-want) > 1e-9 {
		t.Errorf("Rate() = %v after late invalidation, want %v retained", c.Rate(), want)
	}
}

func TestRateCache_RefreshAsync_Invalidated(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"rates":{"USD":0.00072}}`))
	}))
	defer server.Close()

	notices := NewNotifier()
	store := NewStore(t.TempDir(), notices)
	c := NewRateCache(store, notices, server.URL)

	// the consumer goes away before the refresh resolves: the late result
	// must be discarded.
	c.Invalidate()
	<-c.RefreshAsync(context.Background())

	if c.Rate() != DefaultRate {
		t.Errorf("Rate() = %v, want %v (result discarded)", c.Rate(), DefaultRate)
	}
	if _, _, ok := store.LoadRate(); ok {
		t.Error("a discarded refresh must not persist anything")
	}
}

func TestRateCache_Stale(t *testing.T) {
	notices := NewNotifier()
	store := NewStore(t.TempDir(), notices)
	c := NewRateCache(store, notices, "")

	now := time.Now()
	if !c.Stale(now) {
		t.Error("a never-fetched cache must be stale")
	}

	if err := store.SaveRate(1302.5, now.UnixMilli()); err != nil {
		t.Fatal(err)
	}
	c.LoadPersisted()
	if c.Stale(now) {
		t.Error("a just-fetched cache must not be stale")
	}
	if !c.Stale(now.Add(MaxRateAge + time.Millisecond)) {
		t.Error("a cache past the staleness window must be stale")
	}
}
