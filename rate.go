package budget

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/PaesslerAG/jsonpath"
)

const (
	// DefaultRate is the built-in KRW-per-USD value used until a persisted
	// or fetched rate is available.
	DefaultRate = 1388.0

	// MaxRateAge is the staleness window: a cached rate older than this is
	// due for a refresh.
	MaxRateAge = 12 * time.Hour

	// DefaultRateEndpoint serves the latest rates keyed on KRW. The payload
	// carries the USD factor under rates.USD (USD per 1 KRW).
	DefaultRateEndpoint = "https://open.er-api.com/v6/latest/KRW"
)

// RateCache owns the current KRW-per-USD exchange rate and its fetch
// timestamp. It decides when a refresh is due, performs the refresh and
// persists the result, and falls back to the last known value on failure.
type RateCache struct {
	mu        sync.Mutex
	rate      float64
	fetchedAt int64 // epoch milliseconds, 0 when never fetched

	store    *Store
	notices  *Notifier
	endpoint string
	client   *http.Client

	// once set, an in-flight refresh discards its result instead of
	// committing it.
	invalidated atomic.Bool
}

// NewRateCache creates a cache holding the built-in default rate. An empty
// endpoint selects the default provider.
func NewRateCache(store *Store, notices *Notifier, endpoint string) *RateCache {
	if endpoint == "" {
		endpoint = DefaultRateEndpoint
	}
	return &RateCache{
		rate:     DefaultRate,
		store:    store,
		notices:  notices,
		endpoint: endpoint,
		client:   daily(),
	}
}

// Rate returns the current in-memory KRW-per-USD value. It never blocks on
// the network.
func (c *RateCache) Rate() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rate
}

// FetchedAt returns the epoch-millisecond timestamp of the last successful
// fetch, or 0 when the rate was never fetched.
func (c *RateCache) FetchedAt() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fetchedAt
}

// LoadPersisted reads the stored rate and timestamp. The value is accepted
// only if it is a finite positive number; anything else is ignored and the
// built-in default stands. It reports whether a value was accepted.
func (c *RateCache) LoadPersisted() bool {
	rate, fetchedAt, ok := c.store.LoadRate()
	if !ok || !validRate(rate) {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rate = rate
	c.fetchedAt = fetchedAt
	return true
}

// Stale reports whether the cached rate is due for a refresh.
func (c *RateCache) Stale(now time.Time) bool {
	return ShouldRefresh(now.UnixMilli(), c.FetchedAt(), MaxRateAge)
}

// ShouldRefresh reports whether a refresh is due: there is no usable
// timestamp on record, or the rate is older than maxAge. A rate aged
// exactly maxAge is still fresh.
func ShouldRefresh(nowMillis, lastFetchedAt int64, maxAge time.Duration) bool {
	if lastFetchedAt <= 0 {
		return true
	}
	return nowMillis-lastFetchedAt > maxAge.Milliseconds()
}

// Refresh fetches the latest rate from the provider once, and on success
// updates the in-memory value and persists both the value and a fresh
// timestamp. On any failure the in-memory value is left unchanged and the
// error wraps ErrFetch; no retry is scheduled.
func (c *RateCache) Refresh(ctx context.Context) (float64, error) {
	rate, err := c.fetch(ctx)
	if err != nil {
		return c.Rate(), err
	}
	c.commit(rate)
	return rate, nil
}

// RefreshAsync runs Refresh in the background, fire-and-forget. The result
// is committed only if the cache has not been invalidated in the meantime;
// failures surface as notifications. The returned channel closes when the
// attempt is over.
func (c *RateCache) RefreshAsync(ctx context.Context) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		rate, err := c.fetch(ctx)
		if err != nil {
			c.notices.Errorf("could not refresh exchange rate: %v", err)
			return
		}
		if c.invalidated.Load() {
			// the consumer is gone, discard the result.
			return
		}
		c.commit(rate)
	}()
	return done
}

// Invalidate marks the cache so that an in-flight refresh resolving later
// is discarded.
func (c *RateCache) Invalidate() { c.invalidated.Store(true) }

// fetch performs the network request and derives the KRW-per-USD rate,
// without touching the cache state.
func (c *RateCache) fetch(ctx context.Context) (float64, error) {
	var jobj any
	if err := jwget(ctx, c.client, c.endpoint, &jobj); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrFetch, err)
	}

	// the provider is KRW-denominated: rates.USD is USD per 1 KRW.
	path := "$.rates.USD"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return 0, fmt.Errorf("%w: payload has no %q field: %v", ErrFetch, path, err)
	}
	usdPerKRW, ok := jval.(float64)
	if !ok {
		return 0, fmt.Errorf("%w: %q is not a number: %v", ErrFetch, path, jval)
	}
	if !validRate(usdPerKRW) {
		return 0, fmt.Errorf("%w: provider returned unusable rate %v", ErrFetch, usdPerKRW)
	}

	// invert to KRW per 1 USD.
	rate := 1 / usdPerKRW
	if !validRate(rate) {
		return 0, fmt.Errorf("%w: derived rate %v is unusable", ErrFetch, rate)
	}
	return rate, nil
}

// commit atomically installs the freshly fetched rate and persists it.
func (c *RateCache) commit(rate float64) {
	now := time.Now().UnixMilli()
	c.mu.Lock()
	c.rate = rate
	c.fetchedAt = now
	c.mu.Unlock()

	if err := c.store.SaveRate(rate, now); err != nil {
		// the in-memory value stands, only the persisted copy lags.
		c.notices.Errorf("could not persist exchange rate: %v", err)
	}
}

func validRate(rate float64) bool {
	return !math.IsNaN(rate) && !math.IsInf(rate, 0) && rate > 0
}
