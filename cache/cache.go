package cache

import (
	"context"
	"fmt"
	"strings"

	"github.com/IvanBrykalov/forgetmap/internal/fingerprint"
	"github.com/IvanBrykalov/forgetmap/internal/singleflight"
)

// forgetMap is a fixed-capacity forgetting map backed by a single slot table.
// All methods are safe for concurrent use by multiple goroutines.
type forgetMap[K comparable, V any] struct {
	t   *table[K, V]
	opt Options[K, V]

	// coalesces concurrent loads in LookupOrLoad.
	sf singleflight.Group[K, V]
}

// New constructs a cache with the provided Options.
// A non-positive Capacity is rejected with an error coded CodeInvalidCapacity.
// Defaults:
//   - nil Fingerprint -> fingerprint.Of
//   - nil Metrics     -> NoopMetrics
//   - nil Logger      -> NoopLogger
func New[K comparable, V any](opt Options[K, V]) (Cache[K, V], error) {
	if opt.Capacity <= 0 {
		return nil, NewErrInvalidCapacity(opt.Capacity)
	}
	if opt.Fingerprint == nil {
		opt.Fingerprint = fingerprint.Of[K]
	}
	if opt.Metrics == nil {
		opt.Metrics = NoopMetrics{}
	}
	if opt.Logger == nil {
		opt.Logger = NoopLogger{}
	}

	opt.Logger.Info("forgetmap: cache created", "capacity", opt.Capacity, "exact_keys", opt.ExactKeys)
	return &forgetMap[K, V]{
		t:   newTable(opt),
		opt: opt,
	}, nil
}

// MustNew is like New but panics on invalid Options.
func MustNew[K comparable, V any](opt Options[K, V]) Cache[K, V] {
	c, err := New(opt)
	if err != nil {
		panic(err)
	}
	return c
}

// ---- Cache[K,V] implementation ----

// Insert stores k→v. See Cache.Insert.
func (c *forgetMap[K, V]) Insert(k K, v V) (V, bool) { return c.t.Insert(k, v) }

// Lookup returns the value for k and ticks the cache clock. See Cache.Lookup.
func (c *forgetMap[K, V]) Lookup(k K) (V, bool) { return c.t.Lookup(k) }

// Peek returns the value for k without ticking. See Cache.Peek.
func (c *forgetMap[K, V]) Peek(k K) (V, bool) { return c.t.Peek(k) }

// Len returns the number of occupied slots.
func (c *forgetMap[K, V]) Len() int { return c.t.Len() }

// Cap returns the fixed capacity. It never changes, so no lock is needed.
func (c *forgetMap[K, V]) Cap() int { return c.opt.Capacity }

// Snapshot returns the occupied pairs in slot order.
func (c *forgetMap[K, V]) Snapshot() []Pair[K, V] { return c.t.Snapshot() }

// Stats returns a consistent copy of the counters.
func (c *forgetMap[K, V]) Stats() Stats { return c.t.Stats() }

// String renders the occupied pairs as [k=v k=v ...].
func (c *forgetMap[K, V]) String() string {
	pairs := c.t.Snapshot()
	parts := make([]string, len(pairs))
	for i, p := range pairs {
		parts[i] = p.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// LookupOrLoad returns the value for k; on miss it loads via Options.Loader,
// coalescing concurrent loads for the same key, and inserts the result.
func (c *forgetMap[K, V]) LookupOrLoad(ctx context.Context, k K) (V, error) {
	// fast path
	if v, ok := c.Lookup(k); ok {
		return v, nil
	}
	if c.opt.Loader == nil {
		var zero V
		return zero, NewErrNoLoader()
	}

	return c.sf.Do(ctx, k, func() (V, error) {
		// A flight that finished between our miss and joining has already
		// inserted the value. Peek does not tick the clock.
		if v, ok := c.t.Peek(k); ok {
			return v, nil
		}
		v, err := c.opt.Loader(ctx, k)
		if err != nil {
			c.opt.Logger.Warn("forgetmap: loader failed", "key", fmt.Sprint(k), "error", err)
			var zero V
			return zero, NewErrLoaderFailed(k, err)
		}
		c.Insert(k, v)
		return v, nil
	})
}
