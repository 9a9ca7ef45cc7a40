package cache

import "context"

// Metrics exposes cache-level observability hooks.
// A NoopMetrics implementation is provided and used by default.
// Hooks are called under the cache lock; keep them cheap.
type Metrics interface {
	Hit()
	Miss()
	Evict()
	Replace()
	// Tick is called once per Lookup, hit or miss.
	Tick()
	Size(entries int)
}

// Options configures the cache. Zero values are safe except Capacity;
// defaults are applied in New():
//   - nil Fingerprint => fingerprint.Of
//   - nil Metrics     => NoopMetrics
//   - nil Logger      => NoopLogger
type Options[K comparable, V any] struct {
	// Capacity is the fixed number of slots. Must be > 0.
	Capacity int

	// Fingerprint derives the matching fingerprint of a key.
	// Keys with equal fingerprints are treated as the same key unless
	// ExactKeys is set.
	Fingerprint func(k K) uint64

	// ExactKeys confirms every fingerprint match with ==, so colliding
	// distinct keys get separate slots.
	ExactKeys bool

	// Loader fetches a value on miss. Used by LookupOrLoad.
	Loader func(ctx context.Context, k K) (V, error)

	// OnEvict is called for every evicted entry with the worth it was evicted at.
	// It runs under the cache lock and must not call back into the cache.
	OnEvict func(k K, v V, worth float64)

	Metrics Metrics
	Logger  Logger
}
