package cache

import "context"

// Cache is a fixed-capacity forgetting map.
// All methods are safe for concurrent use by multiple goroutines and
// serialize on a single lock.
//
// Insert and Lookup scan the whole slot table, so every operation is
// O(capacity).
type Cache[K comparable, V any] interface {
	// Insert stores k→v.
	// If an entry with the same key is present its value is replaced and the
	// previous value is returned with replaced == true; the entry keeps its
	// access count and age. Otherwise a new entry is created, evicting the
	// least worthy entry first when the table is full.
	Insert(k K, v V) (prev V, replaced bool)

	// Lookup returns the value for k and a presence flag.
	// Every call advances the cache's lookup counter, hit or miss.
	// On hit the entry's access count is incremented.
	Lookup(k K) (V, bool)

	// Peek returns the value for k without advancing the clock or counting
	// an access. It does not affect eviction.
	Peek(k K) (V, bool)

	// LookupOrLoad returns the value for k, loading it via Options.Loader
	// and inserting it on miss. Concurrent loads for the same key are
	// coalesced. Returns an error coded CodeNoLoader if no Loader was set.
	LookupOrLoad(ctx context.Context, k K) (V, error)

	// Len returns the number of occupied slots.
	Len() int

	// Cap returns the fixed number of slots.
	Cap() int

	// Snapshot returns the occupied (key, value) pairs in slot order.
	Snapshot() []Pair[K, V]

	// Stats returns a consistent copy of the cache counters.
	Stats() Stats

	// String renders the snapshot as [k=v k=v ...].
	String() string
}

// Stats is a point-in-time copy of the cache counters.
type Stats struct {
	Hits         uint64 // lookups that found their key
	Misses       uint64 // lookups that did not
	Evictions    uint64 // entries dropped to make room
	Replacements uint64 // inserts that overwrote an existing value
	Ticks        uint64 // total lookups, the cache's notion of time
	Len          int
	Cap          int
}
