// Package cache provides a fixed-capacity "forgetting map": a generic,
// concurrency-safe key/value container that holds at most Capacity
// associations and forgets the least worthy one when a new key arrives
// at a full table.
//
// Design
//
//   - Storage: a fixed array of Capacity slots. New keys fill free slots
//     in order; once full, every insert of a new key evicts exactly one
//     entry and reuses its slot. Capacity never changes.
//
//   - Matching: keys are matched by a 64-bit fingerprint (see
//     Options.Fingerprint). Two distinct keys with equal fingerprints are
//     the same entry unless Options.ExactKeys is set, in which case a
//     fingerprint match is confirmed with ==.
//
//   - Clock: every Lookup, hit or miss, advances the cache's lookup
//     counter by one tick. Entries remember the tick they were created at.
//
//   - Eviction: an entry's worth is hits / (ticks - born), where hits
//     starts at 1 for the insert itself. An entry created in the current
//     tick is worth +Inf. The victim is the entry with the smallest worth
//     strictly below 1.0, ties going to the lowest slot; if no entry is
//     worth less than 1.0, slot 0 is evicted. See package policy/worth.
//
//   - Replace: inserting a key that is already present swaps the value and
//     returns the previous one. The entry keeps its hits and age.
//
//   - Concurrency: one sync.Mutex guards the slot table and every counter.
//     Insert, Lookup, Snapshot, Stats and String all take it, so no caller
//     can observe a half-updated table. Operations are O(capacity) scans.
//
//   - Metrics and logging: Options.Metrics receives Hit/Miss/Tick/Evict/
//     Replace/Size signals (NoopMetrics by default; see metrics/prom).
//     Options.Logger receives structured debug output (NoopLogger by default).
//
// Basic usage
//
//	c, err := cache.New[int, string](cache.Options[int, string]{Capacity: 3})
//	if err != nil {
//	    return err
//	}
//	c.Insert(1, "a")
//	if v, ok := c.Lookup(1); ok {
//	    _ = v
//	}
//	prev, replaced := c.Insert(1, "b") // prev == "a", replaced == true
//
// With LookupOrLoad
//
//	c := cache.MustNew[string, string](cache.Options[string, string]{
//	    Capacity: 1024,
//	    Loader: func(ctx context.Context, k string) (string, error) {
//	        return "v:" + k, nil
//	    },
//	})
//	v, err := c.LookupOrLoad(context.Background(), "key")
//
// Errors
//
// New rejects a non-positive Capacity with an error whose code is
// CodeInvalidCapacity (see IsConfigError). Insert and Lookup never fail.
package cache
