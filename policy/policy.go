// Package policy defines the read-only view of a slot table that an
// eviction pass scans.
package policy

// View exposes the per-slot bookkeeping an eviction policy needs.
// Implementations are provided by the cache.
//
// Concurrency: a View is only valid while the cache lock is held; policies
// must not retain it after returning.
type View interface {
	// Slots returns the fixed number of slots in the table.
	Slots() int
	// Occupied reports whether slot i holds an entry.
	Occupied(i int) bool
	// Hits returns the access count of the entry in slot i (starts at 1).
	Hits(i int) uint64
	// Born returns the lookup counter value at which slot i's entry was created.
	Born(i int) uint64
	// Ticks returns the current value of the lookup counter.
	Ticks() uint64
}
