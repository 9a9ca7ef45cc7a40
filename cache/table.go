package cache

import (
	"sync"

	"github.com/IvanBrykalov/forgetmap/policy"
	"github.com/IvanBrykalov/forgetmap/policy/worth"
)

// table is the fixed slot array together with the counters that age it.
// One mutex guards every field; inspection takes the same lock as mutation.
type table[K comparable, V any] struct {
	// ---- guarded by mu ----
	mu    sync.Mutex
	slots []*entry[K, V] // len == capacity, nil = free
	size  int            // number of non-nil slots
	next  int            // next never-used slot while size < len(slots)
	ticks uint64         // total Lookup calls

	hits, misses, evicts, replaces uint64

	fp    func(K) uint64
	exact bool
	opt   Options[K, V]
}

func newTable[K comparable, V any](opt Options[K, V]) *table[K, V] {
	return &table[K, V]{
		slots: make([]*entry[K, V], opt.Capacity),
		fp:    opt.Fingerprint,
		exact: opt.ExactKeys,
		opt:   opt,
	}
}

// Insert replaces the value of a matching entry or places a new one,
// evicting first if the table is full.
func (t *table[K, V]) Insert(k K, v V) (V, bool) {
	fp := t.fp(k)

	t.mu.Lock()
	defer t.mu.Unlock()

	if i := t.findLocked(fp, k); i >= 0 {
		e := t.slots[i]
		old := e.val
		e.val = v
		t.replaces++
		t.opt.Metrics.Replace()
		return old, true
	}

	n := &entry[K, V]{fp: fp, key: k, val: v, born: t.ticks, hits: 1}
	if t.size < len(t.slots) {
		t.slots[t.next] = n
		t.next++
		t.size++
		t.opt.Metrics.Size(t.size)
	} else {
		t.slots[t.evictLocked()] = n
	}

	var zero V
	return zero, false
}

// Lookup advances the clock, then returns a copy of the matching value.
func (t *table[K, V]) Lookup(k K) (V, bool) {
	fp := t.fp(k)

	t.mu.Lock()
	defer t.mu.Unlock()

	t.ticks++
	t.opt.Metrics.Tick()

	if i := t.findLocked(fp, k); i >= 0 {
		e := t.slots[i]
		e.hits++
		t.hits++
		t.opt.Metrics.Hit()
		return e.val, true
	}

	t.misses++
	t.opt.Metrics.Miss()
	var zero V
	return zero, false
}

// Peek returns the matching value without ticking the clock or counting
// an access.
func (t *table[K, V]) Peek(k K) (V, bool) {
	fp := t.fp(k)

	t.mu.Lock()
	defer t.mu.Unlock()

	if i := t.findLocked(fp, k); i >= 0 {
		return t.slots[i].val, true
	}
	var zero V
	return zero, false
}

// Len returns the number of occupied slots.
func (t *table[K, V]) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.size
}

// Snapshot copies the occupied pairs in slot order.
func (t *table[K, V]) Snapshot() []Pair[K, V] {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]Pair[K, V], 0, t.size)
	for _, e := range t.slots {
		if e != nil {
			out = append(out, Pair[K, V]{Key: e.key, Value: e.val})
		}
	}
	return out
}

// Stats copies the counters.
func (t *table[K, V]) Stats() Stats {
	t.mu.Lock()
	defer t.mu.Unlock()

	return Stats{
		Hits:         t.hits,
		Misses:       t.misses,
		Evictions:    t.evicts,
		Replacements: t.replaces,
		Ticks:        t.ticks,
		Len:          t.size,
		Cap:          len(t.slots),
	}
}

// -------------------- internals (mu held) --------------------

// findLocked returns the index of the slot matching fp (and k when exact),
// or -1.
func (t *table[K, V]) findLocked(fp uint64, k K) int {
	for i, e := range t.slots {
		if e == nil || e.fp != fp {
			continue
		}
		if t.exact && e.key != k {
			continue
		}
		return i
	}
	return -1
}

// evictLocked clears the least worthy slot and returns its index.
// The caller writes the replacement before releasing the lock, so no
// caller ever observes the freed slot.
func (t *table[K, V]) evictLocked() int {
	i, ratio := worth.Victim(tableView[K, V]{t})
	e := t.slots[i]
	t.slots[i] = nil

	t.evicts++
	t.opt.Metrics.Evict()
	t.opt.Logger.Debug("forgetmap: evicted entry", "key", e.key, "slot", i, "worth", ratio, "ticks", t.ticks)
	if cb := t.opt.OnEvict; cb != nil {
		cb(e.key, e.val, ratio)
	}
	return i
}

// -------------------- policy view --------------------

// tableView adapts the slot table to policy.View for an eviction pass.
type tableView[K comparable, V any] struct{ t *table[K, V] }

func (v tableView[K, V]) Slots() int          { return len(v.t.slots) }
func (v tableView[K, V]) Occupied(i int) bool { return v.t.slots[i] != nil }
func (v tableView[K, V]) Hits(i int) uint64   { return v.t.slots[i].hits }
func (v tableView[K, V]) Born(i int) uint64   { return v.t.slots[i].born }
func (v tableView[K, V]) Ticks() uint64       { return v.t.ticks }

var _ policy.View = tableView[string, int]{}
