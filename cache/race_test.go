package cache

import (
	"math/rand"
	"runtime"
	"sync"
	"testing"
	"time"

	"golang.org/x/sync/errgroup"
)

// A mixed workload of concurrent Insert/Lookup/Snapshot on random keys.
// Should pass under `-race` and never let Len exceed Cap.
func TestRace_Mixed(t *testing.T) {
	const capacity = 256
	c := newCache(t, Options[int, int]{Capacity: capacity})

	workers := 4 * runtime.GOMAXPROCS(0)
	keyspace := 2_000
	deadline := time.Now().Add(500 * time.Millisecond)

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(id int) {
			defer wg.Done()
			r := rand.New(rand.NewSource(time.Now().UnixNano() + int64(id)*9973))
			for time.Now().Before(deadline) {
				k := r.Intn(keyspace)
				switch r.Intn(100) {
				case 0: // ~1% — Snapshot
					if n := len(c.Snapshot()); n > capacity {
						t.Errorf("snapshot has %d pairs", n)
						return
					}
				case 1, 2, 3, 4, 5, 6, 7, 8, 9, 10: // ~10% — Insert
					c.Insert(k, k)
				default: // ~89% — Lookup
					if v, ok := c.Lookup(k); ok && v != k {
						t.Errorf("Lookup(%d) = %d", k, v)
						return
					}
				}
				if n := c.Len(); n > capacity {
					t.Errorf("Len %d exceeds capacity", n)
					return
				}
			}
		}(w)
	}
	wg.Wait()

	if st := c.Stats(); st.Len > capacity || st.Hits+st.Misses != st.Ticks {
		t.Fatalf("inconsistent stats: %+v", st)
	}
}

// Many goroutines each insert their own key into a cache large enough to
// hold all of them; afterwards every key must be retrievable.
func TestRace_ConcurrentInsertsAllRetrievable(t *testing.T) {
	const n = 10_000
	c := newCache(t, Options[int, int]{Capacity: n})

	var g errgroup.Group
	for i := 0; i < n; i++ {
		g.Go(func() error {
			c.Insert(i, i)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}

	if c.Len() != n {
		t.Fatalf("Len = %d, want %d", c.Len(), n)
	}
	for i := 0; i < n; i++ {
		if v, ok := c.Lookup(i); !ok || v != i {
			t.Fatalf("Lookup(%d) = %d, %v", i, v, ok)
		}
	}
}

// Each writer owns its keys; its last write must be what a later Lookup sees.
func TestRace_LastWriteWins(t *testing.T) {
	const writers, perWriter = 8, 16
	c := newCache(t, Options[int, int]{Capacity: writers * perWriter})

	var g errgroup.Group
	for w := 0; w < writers; w++ {
		g.Go(func() error {
			for round := 0; round < 50; round++ {
				for j := 0; j < perWriter; j++ {
					k := w*perWriter + j
					c.Insert(k, round)
					c.Lookup(k)
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatal(err)
	}

	for k := 0; k < writers*perWriter; k++ {
		if v, ok := c.Lookup(k); !ok || v != 49 {
			t.Fatalf("Lookup(%d) = %d, %v; want 49", k, v, ok)
		}
	}
}
