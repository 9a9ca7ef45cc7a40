// Package singleflight runs at most one loader per key at a time.
package singleflight

import (
	"context"
	"sync"
)

// Group coalesces concurrent calls for the same key so fn runs once per
// flight. Callers that arrive while a flight is running wait for its result.
//
// The result is written before done is closed, so a reader that returns
// from <-done sees it. A waiter whose ctx ends gives up alone; the running
// fn is not cancelled.
type Group[K comparable, V any] struct {
	mu      sync.Mutex
	flights map[K]*flight[V]
}

type flight[V any] struct {
	done chan struct{}
	val  V
	err  error
}

// Do runs fn for key unless a flight for key is already running, in which
// case it waits for that flight's result or for ctx to end.
func (g *Group[K, V]) Do(ctx context.Context, key K, fn func() (V, error)) (V, error) {
	g.mu.Lock()
	if g.flights == nil {
		g.flights = make(map[K]*flight[V])
	}
	if f, ok := g.flights[key]; ok {
		g.mu.Unlock()

		select {
		case <-f.done:
			return f.val, f.err
		case <-ctx.Done():
			var zero V
			return zero, ctx.Err()
		}
	}

	f := &flight[V]{done: make(chan struct{})}
	g.flights[key] = f
	g.mu.Unlock()

	f.val, f.err = fn()
	close(f.done)

	g.mu.Lock()
	delete(g.flights, key)
	g.mu.Unlock()

	return f.val, f.err
}

// InFlight reports how many keys are currently loading.
func (g *Group[K, V]) InFlight() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.flights)
}
