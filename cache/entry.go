package cache

import "fmt"

// entry is one occupied slot of the table.
type entry[K comparable, V any] struct {
	fp  uint64 // key fingerprint used for matching
	key K
	val V

	// Lookup counter value when the entry was created.
	// Never changes; a replacing Insert keeps the original age.
	born uint64

	// Successful lookups since creation, plus one for the insert itself.
	hits uint64
}

// Pair is a copied (key, value) association returned by Snapshot.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}

func (p Pair[K, V]) String() string { return fmt.Sprintf("%v=%v", p.Key, p.Value) }
