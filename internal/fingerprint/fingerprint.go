// Package fingerprint derives the 64-bit key fingerprints used for slot matching.
package fingerprint

import (
	"hash/maphash"
	"math"

	"github.com/cespare/xxhash/v2"
)

// seed is fixed for the life of the process so fingerprints of the same
// value agree across cache instances.
var seed = maphash.MakeSeed()

// Of returns the fingerprint of k.
// Strings and byte arrays go through xxhash, integer-like keys through FNV-1a
// over their little-endian bytes, floats through their IEEE bits. Any other
// comparable type falls back to maphash.Comparable, which hashes by value
// (pointers and channels by identity).
func Of[K comparable](k K) uint64 {
	switch v := any(k).(type) {
	case string:
		return xxhash.Sum64String(v)
	case [16]byte:
		return xxhash.Sum64(v[:])
	case [32]byte:
		return xxhash.Sum64(v[:])
	case [64]byte:
		return xxhash.Sum64(v[:])

	case uint8:
		return fnv64a(uint64(v))
	case uint16:
		return fnv64a(uint64(v))
	case uint32:
		return fnv64a(uint64(v))
	case uint64:
		return fnv64a(v)
	case uint:
		return fnv64a(uint64(v))
	case uintptr:
		return fnv64a(uint64(v))
	case int8:
		return fnv64a(uint64(uint8(v)))
	case int16:
		return fnv64a(uint64(uint16(v)))
	case int32:
		return fnv64a(uint64(uint32(v)))
	case int64:
		return fnv64a(uint64(v))
	case int:
		return fnv64a(uint64(v))
	case bool:
		if v {
			return fnv64a(1)
		}
		return fnv64a(0)

	case float32:
		return float(float64(v))
	case float64:
		return float(v)

	default:
		return maphash.Comparable(seed, k)
	}
}

// float fingerprints a float by its bits. -0 and +0 compare equal in Go,
// so they must share a fingerprint.
func float(f float64) uint64 {
	if f == 0 {
		f = 0
	}
	return fnv64a(math.Float64bits(f))
}

const (
	fnvOffset64 = 1469598103934665603
	fnvPrime64  = 1099511628211
)

// fnv64a hashes the 8 little-endian bytes of u without allocating.
func fnv64a(u uint64) uint64 {
	h := uint64(fnvOffset64)
	for i := 0; i < 8; i++ {
		h ^= uint64(byte(u))
		h *= fnvPrime64
		u >>= 8
	}
	return h
}
