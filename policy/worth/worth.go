// Package worth implements the frequency-ratio eviction policy.
//
// An entry's worth is its access count divided by the number of lookups the
// cache has served since the entry was created:
//
//	worth = hits / (ticks - born)
//
// An entry created in the current tick has an undefined age and is worth
// +Inf, so it cannot be chosen before any lookup has happened.
package worth

import (
	"math"

	"github.com/IvanBrykalov/forgetmap/policy"
)

// Threshold seeds the running minimum of a victim scan. Only entries whose
// worth is strictly below it can be picked.
const Threshold = 1.0

// Ratio returns hits / (ticks - born), or +Inf when no lookup has happened
// since born.
func Ratio(hits, born, ticks uint64) float64 {
	if ticks <= born {
		return math.Inf(1)
	}
	return float64(hits) / float64(ticks-born)
}

// Victim picks the slot to evict from a full table.
//
// The scan starts from (slot 0, Threshold) and moves only on a strictly
// smaller worth. Ties therefore keep the lowest index, and when no entry is
// worth less than Threshold slot 0 is returned. The returned worth is the
// worth of the chosen slot's entry.
func Victim(v policy.View) (slot int, ratio float64) {
	best := Threshold
	for i, n := 0, v.Slots(); i < n; i++ {
		if !v.Occupied(i) {
			continue
		}
		if r := Ratio(v.Hits(i), v.Born(i), v.Ticks()); r < best {
			best, slot = r, i
		}
	}
	if v.Occupied(slot) {
		ratio = Ratio(v.Hits(slot), v.Born(slot), v.Ticks())
	}
	return slot, ratio
}
